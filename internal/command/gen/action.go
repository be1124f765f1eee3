package gen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-genm/internal/command"
	"github.com/lwmacct/251207-go-pkg-genm/internal/config"
	"github.com/lwmacct/251207-go-pkg-genm/internal/scaffold"
	"github.com/lwmacct/251207-go-pkg-genm/pkg/cfgm"
	"github.com/lwmacct/251207-go-pkg-genm/pkg/naming"
)

func action(ctx context.Context, cmd *cli.Command) error {
	// 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
	cfg := cfgm.MustLoadCmd(cmd, config.DefaultConfig(), command.AppName,
		cfgm.WithEnvPrefix(command.EnvPrefix),
	)

	scaffolder, err := scaffold.New()
	if err != nil {
		return err
	}

	// 外部模板集追加到内置集之后，集名冲突直接报错
	if cfg.Gen.Templates != "" {
		set, err := scaffold.LoadSet(cfg.Gen.Templates)
		if err != nil {
			return fmt.Errorf("load template set from %s: %w", cfg.Gen.Templates, err)
		}
		if err := scaffolder.Register(set); err != nil {
			return err
		}
	}

	module := cmd.String("module")
	entity := cmd.String("entity")
	setName := cfg.Gen.Set

	// 未通过 flags 指定时进入交互式表单
	if module == "" || entity == "" {
		options := make([]huh.Option[string], 0, len(scaffolder.Names()))
		for _, name := range scaffolder.Names() {
			options = append(options, huh.NewOption(name, name))
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("模块名是什么？").
					Placeholder("sales").
					Value(&module).
					Validate(func(s string) error {
						if s == "" {
							return errors.New("模块名不能为空")
						}
						return nil
					}),
				huh.NewInput().
					Title("实体名是什么？").
					Placeholder("Customer").
					Value(&entity).
					Validate(func(s string) error {
						if s == "" {
							return errors.New("实体名不能为空")
						}
						return nil
					}),
				huh.NewSelect[string]().
					Title("使用哪个模板集？").
					Options(options...).
					Value(&setName),
			),
		)

		if err := form.Run(); err != nil {
			return err
		}
	}

	// 派生命名变量，附加变量按点号路径叠加
	vars := naming.Vars(module, entity)
	for key, value := range cfg.Gen.Vars {
		cfgm.SetByPath(vars, key, value)
	}

	results, err := scaffolder.Generate(scaffold.Request{
		Set:        setName,
		Context:    vars,
		OutputRoot: cfg.Gen.Output,
		Force:      cfg.Gen.Force,
		DryRun:     cfg.Gen.DryRun,
	})
	if err != nil {
		return err
	}

	for _, result := range results {
		if result.Written {
			fmt.Printf("生成 %s\n", result.Target)
		} else {
			fmt.Printf("将生成 %s\n", result.Target)
		}
	}

	slog.Info("Generation finished",
		"set", setName, "module", module, "entity", entity,
		"files", len(results), "dryRun", cfg.Gen.DryRun)

	return nil
}
