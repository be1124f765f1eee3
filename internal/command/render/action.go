package render

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-genm/internal/command"
	"github.com/lwmacct/251207-go-pkg-genm/internal/config"
	"github.com/lwmacct/251207-go-pkg-genm/pkg/cfgm"
	"github.com/lwmacct/251207-go-pkg-genm/pkg/tplsub"
)

func action(ctx context.Context, cmd *cli.Command) error {
	cfg := cfgm.MustLoadCmd(cmd, config.DefaultConfig(), command.AppName,
		cfgm.WithEnvPrefix(command.EnvPrefix),
	)

	source := cmd.Args().First()
	if source == "" {
		return fmt.Errorf("usage: render <template-file | ->")
	}

	var content []byte
	var err error
	if source == "-" {
		content, err = io.ReadAll(os.Stdin)
	} else {
		content, err = os.ReadFile(source) //nolint:gosec // path is user input by design
	}
	if err != nil {
		return fmt.Errorf("read template: %w", err)
	}

	// -d key=value 构造上下文，点号路径创建嵌套映射
	templateCtx := map[string]any{}
	for key, value := range cmd.StringMap("data") {
		cfgm.SetByPath(templateCtx, key, value)
	}

	rendered := tplsub.Substitute(string(content), templateCtx)

	if cfg.Render.Output == "-" {
		_, err = fmt.Print(rendered)

		return err
	}

	if err := os.WriteFile(cfg.Render.Output, []byte(rendered), 0o644); err != nil { //nolint:gosec // rendered source file
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
