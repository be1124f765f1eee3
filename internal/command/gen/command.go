// Package gen 提供模块脚手架生成命令。
package gen

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-genm/internal/command"
)

// Command 生成命令
var Command = &cli.Command{
	Name:   "gen",
	Usage:  "按模板集生成 CRUD / 树形 CRUD 模块",
	Action: action,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "module",
			Aliases: []string{"m"},
			Usage:   "模块名 (如 sales)",
		},
		&cli.StringFlag{
			Name:    "entity",
			Aliases: []string{"e"},
			Usage:   "实体名 (如 Customer)",
		},
		&cli.StringFlag{
			Name:  "gen-set",
			Value: command.Defaults.Gen.Set,
			Usage: "模板集名称",
		},
		&cli.StringFlag{
			Name:  "gen-templates",
			Value: command.Defaults.Gen.Templates,
			Usage: "外部模板集目录 (留空使用内置模板)",
		},
		&cli.StringFlag{
			Name:    "gen-output",
			Aliases: []string{"o"},
			Value:   command.Defaults.Gen.Output,
			Usage:   "生成输出根目录",
		},
		&cli.BoolFlag{
			Name:  "gen-force",
			Value: command.Defaults.Gen.Force,
			Usage: "允许覆盖已存在文件",
		},
		&cli.BoolFlag{
			Name:  "gen-dry-run",
			Value: command.Defaults.Gen.DryRun,
			Usage: "只列出目标路径，不落盘",
		},
		&cli.StringMapFlag{
			Name:  "gen-vars",
			Value: command.Defaults.Gen.Vars,
			Usage: "附加模板变量 (key=value，key 支持点号路径)",
		},
	},
}
