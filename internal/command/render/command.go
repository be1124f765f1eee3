// Package render 提供单个模板文件的渲染命令。
package render

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-genm/internal/command"
)

// Command 渲染命令
var Command = &cli.Command{
	Name:      "render",
	Usage:     "渲染单个模板文件 (- 表示从标准输入读取)",
	ArgsUsage: "<template-file | ->",
	Action:    action,
	Flags: []cli.Flag{
		&cli.StringMapFlag{
			Name:    "data",
			Aliases: []string{"d"},
			Usage:   "模板变量 (key=value，key 支持点号路径)",
		},
		&cli.StringFlag{
			Name:  "render-output",
			Value: command.Defaults.Render.Output,
			Usage: "输出文件路径 (- 表示标准输出)",
		},
	},
}
