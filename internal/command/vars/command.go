// Package vars 提供命名变量表的查看命令。
package vars

import (
	"github.com/urfave/cli/v3"
)

// Command 变量表命令
var Command = &cli.Command{
	Name:      "vars",
	Usage:     "打印模块/实体派生的模板变量表",
	ArgsUsage: "<module> <entity>",
	Action:    action,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "yaml",
			Usage: "以 YAML 输出 (含嵌套组)",
		},
	},
}
