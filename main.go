package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-genm/internal/command"
	"github.com/lwmacct/251207-go-pkg-genm/internal/command/gen"
	"github.com/lwmacct/251207-go-pkg-genm/internal/command/render"
	"github.com/lwmacct/251207-go-pkg-genm/internal/command/vars"
)

// version 构建时通过 -ldflags "-X main.version=..." 注入。
var version = "dev"

func main() {
	app := &cli.Command{
		Name:    command.AppName,
		Usage:   "模板驱动的 CRUD 模块脚手架工具",
		Version: version,
		Commands: []*cli.Command{
			gen.Command,
			render.Command,
			vars.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
