// Package command 提供生成器各子命令的公共定义。
package command

import "github.com/lwmacct/251207-go-pkg-genm/internal/config"

// AppName 应用名称，用于配置搜索路径与环境变量前缀。
const AppName = "genm"

// EnvPrefix 环境变量前缀（GENM_GEN_OUTPUT → gen.output）。
const EnvPrefix = "GENM_"

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()
