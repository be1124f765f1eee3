// Package cfgm 提供生成器的分层配置加载。
//
// 支持 YAML/JSON，按默认值、配置文件、环境变量与 CLI flags 逐层覆盖。
// 配置 key 使用 json tag 统一描述，YAML 与 JSON 共享同一套 key。
//
// # 加载优先级 (从低到高)
//
//  1. 默认值 - 通过 defaultConfig 参数传入
//  2. 配置文件 - 通过 [WithConfigPaths] 或 [WithAppName] 设置
//  3. 环境变量(前缀) - 通过 [WithEnvPrefix] 自动生成绑定
//  4. CLI flags - 通过 [WithCommand] 选项设置，最高优先级
//
// # 快速开始
//
// 定义配置结构体（json + desc 标签）：
//
//	type Config struct {
//	    Output string `json:"output"  desc:"生成输出根目录"`
//	    DryRun bool   `json:"dry-run" desc:"只列出目标不落盘"`
//	}
//
// CLI 场景推荐使用 LoadCmd：
//
//	cfg, err := cfgm.LoadCmd(cmd, DefaultConfig(), "genm",
//	    cfgm.WithEnvPrefix("GENM_"),
//	)
//
// # 占位符展开
//
// 配置文件在解析前会以环境变量为上下文做 {{VAR}} 展开
// （由 tplsub 包完成，未命中的变量输出空串，永不失败）：
//
//	# config.yaml
//	gen:
//	  output: "{{HOME}}/workspace/generated"
//
// 使用 [WithoutTemplateExpansion] 可保留原始 {{...}} 字符串。
//
// # 环境变量(前缀)
//
// 通过 [WithEnvPrefix] 启用环境变量支持：
//   - 前缀 + 大写的配置 key
//   - 点号 (.) 和连字符 (-) 转为下划线 (_)
//
// 示例 (前缀为 "GENM_")：
//   - GENM_GEN_OUTPUT → gen.output
//   - GENM_GEN_DRY_RUN → gen.dry-run
//
// # CLI Flag 映射
//
// 仅替换 "." 为 "-"：
//   - gen.output → --gen-output
//   - gen.dry-run → --gen-dry-run
package cfgm
