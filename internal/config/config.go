// Package config 提供生成器的应用配置。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - 通过 WithAppName / WithConfigPaths 选项设置
//  3. 环境变量 - 通过 WithEnvPrefix 选项启用
//  4. CLI flags - 通过 WithCommand 选项设置
package config

// Config 应用配置。
type Config struct {
	Gen    GenConfig    `json:"gen" desc:"代码生成配置"`
	Render RenderConfig `json:"render" desc:"单文件渲染配置"`
}

// GenConfig 代码生成配置。
type GenConfig struct {
	Templates string            `json:"templates" desc:"外部模板集目录 (留空使用内置模板)"`
	Output    string            `json:"output" desc:"生成输出根目录"`
	Set       string            `json:"set" desc:"默认模板集"`
	Force     bool              `json:"force" desc:"允许覆盖已存在文件"`
	DryRun    bool              `json:"dry-run" desc:"只列出目标路径，不落盘"`
	Vars      map[string]string `json:"vars" desc:"附加模板变量 (key=value，key 支持点号路径)"`
}

// RenderConfig 单文件渲染配置。
type RenderConfig struct {
	Output string `json:"output" desc:"输出文件路径 (- 表示标准输出)"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Gen: GenConfig{
			Output: ".",
			Set:    "crud",
		},
		Render: RenderConfig{
			Output: "-",
		},
	}
}
