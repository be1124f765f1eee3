package cfgm

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-genm/pkg/tplsub"
)

// DefaultPaths 返回默认配置文件的搜索顺序。
//
// appName 可选，提供后会追加应用专属路径。
// 返回顺序即查找顺序，先命中的文件生效。
//
// 优先级 (从高到低)：
//  1. ./.appname.yaml - 当前目录应用配置
//  2. ~/.appname.yaml - 用户主目录配置
//  3. /etc/appname/config.yaml - 系统级配置
//  4. config.yaml - 当前目录通用配置
//  5. config/config.yaml - 子目录通用配置
func DefaultPaths(appName ...string) []string {
	var paths []string

	if len(appName) > 0 && appName[0] != "" {
		name := appName[0]
		// 当前目录应用配置 (最高优先级)
		paths = append(paths, "."+name+".yaml")
		// 用户主目录
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, "."+name+".yaml"))
		}
		// 系统配置目录
		paths = append(paths, "/etc/"+name+"/config.yaml")
	}

	// 当前目录通用配置 (最低优先级)
	paths = append(paths, "config.yaml", "config/config.yaml")

	return paths
}

// Load 读取配置并按优先级合并。
//
// 优先级 (从低到高)：
//  1. 默认值 - defaultConfig
//  2. 配置文件 - [WithConfigPaths] / [WithAppName]
//  3. 环境变量(前缀) - [WithEnvPrefix]
//  4. CLI flags - [WithCommand]
//
// 配置 key 由 json tag 定义，YAML 与 JSON 共享同一套 key。
// 配置文件按顺序查找，命中首个文件即停止。
func Load[T any](defaultConfig T, opts ...Option) (*T, error) {
	// 解析选项
	options := &options{}
	for _, opt := range opts {
		opt(options)
	}

	// 默认使用 DefaultPaths 作为配置文件搜索路径
	if len(options.configPaths) == 0 {
		options.configPaths = DefaultPaths(options.appName)
	}

	configMap := structToMap(defaultConfig)

	// 2️⃣ 加载配置文件 (按顺序搜索，找到第一个即停止)
	configLoaded := false
	paths := options.configPaths
	if options.baseDir != "" {
		paths = make([]string, len(options.configPaths))
		for i, p := range options.configPaths {
			if !filepath.IsAbs(p) {
				paths[i] = filepath.Join(options.baseDir, p)
			} else {
				paths[i] = p
			}
		}
	}
	for _, path := range paths {
		// 尝试读取配置文件
		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			continue // 文件不存在或无法读取，尝试下一个路径
		}

		// 默认启用占位符展开：以环境变量为上下文，未命中输出空串
		if !options.noTemplateExpansion {
			content = []byte(tplsub.Substitute(string(content), EnvContext()))
		}

		fileMap, err := parseConfigBytes(path, content)
		if err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		mergeMaps(configMap, fileMap)

		slog.Debug("Loaded config from file", "path", path, "templateExpansion", !options.noTemplateExpansion)
		configLoaded = true

		break
	}

	if len(options.configPaths) > 0 && !configLoaded {
		slog.Debug("No config file found, using defaults")
	}

	// 3️⃣ 自动生成环境变量绑定 (基于配置结构体的 key)
	// 支持包含连字符的 key，例如 dry-run
	if options.envPrefix != "" {
		autoBindings := generateEnvBindings(options.envPrefix, collectConfigKeys(defaultConfig))
		slog.Debug("Generated auto env bindings", "prefix", options.envPrefix, "count", len(autoBindings))
		for envKey, configPath := range autoBindings {
			if val := os.Getenv(envKey); val != "" {
				SetByPath(configMap, configPath, val)
				slog.Debug("Loaded env binding", "env", envKey, "path", configPath)
			}
		}
	}

	// 4️⃣ 加载 CLI flags (最高优先级，仅当用户明确指定时)
	if options.cmd != nil {
		applyCLIFlags(options.cmd, configMap, defaultConfig)
	}

	// 解析到结构体
	var cfg T
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadCmd 是 [Load] 的便捷版本，适用于 CLI 场景。
//
// 它会注入 [WithCommand]，appName 非空时额外注入 [WithAppName]。
//
// 示例：
//
//	cfg, err := cfgm.LoadCmd(cmd, DefaultConfig(), "genm",
//	    cfgm.WithEnvPrefix("GENM_"),
//	)
func LoadCmd[T any](cmd *cli.Command, defaultConfig T, appName string, opts ...Option) (*T, error) {
	baseOpts := []Option{WithCommand(cmd)}
	if appName != "" {
		baseOpts = append(baseOpts, WithAppName(appName))
	}
	return Load(defaultConfig, append(baseOpts, opts...)...)
}

// MustLoadCmd 调用 [LoadCmd] 并在失败时 panic，适合启动阶段。
func MustLoadCmd[T any](cmd *cli.Command, defaultConfig T, appName string, opts ...Option) *T {
	cfg, err := LoadCmd(cmd, defaultConfig, appName, opts...)
	if err != nil {
		panic(fmt.Sprintf("cfgm: failed to load config: %v", err))
	}

	return cfg
}

// collectConfigKeys 递归收集配置结构体的 key 列表。
//
// 以 json tag 为准，返回叶子路径（如 gen.dry-run）。
func collectConfigKeys[T any](defaultConfig T) []string {
	var keys []string
	collectConfigKeysRecursive(reflect.TypeOf(defaultConfig), "", &keys)

	return keys
}

// collectConfigKeysRecursive 递归遍历字段并拼接完整 key 路径。
func collectConfigKeysRecursive(typ reflect.Type, prefix string, keys *[]string) {
	// 处理指针类型
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)

		key := configTagName(field)
		if key == "" {
			continue
		}

		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		// 嵌套结构体（非特殊类型）递归处理
		if isStructType(field.Type) {
			collectConfigKeysRecursive(field.Type, fullKey, keys)

			continue
		}

		*keys = append(*keys, fullKey)
	}
}

// generateEnvBindings 根据配置 key 生成环境变量映射。
//
// 转换规则：
//   - key 中的 "." 和 "-" 转为 "_"
//   - 转为大写
//   - 添加前缀
//
// 示例 (前缀 "GENM_")：
//   - gen.output → GENM_GEN_OUTPUT
//   - gen.dry-run → GENM_GEN_DRY_RUN
func generateEnvBindings(prefix string, keys []string) map[string]string {
	bindings := make(map[string]string, len(keys))
	for _, key := range keys {
		// 将 "." 和 "-" 都转为 "_"，然后大写
		envKey := strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
		bindings[prefix+envKey] = key
	}

	return bindings
}

// applyCLIFlags 将用户显式设置的 CLI flags 写入配置 map。
//
// 根据 json tag 生成 CLI flag 名称，仅替换 "." 为 "-"。
//
// 映射示例 (json tag → CLI flags)：
//   - gen.output → --gen-output
//   - gen.dry-run → --gen-dry-run
//
// 支持的类型覆盖生成器配置的全部字段：
// string, bool, int/int64, float64, time.Duration, []string, []int,
// map[string]string。其余类型忽略。
func applyCLIFlags[T any](cmd *cli.Command, config map[string]any, defaultConfig T) {
	applyCLIFlagsRecursive(cmd, config, reflect.TypeOf(defaultConfig), "")
}

// applyCLIFlagsRecursive 递归遍历结构体字段并应用 CLI flags。
func applyCLIFlagsRecursive(cmd *cli.Command, config map[string]any, typ reflect.Type, prefix string) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)

		// 获取 json 标签作为配置 key
		key := configTagName(field)
		if key == "" {
			continue
		}

		// 构建完整的配置 key
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		// 嵌套结构体递归处理
		if isStructType(field.Type) {
			applyCLIFlagsRecursive(cmd, config, field.Type, fullKey)

			continue
		}

		cliFlag := strings.ReplaceAll(fullKey, ".", "-")
		if !cmd.IsSet(cliFlag) {
			continue
		}

		// 根据字段类型获取值并设置
		setCLIFlagValue(cmd, config, fullKey, cliFlag, field.Type)
	}
}

// setCLIFlagValue 按字段类型读取 CLI 值并写入配置 map。
func setCLIFlagValue(cmd *cli.Command, config map[string]any, configPath, cliFlag string, fieldType reflect.Type) {
	if fieldType == durationType {
		SetByPath(config, configPath, cmd.Duration(cliFlag))

		return
	}

	switch fieldType.Kind() {
	case reflect.String:
		SetByPath(config, configPath, cmd.String(cliFlag))
	case reflect.Bool:
		SetByPath(config, configPath, cmd.Bool(cliFlag))
	case reflect.Int:
		SetByPath(config, configPath, cmd.Int(cliFlag))
	case reflect.Int64:
		SetByPath(config, configPath, cmd.Int64(cliFlag))
	case reflect.Float64:
		SetByPath(config, configPath, cmd.Float64(cliFlag))
	case reflect.Slice:
		switch fieldType.Elem().Kind() {
		case reflect.String:
			SetByPath(config, configPath, cmd.StringSlice(cliFlag))
		case reflect.Int:
			SetByPath(config, configPath, cmd.IntSlice(cliFlag))
		default:
			// 不支持的切片元素类型，忽略
		}
	case reflect.Map:
		if fieldType.Key().Kind() == reflect.String && fieldType.Elem().Kind() == reflect.String {
			SetByPath(config, configPath, cmd.StringMap(cliFlag))
		}
	default:
		// 不支持的类型，忽略
	}
}
