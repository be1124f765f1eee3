// Package scaffold 按模板集生成 CRUD / 树形 CRUD 模块的样板文件。
//
// 模板集是一个包含 manifest.yaml 的目录，内置集通过 go:embed
// 打包，外部集用 [LoadSet] 从文件系统加载。生成时每个模板文件
// 和目标路径都用 tplsub 做占位符展开。
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/lwmacct/251207-go-pkg-genm/pkg/tplsub"
)

//go:embed all:templates
var builtinTemplates embed.FS

const manifestFile = "manifest.yaml"

// Set 一个已加载的模板集。
type Set struct {
	Manifest Manifest

	fsys fs.FS
	root string
}

// LoadSet 从目录加载外部模板集（目录内须有 manifest.yaml）。
func LoadSet(dir string) (*Set, error) {
	return newSetFromFS(os.DirFS(dir), ".")
}

func newSetFromFS(fsys fs.FS, root string) (*Set, error) {
	content, err := fs.ReadFile(fsys, path.Join(root, manifestFile))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	manifest, err := ParseManifest(content)
	if err != nil {
		return nil, err
	}

	return &Set{Manifest: *manifest, fsys: fsys, root: root}, nil
}

// Scaffolder 持有模板集注册表并执行生成。
//
// 注册表是显式的普通映射，重名注册返回错误而不是覆盖。
type Scaffolder struct {
	sets map[string]*Set
}

// New 创建 Scaffolder 并注册全部内置模板集。
func New() (*Scaffolder, error) {
	s := &Scaffolder{sets: make(map[string]*Set)}

	entries, err := fs.ReadDir(builtinTemplates, "templates")
	if err != nil {
		return nil, fmt.Errorf("read builtin templates: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		set, err := newSetFromFS(builtinTemplates, path.Join("templates", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("builtin set %s: %w", entry.Name(), err)
		}
		if err := s.Register(set); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Register 注册模板集；集名已存在时返回错误。
func (s *Scaffolder) Register(set *Set) error {
	name := set.Manifest.Name
	if _, exists := s.sets[name]; exists {
		return fmt.Errorf("template set %q already registered", name)
	}
	s.sets[name] = set

	return nil
}

// Set 按名称取模板集。
func (s *Scaffolder) Set(name string) (*Set, bool) {
	set, ok := s.sets[name]
	return set, ok
}

// Names 返回已注册模板集的名称（排序后）。
func (s *Scaffolder) Names() []string {
	names := make([]string, 0, len(s.sets))
	for name := range s.sets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Request 一次生成请求。
type Request struct {
	Set        string         // 模板集名称
	Context    map[string]any // 模板替换上下文（见 naming.Vars）
	OutputRoot string         // 输出根目录
	Force      bool           // 允许覆盖已存在文件
	DryRun     bool           // 只计算目标路径，不落盘
}

// FileResult 单个文件的生成结果。
type FileResult struct {
	Source  string // 模板集内的源文件
	Target  string // 展开后的目标路径（相对输出根目录）
	Written bool   // DryRun 时为 false
}

// Generate 渲染模板集并写出目标文件。
//
// 目标路径先做占位符展开再拼到输出根目录下；已存在的文件
// 默认报错，Force 时覆盖。DryRun 只返回目标清单。
func (s *Scaffolder) Generate(req Request) ([]FileResult, error) {
	set, ok := s.sets[req.Set]
	if !ok {
		return nil, fmt.Errorf("unknown template set %q (available: %v)", req.Set, s.Names())
	}

	results := make([]FileResult, 0, len(set.Manifest.Files))
	for _, file := range set.Manifest.Files {
		content, err := fs.ReadFile(set.fsys, path.Join(set.root, file.Source))
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", file.Source, err)
		}

		target := tplsub.Substitute(file.Target, req.Context)
		rendered := tplsub.Substitute(string(content), req.Context)

		result := FileResult{Source: file.Source, Target: target}
		if req.DryRun {
			results = append(results, result)
			continue
		}

		targetPath := filepath.Join(req.OutputRoot, filepath.FromSlash(target))
		if !req.Force {
			if _, err := os.Stat(targetPath); err == nil {
				return nil, fmt.Errorf("target %s already exists (use force to overwrite)", targetPath)
			}
		}

		if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
		if err := os.WriteFile(targetPath, []byte(rendered), 0o644); err != nil { //nolint:gosec // generated source files
			return nil, fmt.Errorf("write %s: %w", targetPath, err)
		}

		slog.Debug("Generated file", "set", req.Set, "target", targetPath)
		result.Written = true
		results = append(results, result)
	}

	return results, nil
}
