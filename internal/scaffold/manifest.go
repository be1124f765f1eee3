package scaffold

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	yamlv3 "go.yaml.in/yaml/v3"
)

// 模板集类型。
const (
	KindCRUD     = "crud"
	KindTreeCRUD = "tree-crud"
)

// Manifest 描述一个模板集：集名、类型与文件清单。
//
// 与配置文件一样使用 json tag 描述 key（YAML 解析后经
// mapstructure 解码，宽松类型转换）。
type Manifest struct {
	Name        string     `json:"name"`
	Kind        string     `json:"kind"`
	Description string     `json:"description"`
	Files       []FileSpec `json:"files"`
}

// FileSpec 模板集中的单个文件。
//
// Target 是相对输出根目录的路径，本身可以包含占位符，
// 生成时用同一套上下文展开。
type FileSpec struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// ParseManifest 解析 manifest.yaml 内容并做基本校验。
func ParseManifest(content []byte) (*Manifest, error) {
	var raw any
	if err := yamlv3.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	var manifest Manifest
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &manifest,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	if err := manifest.validate(); err != nil {
		return nil, err
	}

	return &manifest, nil
}

func (m *Manifest) validate() error {
	if m.Name == "" {
		return fmt.Errorf("manifest: name is required")
	}
	if m.Kind != KindCRUD && m.Kind != KindTreeCRUD {
		return fmt.Errorf("manifest %s: unknown kind %q", m.Name, m.Kind)
	}
	if len(m.Files) == 0 {
		return fmt.Errorf("manifest %s: files is empty", m.Name)
	}
	for i, file := range m.Files {
		if file.Source == "" || file.Target == "" {
			return fmt.Errorf("manifest %s: files[%d] needs source and target", m.Name, i)
		}
	}

	return nil
}
