package vars

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251207-go-pkg-genm/pkg/naming"
)

func action(ctx context.Context, cmd *cli.Command) error {
	module := cmd.Args().Get(0)
	entity := cmd.Args().Get(1)
	if module == "" || entity == "" {
		return fmt.Errorf("usage: vars <module> <entity>")
	}

	derived := naming.Vars(module, entity)

	if cmd.Bool("yaml") {
		out, err := yamlv3.Marshal(derived)
		if err != nil {
			return fmt.Errorf("marshal vars: %w", err)
		}
		fmt.Print(string(out))

		return nil
	}

	// 文本模式只列出扁平标量键，便于对照模板
	keys := make([]string, 0, len(derived))
	for key, value := range derived {
		if _, nested := value.(map[string]any); nested {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Printf("%-24s %v\n", key, derived[key])
	}

	return nil
}
