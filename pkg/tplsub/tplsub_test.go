package tplsub_test

import (
	"strings"
	"testing"

	"github.com/lwmacct/251207-go-pkg-genm/pkg/tplsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstitute_Scaffolding(t *testing.T) {
	// 来自脚手架工具的真实模板片段
	tests := []struct {
		name     string
		template string
		ctx      any
		want     string
	}{
		{
			name:     "python import path",
			template: "from app.application.{{ModuleName}}.commands import",
			ctx:      map[string]any{"ModuleName": "sales"},
			want:     "from app.application.sales.commands import",
		},
		{
			name:     "repository class name",
			template: "{{EntityName}}Repository",
			ctx:      map[string]any{"EntityName": "Customer"},
			want:     "CustomerRepository",
		},
		{
			name:     "snake case attribute",
			template: "self._{{EntityNameLower}}_repository",
			ctx:      map[string]any{"EntityNameLower": "customer"},
			want:     "self._customer_repository",
		},
		{
			name:     "adjacent tags",
			template: "class {{EntityName}}{{Suffix}}:",
			ctx:      map[string]any{"EntityName": "Customer", "Suffix": "Service"},
			want:     "class CustomerService:",
		},
		{
			name:     "typescript function name",
			template: "function transform{{EntityName}}(dto",
			ctx:      map[string]any{"EntityName": "Customer"},
			want:     "function transformCustomer(dto",
		},
		{
			name:     "quoted json key",
			template: `"{{EntityNamePluralLower}}": string`,
			ctx:      map[string]any{"EntityNamePluralLower": "customers"},
			want:     `"customers": string`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tplsub.Substitute(tt.template, tt.ctx))
		})
	}
}

func TestSubstitute_LiteralText(t *testing.T) {
	// 不含 {{ 的模板必须原样返回
	ctx := map[string]any{"Key": "V"}
	for _, template := range []string{
		"",
		"plain text",
		"closing only }} stays",
		"single { and } braces",
		"trailing brace {",
		"}}{",
	} {
		assert.Equal(t, template, tplsub.Substitute(template, ctx), "template=%q", template)
	}
}

func TestSubstitute_BoundaryExactness(t *testing.T) {
	// 回归测试：光标前进差一会重复或吞掉占位符两侧的字面字符
	ctx := map[string]any{"Key": "V"}

	got := tplsub.Substitute("prefix{{Key}}suffix", ctx)
	require.Equal(t, "prefixVsuffix", got)

	// 占位符紧跟闭合括号字符时不得丢失
	assert.Equal(t, "aV}b", tplsub.Substitute("a{{Key}}}b", ctx))
	assert.Equal(t, "V.V.V", tplsub.Substitute("{{Key}}.{{Key}}.{{Key}}", ctx))
	assert.Equal(t, "((V))", tplsub.Substitute("(({{Key}}))", ctx))
}

func TestSubstitute_WhitespaceAndMissing(t *testing.T) {
	ctx := map[string]any{"Key": "V"}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{name: "tag with padding", template: "a{{ Key }}b", want: "aVb"},
		{name: "tag with tabs", template: "a{{\tKey\t}}b", want: "aVb"},
		{name: "missing key renders empty", template: "a{{Missing}}b", want: "ab"},
		{name: "missing nested path renders empty", template: "a{{Key.Deep}}b", want: "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tplsub.Substitute(tt.template, ctx))
		})
	}

	// 上下文本身缺失时同样输出空字符串
	assert.Equal(t, "ab", tplsub.Substitute("a{{Key}}b", nil))
}

func TestSubstitute_UnterminatedTag(t *testing.T) {
	ctx := map[string]any{"def": "X"}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{name: "open at end", template: "abc{{def", want: "abc{{def"},
		{name: "bare open marker", template: "{{", want: "{{"},
		{name: "nested never closes", template: "a{{b{{c}}d", want: "a{{b{{c}}d"},
		{name: "run of open markers", template: strings.Repeat("{{", 64), want: strings.Repeat("{{", 64)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tplsub.Substitute(tt.template, ctx))
		})
	}
}

func TestSubstitute_EmptyTag(t *testing.T) {
	// 空标签只输出 {{ 并紧接着从开标记之后继续扫描，
	// 剩下的 }} 作为普通文本保留
	ctx := map[string]any{"Key": "V"}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{name: "empty tag round trips", template: "a{{}}b", want: "a{{}}b"},
		{name: "whitespace only tag round trips", template: "a{{ }}b", want: "a{{ }}b"},
		{name: "adjacent empty tags", template: "{{}}{{}}", want: "{{}}{{}}"},
		{name: "empty tag before real tag", template: "{{}}{{Key}}", want: "{{}}V"},
		{name: "empty tag after real tag", template: "{{Key}}{{}}", want: "V{{}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tplsub.Substitute(tt.template, ctx))
		})
	}
}

func TestSubstitute_NestedBraces(t *testing.T) {
	// 标签体内的 {{ }} 按深度配对，整个嵌套区间是一个标签
	got := tplsub.Substitute("{{a{{b}}c}}", map[string]any{"a{{b}}c": "Z"})
	require.Equal(t, "Z", got)

	// 同样的模板在键缺失时整体消失，外层文本不受影响
	assert.Equal(t, "x-y", tplsub.Substitute("x{{a{{b}}c}}-y", map[string]any{}))

	// 纯嵌套空标签：外层标签名为 {{}}
	assert.Equal(t, "", tplsub.Substitute("{{{{}}}}", map[string]any{}))
	assert.Equal(t, "Z", tplsub.Substitute("{{{{}}}}", map[string]any{"{{}}": "Z"}))
}

func TestSubstitute_ValueKinds(t *testing.T) {
	ctx := map[string]any{
		"str":   "text",
		"int":   2048,
		"i64":   int64(-7),
		"f":     2048.0,
		"frac":  0.5,
		"yes":   true,
		"no":    false,
		"inner": map[string]any{"k": "v"},
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{name: "string", template: "{{str}}", want: "text"},
		{name: "int", template: "{{int}}", want: "2048"},
		{name: "int64", template: "{{i64}}", want: "-7"},
		{name: "whole float stays integral", template: "{{f}}", want: "2048"},
		{name: "fractional float", template: "{{frac}}", want: "0.5"},
		{name: "bool true", template: "{{yes}}", want: "true"},
		{name: "bool false", template: "{{no}}", want: "false"},
		{name: "mapping degrades to fmt form", template: "{{inner}}", want: "map[k:v]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tplsub.Substitute(tt.template, ctx))
		})
	}
}

func TestSubstitute_DottedPaths(t *testing.T) {
	ctx := map[string]any{
		"entity": map[string]any{
			"name":   "Ticket",
			"plural": "Tickets",
		},
	}

	assert.Equal(t, "class Ticket:", tplsub.Substitute("class {{entity.name}}:", ctx))
	assert.Equal(t, "list[Tickets]", tplsub.Substitute("list[{{entity.plural}}]", ctx))
}

func TestResolve(t *testing.T) {
	ctx := map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": "x"},
		},
		"n": 3,
	}

	tests := []struct {
		name      string
		key       string
		want      any
		wantFound bool
	}{
		{name: "deep path", key: "a.b.c", want: "x", wantFound: true},
		{name: "intermediate mapping", key: "a.b", want: map[string]any{"c": "x"}, wantFound: true},
		{name: "missing leaf", key: "a.b.z", wantFound: false},
		{name: "missing root", key: "q", wantFound: false},
		{name: "descend into scalar", key: "n.x", wantFound: false},
		{name: "empty key", key: "", wantFound: false},
		{name: "whitespace key", key: "   ", wantFound: false},
		{name: "empty segment", key: "a..c", wantFound: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := tplsub.Resolve(ctx, tt.key)
			require.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolve_Identity(t *testing.T) {
	ctx := map[string]any{"k": "v"}

	got, found := tplsub.Resolve(ctx, ".")
	require.True(t, found)
	assert.Equal(t, ctx, got)

	got, found = tplsub.Resolve(ctx, "this")
	require.True(t, found)
	assert.Equal(t, ctx, got)

	// 标量上下文也支持整体插值
	got, found = tplsub.Resolve("scalar", ".")
	require.True(t, found)
	assert.Equal(t, "scalar", got)
}

func TestResolve_MapKinds(t *testing.T) {
	// YAML 反序列化可能产出 map[any]any，命令行 -d 产出 map[string]string
	anyKeyed := map[any]any{"a": map[any]any{"b": "x"}}
	got, found := tplsub.Resolve(anyKeyed, "a.b")
	require.True(t, found)
	assert.Equal(t, "x", got)

	flat := map[string]string{"k": "v"}
	got, found = tplsub.Resolve(flat, "k")
	require.True(t, found)
	assert.Equal(t, "v", got)
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "", tplsub.Stringify(nil))
	assert.Equal(t, "s", tplsub.Stringify("s"))
	assert.Equal(t, "42", tplsub.Stringify(42))
	assert.Equal(t, "true", tplsub.Stringify(true))
	assert.Equal(t, "1.25", tplsub.Stringify(1.25))
	assert.Equal(t, "100", tplsub.Stringify(100.0))
	assert.Equal(t, "9", tplsub.Stringify(uint64(9)))
}
