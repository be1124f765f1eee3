package tplsub

import (
	"fmt"
	"strconv"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// 上下文查找
// ═══════════════════════════════════════════════════════════════════════════

// Resolve 按点号路径在上下文中查找值。
//
// key 为 "a.b.c" 形式的路径，每一段作为映射键逐层下钻。
// key 为 "." 或 "this" 时返回上下文本身（整体插值）。
// 第二个返回值表示是否命中；查找永不报错，中途遇到非映射值
// 或缺失的键时返回未命中。
func Resolve(ctx any, key string) (any, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false
	}
	if key == "." || key == "this" {
		return ctx, true
	}

	current := ctx
	for _, segment := range strings.Split(key, ".") {
		value, ok := fieldOf(current, segment)
		if !ok {
			return nil, false
		}
		current = value
	}

	return current, true
}

func fieldOf(value any, key string) (any, bool) {
	switch m := value.(type) {
	case map[string]any:
		v, ok := m[key]
		return v, ok
	case map[string]string:
		v, ok := m[key]
		return v, ok
	case map[any]any:
		v, ok := m[key]
		return v, ok
	default:
		return nil, false
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// 占位符扫描与替换
// ═══════════════════════════════════════════════════════════════════════════

// Substitute 将模板中的 {{...}} 占位符替换为上下文中的值。
//
// 单次从左到右扫描，复杂度与模板长度线性相关：
//   - 占位符外的文本原样输出
//   - 标签文本去除首尾空白后经 [Resolve] 查找，未命中输出空字符串
//   - 标签内部允许出现嵌套的 {{ }}，按括号深度配对
//   - 无匹配闭合标记时，自 {{ 起原样输出到模板末尾
//   - 空标签仅输出 {{ 并从其后继续扫描，不吞掉后续字符
//
// 纯函数，不修改输入，任意输入都不会失败，可并发调用。
func Substitute(template string, ctx any) string {
	var buf strings.Builder
	buf.Grow(len(template))

	pos := 0
	for pos < len(template) {
		open := strings.Index(template[pos:], "{{")
		if open < 0 {
			buf.WriteString(template[pos:])
			break
		}
		open += pos
		buf.WriteString(template[pos:open])

		end := findTagEnd(template, open+2)
		if end < 0 {
			// 未闭合：余下内容原样输出
			buf.WriteString(template[open:])
			break
		}

		tag := strings.TrimSpace(template[open+2 : end-2])
		if tag == "" {
			// 空标签：只消费开标记本身，闭合部分留给后续扫描
			buf.WriteString("{{")
			pos = open + 2
			continue
		}

		if value, ok := Resolve(ctx, tag); ok {
			buf.WriteString(Stringify(value))
		}

		// 光标必须精确落在匹配区域之后
		pos = end
	}

	return buf.String()
}

// findTagEnd 从 start 起按深度配对 {{ 与 }}。
//
// 返回匹配的 }} 之后的下标，未闭合时返回 -1。
func findTagEnd(template string, start int) int {
	depth := 1
	for i := start; i+1 < len(template); i++ {
		switch {
		case template[i] == '{' && template[i+1] == '{':
			depth++
			i++
		case template[i] == '}' && template[i+1] == '}':
			depth--
			if depth == 0 {
				return i + 2
			}
			i++
		}
	}

	return -1
}

// ═══════════════════════════════════════════════════════════════════════════
// 值的文本化
// ═══════════════════════════════════════════════════════════════════════════

// Stringify 返回值的输出形式。
//
// 字符串原样返回；整数与布尔使用标准转换；浮点数使用最短
// 精确表示（2048 输出为 "2048" 而非 "2048.000000"）；nil 输出
// 空字符串；其余类型退化为 fmt 的默认格式。
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
