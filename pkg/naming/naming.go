package naming

import "strings"

// ═══════════════════════════════════════════════════════════════════════════
// 单词拆分
// ═══════════════════════════════════════════════════════════════════════════

// splitWords 把 Pascal/camel/snake/kebab 形式的标识符拆成小写单词。
func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '_' || ch == '-' || ch == ' ' || ch == '.':
			flush()
		case ch >= 'A' && ch <= 'Z':
			// 大写字母开启新单词；连续大写视为缩写词，
			// 直到出现"大写+小写"的边界（HTTPServer → http, server）
			if i > 0 && !(s[i-1] >= 'A' && s[i-1] <= 'Z') {
				flush()
			} else if i+1 < len(s) && s[i+1] >= 'a' && s[i+1] <= 'z' && current.Len() > 0 {
				flush()
			}
			current.WriteByte(ch)
		default:
			current.WriteByte(ch)
		}
	}
	flush()

	return words
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}

	return strings.ToUpper(word[:1]) + word[1:]
}

// ═══════════════════════════════════════════════════════════════════════════
// 大小写变体
// ═══════════════════════════════════════════════════════════════════════════

// Pascal 返回 PascalCase 形式（Customer、SalesOrder）。
func Pascal(s string) string {
	var buf strings.Builder
	for _, word := range splitWords(s) {
		buf.WriteString(capitalize(word))
	}

	return buf.String()
}

// Camel 返回 camelCase 形式（customer、salesOrder）。
func Camel(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString(words[0])
	for _, word := range words[1:] {
		buf.WriteString(capitalize(word))
	}

	return buf.String()
}

// Snake 返回 snake_case 形式（sales_order）。
func Snake(s string) string {
	return strings.Join(splitWords(s), "_")
}

// Kebab 返回 kebab-case 形式（sales-order）。
func Kebab(s string) string {
	return strings.Join(splitWords(s), "-")
}

// ═══════════════════════════════════════════════════════════════════════════
// 复数化
// ═══════════════════════════════════════════════════════════════════════════

// irregulars 常见不规则复数。
var irregulars = map[string]string{
	"person": "people",
	"child":  "children",
	"man":    "men",
	"woman":  "women",
	"foot":   "feet",
	"tooth":  "teeth",
	"datum":  "data",
}

func isVowel(ch byte) bool {
	switch ch {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}

	return false
}

// pluralWord 对单个小写单词做英语复数化。
func pluralWord(word string) string {
	if word == "" {
		return ""
	}
	if p, ok := irregulars[word]; ok {
		return p
	}

	switch {
	case strings.HasSuffix(word, "s"),
		strings.HasSuffix(word, "x"),
		strings.HasSuffix(word, "z"),
		strings.HasSuffix(word, "ch"),
		strings.HasSuffix(word, "sh"):
		return word + "es"
	case strings.HasSuffix(word, "y") && len(word) > 1 && !isVowel(word[len(word)-2]):
		return word[:len(word)-1] + "ies"
	default:
		return word + "s"
	}
}

// Plural 对标识符的最后一个单词复数化，保留前面的限定词。
//
// SalesOrder → sales order**s**，输出仍为小写单词序列，
// 由调用方再套用大小写变体。
func Plural(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	words[len(words)-1] = pluralWord(words[len(words)-1])

	return strings.Join(words, " ")
}

// ═══════════════════════════════════════════════════════════════════════════
// 模板变量表
// ═══════════════════════════════════════════════════════════════════════════

// Vars 根据模块名与实体名派生模板替换上下文。
//
// 返回的映射包含扁平键（EntityName、EntityNameLower 等，兼容
// 既有模板）以及 Entity / Module 嵌套组（供点号路径使用）。
func Vars(module, entity string) map[string]any {
	plural := Plural(entity)

	entityGroup := map[string]any{
		"Name":        Pascal(entity),
		"Lower":       Camel(entity),
		"Snake":       Snake(entity),
		"Kebab":       Kebab(entity),
		"Plural":      Pascal(plural),
		"PluralLower": Camel(plural),
		"PluralSnake": Snake(plural),
		"PluralKebab": Kebab(plural),
	}

	return map[string]any{
		"ModuleName":            Snake(module),
		"ModuleNameKebab":       Kebab(module),
		"EntityName":            entityGroup["Name"],
		"EntityNameLower":       entityGroup["Lower"],
		"EntityNameSnake":       entityGroup["Snake"],
		"EntityNameKebab":       entityGroup["Kebab"],
		"EntityNamePlural":      entityGroup["Plural"],
		"EntityNamePluralLower": entityGroup["PluralLower"],
		"EntityNamePluralSnake": entityGroup["PluralSnake"],
		"EntityNamePluralKebab": entityGroup["PluralKebab"],
		"Entity":                entityGroup,
		"Module":                map[string]any{"Name": Snake(module), "Kebab": Kebab(module)},
	}
}
