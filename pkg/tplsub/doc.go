// Package tplsub 提供脚手架模板的 {{...}} 占位符替换。
//
// 该包只做扁平变量插值（支持点号路径），不是完整的 mustache
// 实现：没有区块、partial、helper 或条件语法。适合代码生成器
// 这种"产物由人复查"的场景。
//
// # 语义说明
//
//  1. 单次线性扫描，占位符外的文本逐字保留
//  2. 标签内允许嵌套 {{ }}，按括号深度配对而非首个 }} 截断
//  3. 任何异常输入都退化为原样输出或空字符串，永不报错
//  4. 上下文只读，函数无副作用，可并发调用
//
// # 快速开始
//
// 使用点号路径从嵌套映射中取值：
//
//	ctx := map[string]any{"entity": map[string]any{"name": "Customer"}}
//	out := tplsub.Substitute("class {{entity.name}}Repository:", ctx)
//	// out == "class CustomerRepository:"
//
// 未定义的变量输出为空字符串：
//
//	out := tplsub.Substitute("x={{missing}}!", map[string]any{})
//	// out == "x=!"
//
// 详见 [Substitute] 与 [Resolve] 文档。
package tplsub
