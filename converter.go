package safemd

// RenderWithSpans 渲染并返回提取出的受保护片段
//
// 参数:
//   - input: 原始文本
//   - config: 渲染配置，如为 nil 则使用默认配置
//
// 返回:
//   - string: HTML
//   - []Span: 代码块（按出现顺序）以及随后的链接（按出现顺序）
func RenderWithSpans(input string, config *RenderConfig) (string, []Span) {
	if config == nil {
		config = DefaultConfig()
	}
	opts := &RenderOptions{Config: config}
	out, spans := render(input, opts)
	return out, spans.All()
}
