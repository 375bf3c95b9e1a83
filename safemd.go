// Package safemd 将不可信的聊天文本（用户消息、LLM 回复）渲染为可直接插入 DOM 的 HTML
//
// 支持的 Markdown 子集：
//   - ```lang 围栏代码块
//   - [text](url) 链接，仅允许 http/https
//   - `行内代码`、**粗体**、*斜体*
//   - "- " / "* " 无序列表和 "1. " 有序列表
//   - 换行转为 <br>
//
// 渲染分四个阶段：提取代码块 → 提取链接 → 转义并格式化 → 输出受保护片段。
// 受保护片段在工作序列中以类型化的引用节点存在，而不是占位字符串，
// 因此输入内容不可能伪造或碰撞占位符。所有不可信文本只在输出叶子节点时转义一次。
//
// 主要 API：
//   - Render(): 渲染字符串，返回 HTML
//   - RenderWithSpans(): 同时返回提取出的代码块和链接
//   - Verify(): 校验 HTML 只包含渲染器自身输出的标签
//
// 示例：
//
//	html := safemd.Render(reply)
//
//	// 严格模式：内部不一致时 panic，并校验每次输出
//	html = safemd.Render(reply, safemd.WithStrict(true))
package safemd

// Render 将 Markdown 子集渲染为安全的 HTML
//
// Render never fails: malformed markdown (an unterminated fence, a link with
// a disallowed scheme, stray list markers) is shown as escaped literal text.
// It is safe for concurrent use.
func Render(input string, opts ...Option) string {
	options := applyOptions(opts...)
	out, _ := render(input, options)
	return out
}

// RenderBytes is Render for a byte slice. A nil slice renders as "".
func RenderBytes(input []byte, opts ...Option) string {
	if input == nil {
		return ""
	}
	return Render(string(input), opts...)
}
