package types

import (
	"github.com/yuin/goldmark/text"
)

// Kind 标识节点或受保护片段的类型
type Kind int

const (
	// KindText is untrusted text that is escaped on output.
	KindText Kind = iota
	// KindCodeBlock references a fenced code block in the span table.
	KindCodeBlock
	// KindLink references an allow-listed link in the span table.
	KindLink
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindCodeBlock:
		return "code_block"
	case KindLink:
		return "link"
	default:
		return "unknown"
	}
}

// Node 是工作序列中的一个元素：要么是文本，要么是对 span 表的引用
type Node struct {
	Kind  Kind
	Value string // KindText only
	Index int    // KindCodeBlock / KindLink: index into the span table of that kind
}

// TextNode returns a text node holding s.
func TextNode(s string) Node {
	return Node{Kind: KindText, Value: s}
}

// RefNode returns a reference node for the span (kind, index).
func RefNode(kind Kind, index int) Node {
	return Node{Kind: kind, Index: index}
}

// IsRef reports whether n stands in for a protected span.
func (n Node) IsRef() bool {
	return n.Kind == KindCodeBlock || n.Kind == KindLink
}

// Span 记录从输入中提取出的受保护区域（代码块或链接）
type Span struct {
	Kind    Kind
	Index   int
	Segment text.Segment // byte range in the raw input

	// code block
	Language string
	Body     string

	// link
	Text string
	URL  string
}

// Spans 按类型保存受保护片段，索引即提取顺序
type Spans struct {
	Code  []Span
	Links []Span
}

// AddCode appends a code span and returns its reference node.
func (s *Spans) AddCode(seg text.Segment, language, body string) Node {
	idx := len(s.Code)
	s.Code = append(s.Code, Span{
		Kind:     KindCodeBlock,
		Index:    idx,
		Segment:  seg,
		Language: language,
		Body:     body,
	})
	return RefNode(KindCodeBlock, idx)
}

// AddLink appends a link span and returns its reference node.
func (s *Spans) AddLink(seg text.Segment, linkText, url string) Node {
	idx := len(s.Links)
	s.Links = append(s.Links, Span{
		Kind:    KindLink,
		Index:   idx,
		Segment: seg,
		Text:    linkText,
		URL:     url,
	})
	return RefNode(KindLink, idx)
}

// Lookup 按类型和索引查找 span
func (s *Spans) Lookup(kind Kind, index int) (Span, bool) {
	var table []Span
	switch kind {
	case KindCodeBlock:
		table = s.Code
	case KindLink:
		table = s.Links
	default:
		return Span{}, false
	}
	if index < 0 || index >= len(table) {
		return Span{}, false
	}
	return table[index], true
}

// All returns every span, code blocks first, then links.
func (s *Spans) All() []Span {
	all := make([]Span, 0, len(s.Code)+len(s.Links))
	all = append(all, s.Code...)
	all = append(all, s.Links...)
	return all
}

// DefaultLangAttribute is the attribute carrying a code block's language.
const DefaultLangAttribute = "data-lang"

// RenderConfig 渲染配置
type RenderConfig struct {
	// LangAttribute names the <pre> attribute that carries the fence language.
	LangAttribute string `toml:"lang_attribute"`
	// Highlight wraps code block tokens in <span class="..."> elements.
	Highlight bool `toml:"highlight"`
	// Sanitize runs the rendered markup through an allow-list sanitizer.
	Sanitize bool `toml:"sanitize"`
	// Strict panics on internal bookkeeping defects and verifies every output.
	Strict bool `toml:"strict"`
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		LangAttribute: DefaultLangAttribute,
	}
}
