package converter

import (
	"fmt"
	"log"
	"strings"

	"github.com/riverfjs/safemd-go/internal/buffer"
	"github.com/riverfjs/safemd-go/internal/highlight"
	"github.com/riverfjs/safemd-go/internal/types"
	"github.com/riverfjs/safemd-go/internal/util"
)

const lineBreak = "<br>"

// listState 当前所处的列表
type listState int

const (
	listNone listState = iota
	listUnordered
	listOrdered
)

func (s listState) openTag() string {
	switch s {
	case listUnordered:
		return "<ul>"
	case listOrdered:
		return "<ol>"
	default:
		return ""
	}
}

func (s listState) closeTag() string {
	switch s {
	case listUnordered:
		return "</ul>"
	case listOrdered:
		return "</ol>"
	default:
		return ""
	}
}

func stateFor(kind LineKind) listState {
	switch kind {
	case LineUnordered:
		return listUnordered
	case LineOrdered:
		return listOrdered
	default:
		return listNone
	}
}

// DefectError describes an internal bookkeeping inconsistency: a reference
// without a span, or a node the writer does not know. It can only come from
// a bug in the pipeline, never from input.
type DefectError struct {
	Kind  types.Kind
	Index int
	What  string
}

func (e *DefectError) Error() string {
	return fmt.Sprintf("safemd: %s (kind=%s index=%d)", e.What, e.Kind, e.Index)
}

// Writer 将格式化后的行序列输出为 HTML，并在叶子处转义
type Writer struct {
	buf    *buffer.MarkupBuffer
	spans  *types.Spans
	config *types.RenderConfig
	list   listState

	// Logger receives defects in non-strict mode. May be nil.
	Logger *log.Logger
}

// NewWriter creates a Writer that resolves references against spans.
func NewWriter(spans *types.Spans, config *types.RenderConfig) *Writer {
	if spans == nil {
		spans = &types.Spans{}
	}
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	return &Writer{
		buf:    buffer.New(),
		spans:  spans,
		config: config,
	}
}

// Write renders lines and returns the markup. Trailing line breaks are
// trimmed.
func (w *Writer) Write(lines []Line) string {
	w.buf.Reset()
	w.list = listNone

	for _, line := range lines {
		w.transition(stateFor(line.Kind))
		if line.Kind == LinePlain {
			w.writeInlines(line.Inlines)
			w.buf.Write(lineBreak)
			continue
		}
		w.buf.Write("<li>")
		w.writeInlines(line.Inlines)
		w.buf.Write("</li>")
	}
	w.transition(listNone)
	w.buf.TrimTrailing(lineBreak)

	return w.buf.String()
}

// transition closes the open list (if any) and opens the requested one.
func (w *Writer) transition(to listState) {
	if w.list == to {
		return
	}
	w.buf.Write(w.list.closeTag())
	w.buf.Write(to.openTag())
	w.list = to
}

func (w *Writer) writeInlines(inlines []Inline) {
	for _, in := range inlines {
		w.writeInline(in)
	}
}

func (w *Writer) writeInline(in Inline) {
	switch in.Tag {
	case TagNone:
		w.writeNode(in.Node)
	case TagCode:
		w.buf.Write("<code>")
		w.writeInlines(in.Children)
		w.buf.Write("</code>")
	case TagStrong:
		w.buf.Write("<strong>")
		w.writeInlines(in.Children)
		w.buf.Write("</strong>")
	case TagEm:
		w.buf.Write("<em>")
		w.writeInlines(in.Children)
		w.buf.Write("</em>")
	default:
		w.defect(&DefectError{Kind: in.Node.Kind, Index: in.Node.Index, What: fmt.Sprintf("unknown inline tag %d", in.Tag)})
	}
}

func (w *Writer) writeNode(n types.Node) {
	if n.Kind == types.KindText {
		w.buf.Write(util.EscapeHTML(n.Value))
		return
	}
	span, ok := w.spans.Lookup(n.Kind, n.Index)
	if !ok {
		w.defect(&DefectError{Kind: n.Kind, Index: n.Index, What: "reference without span"})
		return
	}
	switch span.Kind {
	case types.KindLink:
		w.writeLink(span)
	case types.KindCodeBlock:
		w.writeCodeBlock(span)
	}
}

// writeLink emits an anchor. Only spans that passed the scheme check exist
// in the table; the check is repeated so a bad span can never become an href.
func (w *Writer) writeLink(span types.Span) {
	if !util.IsAllowedURL(span.URL) {
		w.defect(&DefectError{Kind: span.Kind, Index: span.Index, What: "link span with disallowed scheme"})
		return
	}
	var sb strings.Builder
	sb.WriteString(`<a href="`)
	util.WriteEscaped(&sb, span.URL)
	sb.WriteString(`" target="_blank" rel="noopener noreferrer">`)
	util.WriteEscaped(&sb, span.Text)
	sb.WriteString("</a>")
	w.buf.Write(sb.String())
}

func (w *Writer) writeCodeBlock(span types.Span) {
	body := strings.TrimSuffix(span.Body, "\n")

	var sb strings.Builder
	sb.WriteString("<pre")
	if span.Language != "" {
		sb.WriteByte(' ')
		sb.WriteString(w.langAttribute())
		sb.WriteString(`="`)
		util.WriteEscaped(&sb, span.Language)
		sb.WriteByte('"')
	}
	sb.WriteString("><code>")
	w.writeCode(&sb, span.Language, body)
	sb.WriteString("</code></pre>")
	w.buf.Write(sb.String())
}

func (w *Writer) writeCode(sb *strings.Builder, language, body string) {
	if w.config.Highlight {
		if tokens, ok := highlight.Tokens(language, body); ok {
			for _, tok := range tokens {
				if !highlight.IsClass(tok.Class) {
					util.WriteEscaped(sb, tok.Value)
					continue
				}
				sb.WriteString(`<span class="`)
				sb.WriteString(tok.Class)
				sb.WriteString(`">`)
				util.WriteEscaped(sb, tok.Value)
				sb.WriteString("</span>")
			}
			return
		}
	}
	util.WriteEscaped(sb, body)
}

// langAttribute falls back to data-lang unless the configured name is a
// plain data-* attribute.
func (w *Writer) langAttribute() string {
	if util.IsDataAttribute(w.config.LangAttribute) {
		return w.config.LangAttribute
	}
	return types.DefaultLangAttribute
}

// defect panics in strict mode; otherwise it is logged and nothing is emitted.
func (w *Writer) defect(err *DefectError) {
	if w.config.Strict {
		panic(err)
	}
	if w.Logger != nil {
		w.Logger.Printf("%v", err)
	}
}
