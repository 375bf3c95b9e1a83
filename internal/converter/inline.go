package converter

import (
	"github.com/riverfjs/safemd-go/internal/types"
)

// Tag 行内元素类型
type Tag int

const (
	// TagNone is a leaf: a text run or a reference node.
	TagNone Tag = iota
	// TagCode is `inline code`.
	TagCode
	// TagStrong is **bold**.
	TagStrong
	// TagEm is *italic*.
	TagEm
)

// Inline is a node of a formatted line. Leaves (TagNone) carry a text run
// or a reference in Node; other tags carry Children.
type Inline struct {
	Tag      Tag
	Node     types.Node
	Children []Inline
}

// item is one input byte, or an already formatted opaque piece.
type item struct {
	b  byte
	in *Inline
}

func (it item) is(c byte) bool {
	return it.in == nil && it.b == c
}

// ParseInline 解析一行中的行内代码、粗体和斜体
//
// Passes run in order: inline code, then bold (with italic applied to the
// bold content), then italic over what is left. Each pass turns a matched
// range into a single opaque item, so later passes never look inside it.
// Reference nodes are opaque from the start.
func ParseInline(line []types.Node) []Inline {
	items := toItems(line)
	items = codeSpans(items)
	items = strongSpans(items)
	items = emphasisSpans(items)
	return toInlines(items)
}

func toItems(line []types.Node) []item {
	size := 0
	for _, n := range line {
		if n.IsRef() {
			size++
		} else {
			size += len(n.Value)
		}
	}
	items := make([]item, 0, size)
	for _, n := range line {
		if n.IsRef() {
			items = append(items, item{in: &Inline{Node: n}})
			continue
		}
		for i := 0; i < len(n.Value); i++ {
			items = append(items, item{b: n.Value[i]})
		}
	}
	return items
}

// toInlines merges consecutive bytes into text leaves.
func toInlines(items []item) []Inline {
	var out []Inline
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		buf := make([]byte, 0, end-start)
		for _, it := range items[start:end] {
			buf = append(buf, it.b)
		}
		out = append(out, Inline{Node: types.TextNode(string(buf))})
		start = -1
	}
	for i, it := range items {
		if it.in == nil {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
		out = append(out, *it.in)
	}
	flush(len(items))
	return out
}

func wrap(tag Tag, children []item) item {
	return item{in: &Inline{Tag: tag, Children: toInlines(children)}}
}

// indexByte returns the first i >= from with items[i] == c, or -1.
func indexByte(items []item, from int, c byte) int {
	for i := from; i < len(items); i++ {
		if items[i].is(c) {
			return i
		}
	}
	return -1
}

// indexPair returns the first i >= from with items[i] and items[i+1] == c, or -1.
func indexPair(items []item, from int, c byte) int {
	for i := from; i+1 < len(items); i++ {
		if items[i].is(c) && items[i+1].is(c) {
			return i
		}
	}
	return -1
}

// codeSpans: ` then one or more non-backtick items then `.
func codeSpans(items []item) []item {
	out := make([]item, 0, len(items))
	i := 0
	for i < len(items) {
		if items[i].is('`') {
			j := indexByte(items, i+1, '`')
			if j < 0 {
				break
			}
			if j > i+1 {
				out = append(out, wrap(TagCode, items[i+1:j]))
				i = j + 1
				continue
			}
		}
		out = append(out, items[i])
		i++
	}
	return append(out, items[i:]...)
}

// strongSpans: ** then non-empty content then the next **. The content may
// hold single * and gets italic applied.
func strongSpans(items []item) []item {
	out := make([]item, 0, len(items))
	i := 0
	for i < len(items) {
		if i+1 < len(items) && items[i].is('*') && items[i+1].is('*') {
			j := indexPair(items, i+2, '*')
			if j < 0 {
				break
			}
			if j > i+2 {
				out = append(out, wrap(TagStrong, emphasisSpans(items[i+2:j])))
				i = j + 2
				continue
			}
		}
		out = append(out, items[i])
		i++
	}
	return append(out, items[i:]...)
}

// emphasisSpans: a * with no * on either side, content without *, and a
// closing * not followed by *.
func emphasisSpans(items []item) []item {
	out := make([]item, 0, len(items))
	i := 0
	for i < len(items) {
		if items[i].is('*') &&
			(i == 0 || !items[i-1].is('*')) &&
			i+1 < len(items) && !items[i+1].is('*') {
			j := indexByte(items, i+1, '*')
			if j < 0 {
				break
			}
			if j+1 >= len(items) || !items[j+1].is('*') {
				out = append(out, wrap(TagEm, items[i+1:j]))
				i = j + 1
				continue
			}
		}
		out = append(out, items[i])
		i++
	}
	return append(out, items[i:]...)
}
