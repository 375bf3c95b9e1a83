package converter

import (
	"strings"

	gutil "github.com/yuin/goldmark/util"

	"github.com/riverfjs/safemd-go/internal/types"
)

// LineKind 行的分类
type LineKind int

const (
	// LinePlain is an ordinary (possibly empty) line.
	LinePlain LineKind = iota
	// LineUnordered is a "- " or "* " list item.
	LineUnordered
	// LineOrdered is an "N. " list item.
	LineOrdered
)

// String returns the string representation of LineKind.
func (k LineKind) String() string {
	switch k {
	case LinePlain:
		return "plain"
	case LineUnordered:
		return "unordered"
	case LineOrdered:
		return "ordered"
	default:
		return "unknown"
	}
}

// Line is one classified input line with its inline content. For list items
// the marker has already been removed.
type Line struct {
	Kind    LineKind
	Inlines []Inline
}

// Format 将节点序列按行切分，先解析行内格式，再按行首文本分类
//
// Inline formatting runs before classification, so a leading "*" that
// opens an italic span is no longer a list marker.
func Format(nodes []types.Node) []Line {
	raw := splitLines(nodes)
	lines := make([]Line, 0, len(raw))
	for _, ln := range raw {
		kind, inlines := classify(ParseInline(ln))
		lines = append(lines, Line{
			Kind:    kind,
			Inlines: inlines,
		})
	}
	return lines
}

// splitLines splits text nodes on '\n'; a '\r' directly before the '\n' is
// dropped. Reference nodes are atomic and stay on the line where they start.
// There is always at least one line.
func splitLines(nodes []types.Node) [][]types.Node {
	lines := [][]types.Node{nil}
	for _, n := range nodes {
		if n.IsRef() {
			last := len(lines) - 1
			lines[last] = append(lines[last], n)
			continue
		}
		parts := strings.Split(n.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if i < len(parts)-1 {
				part = strings.TrimSuffix(part, "\r")
			}
			if part != "" {
				last := len(lines) - 1
				lines[last] = append(lines[last], types.TextNode(part))
			}
		}
	}
	return lines
}

// classify matches the list markers against the formatted line's leading
// text leaf:
//
//	unordered: ^\s*[-*]\s+(.*)$
//	ordered:   ^\s*\d+\.\s+(.*)$
func classify(line []Inline) (LineKind, []Inline) {
	if len(line) == 0 || line[0].Tag != TagNone || line[0].Node.IsRef() {
		return LinePlain, line
	}
	lead := line[0].Node.Value

	if rest, ok := matchUnordered(lead); ok {
		return LineUnordered, withLead(rest, line[1:])
	}
	if rest, ok := matchOrdered(lead); ok {
		return LineOrdered, withLead(rest, line[1:])
	}
	return LinePlain, line
}

func matchUnordered(s string) (string, bool) {
	i := skipSpace(s, 0)
	if i >= len(s) || (s[i] != '-' && s[i] != '*') {
		return "", false
	}
	j := skipSpace(s, i+1)
	if j == i+1 {
		return "", false
	}
	return s[j:], true
}

func matchOrdered(s string) (string, bool) {
	i := skipSpace(s, 0)
	j := i
	for j < len(s) && gutil.IsNumeric(s[j]) {
		j++
	}
	if j == i || j >= len(s) || s[j] != '.' {
		return "", false
	}
	k := skipSpace(s, j+1)
	if k == j+1 {
		return "", false
	}
	return s[k:], true
}

func skipSpace(s string, i int) int {
	for i < len(s) && gutil.IsSpace(s[i]) {
		i++
	}
	return i
}

func withLead(lead string, rest []Inline) []Inline {
	out := make([]Inline, 0, len(rest)+1)
	if lead != "" {
		out = append(out, Inline{Node: types.TextNode(lead)})
	}
	return append(out, rest...)
}
