package parser

import (
	"strings"

	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/safemd-go/internal/types"
	"github.com/riverfjs/safemd-go/internal/util"
)

// ExtractLinks 在文本节点中查找 [text](url)，只提取 http/https 链接
//
// source is the raw input the nodes were cut from; it is only used to record
// each link's segment. A match whose URL fails the scheme check stays in the
// text verbatim and scanning resumes after it.
func ExtractLinks(source string, nodes []types.Node, spans *types.Spans) []types.Node {
	out := make([]types.Node, 0, len(nodes))
	offset := 0
	for _, n := range nodes {
		if n.IsRef() {
			out = append(out, n)
			if s, ok := spans.Lookup(n.Kind, n.Index); ok {
				offset = s.Segment.Stop
			}
			continue
		}
		out = extractLinksFromText(out, n.Value, offset, spans)
		offset += len(n.Value)
	}
	return out
}

// extractLinksFromText scans s once. closeAt and parenAt are the first ']'
// and ')' at or after the current candidate's text and url starts; both
// only move forward, so every byte is looked at a bounded number of times.
func extractLinksFromText(out []types.Node, s string, base int, spans *types.Spans) []types.Node {
	cursor := 0
	pos := 0
	closeAt, parenAt := -1, -1
	for pos < len(s) {
		rel := strings.IndexByte(s[pos:], '[')
		if rel < 0 {
			break
		}
		start := pos + rel
		textStart := start + 1

		if closeAt < textStart {
			closeAt = nextByte(s, textStart, ']')
			if closeAt < 0 {
				// no later '[' has a closing ']' either
				break
			}
		}
		if closeAt == textStart || closeAt+1 >= len(s) || s[closeAt+1] != '(' {
			pos = textStart
			continue
		}

		urlStart := closeAt + 2
		if parenAt < urlStart {
			parenAt = nextByte(s, urlStart, ')')
			if parenAt < 0 {
				// every later candidate's url starts at or after urlStart
				break
			}
		}
		if parenAt == urlStart {
			pos = textStart
			continue
		}

		linkText, url, end := s[textStart:closeAt], s[urlStart:parenAt], parenAt+1
		trimmed := strings.TrimSpace(url)
		if util.IsAllowedURL(trimmed) {
			out = appendText(out, s[cursor:start])
			out = append(out, spans.AddLink(text.NewSegment(base+start, base+end), linkText, trimmed))
			cursor = end
		}
		// rejected links stay as literal text
		pos = end
	}
	return appendText(out, s[cursor:])
}

// nextByte returns the index of the first c at or after from, or -1.
func nextByte(s string, from int, c byte) int {
	if from >= len(s) {
		return -1
	}
	if i := strings.IndexByte(s[from:], c); i >= 0 {
		return from + i
	}
	return -1
}
