package parser

import (
	"strings"

	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/safemd-go/internal/types"
)

const fence = "```"

// ExtractCodeBlocks 提取 ```lang\n...``` 代码块，替换为引用节点
//
// A block is three backticks, an optional language of [A-Za-z0-9_-], a
// newline, a body and the next three backticks. An opener without the
// newline is skipped one byte at a time; an opener with no closing fence
// leaves the rest of the input as text.
func ExtractCodeBlocks(source string, spans *types.Spans) []types.Node {
	var nodes []types.Node
	cursor := 0 // start of pending text
	pos := 0    // search position

	for pos < len(source) {
		rel := strings.Index(source[pos:], fence)
		if rel < 0 {
			break
		}
		start := pos + rel

		i := start + len(fence)
		for i < len(source) && isLangByte(source[i]) {
			i++
		}
		if i >= len(source) || source[i] != '\n' {
			pos = start + 1
			continue
		}
		lang := source[start+len(fence) : i]
		bodyStart := i + 1

		closeRel := strings.Index(source[bodyStart:], fence)
		if closeRel < 0 {
			// any later opener has a later body start, so nothing can close
			break
		}
		bodyEnd := bodyStart + closeRel
		end := bodyEnd + len(fence)

		nodes = appendText(nodes, source[cursor:start])
		nodes = append(nodes, spans.AddCode(text.NewSegment(start, end), lang, source[bodyStart:bodyEnd]))
		cursor = end
		pos = end
	}

	return appendText(nodes, source[cursor:])
}

func isLangByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '-'
}
