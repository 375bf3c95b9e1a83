package parser

import (
	"github.com/riverfjs/safemd-go/internal/types"
)

// Extract 依次执行代码块提取和链接提取，返回节点序列和 span 表
//
// Code blocks are lifted out first so that a link can never reach into a
// code block's body, and neither kind of payload is seen by the escape and
// format pass.
func Extract(source string) ([]types.Node, *types.Spans) {
	spans := &types.Spans{}
	nodes := ExtractCodeBlocks(source, spans)
	nodes = ExtractLinks(source, nodes, spans)
	return nodes, spans
}

// appendText appends s as a text node, merging with a preceding text node.
func appendText(nodes []types.Node, s string) []types.Node {
	if s == "" {
		return nodes
	}
	if n := len(nodes); n > 0 && !nodes[n-1].IsRef() {
		nodes[n-1].Value += s
		return nodes
	}
	return append(nodes, types.TextNode(s))
}
