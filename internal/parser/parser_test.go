package parser

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverfjs/safemd-go/internal/types"
)

func TestExtractCodeBlocks(t *testing.T) {
	src := "before\n```go\nx := 1\n```\nafter"
	spans := &types.Spans{}
	nodes := ExtractCodeBlocks(src, spans)

	require.Len(t, nodes, 3)
	assert.Equal(t, types.TextNode("before\n"), nodes[0])
	assert.Equal(t, types.RefNode(types.KindCodeBlock, 0), nodes[1])
	assert.Equal(t, types.TextNode("\nafter"), nodes[2])

	require.Len(t, spans.Code, 1)
	code := spans.Code[0]
	assert.Equal(t, "go", code.Language)
	assert.Equal(t, "x := 1\n", code.Body)
	assert.Equal(t, "```go\nx := 1\n```", src[code.Segment.Start:code.Segment.Stop])
}

func TestExtractCodeBlocks_EmptyBody(t *testing.T) {
	spans := &types.Spans{}
	nodes := ExtractCodeBlocks("```\n```", spans)
	require.Len(t, nodes, 1)
	require.Len(t, spans.Code, 1)
	assert.Equal(t, "", spans.Code[0].Language)
	assert.Equal(t, "", spans.Code[0].Body)
}

func TestExtractCodeBlocks_Unterminated(t *testing.T) {
	spans := &types.Spans{}
	nodes := ExtractCodeBlocks("```js\nconst a=1", spans)
	assert.Equal(t, []types.Node{types.TextNode("```js\nconst a=1")}, nodes)
	assert.Empty(t, spans.Code)
}

func TestExtractCodeBlocks_OpenerWithoutNewline(t *testing.T) {
	// the closing backticks are tried as an opener too and run into the end
	spans := &types.Spans{}
	nodes := ExtractCodeBlocks("```js x```", spans)
	assert.Equal(t, []types.Node{types.TextNode("```js x```")}, nodes)
	assert.Empty(t, spans.Code)
}

func TestExtractCodeBlocks_LazyBody(t *testing.T) {
	src := "```\na\n```\nmid\n```py\nb\n```"
	spans := &types.Spans{}
	nodes := ExtractCodeBlocks(src, spans)

	require.Len(t, spans.Code, 2)
	assert.Equal(t, "a\n", spans.Code[0].Body)
	assert.Equal(t, "py", spans.Code[1].Language)
	assert.Equal(t, 1, spans.Code[1].Index)
	assert.Equal(t, []types.Node{
		types.RefNode(types.KindCodeBlock, 0),
		types.TextNode("\nmid\n"),
		types.RefNode(types.KindCodeBlock, 1),
	}, nodes)
}

func TestExtractCodeBlocks_LanguageCharset(t *testing.T) {
	spans := &types.Spans{}
	ExtractCodeBlocks("```objective-c_2\nx\n```", spans)
	require.Len(t, spans.Code, 1)
	assert.Equal(t, "objective-c_2", spans.Code[0].Language)

	spans = &types.Spans{}
	ExtractCodeBlocks("```c++\nx\n```", spans)
	assert.Empty(t, spans.Code)
}

func TestExtractLinks(t *testing.T) {
	src := "see [docs](https://a.example) now"
	nodes, spans := Extract(src)

	assert.Equal(t, []types.Node{
		types.TextNode("see "),
		types.RefNode(types.KindLink, 0),
		types.TextNode(" now"),
	}, nodes)
	require.Len(t, spans.Links, 1)
	link := spans.Links[0]
	assert.Equal(t, "docs", link.Text)
	assert.Equal(t, "https://a.example", link.URL)
	assert.Equal(t, "[docs](https://a.example)", src[link.Segment.Start:link.Segment.Stop])
}

func TestExtractLinks_TrimsURL(t *testing.T) {
	_, spans := Extract("[a]( https://x \t)")
	require.Len(t, spans.Links, 1)
	assert.Equal(t, "https://x", spans.Links[0].URL)
}

func TestExtractLinks_RejectedStaysText(t *testing.T) {
	src := "[a](javascript:alert(1)) [b](data:x) [c](/rel)"
	nodes, spans := Extract(src)
	assert.Empty(t, spans.Links)
	assert.Equal(t, []types.Node{types.TextNode(src)}, nodes)
}

func TestExtractLinks_EmptyParts(t *testing.T) {
	for _, src := range []string{"[](https://x)", "[a]()", "[a] (https://x)", "[a](https://x"} {
		_, spans := Extract(src)
		assert.Empty(t, spans.Links, src)
	}
}

func TestExtractLinks_NotInsideCodeBlock(t *testing.T) {
	src := "```\n[a](https://x)\n```\n[b](https://y)"
	nodes, spans := Extract(src)

	require.Len(t, spans.Code, 1)
	require.Len(t, spans.Links, 1)
	assert.Equal(t, "b", spans.Links[0].Text)
	assert.Equal(t, "[b](https://y)", src[spans.Links[0].Segment.Start:spans.Links[0].Segment.Stop])
	assert.Equal(t, []types.Node{
		types.RefNode(types.KindCodeBlock, 0),
		types.TextNode("\n"),
		types.RefNode(types.KindLink, 0),
	}, nodes)
}

func TestExtract_SpansAll(t *testing.T) {
	_, spans := Extract("[a](http://a) ```\nx\n``` [b](http://b)")
	all := spans.All()
	require.Len(t, all, 3)
	assert.Equal(t, types.KindCodeBlock, all[0].Kind)
	assert.Equal(t, types.KindLink, all[1].Kind)
	assert.Equal(t, "a", all[1].Text)
	assert.Equal(t, "b", all[2].Text)
}

func TestSpans_Lookup(t *testing.T) {
	_, spans := Extract("[a](http://a)")
	s, ok := spans.Lookup(types.KindLink, 0)
	assert.True(t, ok)
	assert.Equal(t, "http://a", s.URL)

	_, ok = spans.Lookup(types.KindLink, 1)
	assert.False(t, ok)
	_, ok = spans.Lookup(types.KindCodeBlock, 0)
	assert.False(t, ok)
	_, ok = spans.Lookup(types.KindText, 0)
	assert.False(t, ok)
	_, ok = spans.Lookup(types.KindLink, -1)
	assert.False(t, ok)
}

func TestExtractLinks_UnclosedURLSwallowsLaterLink(t *testing.T) {
	src := "[a](x [b](https://y)"
	nodes, spans := Extract(src)
	assert.Empty(t, spans.Links)
	assert.Equal(t, []types.Node{types.TextNode(src)}, nodes)
}

func TestExtractLinks_BracketsBeforeLink(t *testing.T) {
	src := "[[ ]] [a] [](x) [b](https://y) [c](https://z"
	_, spans := Extract(src)
	require.Len(t, spans.Links, 1)
	link := spans.Links[0]
	assert.Equal(t, "b", link.Text)
	assert.Equal(t, "https://y", link.URL)
	assert.Equal(t, "["+link.Text+"](https://y)", src[link.Segment.Start:link.Segment.Stop])
}

func TestExtractLinks_LinearTime(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test skipped in -short mode")
	}
	const n = 1 << 20
	inputs := map[string]string{
		"open brackets":            strings.Repeat("[", n),
		"open brackets, one close": strings.Repeat("[", n) + "]",
		"text then paren":          strings.Repeat("[a](", n/4),
		"closed, no paren":         strings.Repeat("[a]", n/3),
		"rejected links":           strings.Repeat("[a](b)", n/6),
		"one long text":            "[" + strings.Repeat("a", n) + "](",
	}
	for name, src := range inputs {
		start := time.Now()
		Extract(src)
		if d := time.Since(start); d > 2*time.Second {
			t.Errorf("%s: Extract of %d bytes took %v", name, len(src), d)
		}
	}
}
