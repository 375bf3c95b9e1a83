package safemd

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/net/html"
)

// markupLines 在标签边界处断行，便于 diff
func markupLines(s string) []string {
	s = strings.ReplaceAll(s, "><", ">\n<")
	s = strings.ReplaceAll(s, "<br>", "<br>\n")
	return difflib.SplitLines(s)
}

// markupDiff 返回 want 与 got 的 unified diff
func markupDiff(want, got string) string {
	d, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        markupLines(want),
		B:        markupLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return d
}

// assertRender 渲染 input 并与 want 比较
func assertRender(t *testing.T, input, want string, opts ...Option) {
	t.Helper()
	got := Render(input, opts...)
	if got != want {
		t.Errorf("Render(%q)\n got: %q\nwant: %q\n%s", input, got, want, markupDiff(want, got))
	}
}

// selectAll 解析 markup 并返回匹配 CSS 选择器的节点
func selectAll(t *testing.T, markup, selector string) []*html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	return cascadia.MustCompile(selector).MatchAll(doc)
}

// attr 返回节点属性值
func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// textContent 拼接节点下所有文本
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
