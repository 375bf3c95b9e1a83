// Package verify checks rendered markup against the exact set of tags and
// attributes the renderer emits.
//
// It tokenizes with golang.org/x/net/html, so the check sees the markup the
// way a browser's tokenizer would rather than by substring search.
package verify

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/riverfjs/safemd-go/internal/highlight"
	"github.com/riverfjs/safemd-go/internal/types"
	"github.com/riverfjs/safemd-go/internal/util"
)

// Options selects the optional markup the check accepts.
type Options struct {
	// LangAttribute is the attribute allowed on <pre>; data-lang when empty.
	LangAttribute string
	// Highlight allows <span class="..."> inside code blocks.
	Highlight bool
}

// OptionsFor derives check options from a render config.
func OptionsFor(config *types.RenderConfig) Options {
	if config == nil {
		return Options{}
	}
	return Options{
		LangAttribute: config.LangAttribute,
		Highlight:     config.Highlight,
	}
}

// Violation 描述输出中不符合白名单的标记
type Violation struct {
	Offset int    // byte offset of the offending token
	Tag    string // tag name, empty for non-tag tokens
	Attr   string // attribute name, if an attribute was rejected
	Reason string
}

func (v *Violation) Error() string {
	switch {
	case v.Attr != "":
		return fmt.Sprintf("verify: <%s %s> at %d: %s", v.Tag, v.Attr, v.Offset, v.Reason)
	case v.Tag != "":
		return fmt.Sprintf("verify: <%s> at %d: %s", v.Tag, v.Offset, v.Reason)
	default:
		return fmt.Sprintf("verify: at %d: %s", v.Offset, v.Reason)
	}
}

// elements with no attributes at all
var bareElements = map[string]bool{
	"br":     true,
	"code":   true,
	"em":     true,
	"li":     true,
	"ol":     true,
	"strong": true,
	"ul":     true,
}

var voidElements = map[string]bool{
	"br": true,
}

// Check 校验 markup 只包含渲染器自己输出的标签和属性，且标签成对闭合
func Check(markup string, opts Options) error {
	if opts.LangAttribute == "" || !util.IsDataAttribute(opts.LangAttribute) {
		opts.LangAttribute = types.DefaultLangAttribute
	}

	z := html.NewTokenizer(strings.NewReader(markup))
	var stack []string
	offset := 0

	for {
		tt := z.Next()
		raw := len(z.Raw())
		switch tt {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				if len(stack) > 0 {
					return &Violation{Offset: offset, Tag: stack[len(stack)-1], Reason: "element not closed"}
				}
				return nil
			}
			return &Violation{Offset: offset, Reason: z.Err().Error()}

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if err := checkElement(tok, opts); err != nil {
				err.Offset = offset
				return err
			}
			if tt == html.StartTagToken && !voidElements[tok.Data] {
				stack = append(stack, tok.Data)
			}

		case html.EndTagToken:
			tok := z.Token()
			if len(stack) == 0 || stack[len(stack)-1] != tok.Data {
				return &Violation{Offset: offset, Tag: tok.Data, Reason: "unbalanced end tag"}
			}
			stack = stack[:len(stack)-1]

		case html.CommentToken:
			return &Violation{Offset: offset, Reason: "comment"}

		case html.DoctypeToken:
			return &Violation{Offset: offset, Reason: "doctype"}
		}
		offset += raw
	}
}

func checkElement(tok html.Token, opts Options) *Violation {
	name := tok.Data
	switch {
	case bareElements[name]:
		if len(tok.Attr) > 0 {
			return &Violation{Tag: name, Attr: tok.Attr[0].Key, Reason: "attribute not allowed"}
		}
		return nil
	case name == "a":
		return checkAnchor(tok)
	case name == "pre":
		for _, attr := range tok.Attr {
			if attr.Key != opts.LangAttribute {
				return &Violation{Tag: name, Attr: attr.Key, Reason: "attribute not allowed"}
			}
		}
		return nil
	case name == "span" && opts.Highlight:
		if len(tok.Attr) != 1 || tok.Attr[0].Key != "class" {
			return &Violation{Tag: name, Reason: "span must carry exactly one class attribute"}
		}
		if !highlight.IsClass(tok.Attr[0].Val) {
			return &Violation{Tag: name, Attr: "class", Reason: "unexpected class value"}
		}
		return nil
	default:
		return &Violation{Tag: name, Reason: "element not allowed"}
	}
}

func checkAnchor(tok html.Token) *Violation {
	seen := map[string]bool{}
	for _, attr := range tok.Attr {
		if seen[attr.Key] {
			return &Violation{Tag: "a", Attr: attr.Key, Reason: "duplicate attribute"}
		}
		seen[attr.Key] = true

		switch attr.Key {
		case "href":
			if !util.IsAllowedURL(attr.Val) {
				return &Violation{Tag: "a", Attr: "href", Reason: "scheme not allowed"}
			}
		case "target":
			if attr.Val != "_blank" {
				return &Violation{Tag: "a", Attr: "target", Reason: "must be _blank"}
			}
		case "rel":
			if attr.Val != "noopener noreferrer" {
				return &Violation{Tag: "a", Attr: "rel", Reason: "must be noopener noreferrer"}
			}
		default:
			return &Violation{Tag: "a", Attr: attr.Key, Reason: "attribute not allowed"}
		}
	}
	for _, required := range []string{"href", "target", "rel"} {
		if !seen[required] {
			return &Violation{Tag: "a", Attr: required, Reason: "missing attribute"}
		}
	}
	return nil
}
