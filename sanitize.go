package safemd

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/riverfjs/safemd-go/internal/types"
	"github.com/riverfjs/safemd-go/internal/util"
)

var (
	targetBlankRe = regexp.MustCompile(`^_blank$`)
	relRe         = regexp.MustCompile(`^noopener noreferrer$`)
	langValueRe   = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	classRe       = regexp.MustCompile(`^[a-z0-9-]+$`)

	// policies caches one built policy per lang attribute name. A built
	// bluemonday policy is safe for concurrent use.
	policies sync.Map
)

// newPolicy 构造只允许渲染器自身输出标签的 bluemonday 策略
func newPolicy(langAttribute string) *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("br", "code", "em", "li", "ol", "pre", "strong", "ul")

	p.AllowURLSchemes("http", "https")
	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(false)
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("target").Matching(targetBlankRe).OnElements("a")
	p.AllowAttrs("rel").Matching(relRe).OnElements("a")

	p.AllowAttrs(langAttribute).Matching(langValueRe).OnElements("pre")
	p.AllowAttrs("class").Matching(classRe).OnElements("span")
	return p
}

func policyFor(langAttribute string) *bluemonday.Policy {
	if !util.IsDataAttribute(langAttribute) {
		langAttribute = types.DefaultLangAttribute
	}
	if p, ok := policies.Load(langAttribute); ok {
		return p.(*bluemonday.Policy)
	}
	p, _ := policies.LoadOrStore(langAttribute, newPolicy(langAttribute))
	return p.(*bluemonday.Policy)
}

// Sanitize 使用 bluemonday 对 markup 做二次清洗（纵深防御）
//
// The policy allows exactly the tags Render emits, so sanitizing Render's
// own output keeps its structure. Entity spelling may change (bluemonday
// re-encodes text), which is why the pass is off by default.
func Sanitize(markup string) string {
	return policyFor(types.DefaultLangAttribute).Sanitize(markup)
}

// SanitizeWithConfig is Sanitize using config's lang attribute name.
func SanitizeWithConfig(markup string, config *RenderConfig) string {
	if config == nil {
		return Sanitize(markup)
	}
	return policyFor(config.LangAttribute).Sanitize(markup)
}
