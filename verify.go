package safemd

import (
	"github.com/riverfjs/safemd-go/internal/verify"
)

// Violation is the error Verify returns; match it with errors.As.
type Violation = verify.Violation

// Verify 校验 markup 只包含渲染器自身会输出的标签和属性
//
// Accepted: a[href http/https, target=_blank, rel="noopener noreferrer"],
// pre[lang attribute], code, strong, em, ul, ol, li, br, and span[class]
// when config enables highlighting. Tags must be balanced. A nil config
// means the defaults.
func Verify(markup string, config *RenderConfig) error {
	if config == nil {
		config = DefaultConfig()
	}
	return verify.Check(markup, verify.OptionsFor(config))
}
