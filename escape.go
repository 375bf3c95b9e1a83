package safemd

import (
	"github.com/riverfjs/safemd-go/internal/util"
)

// EscapeHTML replaces & < > " ' with &amp; &lt; &gt; &quot; &#39;.
//
// It is the primitive the renderer applies to every untrusted leaf, exported
// for callers that build their own markup around untrusted strings.
func EscapeHTML(s string) string {
	return util.EscapeHTML(s)
}
