package util

import (
	"strings"

	gutil "github.com/yuin/goldmark/util"
)

var apos = []byte("&#39;")

// escapeByte returns the entity for b, or nil when b is emitted as is.
// goldmark's table covers & < > " ; the apostrophe is added here.
func escapeByte(b byte) []byte {
	if b == '\'' {
		return apos
	}
	return gutil.EscapeHTMLByte(b)
}

// NeedsEscape reports whether s contains any of & < > " '.
func NeedsEscape(s string) bool {
	for i := 0; i < len(s); i++ {
		if escapeByte(s[i]) != nil {
			return true
		}
	}
	return false
}

// EscapeHTML 将 & < > " ' 替换为对应的 HTML 实体
func EscapeHTML(s string) string {
	if !NeedsEscape(s) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/8)
	WriteEscaped(&sb, s)
	return sb.String()
}

// WriteEscaped writes the escaped form of s to sb.
func WriteEscaped(sb *strings.Builder, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		if seq := escapeByte(s[i]); seq != nil {
			sb.WriteString(s[start:i])
			sb.Write(seq)
			start = i + 1
		}
	}
	sb.WriteString(s[start:])
}
