package util

// allowedSchemes are the only prefixes that may become a clickable link.
var allowedSchemes = []string{"http://", "https://"}

// IsAllowedURL 判断 URL 是否以 http:// 或 https://（不区分大小写）开头
//
// The caller is expected to pass an already trimmed URL. Everything else,
// including javascript:, data:, vbscript:, relative and protocol-relative
// URLs, is rejected.
func IsAllowedURL(url string) bool {
	for _, scheme := range allowedSchemes {
		if hasPrefixFoldASCII(url, scheme) {
			return true
		}
	}
	return false
}

// hasPrefixFoldASCII compares ASCII letters case-insensitively and every
// other byte exactly, so Unicode case folding (e.g. U+017F) cannot widen
// the match.
func hasPrefixFoldASCII(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if lowerASCII(s[i]) != prefix[i] {
			return false
		}
	}
	return true
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
