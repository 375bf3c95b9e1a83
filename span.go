package safemd

import (
	"github.com/riverfjs/safemd-go/internal/types"
)

// 导出类型别名
type (
	Kind = types.Kind
	Span = types.Span
)

const (
	// KindCodeBlock marks a fenced code block span.
	KindCodeBlock = types.KindCodeBlock
	// KindLink marks an http/https link span.
	KindLink = types.KindLink
)
