// Package highlight splits code block bodies into classed tokens with chroma.
//
// Only the lexer is used: escaping and markup stay with the caller, so the
// highlighter never decides what reaches the output unescaped.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Token is a run of code with the short chroma class for its type
// ("k", "nx", "s2", ...). Class is empty for plain text.
type Token struct {
	Class string
	Value string
}

// Tokens 用语言对应的 lexer 切分代码
//
// ok is false when the language is unknown or the tokens would not
// reassemble to exactly code; callers then fall back to plain escaping.
func Tokens(language, code string) (tokens []Token, ok bool) {
	if language == "" || code == "" {
		return nil, false
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil, false
	}
	lexer = chroma.Coalesce(lexer)

	// Nested suppresses the lexer's trailing-newline insertion and EnsureLF
	// is left off so the body is tokenised byte for byte.
	it, err := lexer.Tokenise(&chroma.TokeniseOptions{State: "root", Nested: true}, code)
	if err != nil {
		return nil, false
	}

	var sb strings.Builder
	sb.Grow(len(code))
	for _, tok := range it.Tokens() {
		if tok.Value == "" {
			continue
		}
		sb.WriteString(tok.Value)
		class := chroma.StandardTypes[tok.Type]
		if n := len(tokens); n > 0 && tokens[n-1].Class == class {
			tokens[n-1].Value += tok.Value
			continue
		}
		tokens = append(tokens, Token{Class: class, Value: tok.Value})
	}
	if sb.String() != code {
		return nil, false
	}
	return tokens, true
}

// IsClass reports whether class looks like a chroma short class name.
func IsClass(class string) bool {
	if class == "" {
		return false
	}
	for i := 0; i < len(class); i++ {
		c := class[i]
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '-') {
			return false
		}
	}
	return true
}
