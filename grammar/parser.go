package grammar

import (
	"github.com/alecthomas/participle/v2"
)

var paramParser = participle.MustBuild[ParamList](
	participle.Lexer(SignatureLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(3),
)

var typeParser = participle.MustBuild[Type](
	participle.Lexer(SignatureLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(3),
)

// ParseParams parses a raw Rust parameter declaration list, the text between
// the parentheses of a fn signature.
func ParseParams(raw string) (*ParamList, error) {
	return paramParser.ParseString("", raw)
}

// ParseType parses a single Rust type spelling.
func ParseType(raw string) (*Type, error) {
	return typeParser.ParseString("", raw)
}
