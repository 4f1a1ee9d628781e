package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var SignatureLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Lifetimes before identifiers so 'a is one token
		{"Lifetime", `'[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// Identifiers
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// Integer literals (array lengths)
		{"Integer", `0x[0-9a-fA-F]+|[0-9]+`, nil},

		// Punctuation; single characters so nested generic closers stay
		// separate tokens
		{"Punctuation", `[:,;<>&()\[\]]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
