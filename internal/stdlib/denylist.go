package stdlib

// rustKeywords contains the Rust keywords that can appear directly before a
// parenthesis in contract bodies and therefore parse like call sites.
var rustKeywords = map[string]bool{
	"fn":       true,
	"let":      true,
	"if":       true,
	"else":     true,
	"match":    true,
	"while":    true,
	"for":      true,
	"loop":     true,
	"return":   true,
	"break":    true,
	"continue": true,
	"move":     true,
	"mut":      true,
	"ref":      true,
	"in":       true,
	"as":       true,
	"impl":     true,
	"struct":   true,
	"enum":     true,
	"trait":    true,
	"use":      true,
	"mod":      true,
	"pub":      true,
	"where":    true,
	"unsafe":   true,
	"async":    true,
	"await":    true,
	"dyn":      true,
	"const":    true,
	"static":   true,
	"crate":    true,
	"super":    true,
	"self":     true,
	"Self":     true,
	"type":     true,
	"extern":   true,
	"true":     true,
	"false":    true,
}

// knownMacros contains macro names whose invocations never dispatch to a
// contract function, including the soroban-sdk constructor macros.
var knownMacros = map[string]bool{
	"panic":         true,
	"assert":        true,
	"assert_eq":     true,
	"assert_ne":     true,
	"debug_assert":  true,
	"vec":           true,
	"map":           true,
	"format":        true,
	"print":         true,
	"println":       true,
	"write":         true,
	"writeln":       true,
	"log":           true,
	"symbol_short":  true,
	"matches":       true,
	"unreachable":   true,
	"todo":          true,
	"unimplemented": true,
	"contracttype":  true,
	"contractimpl":  true,
	"contract":      true,
	"contracterror": true,
	"contractmeta":  true,
}

// preludeConstructors contains the value constructors of the Rust prelude
// that take parenthesized payloads.
var preludeConstructors = map[string]bool{
	"Ok":   true,
	"Err":  true,
	"Some": true,
	"None": true,
}

// IsCallCandidate checks if an identifier followed by a parenthesis may
// denote a contract function invocation. Keywords, known macros, and prelude
// constructors are never call candidates.
func IsCallCandidate(name string) bool {
	if rustKeywords[name] || knownMacros[name] || preludeConstructors[name] {
		return false
	}
	return name != ""
}

// IsKnownMacro checks if a name is a recognized macro invocation
func IsKnownMacro(name string) bool {
	return knownMacros[name]
}
