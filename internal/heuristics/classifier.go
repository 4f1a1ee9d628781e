package heuristics

import (
	"strings"

	"soroscope/internal/builtins"
)

// The fallback classifier guesses read-only-ness from a method's name and
// declared return type when no source analysis is available. Guesses err
// toward write: a read misclassified as write costs one unnecessary
// signature prompt, while a write misclassified as read fails at submission.

// writeVerbs are name prefixes that signal state mutation.
var writeVerbs = []string{
	"create", "set", "add", "remove", "delete", "update",
	"mint", "burn", "transfer", "approve", "init", "initialize",
	"pause", "unpause", "grant", "revoke", "deposit", "withdraw",
	"swap", "increment", "decrement", "reset", "bump", "extend",
	"upgrade", "register", "configure", "claim", "stake",
}

// readVerbs are name prefixes and whole names that signal queries.
var readVerbs = []string{
	"get", "fetch", "query", "read", "view", "balance",
	"name", "symbol", "decimals", "total_supply", "allowance",
	"version", "hello", "greet", "owner", "admin",
}

// queryVerbs mark boolean-returning methods that only inspect state.
var queryVerbs = []string{
	"is", "has", "can", "should", "check", "verify", "validate",
}

// Classify guesses whether a method is read-only from its name and return
// type. The steps run in fixed order; the first decisive one wins.
func Classify(name, returnType string) bool {
	name = strings.ToLower(strings.TrimSpace(name))

	// Nothing comes back, so the method must act for its effect.
	if builtins.IsVoidType(returnType) {
		return false
	}

	// Boolean returns are usually success flags on mutations unless the
	// name reads as a question.
	if builtins.IsBoolType(returnType) {
		return hasAnyVerb(name, queryVerbs)
	}

	if hasAnyVerb(name, writeVerbs) {
		return false
	}
	if hasAnyVerb(name, readVerbs) {
		return true
	}

	// Structured data coming back suggests a getter. An unrecovered
	// return type proves nothing and keeps the write default.
	if returnType != builtins.UnknownType && !builtins.IsPrimitiveType(returnType) {
		return true
	}

	return false
}

// hasAnyVerb matches a verb as the whole name or as a leading name segment.
func hasAnyVerb(name string, verbs []string) bool {
	for _, verb := range verbs {
		if name == verb || strings.HasPrefix(name, verb+"_") {
			return true
		}
	}
	return false
}
