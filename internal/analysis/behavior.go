package analysis

import (
	"regexp"
	"strings"

	"soroscope/internal/contract"
	"soroscope/internal/stdlib"
)

// The behavior pass is lexical: it decides what a function body does to
// ledger state from recognized soroban-sdk shapes alone, without building a
// syntax tree. The alternations come from the stdlib tables so the
// recognized surface stays defined in one place.
var (
	storageMutationPattern = regexp.MustCompile(
		`\.\s*storage\s*\(\s*\)\s*\.\s*(` + strings.Join(stdlib.TierNames(), "|") +
			`)\s*\(\s*\)\s*\.\s*(` + strings.Join(stdlib.MutationVerbNames(), "|") + `)\s*\(`)

	authCallPattern = regexp.MustCompile(
		`\.\s*(` + strings.Join(stdlib.AuthOperationNames(), "|") + `)\s*\(`)

	qualifiedCallPattern = regexp.MustCompile(
		`((?:[A-Za-z_][A-Za-z0-9_]*\s*::\s*)+)([A-Za-z_][A-Za-z0-9_]*)\s*\(`)

	unqualifiedCallPattern = regexp.MustCompile(
		`([A-Za-z_][A-Za-z0-9_]*)\s*!?\s*\(`)
)

// BodyFacts are the direct behavior facts of one function body.
type BodyFacts struct {
	WritesStorage bool
	RequiresAuth  bool
	Calls         map[string]struct{}
}

// AnalyzeBody inspects a single function body and reports its direct storage
// mutations, authorization requirements, and outgoing call sites. Call-graph
// effects are left to the resolver.
func AnalyzeBody(body string) BodyFacts {
	facts := BodyFacts{
		WritesStorage: storageMutationPattern.MatchString(body),
		RequiresAuth:  authCallPattern.MatchString(body),
		Calls:         make(map[string]struct{}),
	}
	collectQualifiedCalls(body, facts.Calls)
	collectUnqualifiedCalls(body, facts.Calls)
	return facts
}

// Annotate runs the behavior pass on a record and stores the facts on it.
func Annotate(fr *contract.FunctionRecord) {
	facts := AnalyzeBody(fr.Body)
	fr.WritesStorage = facts.WritesStorage
	fr.RequiresAuth = facts.RequiresAuth
	fr.Calls = facts.Calls
}

// collectQualifiedCalls records path::name call sites. Paths are normalized
// to the flat module model: a leading crate:: segment is dropped, Self::
// denotes the enclosing impl and maps to a bare name, and longer paths keep
// only their final module segment. Unresolvable results (sdk types, external
// crates) are harmless; the resolver treats them as non-mutating.
func collectQualifiedCalls(body string, calls map[string]struct{}) {
	for _, m := range qualifiedCallPattern.FindAllStringSubmatch(body, -1) {
		segments := splitPath(m[1])
		name := m[2]
		if len(segments) > 0 && segments[0] == "crate" {
			segments = segments[1:]
		}
		if len(segments) == 0 {
			calls[name] = struct{}{}
			continue
		}
		module := segments[len(segments)-1]
		if module == "Self" || module == "self" {
			calls[name] = struct{}{}
			continue
		}
		calls[module+"::"+name] = struct{}{}
	}
}

func splitPath(path string) []string {
	parts := strings.Split(path, "::")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// collectUnqualifiedCalls records bare name( call sites. Candidates preceded
// by a dot, colon, or identifier character are method calls, path segments,
// or partial words and are dropped, as are keywords, denylisted macros, and
// prelude constructors.
func collectUnqualifiedCalls(body string, calls map[string]struct{}) {
	for _, m := range unqualifiedCallPattern.FindAllStringSubmatchIndex(body, -1) {
		if m[0] > 0 {
			prev := body[m[0]-1]
			if prev == '.' || prev == ':' || isIdentChar(prev) {
				continue
			}
		}
		name := body[m[2]:m[3]]
		if !stdlib.IsCallCandidate(name) {
			continue
		}
		calls[name] = struct{}{}
	}
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
