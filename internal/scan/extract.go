package scan

import (
	"regexp"
	"strings"

	"soroscope/internal/contract"
)

// Extractor produces function records from a source module. The lexical
// implementation below is the default; the seam exists so a real parser can
// replace it without touching the analysis phases.
type Extractor interface {
	Extract(mod contract.SourceModule) []*contract.FunctionRecord
}

// signaturePattern matches a Rust function signature up to and including the
// opening brace of its body: optional visibility, name, optional generics,
// parameter list, optional return type. Parameter lists containing nested
// parentheses (tuple types) are cut short at the first closing parenthesis;
// such signatures fall back to raw-text handling downstream.
var signaturePattern = regexp.MustCompile(
	`(pub(?:\([^)]*\))?\s+)?\bfn\s+([A-Za-z_][A-Za-z0-9_]*)\s*(?:<(?:[^<>]|<[^<>]*>)*>)?\s*\(([^)]*)\)\s*(?:->\s*([^{]+?))?\s*\{`)

// RegexExtractor extracts functions by signature pattern and brace matching.
type RegexExtractor struct{}

func NewRegexExtractor() *RegexExtractor {
	return &RegexExtractor{}
}

// Extract walks the module text, recording every function signature and its
// brace-matched body. The scan resumes after each body end, so text inside
// recorded bodies (string literals, nested items) is never rescanned as a
// top-level signature.
func (e *RegexExtractor) Extract(mod contract.SourceModule) []*contract.FunctionRecord {
	var records []*contract.FunctionRecord

	pos := 0
	for pos < len(mod.Text) {
		loc := signaturePattern.FindStringSubmatchIndex(mod.Text[pos:])
		if loc == nil {
			break
		}

		// The match ends one past the opening brace.
		open := pos + loc[1] - 1
		end := MatchBrace(mod.Text, open)

		record := &contract.FunctionRecord{
			Module:    mod.Name,
			Name:      submatch(mod.Text[pos:], loc, 2),
			Public:    loc[2] >= 0,
			RawParams: submatch(mod.Text[pos:], loc, 3),
			RawReturn: strings.TrimSpace(submatch(mod.Text[pos:], loc, 4)),
		}
		record.Body = mod.Text[open+1 : end]
		records = append(records, record)

		pos = end + 1
	}

	return records
}

func submatch(text string, loc []int, group int) string {
	start, end := loc[2*group], loc[2*group+1]
	if start < 0 {
		return ""
	}
	return text[start:end]
}
