package scan

import "testing"

func TestMatchBraceSimple(t *testing.T) {
	text := `fn get() { 1 }`
	open := 9
	if text[open] != '{' {
		t.Fatalf("test setup: expected brace at %d", open)
	}
	if got := MatchBrace(text, open); got != 13 {
		t.Errorf("expected 13, got %d", got)
	}
}

func TestMatchBraceNested(t *testing.T) {
	text := `{ if x { y } else { z } }`
	if got := MatchBrace(text, 0); got != len(text)-1 {
		t.Errorf("expected %d, got %d", len(text)-1, got)
	}
}

func TestMatchBraceIgnoresStringLiterals(t *testing.T) {
	text := `{ let s = "unbalanced } brace"; s }`
	if got := MatchBrace(text, 0); got != len(text)-1 {
		t.Errorf("brace inside string should not close the block: expected %d, got %d", len(text)-1, got)
	}

	text = `{ let s = "open { here"; s }`
	if got := MatchBrace(text, 0); got != len(text)-1 {
		t.Errorf("open brace inside string should not deepen: expected %d, got %d", len(text)-1, got)
	}
}

func TestMatchBraceIgnoresCharLiterals(t *testing.T) {
	text := `{ let c = '}'; c }`
	if got := MatchBrace(text, 0); got != len(text)-1 {
		t.Errorf("brace inside char literal should not close the block: expected %d, got %d", len(text)-1, got)
	}
}

func TestMatchBraceEscapedQuote(t *testing.T) {
	// The escaped quote keeps the string open across the brace.
	text := `{ let s = "a\"} still inside"; s }`
	if got := MatchBrace(text, 0); got != len(text)-1 {
		t.Errorf("expected %d, got %d", len(text)-1, got)
	}
}

func TestMatchBraceUnterminated(t *testing.T) {
	text := `{ fn truncated( `
	if got := MatchBrace(text, 0); got != len(text) {
		t.Errorf("unterminated block should return text length %d, got %d", len(text), got)
	}
}
