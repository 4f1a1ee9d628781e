package scan

import (
	"testing"

	"soroscope/internal/contract"
)

func extract(t *testing.T, name, text string) []*contract.FunctionRecord {
	t.Helper()
	return NewRegexExtractor().Extract(contract.SourceModule{Name: name, Text: text})
}

func TestExtractPublicFunction(t *testing.T) {
	src := `
pub fn get_count(env: Env) -> u32 {
    env.storage().instance().get(&COUNTER).unwrap_or(0)
}
`
	records := extract(t, "lib", src)
	if len(records) != 1 {
		t.Fatalf("expected 1 function, got %d", len(records))
	}

	fr := records[0]
	if fr.Name != "get_count" {
		t.Errorf("expected get_count, got %s", fr.Name)
	}
	if !fr.Public {
		t.Error("expected public")
	}
	if fr.Module != "lib" {
		t.Errorf("expected module lib, got %s", fr.Module)
	}
	if fr.RawParams != "env: Env" {
		t.Errorf("unexpected params %q", fr.RawParams)
	}
	if fr.RawReturn != "u32" {
		t.Errorf("unexpected return %q", fr.RawReturn)
	}
}

func TestExtractPrivateAndRestrictedVisibility(t *testing.T) {
	src := `
fn helper(env: &Env) {
    do_thing();
}

pub(crate) fn crate_visible(env: Env) -> bool {
    true
}
`
	records := extract(t, "lib", src)
	if len(records) != 2 {
		t.Fatalf("expected 2 functions, got %d", len(records))
	}
	if records[0].Public {
		t.Error("bare fn should be private")
	}
	if !records[1].Public {
		t.Error("pub(crate) fn should count as public")
	}
	if records[1].Name != "crate_visible" {
		t.Errorf("expected crate_visible, got %s", records[1].Name)
	}
}

func TestExtractGenericAndMultilineSignature(t *testing.T) {
	src := `
pub fn store<T: IntoVal<Env, Val>>(
    env: Env,
    key: Symbol,
    value: T,
) -> Option<T> {
    env.storage().persistent().set(&key, &value);
    None
}
`
	records := extract(t, "lib", src)
	if len(records) != 1 {
		t.Fatalf("expected 1 function, got %d", len(records))
	}
	fr := records[0]
	if fr.Name != "store" {
		t.Errorf("expected store, got %s", fr.Name)
	}
	if fr.RawReturn != "Option<T>" {
		t.Errorf("unexpected return %q", fr.RawReturn)
	}
}

func TestExtractSkipsFunctionTextInsideBodies(t *testing.T) {
	// The string literal inside the first body looks like a signature and
	// must not produce a record.
	src := `
pub fn docs(env: Env) -> String {
    let example = "pub fn fake(env: Env) { }";
    String::from_str(&env, example)
}

pub fn real(env: Env) -> u32 {
    7
}
`
	records := extract(t, "lib", src)
	if len(records) != 2 {
		t.Fatalf("expected 2 functions, got %d", len(records))
	}
	if records[0].Name != "docs" || records[1].Name != "real" {
		t.Errorf("expected [docs real], got [%s %s]", records[0].Name, records[1].Name)
	}
}

func TestExtractTruncatedBody(t *testing.T) {
	src := `pub fn cut_short(env: Env) {
    env.storage().instance().set(&KEY, &1u32);`
	records := extract(t, "lib", src)
	if len(records) != 1 {
		t.Fatalf("expected 1 function, got %d", len(records))
	}
	if records[0].Body == "" {
		t.Error("truncated body should still carry the remaining text")
	}
}

func TestExtractVoidReturn(t *testing.T) {
	src := `
pub fn reset(env: Env) {
    env.storage().instance().remove(&COUNTER);
}
`
	records := extract(t, "lib", src)
	if len(records) != 1 {
		t.Fatalf("expected 1 function, got %d", len(records))
	}
	if records[0].RawReturn != "" {
		t.Errorf("expected empty return, got %q", records[0].RawReturn)
	}
}
