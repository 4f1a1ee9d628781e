package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soroscope/grammar"
)

func TestParseSimpleParams(t *testing.T) {
	list, err := grammar.ParseParams(`env: Env, to: Address, amount: i128`)
	require.NoError(t, err)
	require.Len(t, list.Params, 3)

	assert.Equal(t, "env", list.Params[0].Name)
	assert.Equal(t, "Env", list.Params[0].Type.Render())
	assert.Equal(t, "to", list.Params[1].Name)
	assert.Equal(t, "Address", list.Params[1].Type.Render())
	assert.Equal(t, "amount", list.Params[2].Name)
	assert.Equal(t, "i128", list.Params[2].Type.Render())
}

func TestParseEmptyParams(t *testing.T) {
	list, err := grammar.ParseParams(``)
	require.NoError(t, err)
	assert.Empty(t, list.Params)
}

func TestParseTrailingComma(t *testing.T) {
	list, err := grammar.ParseParams("env: Env,\n    key: Symbol,\n")
	require.NoError(t, err)
	require.Len(t, list.Params, 2)
	assert.Equal(t, "key", list.Params[1].Name)
}

func TestParseReferenceParams(t *testing.T) {
	list, err := grammar.ParseParams(`env: &Env, admin: &mut Address`)
	require.NoError(t, err)
	require.Len(t, list.Params, 2)

	assert.Equal(t, "Env", list.Params[0].Type.Render(), "references render as their target")
	assert.Equal(t, "Address", list.Params[1].Type.Render())
}

func TestParseGenericTypes(t *testing.T) {
	list, err := grammar.ParseParams(`names: Vec<Address>, stash: Map<Symbol, Vec<i128>>`)
	require.NoError(t, err)
	require.Len(t, list.Params, 2)

	assert.Equal(t, "Vec<Address>", list.Params[0].Type.Render())
	assert.Equal(t, "Map<Symbol, Vec<i128>>", list.Params[1].Type.Render())
}

func TestParseQualifiedPath(t *testing.T) {
	typ, err := grammar.ParseType(`soroban_sdk::Symbol`)
	require.NoError(t, err)
	assert.Equal(t, "Symbol", typ.Render(), "qualified paths keep the final segment")
}

func TestParseTupleAndArrayTypes(t *testing.T) {
	typ, err := grammar.ParseType(`(u32, Address)`)
	require.NoError(t, err)
	assert.Equal(t, "(u32, Address)", typ.Render())

	typ, err = grammar.ParseType(`()`)
	require.NoError(t, err)
	assert.Equal(t, "()", typ.Render())

	typ, err = grammar.ParseType(`[u8; 32]`)
	require.NoError(t, err)
	assert.Equal(t, "[u8; 32]", typ.Render())
}

func TestParseLifetimeReference(t *testing.T) {
	typ, err := grammar.ParseType(`&'a str`)
	require.NoError(t, err)
	assert.Equal(t, "str", typ.Render())
}

func TestParseRejectsUnsupportedSpellings(t *testing.T) {
	_, err := grammar.ParseParams(`f: impl Fn(u32) -> u32`)
	assert.Error(t, err, "unsupported spellings surface as errors for the raw-text fallback")
}
