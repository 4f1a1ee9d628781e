package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyVoidReturns(t *testing.T) {
	assert.False(t, Classify("do_something", "void"), "void returns act for effect")
	assert.False(t, Classify("do_something", "null"))
	assert.False(t, Classify("do_something", ""))
	assert.False(t, Classify("get_thing", "void"), "void outranks the read verb")
}

func TestClassifyBooleanReturns(t *testing.T) {
	assert.True(t, Classify("is_paused", "boolean"), "question names with bool returns are queries")
	assert.True(t, Classify("has_role", "bool"))
	assert.True(t, Classify("check_eligibility", "boolean"))

	assert.False(t, Classify("pause", "boolean"), "bool success flags are mutations")
	assert.False(t, Classify("cancel_order", "boolean"), "cancel is not a question despite the can prefix")
}

func TestClassifyVerbTables(t *testing.T) {
	writes := []string{
		"set_admin", "mint", "burn_from", "transfer", "approve",
		"initialize", "increment", "withdraw_fees", "upgrade", "claim_rewards",
	}
	for _, name := range writes {
		assert.False(t, Classify(name, "u32"), "%s should classify as write", name)
	}

	reads := []string{
		"get_count", "balance", "balance_of", "total_supply",
		"allowance", "decimals", "version", "query_state", "hello",
	}
	for _, name := range reads {
		assert.True(t, Classify(name, "u32"), "%s should classify as read", name)
	}
}

func TestClassifyWriteVerbOutranksReadSuffix(t *testing.T) {
	assert.False(t, Classify("set_balance", "i128"), "the leading verb decides")
	assert.False(t, Classify("update_name", "String"))
}

func TestClassifyReturnShapeFallback(t *testing.T) {
	assert.True(t, Classify("config", "ContractConfig"), "structured returns suggest getters")
	assert.True(t, Classify("snapshot", "Vec<Entry>"))
	assert.True(t, Classify("beneficiary", "Address"))

	assert.False(t, Classify("crank", "u32"), "undecided scalar returns default to write")
	assert.False(t, Classify("tick", "i128"))

	assert.False(t, Classify("crank", "unknown"), "an unrecovered return type proves nothing")
}

func TestClassifyNameNormalization(t *testing.T) {
	assert.True(t, Classify("  Get_Count  ", "u32"), "names are trimmed and case-folded")
}
