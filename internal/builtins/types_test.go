package builtins

import "testing"

func TestScalarTypes(t *testing.T) {
	scalars := []string{"u8", "u16", "u32", "u64", "u128", "u256", "i8", "i16", "i32", "i64", "i128", "i256"}
	for _, name := range scalars {
		if !IsScalarType(name) {
			t.Errorf("expected %q to be scalar", name)
		}
	}

	for _, name := range []string{"bool", "Address", "Symbol", "String", "Vec<u32>", ""} {
		if IsScalarType(name) {
			t.Errorf("expected %q to not be scalar", name)
		}
	}

	if !IsScalarType(" i128 ") {
		t.Error("surrounding whitespace should be ignored")
	}
}

func TestBoolAndVoid(t *testing.T) {
	if !IsBoolType("bool") || !IsBoolType("boolean") {
		t.Error("bool spellings should be recognized")
	}
	if IsBoolType("Bool32") {
		t.Error("Bool32 is not a boolean type")
	}

	voids := []string{"", "()", "void", "null", "undefined", " null "}
	for _, name := range voids {
		if !IsVoidType(name) {
			t.Errorf("expected %q to be void", name)
		}
	}
	if IsVoidType("u32") {
		t.Error("u32 is not void")
	}
}

func TestIsPrimitiveType(t *testing.T) {
	for _, name := range []string{"u32", "i128", "bool", "boolean", "void", ""} {
		if !IsPrimitiveType(name) {
			t.Errorf("expected %q to be primitive", name)
		}
	}
	for _, name := range []string{"Address", "Symbol", "String", "Vec<Address>", "Option<u32>", "DataKey"} {
		if IsPrimitiveType(name) {
			t.Errorf("expected %q to be complex", name)
		}
	}
}

func TestIsEnvType(t *testing.T) {
	for _, name := range []string{"Env", "&Env", "soroban_sdk::Env", " Env "} {
		if !IsEnvType(name) {
			t.Errorf("expected %q to be the execution context", name)
		}
	}
	if IsEnvType("Environment") {
		t.Error("Environment is not the execution context type")
	}
}
