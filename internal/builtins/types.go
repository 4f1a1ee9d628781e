package builtins

import "strings"

// BuiltinType represents the scalar value types of the soroban-sdk surface.
// The spellings are shared by Rust contract sources and the generated
// TypeScript bindings, which re-export them as branded aliases.
type BuiltinType string

const (
	// Unsigned integers
	U8   BuiltinType = "u8"
	U16  BuiltinType = "u16"
	U32  BuiltinType = "u32"
	U64  BuiltinType = "u64"
	U128 BuiltinType = "u128"
	U256 BuiltinType = "u256"

	// Signed integers
	I8   BuiltinType = "i8"
	I16  BuiltinType = "i16"
	I32  BuiltinType = "i32"
	I64  BuiltinType = "i64"
	I128 BuiltinType = "i128"
	I256 BuiltinType = "i256"

	// Booleans (Rust and TypeScript spellings)
	Bool    BuiltinType = "bool"
	Boolean BuiltinType = "boolean"
)

// UnknownType is the sentinel recorded when no declaration for a type can
// be recovered from either the source or the binding.
const UnknownType = "unknown"

// ScalarTypes contains all numeric scalar types
var ScalarTypes = map[string]bool{
	// Unsigned integers
	string(U8):   true,
	string(U16):  true,
	string(U32):  true,
	string(U64):  true,
	string(U128): true,
	string(U256): true,

	// Signed integers
	string(I8):   true,
	string(I16):  true,
	string(I32):  true,
	string(I64):  true,
	string(I128): true,
	string(I256): true,
}

// VoidTypes contains the spellings of an absent return value across the
// Rust unit type and the TypeScript binding surface
var VoidTypes = map[string]bool{
	"":          true,
	"()":        true,
	"void":      true,
	"null":      true,
	"undefined": true,
}

// IsScalarType checks if a type name is a numeric scalar type
func IsScalarType(typeName string) bool {
	return ScalarTypes[normalize(typeName)]
}

// IsBoolType checks if a type name is a boolean type
func IsBoolType(typeName string) bool {
	switch BuiltinType(normalize(typeName)) {
	case Bool, Boolean:
		return true
	default:
		return false
	}
}

// IsVoidType checks if a type name denotes no usable return value
func IsVoidType(typeName string) bool {
	return VoidTypes[normalize(typeName)]
}

// IsPrimitiveType checks if a type name is a scalar, boolean, or void type.
// Everything outside this set (Address, Symbol, String, containers, user
// structs) is treated as a complex type by the classifier.
func IsPrimitiveType(typeName string) bool {
	n := normalize(typeName)
	return ScalarTypes[n] || IsBoolType(n) || VoidTypes[n]
}

// IsEnvType checks if a type name is the contract execution context
func IsEnvType(typeName string) bool {
	switch strings.TrimSpace(typeName) {
	case "Env", "&Env", "soroban_sdk::Env":
		return true
	default:
		return false
	}
}

func normalize(typeName string) string {
	return strings.ToLower(strings.TrimSpace(typeName))
}
