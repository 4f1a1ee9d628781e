package grammar

// The grammar covers the Rust signature fragments that reach descriptors:
// parameter declaration lists and type spellings. Function bodies never pass
// through here; any spelling the grammar cannot express falls back to raw
// text at the call site.

type ParamList struct {
	Params []*Param `[ @@ { "," @@ } [ "," ] ]`
}

type Param struct {
	Mut  bool   `[ @"mut" ]`
	Name string `@Ident ":"`
	Type *Type  `@@`
}

type Type struct {
	Ref   *RefType   `  @@`
	Tuple *TupleType `| @@`
	Array *ArrayType `| @@`
	Named *NamedType `| @@`
}

type RefType struct {
	Ref    string `@"&"`
	Mut    bool   `[ Lifetime ] [ @"mut" ]`
	Target *Type  `@@`
}

type TupleType struct {
	Elems []*Type `"(" [ @@ { "," @@ } [ "," ] ] ")"`
}

type ArrayType struct {
	Elem *Type  `"[" @@ ";"`
	Len  string `@Integer "]"`
}

type NamedType struct {
	Path     []string `@Ident { ":" ":" @Ident }`
	Generics []*Type  `[ "<" @@ { "," @@ } ">" ]`
}
