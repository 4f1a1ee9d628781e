package contract

// SourceModule is one Rust source file of a contract crate, identified by its
// file stem. The text is read once at load time and never mutated.
type SourceModule struct {
	Name string
	Text string
}

// FunctionRecord captures one extracted function: identity, raw signature
// text, and the behavior facts filled in by analysis.
type FunctionRecord struct {
	Module    string
	Name      string
	Public    bool
	Body      string
	RawParams string
	RawReturn string

	WritesStorage bool
	RequiresAuth  bool
	Calls         map[string]struct{}
}

// QualifiedName returns the module-scoped name used as the database key.
func (fr *FunctionRecord) QualifiedName() string {
	return fr.Module + "::" + fr.Name
}

// AddCall records an outgoing call-site name, local or qualified.
func (fr *FunctionRecord) AddCall(name string) {
	if fr.Calls == nil {
		fr.Calls = make(map[string]struct{})
	}
	fr.Calls[name] = struct{}{}
}
