package engine

import "fmt"

// Kind classifies the ways a contract can drop out of a run without
// aborting it.
type Kind string

const (
	// MissingSource marks a binding whose contract has no discovered
	// source tree. The contract still gets a record classified from the
	// binding alone.
	MissingSource Kind = "missing_source"
	// MissingBinding marks a source tree with no binding artifact. The
	// contract is omitted because its invocable surface cannot be
	// recovered without one.
	MissingBinding Kind = "missing_binding"
	// MalformedBinding marks a binding whose interface block or contract
	// identifier cannot be located. Handled like a missing binding.
	MalformedBinding Kind = "malformed_binding"
	// AnalysisException marks a function body that broke analysis. The
	// function is skipped; the rest of the contract survives.
	AnalysisException Kind = "analysis_exception"
)

// Issue records one problem the run survived.
type Issue struct {
	Kind     Kind
	Contract string
	Network  string
	Function string
	Err      error
}

func (i Issue) String() string {
	s := fmt.Sprintf("%s: %s", i.Kind, i.Contract)
	if i.Network != "" {
		s += "@" + i.Network
	}
	if i.Function != "" {
		s += ", function " + i.Function
	}
	if i.Err != nil {
		s += ": " + i.Err.Error()
	}
	return s
}
