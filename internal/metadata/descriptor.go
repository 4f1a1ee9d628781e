// Package metadata defines the classification artifact consumed by the
// generated frontend: typed method descriptors per deployed contract,
// aggregated per network.
package metadata

// ParameterDescriptor describes one invocation parameter of a contract method
type ParameterDescriptor struct {
	Name string `json:"name"`
	Type string `json:"type"` // declared spelling, or "unknown" when nothing declared one
}

// MethodDescriptor describes one public contract method and how to invoke it
type MethodDescriptor struct {
	Name        string                `json:"name"`
	Parameters  []ParameterDescriptor `json:"parameters"`
	ReturnType  string                `json:"returnType"`
	IsReadOnly  bool                  `json:"isReadOnly"` // read methods simulate, write methods sign and send
	Description string                `json:"description,omitempty"`
}

// ContractMetadata aggregates the classified methods of one deployed contract
type ContractMetadata struct {
	Name            string             `json:"name"`
	Network         string             `json:"network"`
	ContractID      string             `json:"contractId"`
	Methods         []MethodDescriptor `json:"methods"`
	IsStateful      bool               `json:"isStateful"`
	HasReadMethods  bool               `json:"hasReadMethods"`
	HasWriteMethods bool               `json:"hasWriteMethods"`
}

// NewContractMetadata builds a contract record and derives the aggregate
// flags from its method list.
func NewContractMetadata(name, network, contractID string, methods []MethodDescriptor) *ContractMetadata {
	if methods == nil {
		methods = []MethodDescriptor{}
	}
	cm := &ContractMetadata{
		Name:       name,
		Network:    network,
		ContractID: contractID,
		Methods:    methods,
	}
	for _, m := range methods {
		if m.IsReadOnly {
			cm.HasReadMethods = true
		} else {
			cm.HasWriteMethods = true
		}
	}
	cm.IsStateful = cm.HasWriteMethods
	return cm
}
