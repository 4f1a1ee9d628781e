package metadata

import (
	"time"

	"github.com/google/uuid"
)

// SchemaVersion identifies the artifact shape. Consumers tolerate additive
// changes within a version; anything else bumps it.
const SchemaVersion = "1"

// Registry is the aggregate record of one generation run, keyed by network
// and then by contract name. It is rebuilt from scratch every run and never
// persisted between runs.
type Registry struct {
	SchemaVersion string                                  `json:"schemaVersion"`
	GeneratedAt   string                                  `json:"generatedAt"`
	GenerationID  string                                  `json:"generationId"`
	ContractCount int                                     `json:"contractCount"`
	Networks      map[string]map[string]*ContractMetadata `json:"networks"`
}

func NewRegistry() *Registry {
	return &Registry{
		SchemaVersion: SchemaVersion,
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
		GenerationID:  uuid.NewString(),
		Networks:      make(map[string]map[string]*ContractMetadata),
	}
}

// Put records a contract under its network, fully replacing any previous
// record for the same contract and network.
func (r *Registry) Put(cm *ContractMetadata) {
	contracts, ok := r.Networks[cm.Network]
	if !ok {
		contracts = make(map[string]*ContractMetadata)
		r.Networks[cm.Network] = contracts
	}
	if _, exists := contracts[cm.Name]; !exists {
		r.ContractCount++
	}
	contracts[cm.Name] = cm
}

// Get returns the record for a contract on a network, or nil.
func (r *Registry) Get(network, name string) *ContractMetadata {
	return r.Networks[network][name]
}
