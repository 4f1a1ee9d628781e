package stdlib

import "sort"

// VerbDefinition describes one method of the soroban-sdk storage accessor chain
type VerbDefinition struct {
	Name    string // Method name (e.g., "set", "get", "extend_ttl")
	Mutates bool   // Whether calling it changes ledger state
}

// StorageTiers lists the ledger storage tiers reachable through env.storage()
var StorageTiers = map[string]bool{
	"instance":   true,
	"persistent": true,
	"temporary":  true,
}

// storageVerbs maps each storage accessor method to its ledger effect.
// Reads are listed so unrecognized methods stay distinguishable from
// recognized non-mutating ones.
var storageVerbs = map[string]VerbDefinition{
	"set":        {Name: "set", Mutates: true},
	"update":     {Name: "update", Mutates: true},
	"remove":     {Name: "remove", Mutates: true},
	"extend_ttl": {Name: "extend_ttl", Mutates: true},
	"bump":       {Name: "bump", Mutates: true},
	"get":        {Name: "get", Mutates: false},
	"try_get":    {Name: "try_get", Mutates: false},
	"has":        {Name: "has", Mutates: false},
}

// authOperations lists the soroban-sdk authorization entry points. Invoking
// either marks the transaction as requiring a signature.
var authOperations = map[string]bool{
	"require_auth":          true,
	"require_auth_for_args": true,
}

// IsStorageTier checks if a name is a ledger storage tier accessor
func IsStorageTier(name string) bool {
	return StorageTiers[name]
}

// IsMutationVerb checks if a storage accessor method changes ledger state
func IsMutationVerb(name string) bool {
	verb, ok := storageVerbs[name]
	return ok && verb.Mutates
}

// IsStorageVerb checks if a name is any recognized storage accessor method
func IsStorageVerb(name string) bool {
	_, ok := storageVerbs[name]
	return ok
}

// IsAuthOperation checks if a name is an authorization entry point
func IsAuthOperation(name string) bool {
	return authOperations[name]
}

// TierNames returns the storage tiers in sorted order
func TierNames() []string {
	return sortedKeys(StorageTiers)
}

// MutationVerbNames returns the mutating accessor methods in sorted order
func MutationVerbNames() []string {
	names := make([]string, 0, len(storageVerbs))
	for name, verb := range storageVerbs {
		if verb.Mutates {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// AuthOperationNames returns the authorization entry points in sorted order
func AuthOperationNames() []string {
	return sortedKeys(authOperations)
}

func sortedKeys(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
