package analysis

import "soroscope/internal/contract"

// Resolution is the classification of one public entry function after
// call-graph traversal.
type Resolution struct {
	IsReadOnly        bool
	WritesStorage     bool // mutates storage in its own body
	RequiresAuth      bool // requires authorization in its own body
	HasIndirectWrites bool // mutating only through callees
}

// Resolver decides whether a mutation is reachable from each public entry
// function by walking the recorded call graph. Call sites that resolve to
// nothing (sdk functions, external crates) are assumed non-mutating; local
// helpers dominate contract behavior and external calls that do mutate are
// invoked through client types the lexical pass does not model.
type Resolver struct {
	db   *contract.Database
	memo map[string]bool
}

func NewResolver(db *contract.Database) *Resolver {
	return &Resolver{
		db:   db,
		memo: make(map[string]bool),
	}
}

// Resolve classifies every public entry-module function. The result is a
// pure function of the database; resolving twice yields identical maps.
func (r *Resolver) Resolve() map[string]Resolution {
	out := make(map[string]Resolution, r.db.Len())
	for _, fr := range r.db.EntryFunctions() {
		mutating := r.classify(fr)
		out[fr.Name] = Resolution{
			IsReadOnly:        !mutating,
			WritesStorage:     fr.WritesStorage,
			RequiresAuth:      fr.RequiresAuth,
			HasIndirectWrites: mutating && !fr.WritesStorage && !fr.RequiresAuth,
		}
	}
	return out
}

// classify runs one complete top-level reachability query and caches it.
// Only top-level results enter the memo: they are computed from an empty
// visited set, so they hold in any later context. Intermediate results can
// be truncated by cycle cutoff and are never cached.
func (r *Resolver) classify(fr *contract.FunctionRecord) bool {
	mutating := r.mutationReachable(fr.QualifiedName(), make(map[string]struct{}))
	r.memo[fr.QualifiedName()] = mutating
	return mutating
}

// mutationReachable reports whether name writes storage or requires auth,
// directly or through any chain of resolvable callees. Cycles terminate via
// the visited set; revisiting a function already on the current path cannot
// add new effects.
func (r *Resolver) mutationReachable(name string, visited map[string]struct{}) bool {
	fr := r.db.Lookup(name)
	if fr == nil {
		return false
	}

	key := fr.QualifiedName()
	if done, ok := r.memo[key]; ok {
		return done
	}
	if _, seen := visited[key]; seen {
		return false
	}
	visited[key] = struct{}{}

	if fr.WritesStorage || fr.RequiresAuth {
		return true
	}
	for call := range fr.Calls {
		if r.mutationReachable(call, visited) {
			return true
		}
	}
	return false
}
