package contract

import "sort"

// DefaultEntryModule is the crate root module. Its public functions form the
// externally callable contract surface.
const DefaultEntryModule = "lib"

// Database indexes every function of one contract crate by qualified name.
// Entry-module functions are additionally registered under their bare name so
// unqualified call sites resolve to them. Both keys share one record. A
// Database is built fresh per contract per run and discarded afterwards.
type Database struct {
	EntryModule string
	functions   map[string]*FunctionRecord
}

func NewDatabase(entryModule string) *Database {
	if entryModule == "" {
		entryModule = DefaultEntryModule
	}
	return &Database{
		EntryModule: entryModule,
		functions:   make(map[string]*FunctionRecord),
	}
}

// Register stores a record under its qualified name and, for entry-module
// functions, under the bare name as well.
func (db *Database) Register(fr *FunctionRecord) {
	db.functions[fr.QualifiedName()] = fr
	if fr.Module == db.EntryModule {
		db.functions[fr.Name] = fr
	}
}

// Lookup resolves a call-site name, qualified or bare. Returns nil for
// functions outside the crate (sdk calls, external crates).
func (db *Database) Lookup(name string) *FunctionRecord {
	return db.functions[name]
}

// EntryFunctions returns the public entry-module functions sorted by name.
func (db *Database) EntryFunctions() []*FunctionRecord {
	var entries []*FunctionRecord
	for key, fr := range db.functions {
		if key != fr.QualifiedName() {
			continue // bare-name alias of a record already counted
		}
		if fr.Module == db.EntryModule && fr.Public {
			entries = append(entries, fr)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// Len reports the number of distinct registered functions.
func (db *Database) Len() int {
	n := 0
	for key, fr := range db.functions {
		if key == fr.QualifiedName() {
			n++
		}
	}
	return n
}
