// Package workspace discovers contract source trees and generated binding
// artifacts under a project root. Contracts live in contracts/<dir> with
// their Rust modules under src/; bindings live in packages/<dir>/src/index.ts
// where the directory name carries the contract name and an optional network
// suffix.
package workspace

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"soroscope/internal/contract"
)

// UnknownNetwork tags bindings whose directory carries no recognized
// network suffix.
const UnknownNetwork = "unknown"

// networkTags are the recognized binding directory suffixes.
var networkTags = map[string]bool{
	"testnet":    true,
	"mainnet":    true,
	"futurenet":  true,
	"standalone": true,
}

// Contract is one discovered source tree with its loaded modules.
type Contract struct {
	Name    string
	Dir     string
	Modules []contract.SourceModule
}

// Binding is one discovered binding artifact with its loaded text.
type Binding struct {
	Contract string
	Network  string
	Path     string
	Text     string
}

// Workspace holds everything discovered under one project root.
type Workspace struct {
	Root      string
	Contracts []Contract
	Bindings  []Binding
}

// Discover loads all contract sources and binding artifacts under root.
// Missing contracts/ or packages/ directories yield an empty workspace, not
// an error; unreadable individual files are skipped so one broken entry
// cannot hide its siblings.
func Discover(root string) (*Workspace, error) {
	ws := &Workspace{Root: root}
	if err := ws.loadContracts(); err != nil {
		return nil, err
	}
	if err := ws.loadBindings(); err != nil {
		return nil, err
	}
	return ws, nil
}

// Contract returns the discovered contract with the given package name, or
// nil when no source tree declares it.
func (w *Workspace) Contract(name string) *Contract {
	for i := range w.Contracts {
		if w.Contracts[i].Name == name {
			return &w.Contracts[i]
		}
	}
	return nil
}

func (w *Workspace) loadContracts() error {
	dir := filepath.Join(w.Root, "contracts")
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		w.Contracts = append(w.Contracts, loadContract(filepath.Join(dir, entry.Name()), entry.Name()))
	}
	return nil
}

// loadContract reads every non-test Rust module under the contract's src
// directory. A contract without readable modules is still listed so callers
// can report the missing source.
func loadContract(dir, fallbackName string) Contract {
	c := Contract{
		Name: packageName(filepath.Join(dir, "Cargo.toml"), fallbackName),
		Dir:  dir,
	}

	srcDir := filepath.Join(dir, "src")
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return c
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".rs" {
			continue
		}
		module := strings.TrimSuffix(name, ".rs")
		if isTestModule(module) {
			continue
		}
		text, err := os.ReadFile(filepath.Join(srcDir, name))
		if err != nil {
			continue
		}
		c.Modules = append(c.Modules, contract.SourceModule{Name: module, Text: string(text)})
	}
	return c
}

func (w *Workspace) loadBindings() error {
	dir := filepath.Join(w.Root, "packages")
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name(), "src", "index.ts")
		text, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		name, network := splitBindingName(entry.Name())
		w.Bindings = append(w.Bindings, Binding{
			Contract: name,
			Network:  network,
			Path:     path,
			Text:     string(text),
		})
	}
	return nil
}

// splitBindingName separates the trailing network tag from a binding
// directory name. Unrecognized suffixes belong to the contract name itself.
func splitBindingName(dir string) (string, string) {
	if i := strings.LastIndex(dir, "-"); i > 0 {
		if suffix := dir[i+1:]; networkTags[suffix] {
			return dir[:i], suffix
		}
	}
	return dir, UnknownNetwork
}

// isTestModule reports whether a module name follows the test naming
// conventions and should stay out of analysis.
func isTestModule(name string) bool {
	return name == "test" || name == "tests" ||
		strings.HasSuffix(name, "_test") || strings.HasSuffix(name, "_tests")
}
