// Package engine drives the classification pipeline over a discovered
// workspace: function extraction, behavior analysis, reachability
// resolution, and binding cross-referencing. Contracts are independent of
// each other, run in parallel, and no failure in one aborts another.
package engine

import (
	"fmt"
	"runtime"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"soroscope/grammar"
	"soroscope/internal/analysis"
	"soroscope/internal/bindings"
	"soroscope/internal/config"
	"soroscope/internal/contract"
	"soroscope/internal/metadata"
	"soroscope/internal/scan"
	"soroscope/internal/workspace"
)

var log = commonlog.GetLogger("soroscope.engine")

// Report is the outcome of one generation run.
type Report struct {
	Registry *metadata.Registry
	Issues   []Issue
}

// Engine holds the settings of one run.
type Engine struct {
	entryModule    string
	defaultNetwork string
	jobs           int
	extractor      scan.Extractor
}

// outcome is the result of analyzing one binding.
type outcome struct {
	metadata *metadata.ContractMetadata
	issues   []Issue
}

// NewEngine builds an engine from the loaded configuration.
func NewEngine(cfg *config.Config) *Engine {
	return &Engine{
		entryModule:    cfg.EntryModule,
		defaultNetwork: cfg.Network,
		jobs:           cfg.Jobs,
		extractor:      scan.NewRegexExtractor(),
	}
}

// Run analyzes every discovered binding and aggregates the results into a
// fresh registry. Bindings are processed concurrently; the registry is
// filled sequentially afterward so it needs no locking.
func (e *Engine) Run(ws *workspace.Workspace) *Report {
	report := &Report{Registry: metadata.NewRegistry()}

	outcomes := make([]outcome, len(ws.Bindings))

	limit := e.jobs
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	if len(ws.Bindings) > 0 && limit > len(ws.Bindings) {
		limit = len(ws.Bindings)
	}

	g := new(errgroup.Group)
	g.SetLimit(limit)
	for i, binding := range ws.Bindings {
		g.Go(func() error {
			outcomes[i] = e.analyzeBinding(ws, binding)
			return nil
		})
	}
	_ = g.Wait()

	for _, out := range outcomes {
		report.Issues = append(report.Issues, out.issues...)
		if out.metadata != nil {
			report.Registry.Put(out.metadata)
		}
	}

	bound := make(map[string]bool, len(ws.Bindings))
	for _, b := range ws.Bindings {
		bound[b.Contract] = true
	}
	for _, c := range ws.Contracts {
		if !bound[c.Name] {
			log.Warningf("no binding artifact for contract %s, omitting it", c.Name)
			report.Issues = append(report.Issues, Issue{Kind: MissingBinding, Contract: c.Name})
		}
	}

	return report
}

// analyzeBinding runs the per-contract pipeline for one binding. Every
// failure is recorded as an issue; none escapes to the caller.
func (e *Engine) analyzeBinding(ws *workspace.Workspace, binding workspace.Binding) (out outcome) {
	network := binding.Network
	if network == workspace.UnknownNetwork && e.defaultNetwork != "" {
		network = e.defaultNetwork
	}

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("analysis of contract %s did not complete: %v", binding.Contract, r)
			out = outcome{issues: []Issue{{
				Kind:     AnalysisException,
				Contract: binding.Contract,
				Network:  network,
				Err:      fmt.Errorf("%v", r),
			}}}
		}
	}()

	var resolved map[string]analysis.Resolution
	var declared map[string]map[string]string

	src := ws.Contract(binding.Contract)
	if src == nil || len(src.Modules) == 0 {
		log.Warningf("no source tree for contract %s, classifying from the binding alone", binding.Contract)
		out.issues = append(out.issues, Issue{Kind: MissingSource, Contract: binding.Contract, Network: network})
	} else {
		db := e.buildDatabase(src, &out)
		resolved = analysis.NewResolver(db).Resolve()
		declared = e.declaredTypes(db)
	}

	id, err := bindings.ContractID(binding.Text)
	if err != nil {
		log.Warningf("binding for contract %s is malformed: %v", binding.Contract, err)
		out.issues = append(out.issues, Issue{Kind: MalformedBinding, Contract: binding.Contract, Network: network, Err: err})
		return out
	}

	methods, err := bindings.ExtractMethods(binding.Text, resolved, declared)
	if err != nil {
		log.Warningf("binding for contract %s is malformed: %v", binding.Contract, err)
		out.issues = append(out.issues, Issue{Kind: MalformedBinding, Contract: binding.Contract, Network: network, Err: err})
		return out
	}

	out.metadata = metadata.NewContractMetadata(binding.Contract, network, id, methods)
	return out
}

// buildDatabase extracts and annotates every function of every source
// module. A function whose body breaks analysis is dropped so the rest of
// the contract keeps its results.
func (e *Engine) buildDatabase(src *workspace.Contract, out *outcome) *contract.Database {
	db := contract.NewDatabase(e.entryModule)
	for _, mod := range src.Modules {
		for _, fr := range e.extractor.Extract(mod) {
			if !e.annotate(fr) {
				out.issues = append(out.issues, Issue{Kind: AnalysisException, Contract: src.Name, Function: fr.QualifiedName()})
				continue
			}
			db.Register(fr)
		}
	}
	return db
}

// annotate shields the run from a panic inside one function body.
func (e *Engine) annotate(fr *contract.FunctionRecord) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Warningf("skipping function %s: %v", fr.QualifiedName(), r)
			ok = false
		}
	}()
	analysis.Annotate(fr)
	return true
}

// declaredTypes parses the raw parameter list of every entry function into
// rendered type spellings for the cross-referencer. A list the grammar
// cannot express leaves that function's parameters to the binding.
func (e *Engine) declaredTypes(db *contract.Database) map[string]map[string]string {
	declared := make(map[string]map[string]string)
	for _, fr := range db.EntryFunctions() {
		list, err := grammar.ParseParams(fr.RawParams)
		if err != nil {
			log.Debugf("parameters of %s stay untyped: %v", fr.QualifiedName(), err)
			continue
		}
		types := make(map[string]string, len(list.Params))
		for _, p := range list.Params {
			types[p.Name] = p.Type.Render()
		}
		declared[fr.Name] = types
	}
	return declared
}
