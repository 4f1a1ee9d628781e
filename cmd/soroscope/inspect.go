// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"soroscope/internal/analysis"
	"soroscope/internal/config"
	"soroscope/internal/contract"
	"soroscope/internal/scan"
	"soroscope/internal/workspace"
)

var inspectWorkspace string

func init() {
	inspectCmd.Flags().StringVarP(&inspectWorkspace, "workspace", "w", ".", "Workspace root holding contracts/ and packages/")
}

var inspectCmd = &cobra.Command{
	Use:   "inspect CONTRACT",
	Short: "Print the source-level resolution table for one contract",
	Long: `Run extraction, behavior analysis, and reachability resolution for a single
contract and print the result per public function, without touching any
binding or writing the artifact.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(inspectWorkspace)
		if err != nil {
			return err
		}
		configureLogging(cfg.Verbose)

		ws, err := workspace.Discover(inspectWorkspace)
		if err != nil {
			return fmt.Errorf("failed to discover workspace: %w", err)
		}

		name := args[0]
		src := ws.Contract(name)
		if src == nil || len(src.Modules) == 0 {
			return fmt.Errorf("no source tree for contract %s under %s", name, inspectWorkspace)
		}

		db := contract.NewDatabase(cfg.EntryModule)
		extractor := scan.NewRegexExtractor()
		for _, mod := range src.Modules {
			for _, fr := range extractor.Extract(mod) {
				analysis.Annotate(fr)
				db.Register(fr)
			}
		}
		resolved := analysis.NewResolver(db).Resolve()
		entries := db.EntryFunctions()

		bold := color.New(color.Bold).SprintFunc()
		fmt.Printf("%s  %d public function(s), %d analyzed in total\n\n", bold(name), len(entries), db.Len())
		fmt.Printf("%-24s %-6s %-7s %-5s %-8s\n", "FUNCTION", "ACCESS", "WRITES", "AUTH", "INDIRECT")

		for _, fr := range entries {
			res := resolved[fr.Name]
			access := color.GreenString("%-6s", "read")
			if !res.IsReadOnly {
				access = color.RedString("%-6s", "write")
			}
			fmt.Printf("%-24s %s %-7s %-5s %-8s\n",
				fr.Name, access, mark(res.WritesStorage), mark(res.RequiresAuth), mark(res.HasIndirectWrites))
		}
		return nil
	},
}

func mark(set bool) string {
	if set {
		return "yes"
	}
	return "-"
}
