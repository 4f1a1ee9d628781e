// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"soroscope/internal/config"
	"soroscope/internal/engine"
	"soroscope/internal/metadata"
	"soroscope/internal/workspace"
)

var (
	generateWorkspace string
	generateOutput    string
	generateNetwork   string
	generateJobs      int
	generateVerbose   bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateWorkspace, "workspace", "w", ".", "Workspace root holding contracts/ and packages/")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Artifact path (defaults to the configured one)")
	generateCmd.Flags().StringVar(&generateNetwork, "network", "", "Network tag for bindings without a recognized suffix")
	generateCmd.Flags().IntVar(&generateJobs, "jobs", 0, "Max contracts analyzed in parallel (0 = CPU count)")
	generateCmd.Flags().BoolVar(&generateVerbose, "verbose", false, "Enable debug logging")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Analyze the workspace and write the metadata artifact",
	Long: `Analyze every contract that has a generated binding, classify its methods
as read or write, and write the aggregate artifact. Contracts that fail
analysis are reported and skipped; the run only fails when no contract
produced a record at all.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(generateWorkspace)
		if err != nil {
			return err
		}
		cfg.Workspace = generateWorkspace
		if cmd.Flags().Changed("output") {
			cfg.Output = generateOutput
		}
		if cmd.Flags().Changed("network") {
			cfg.Network = generateNetwork
		}
		if cmd.Flags().Changed("jobs") {
			cfg.Jobs = generateJobs
		}
		if generateVerbose {
			cfg.Verbose = true
		}
		configureLogging(cfg.Verbose)

		start := time.Now()
		ws, err := workspace.Discover(cfg.Workspace)
		if err != nil {
			return fmt.Errorf("failed to discover workspace: %w", err)
		}

		report := engine.NewEngine(cfg).Run(ws)
		printSummary(report)

		if report.Registry.ContractCount == 0 {
			color.Red("No contract produced a record after %s", formatDuration(time.Since(start)))
			return fmt.Errorf("nothing to write")
		}

		if err := metadata.Write(report.Registry, cfg.Output); err != nil {
			return err
		}

		color.Green("Wrote %d contract record(s) to %s in %s",
			report.Registry.ContractCount, cfg.Output, formatDuration(time.Since(start)))
		return nil
	},
}

func printSummary(report *engine.Report) {
	green := color.New(color.FgGreen).SprintFunc()

	networks := make([]string, 0, len(report.Registry.Networks))
	for network := range report.Registry.Networks {
		networks = append(networks, network)
	}
	sort.Strings(networks)

	for _, network := range networks {
		contracts := report.Registry.Networks[network]
		names := make([]string, 0, len(contracts))
		for name := range contracts {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			cm := contracts[name]
			reads, writes := 0, 0
			for _, m := range cm.Methods {
				if m.IsReadOnly {
					reads++
				} else {
					writes++
				}
			}
			fmt.Printf("%s %s@%s  %d method(s), %d read / %d write\n",
				green("✓"), name, network, len(cm.Methods), reads, writes)
		}
	}

	for _, issue := range report.Issues {
		color.Yellow("! %s", issue)
	}
}
