// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "soroscope",
		Short: "Static read/write classification for Soroban contract methods",
		Long: `Soroscope analyzes the Rust sources and generated TypeScript bindings of a
Soroban workspace and emits a metadata artifact telling frontends which
contract methods can be simulated and which need a signed transaction.`,
	}

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func configureLogging(verbose bool) {
	verbosity := 0
	if verbose {
		verbosity = 1
	}
	commonlog.Configure(verbosity, nil)
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	default:
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
}
