// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("soroscope version: %s\n", version)
		fmt.Printf("Go version: %s\n", runtime.Version())
	},
}
