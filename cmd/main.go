// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	compressed bool
	configPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rcodedump",
		Short: "An r-code file decoder",
		Long:  "A decoder for OpenEdge/Progress ABL compiled r-code artifacts",
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("You are using version 0.1.0")
		},
	}

	dumpCmd := &cobra.Command{
		Use:   "dump <path> [path...]",
		Short: "Dumps the decoded structure of one or more r-code files",
		Long:  "Prints the version, 64-bit flag, class flag, timestamp, a type-info summary for classes, and any anomalies of each r-code file given, recursing into directories. With -z, the per-section dump (header, signature block, segment table, body segments, type block) is also written zstd-compressed to rcodedump.zst",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runDump,
	}
	dumpCmd.Flags().BoolVarP(&compressed, "compress", "z", false, "also write a zstd-compressed per-section dump to rcodedump.zst")

	tuiCmd := &cobra.Command{
		Use:   "tui <path>",
		Short: "Browse a decoded r-code file interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runTUI,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (accepted; no subcommand reads it)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to an rcodedump.toml config file")

	rootCmd.AddCommand(versionCmd, dumpCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
