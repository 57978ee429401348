// CLASSIFICATION: COMMUNITY
// Filename: cli.go v0.3
// Date Modified: 2026-04-18
// Author: Lukas Bower
//
// ─────────────────────────────────────────────────────────────
// staticd · CLI Scaffold
//
// Provides a minimal Cobra root command. Sub-commands register via
// AddCommand; binaries call Execute() from main().
// ─────────────────────────────────────────────────────────────
package tooling

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "staticd",
	Short: "Static file server",
	Long: `staticd serves a directory of static files over HTTP.

Run "staticd serve" to start the server, or "staticd --help" to see
available commands.`,
}

// AddCommand registers a sub-command on the root.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// Execute runs the CLI. Typically called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print staticd version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("staticd v0.2.0")
		},
	})
}
