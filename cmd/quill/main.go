package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quillworks/quill/cli"
)

// Set via ldflags at build time.
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "Quill document authoring CLI",
	Long:  "Quill is a tool catalog for authoring, theming, and publishing YAML-fronted document projects.",
	Args:  cobra.ArbitraryArgs,
	RunE:  cli.RunRoot,
	// SilenceUsage prevents printing usage on every error
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("manifest", "", "Path to a manifest JSON file (default: the embedded catalog manifest)")
	rootCmd.PersistentFlags().String("audit-db", "", "Path to the invocation audit database, or \"off\" (default: ~/.quill/audit.db)")
	rootCmd.PersistentFlags().String("otlp-endpoint", "", "OTLP/HTTP collector endpoint for traces (host:port)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable verbose/debug logging")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("quill version %s\n", version))

	rootCmd.AddCommand(cli.NewInvokeCmd())
	rootCmd.AddCommand(cli.NewToolsCmd())
}
