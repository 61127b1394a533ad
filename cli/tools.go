package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewToolsCmd creates the "tools" command group. The bare command prints one
// tool name per line for scripting; the table lives on the root command.
func NewToolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List catalog tool names",
		RunE:  runToolsNames,
	}
	cmd.AddCommand(newToolsManifestCmd())
	return cmd
}

func runToolsNames(cmd *cobra.Command, args []string) error {
	cat, err := buildCatalog(cmd)
	if err != nil {
		return err
	}
	defer cat.Close()

	for _, name := range cat.registry.Names() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func newToolsManifestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest",
		Short: "Compare the registered catalog against the manifest",
		RunE:  runToolsManifest,
	}
}

func runToolsManifest(cmd *cobra.Command, args []string) error {
	cat, err := buildCatalog(cmd)
	if err != nil {
		return err
	}
	defer cat.Close()

	report := cat.registry.ValidateAgainstManifest(cat.manifest)
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return exitError(exitRuntime, "encoding report: %v", err)
	}
	_, _ = cmd.OutOrStdout().Write(append(data, '\n'))

	if !report.Complete {
		return exitError(exitValidation, "catalog does not match the manifest")
	}
	return nil
}
