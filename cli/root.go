package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// RunRoot backs the bare "quill" invocation. Without arguments it prints the
// tool table and a manifest summary; with arguments it treats the first as a
// tool name and the optional second as JSON parameters, so `quill
// create_document '{...}'` works without spelling out "invoke".
func RunRoot(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		if len(args) > 2 {
			return exitError(exitValidation, "expected <tool> [params-json], got %d arguments", len(args))
		}
		return runInvoke(cmd, args)
	}

	cat, err := buildCatalog(cmd)
	if err != nil {
		return err
	}
	defer cat.Close()

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tDESCRIPTION")
	for _, name := range cat.registry.Names() {
		t, _ := cat.registry.Get(name)
		fmt.Fprintf(writer, "%s\t%s\n", name, t.Description())
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	report := cat.registry.ValidateAgainstManifest(cat.manifest)
	out := cmd.OutOrStdout()
	if report.Complete {
		fmt.Fprintf(out, "\nManifest: complete (%d tools)\n", cat.registry.Len())
		return nil
	}
	fmt.Fprintf(out, "\nManifest: incomplete")
	if len(report.Missing) > 0 {
		fmt.Fprintf(out, " (missing: %s)", strings.Join(report.Missing, ", "))
	}
	if len(report.Extra) > 0 {
		fmt.Fprintf(out, " (extra: %s)", strings.Join(report.Extra, ", "))
	}
	fmt.Fprintln(out)
	return nil
}
