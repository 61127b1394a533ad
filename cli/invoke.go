package cli

import (
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quillworks/quill/tool"
)

// NewInvokeCmd creates the "invoke" subcommand.
func NewInvokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoke <tool> [params-json]",
		Short: "Invoke a catalog tool with JSON parameters",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runInvoke,
	}
	cmd.Flags().String("params-file", "", "Read parameters from a JSON file instead of the argument")
	return cmd
}

func runInvoke(cmd *cobra.Command, args []string) error {
	params, err := resolveParams(cmd, args)
	if err != nil {
		return err
	}

	cat, err := buildCatalog(cmd)
	if err != nil {
		return err
	}
	defer cat.Close()

	outcome, err := cat.registry.Execute(cmd.Context(), args[0], params)
	if err != nil {
		if tool.IsValidation(err) {
			return exitError(exitValidation, "%s", invokeErrorText(err))
		}
		return exitError(exitRuntime, "%s", invokeErrorText(err))
	}

	data, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return exitError(exitRuntime, "encoding result: %v", err)
	}
	_, _ = cmd.OutOrStdout().Write(append(data, '\n'))
	return nil
}

func resolveParams(cmd *cobra.Command, args []string) (map[string]any, error) {
	paramsFile, _ := cmd.Flags().GetString("params-file")
	raw := ""
	switch {
	case len(args) == 2 && paramsFile != "":
		return nil, exitError(exitValidation, "provide parameters as an argument or via --params-file, not both")
	case len(args) == 2:
		raw = args[1]
	case paramsFile != "":
		data, err := os.ReadFile(paramsFile)
		if err != nil {
			return nil, exitError(exitValidation, "reading params file: %v", err)
		}
		raw = string(data)
	}

	if strings.TrimSpace(raw) == "" {
		return map[string]any{}, nil
	}
	var params map[string]any
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return nil, exitError(exitValidation, "parsing parameters: %v", err)
	}
	return params, nil
}

// invokeErrorText renders a tool error with its diagnostics, one per line, so
// a caller sees every problem at once rather than the first.
func invokeErrorText(err error) string {
	var toolErr *tool.Error
	if !errors.As(err, &toolErr) {
		return err.Error()
	}

	builder := strings.Builder{}
	builder.WriteString(toolErr.Message)
	if diags, ok := toolErr.Details["diagnostics"].([]tool.Diagnostic); ok {
		for _, diag := range diags {
			builder.WriteString("\n - ")
			builder.WriteString(diag.Field)
			builder.WriteString(" [")
			builder.WriteString(diag.Code)
			builder.WriteString("] ")
			builder.WriteString(diag.Message)
		}
	}
	return builder.String()
}
