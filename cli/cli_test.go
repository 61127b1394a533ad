package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// newTestRoot creates a fresh cobra root command wired to all subcommands.
// Each test gets an isolated command tree, and audit persistence is pointed
// at a throwaway database so runs never touch the user's home directory.
func newTestRoot(t *testing.T) *cobra.Command {
	t.Helper()
	root := &cobra.Command{
		Use:          "quill",
		Args:         cobra.ArbitraryArgs,
		RunE:         RunRoot,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("manifest", "", "")
	root.PersistentFlags().String("audit-db", filepath.Join(t.TempDir(), "audit.db"), "")
	root.PersistentFlags().String("otlp-endpoint", "", "")
	root.PersistentFlags().Bool("verbose", false, "")
	root.AddCommand(NewInvokeCmd())
	root.AddCommand(NewToolsCmd())
	return root
}

// executeCommand runs a cobra command with the given args and captures stdout/stderr.
func executeCommand(root *cobra.Command, args ...string) (stdout, stderr string, err error) {
	var outBuf, errBuf bytes.Buffer
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)
	root.SetArgs(args)
	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestRootListsCatalogAndManifest(t *testing.T) {
	stdout, _, err := executeCommand(newTestRoot(t))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, name := range []string{"create_project", "update_front_matter", "publish_site"} {
		if !strings.Contains(stdout, name) {
			t.Errorf("listing missing %q:\n%s", name, stdout)
		}
	}
	if !strings.Contains(stdout, "Manifest: complete") {
		t.Fatalf("listing missing manifest summary:\n%s", stdout)
	}
}

func TestBareToolInvocation(t *testing.T) {
	docPath := filepath.Join(t.TempDir(), "notes.qmd")
	if err := os.WriteFile(docPath, []byte("---\ntitle: Notes\n---\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	params := `{"path": ` + jsonQuote(docPath) + `, "format": "html"}`
	stdout, _, err := executeCommand(newTestRoot(t), "set_document_format", params)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, `"tool": "set_document_format"`) {
		t.Fatalf("output missing outcome JSON:\n%s", stdout)
	}
}

func TestToolsPrintsNamesOnly(t *testing.T) {
	stdout, _, err := executeCommand(newTestRoot(t), "tools")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 16 {
		t.Fatalf("expected 16 names, got %d:\n%s", len(lines), stdout)
	}
	if lines[0] != "create_project" {
		t.Fatalf("first name = %q, want create_project", lines[0])
	}
}

func TestToolsManifestReportsComplete(t *testing.T) {
	stdout, _, err := executeCommand(newTestRoot(t), "tools", "manifest")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var report struct {
		Complete bool     `json:"complete"`
		Missing  []string `json:"missing"`
		Extra    []string `json:"extra"`
	}
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("output is not a JSON report: %v\n%s", err, stdout)
	}
	if !report.Complete || len(report.Missing) != 0 || len(report.Extra) != 0 {
		t.Fatalf("report = %+v, want complete", report)
	}
}

func TestToolsManifestFlagsDrift(t *testing.T) {
	manifestPath := filepath.Join(t.TempDir(), "manifest.json")
	manifest := `{"version": "1", "tools": ["create_project", "retire_project"]}`
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := executeCommand(newTestRoot(t), "tools", "manifest", "--manifest", manifestPath)
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != exitValidation {
		t.Fatalf("error = %v, want ExitError with code %d", err, exitValidation)
	}
	if !strings.Contains(stdout, "retire_project") {
		t.Fatalf("report should name the missing tool:\n%s", stdout)
	}
}

func TestInvokeWritesOutcomeJSON(t *testing.T) {
	docPath := filepath.Join(t.TempDir(), "report.qmd")
	if err := os.WriteFile(docPath, []byte("---\ntitle: Report\n---\nbody"), 0o644); err != nil {
		t.Fatal(err)
	}

	params := `{"path": ` + jsonQuote(docPath) + `, "format": "pdf"}`
	stdout, _, err := executeCommand(newTestRoot(t), "invoke", "set_document_format", params)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var outcome struct {
		Tool      string         `json:"tool"`
		RequestID string         `json:"request_id"`
		Outputs   map[string]any `json:"outputs"`
	}
	if err := json.Unmarshal([]byte(stdout), &outcome); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if outcome.Tool != "set_document_format" || outcome.RequestID == "" {
		t.Fatalf("outcome = %+v", outcome)
	}
	if outcome.Outputs["format"] != "pdf" {
		t.Fatalf("outputs = %v", outcome.Outputs)
	}

	content, err := os.ReadFile(docPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "format: pdf") {
		t.Fatalf("document not updated:\n%s", content)
	}
}

func TestInvokeInvalidParamsExitsTwo(t *testing.T) {
	_, _, err := executeCommand(newTestRoot(t), "invoke", "create_document", `{}`)
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error type = %T, want *ExitError", err)
	}
	if exitErr.Code != exitValidation {
		t.Fatalf("exit code = %d, want %d", exitErr.Code, exitValidation)
	}
	// Both missing fields must be reported, not just the first.
	if !strings.Contains(exitErr.Message, "path") || !strings.Contains(exitErr.Message, "title") {
		t.Fatalf("message should list every invalid field: %q", exitErr.Message)
	}
}

func TestInvokeMalformedJSONExitsTwo(t *testing.T) {
	_, _, err := executeCommand(newTestRoot(t), "invoke", "create_document", `{not json`)
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != exitValidation {
		t.Fatalf("error = %v, want ExitError with code %d", err, exitValidation)
	}
}

func TestInvokeUnknownToolExitsOne(t *testing.T) {
	_, _, err := executeCommand(newTestRoot(t), "invoke", "mint_nft", `{}`)
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error type = %T, want *ExitError", err)
	}
	if exitErr.Code != exitRuntime {
		t.Fatalf("exit code = %d, want %d", exitErr.Code, exitRuntime)
	}
	if !strings.Contains(exitErr.Message, "mint_nft") {
		t.Fatalf("message should name the unknown tool: %q", exitErr.Message)
	}
}

// jsonQuote JSON-quotes a string for embedding in inline params.
func jsonQuote(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}
