package tools

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quillworks/quill/frontmatter"
	"github.com/quillworks/quill/tool"
)

func seedDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.qmd")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("seeding document: %v", err)
	}
	return path
}

func TestUpdateFrontMatterSetsFields(t *testing.T) {
	reg := newCatalog(t, Deps{})
	path := seedDocument(t, "---\ntitle: Foo\n---\nBody text")

	outcome, err := reg.Execute(context.Background(), "update_front_matter", map[string]any{
		"path":   path,
		"fields": map[string]any{"format": "dashboard", "draft": true},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	doc, err := frontmatter.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	header := doc.Header()
	if header["title"] != "Foo" {
		t.Fatalf("title = %v, want Foo unchanged", header["title"])
	}
	if header["format"] != "dashboard" || header["draft"] != true {
		t.Fatalf("header = %v, want format+draft set", header)
	}
	if doc.Body != "Body text" {
		t.Fatalf("body = %q, want untouched", doc.Body)
	}
	if outcome.Outputs["content"] == "" {
		t.Fatal("outcome missing written content")
	}
}

func TestUpdateFrontMatterMissingFile(t *testing.T) {
	reg := newCatalog(t, Deps{})
	_, err := reg.Execute(context.Background(), "update_front_matter", map[string]any{
		"path":   filepath.Join(t.TempDir(), "absent.qmd"),
		"fields": map[string]any{"title": "x"},
	})
	if !tool.IsNotFound(err) {
		t.Fatalf("error code = %q, want NOT_FOUND", tool.ErrorCode(err))
	}
}

func TestUpdateFrontMatterMalformedHeader(t *testing.T) {
	reg := newCatalog(t, Deps{})
	path := seedDocument(t, "---\ntitle: [unclosed\n---\nbody")

	_, err := reg.Execute(context.Background(), "update_front_matter", map[string]any{
		"path":   path,
		"fields": map[string]any{"title": "x"},
	})
	if tool.ErrorCode(err) != tool.ErrorCodeParseFailure {
		t.Fatalf("error code = %q, want PARSE_FAILURE", tool.ErrorCode(err))
	}
}

func TestSetDocumentFormatIsIdempotent(t *testing.T) {
	reg := newCatalog(t, Deps{})
	path := seedDocument(t, "---\ntitle: Foo\n---\nbody")
	params := map[string]any{"path": path, "format": "dashboard"}

	if _, err := reg.Execute(context.Background(), "set_document_format", params); err != nil {
		t.Fatalf("first Execute() error = %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}

	if _, err := reg.Execute(context.Background(), "set_document_format", params); err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}

	if string(first) != string(second) {
		t.Fatalf("second application changed output:\nfirst:  %q\nsecond: %q", first, second)
	}
}

func TestAddNavigationPreservesSiblings(t *testing.T) {
	reg := newCatalog(t, Deps{})
	path := seedDocument(t, "---\ntitle: Site\nwebsite:\n  title: My Site\n  navbar:\n    left:\n      - old.qmd\n---\n")

	_, err := reg.Execute(context.Background(), "add_navigation", map[string]any{
		"path":    path,
		"section": "sidebar",
		"items":   map[string]any{"style": "docked", "contents": []any{"guide.qmd"}},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	doc, err := frontmatter.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	website := doc.Header()["website"].(map[string]any)
	if website["title"] != "My Site" {
		t.Fatalf("website.title = %v, want preserved", website["title"])
	}
	if _, ok := website["navbar"]; !ok {
		t.Fatal("website.navbar dropped")
	}
	sidebar, ok := website["sidebar"].(map[string]any)
	if !ok || sidebar["style"] != "docked" {
		t.Fatalf("website.sidebar = %#v", website["sidebar"])
	}
}

func TestSetThemeReplacesWholesale(t *testing.T) {
	reg := newCatalog(t, Deps{})
	path := seedDocument(t, "---\ntheme:\n  - cosmo\n  - old.scss\n---\n")

	_, err := reg.Execute(context.Background(), "set_theme", map[string]any{
		"path":   path,
		"themes": []any{"darkly", "brand.scss"},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	doc, err := frontmatter.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	theme, _ := doc.Get("theme")
	list, ok := theme.([]any)
	if !ok || len(list) != 2 || list[0] != "darkly" {
		t.Fatalf("theme = %#v, want [darkly brand.scss]", theme)
	}
}

func TestInsertCodeChunkAppendsToBody(t *testing.T) {
	reg := newCatalog(t, Deps{})
	path := seedDocument(t, "---\ntitle: Analysis\n---\n# Intro\n")

	_, err := reg.Execute(context.Background(), "insert_code_chunk", map[string]any{
		"path":     path,
		"language": "python",
		"code":     "print('hi')",
		"options":  map[string]any{"echo": false},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	doc, err := frontmatter.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !strings.Contains(doc.Body, "```{python}\n#| echo: false\nprint('hi')\n```") {
		t.Fatalf("body missing chunk: %q", doc.Body)
	}
	if !strings.HasPrefix(doc.Body, "# Intro") {
		t.Fatalf("existing body content disturbed: %q", doc.Body)
	}
}

func TestUpdateFrontMatterRejectsEmptyFields(t *testing.T) {
	reg := newCatalog(t, Deps{})
	_, err := reg.Execute(context.Background(), "update_front_matter", map[string]any{
		"path":   "x.qmd",
		"fields": map[string]any{},
	})
	if !tool.IsValidation(err) {
		t.Fatalf("error code = %q, want INVALID_PARAMS", tool.ErrorCode(err))
	}
}
