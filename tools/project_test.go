package tools

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/quillworks/quill/tool"
)

func TestCreateProject(t *testing.T) {
	reg := newCatalog(t, Deps{})
	dir := filepath.Join(t.TempDir(), "my-site")

	outcome, err := reg.Execute(context.Background(), "create_project", map[string]any{
		"name": "My Site",
		"type": "website",
		"path": dir,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if outcome.Outputs["project_dir"] != dir {
		t.Fatalf("project_dir = %v, want %q", outcome.Outputs["project_dir"], dir)
	}

	cfgBytes, err := os.ReadFile(filepath.Join(dir, "_quill.yml"))
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	var cfg projectConfig
	if err := yaml.Unmarshal(cfgBytes, &cfg); err != nil {
		t.Fatalf("decoding config: %v", err)
	}
	if cfg.Project.Type != "website" || cfg.Website.Title != "My Site" {
		t.Fatalf("config = %+v", cfg)
	}

	index, err := os.ReadFile(filepath.Join(dir, "index.qmd"))
	if err != nil {
		t.Fatalf("reading index: %v", err)
	}
	if !strings.HasPrefix(string(index), "---\ntitle: My Site\n---\n") {
		t.Fatalf("index = %q", index)
	}
}

func TestCreateProjectExistingDirFails(t *testing.T) {
	reg := newCatalog(t, Deps{})
	dir := t.TempDir()

	_, err := reg.Execute(context.Background(), "create_project", map[string]any{
		"name": "Site",
		"type": "blog",
		"path": dir,
	})
	if tool.ErrorCode(err) != tool.ErrorCodeIOFailure {
		t.Fatalf("error code = %q, want IO_FAILURE", tool.ErrorCode(err))
	}
}

func TestCreateProjectRejectsUnknownType(t *testing.T) {
	reg := newCatalog(t, Deps{})

	_, err := reg.Execute(context.Background(), "create_project", map[string]any{
		"name": "Site",
		"type": "newsletter",
	})
	if !tool.IsValidation(err) {
		t.Fatalf("error code = %q, want INVALID_PARAMS", tool.ErrorCode(err))
	}
	if !strings.Contains(err.Error(), "newsletter") {
		t.Fatalf("error should quote the rejected value: %v", err)
	}
}

func TestCreateDocument(t *testing.T) {
	reg := newCatalog(t, Deps{})
	path := filepath.Join(t.TempDir(), "about.qmd")

	_, err := reg.Execute(context.Background(), "create_document", map[string]any{
		"path":   path,
		"title":  "About",
		"format": "html",
		"draft":  true,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading document: %v", err)
	}
	want := "---\ntitle: About\nformat: html\ndraft: true\n---\n"
	if !strings.HasPrefix(string(content), want) {
		t.Fatalf("content = %q, want prefix %q", content, want)
	}
}

func TestCreateDocumentExistingFileFails(t *testing.T) {
	reg := newCatalog(t, Deps{})
	path := filepath.Join(t.TempDir(), "about.qmd")
	if err := os.WriteFile(path, []byte("keep me"), 0o644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	_, err := reg.Execute(context.Background(), "create_document", map[string]any{
		"path":  path,
		"title": "About",
	})
	if tool.ErrorCode(err) != tool.ErrorCodeIOFailure {
		t.Fatalf("error code = %q, want IO_FAILURE", tool.ErrorCode(err))
	}
	content, _ := os.ReadFile(path)
	if string(content) != "keep me" {
		t.Fatalf("existing file overwritten: %q", content)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"My Site":            "my-site",
		"Hello,  World!":     "hello-world",
		"  Già -- pronto  ":  "gi-pronto",
		"2024 Annual Report": "2024-annual-report",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
