package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quillworks/quill/frontmatter"
	"github.com/quillworks/quill/tool"
)

var projectTypes = map[string]struct{}{
	"website": {},
	"book":    {},
	"blog":    {},
}

type projectConfig struct {
	Project struct {
		Type      string `yaml:"type"`
		OutputDir string `yaml:"output-dir"`
	} `yaml:"project"`
	Website struct {
		Title string `yaml:"title"`
	} `yaml:"website"`
}

type createProjectTool struct{}

func (*createProjectTool) Name() string { return "create_project" }

func (*createProjectTool) Description() string {
	return "Create a new project directory with a configuration file and an index document. Fails if the directory already exists."
}

func (*createProjectTool) Params() []tool.ParamSpec {
	return []tool.ParamSpec{
		{Name: "name", Type: tool.TypeString, Required: true, Description: "Project title"},
		{Name: "type", Type: tool.TypeString, Required: true, Description: "Project type: website, book, or blog"},
		{Name: "path", Type: tool.TypeString, Description: "Directory to create; defaults to a slug of the name"},
	}
}

func (*createProjectTool) ValidateParams(params map[string]any) []tool.Diagnostic {
	projectType := tool.StringParam(params, "type")
	if projectType == "" {
		return nil // the generic validator already reported the absence
	}
	if _, ok := projectTypes[projectType]; !ok {
		return []tool.Diagnostic{{
			Field:    "type",
			Code:     "UNSUPPORTED_VALUE",
			Severity: tool.SeverityError,
			Message:  fmt.Sprintf("project type must be website, book, or blog, got %q", projectType),
		}}
	}
	return nil
}

func (t *createProjectTool) Execute(ctx context.Context, params map[string]any) (map[string]any, error) {
	name := tool.StringParam(params, "name")
	projectType := tool.StringParam(params, "type")
	dir := tool.StringParam(params, "path")
	if dir == "" {
		dir = slugify(name)
	}

	// Creating an existing project is an error, not an overwrite.
	if err := os.Mkdir(dir, 0o755); err != nil {
		if os.IsExist(err) {
			return nil, tool.WrapError(tool.ErrorCodeIOFailure, err, "directory %q already exists", dir)
		}
		return nil, tool.WrapError(tool.ErrorCodeIOFailure, err, "creating project directory %q", dir)
	}

	var cfg projectConfig
	cfg.Project.Type = projectType
	cfg.Project.OutputDir = "_site"
	cfg.Website.Title = name
	cfgBytes, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, tool.WrapError(tool.ErrorCodeIOFailure, err, "encoding project config")
	}
	configPath := filepath.Join(dir, "_quill.yml")
	if err := os.WriteFile(configPath, cfgBytes, 0o644); err != nil {
		return nil, tool.WrapError(tool.ErrorCodeIOFailure, err, "writing %q", configPath)
	}

	indexPath := filepath.Join(dir, "index.qmd")
	index := &frontmatter.Document{Body: fmt.Sprintf("\n%s\n", name)}
	if err := index.Set("title", name); err != nil {
		return nil, tool.WrapError(tool.ErrorCodeIOFailure, err, "building index document")
	}
	if err := index.WriteFile(indexPath); err != nil {
		return nil, tool.WrapError(tool.ErrorCodeIOFailure, err, "writing %q", indexPath)
	}

	return map[string]any{
		"project_dir": dir,
		"files":       []any{configPath, indexPath},
	}, nil
}

type createDocumentTool struct{}

func (*createDocumentTool) Name() string { return "create_document" }

func (*createDocumentTool) Description() string {
	return "Create a new YAML-fronted document. Fails if the file already exists."
}

func (*createDocumentTool) Params() []tool.ParamSpec {
	return []tool.ParamSpec{
		{Name: "path", Type: tool.TypeString, Required: true},
		{Name: "title", Type: tool.TypeString, Required: true},
		{Name: "format", Type: tool.TypeString, Description: "Output format header value, e.g. html or dashboard"},
		{Name: "draft", Type: tool.TypeBoolean},
	}
}

func (t *createDocumentTool) Execute(ctx context.Context, params map[string]any) (map[string]any, error) {
	path := tool.StringParam(params, "path")
	title := tool.StringParam(params, "title")

	doc := &frontmatter.Document{Body: "\n"}
	if err := doc.Set("title", title); err != nil {
		return nil, tool.WrapError(tool.ErrorCodeIOFailure, err, "building document header")
	}
	if format := tool.StringParam(params, "format"); format != "" {
		if err := doc.Set("format", format); err != nil {
			return nil, tool.WrapError(tool.ErrorCodeIOFailure, err, "building document header")
		}
	}
	if tool.BoolParam(params, "draft", false) {
		if err := doc.Set("draft", true); err != nil {
			return nil, tool.WrapError(tool.ErrorCodeIOFailure, err, "building document header")
		}
	}

	content, err := doc.Serialize()
	if err != nil {
		return nil, tool.WrapError(tool.ErrorCodeIOFailure, err, "serializing document")
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil, tool.WrapError(tool.ErrorCodeIOFailure, err, "document %q already exists", path)
		}
		return nil, tool.WrapError(tool.ErrorCodeIOFailure, err, "creating %q", path)
	}
	defer file.Close()
	if _, err := file.WriteString(content); err != nil {
		return nil, tool.WrapError(tool.ErrorCodeIOFailure, err, "writing %q", path)
	}

	return map[string]any{
		"path":    path,
		"content": content,
	}, nil
}

// slugify lowercases a title and replaces runs of non-alphanumerics with a
// single hyphen.
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
