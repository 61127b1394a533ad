package tools

import (
	"context"
	"slices"
	"strings"

	"github.com/quillworks/quill/frontmatter"
	"github.com/quillworks/quill/gen"
	"github.com/quillworks/quill/tool"
)

type updateFrontMatterTool struct{}

func (*updateFrontMatterTool) Name() string { return "update_front_matter" }

func (*updateFrontMatterTool) Description() string {
	return "Set top-level front-matter fields on a document. Addressed fields are overwritten; everything else is untouched."
}

func (*updateFrontMatterTool) Params() []tool.ParamSpec {
	return []tool.ParamSpec{
		{Name: "path", Type: tool.TypeString, Required: true},
		{Name: "fields", Type: tool.TypeObject, Required: true, Description: "Field name to value mapping applied to the header"},
	}
}

func (*updateFrontMatterTool) ValidateParams(params map[string]any) []tool.Diagnostic {
	fields := tool.ObjectParam(params, "fields")
	if fields != nil && len(fields) == 0 {
		return []tool.Diagnostic{{
			Field:    "fields",
			Code:     "EMPTY_OBJECT",
			Severity: tool.SeverityError,
			Message:  "fields must contain at least one entry",
		}}
	}
	return nil
}

func (t *updateFrontMatterTool) Execute(ctx context.Context, params map[string]any) (map[string]any, error) {
	path := tool.StringParam(params, "path")
	fields := tool.ObjectParam(params, "fields")

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	slices.Sort(names)

	content, err := frontmatter.UpdateFile(path, func(doc *frontmatter.Document) error {
		for _, name := range names {
			if err := doc.Set(name, fields[name]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, wrapEngineErr(err, path)
	}

	updated := make([]any, len(names))
	for i, name := range names {
		updated[i] = name
	}
	return map[string]any{
		"path":    path,
		"content": content,
		"updated": updated,
	}, nil
}

type setDocumentFormatTool struct{}

func (*setDocumentFormatTool) Name() string { return "set_document_format" }

func (*setDocumentFormatTool) Description() string {
	return "Set the format field of a document's front matter."
}

func (*setDocumentFormatTool) Params() []tool.ParamSpec {
	return []tool.ParamSpec{
		{Name: "path", Type: tool.TypeString, Required: true},
		{Name: "format", Type: tool.TypeString, Required: true, Description: "Format value, e.g. html, pdf, dashboard"},
	}
}

func (t *setDocumentFormatTool) Execute(ctx context.Context, params map[string]any) (map[string]any, error) {
	path := tool.StringParam(params, "path")
	format := tool.StringParam(params, "format")

	content, err := frontmatter.UpdateFile(path, func(doc *frontmatter.Document) error {
		return doc.Set("format", format)
	})
	if err != nil {
		return nil, wrapEngineErr(err, path)
	}
	return map[string]any{
		"path":    path,
		"content": content,
		"format":  format,
	}, nil
}

type addNavigationTool struct{}

func (*addNavigationTool) Name() string { return "add_navigation" }

func (*addNavigationTool) Description() string {
	return "Replace one navigation section under the website header block, preserving sibling sections."
}

func (*addNavigationTool) Params() []tool.ParamSpec {
	return []tool.ParamSpec{
		{Name: "path", Type: tool.TypeString, Required: true},
		{Name: "section", Type: tool.TypeString, Required: true, Description: "Navigation section name, e.g. navbar or sidebar"},
		{Name: "items", Type: tool.TypeAny, Required: true, Description: "The section's new value, typically a mapping or list"},
	}
}

func (t *addNavigationTool) Execute(ctx context.Context, params map[string]any) (map[string]any, error) {
	path := tool.StringParam(params, "path")
	section := tool.StringParam(params, "section")

	content, err := frontmatter.UpdateFile(path, func(doc *frontmatter.Document) error {
		return doc.MergeSection("website", map[string]any{section: params["items"]})
	})
	if err != nil {
		return nil, wrapEngineErr(err, path)
	}
	return map[string]any{
		"path":    path,
		"content": content,
		"section": section,
	}, nil
}

type setThemeTool struct{}

func (*setThemeTool) Name() string { return "set_theme" }

func (*setThemeTool) Description() string {
	return "Replace the document's theme list wholesale. Callers wanting to append must send the full resulting list."
}

func (*setThemeTool) Params() []tool.ParamSpec {
	return []tool.ParamSpec{
		{Name: "path", Type: tool.TypeString, Required: true},
		{Name: "themes", Type: tool.TypeArray, Required: true, Items: &tool.ParamSpec{Type: tool.TypeString}},
	}
}

func (t *setThemeTool) Execute(ctx context.Context, params map[string]any) (map[string]any, error) {
	path := tool.StringParam(params, "path")
	themes := tool.ListParam(params, "themes")

	content, err := frontmatter.UpdateFile(path, func(doc *frontmatter.Document) error {
		return doc.Set("theme", themes)
	})
	if err != nil {
		return nil, wrapEngineErr(err, path)
	}
	return map[string]any{
		"path":    path,
		"content": content,
		"themes":  themes,
	}, nil
}

type addListingTool struct{}

func (*addListingTool) Name() string { return "add_listing" }

func (*addListingTool) Description() string {
	return "Set the listing block of a document's front matter."
}

func (*addListingTool) Params() []tool.ParamSpec {
	return []tool.ParamSpec{
		{Name: "path", Type: tool.TypeString, Required: true},
		{Name: "listing", Type: tool.TypeObject, Required: true, Description: "Listing configuration mapping"},
	}
}

func (t *addListingTool) Execute(ctx context.Context, params map[string]any) (map[string]any, error) {
	path := tool.StringParam(params, "path")
	listing := tool.ObjectParam(params, "listing")

	content, err := frontmatter.UpdateFile(path, func(doc *frontmatter.Document) error {
		return doc.Set("listing", listing)
	})
	if err != nil {
		return nil, wrapEngineErr(err, path)
	}
	return map[string]any{
		"path":    path,
		"content": content,
	}, nil
}

type insertCodeChunkTool struct{}

func (*insertCodeChunkTool) Name() string { return "insert_code_chunk" }

func (*insertCodeChunkTool) Description() string {
	return "Append an executable code chunk to a document's body."
}

func (*insertCodeChunkTool) Params() []tool.ParamSpec {
	return []tool.ParamSpec{
		{Name: "path", Type: tool.TypeString, Required: true},
		{Name: "language", Type: tool.TypeString, Required: true},
		{Name: "code", Type: tool.TypeString, Required: true},
		{Name: "options", Type: tool.TypeObject, Description: "Chunk options emitted as #| comments"},
	}
}

func (t *insertCodeChunkTool) Execute(ctx context.Context, params map[string]any) (map[string]any, error) {
	path := tool.StringParam(params, "path")
	chunk := gen.CodeChunk(
		tool.StringParam(params, "language"),
		tool.StringParam(params, "code"),
		tool.ObjectParam(params, "options"),
	)

	content, err := frontmatter.UpdateFile(path, func(doc *frontmatter.Document) error {
		if doc.Body != "" && !strings.HasSuffix(doc.Body, "\n") {
			doc.Body += "\n"
		}
		doc.Body += "\n" + chunk
		return nil
	})
	if err != nil {
		return nil, wrapEngineErr(err, path)
	}
	return map[string]any{
		"path":    path,
		"content": content,
		"chunk":   chunk,
	}, nil
}
