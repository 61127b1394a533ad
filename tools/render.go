package tools

import (
	"context"

	"github.com/quillworks/quill/tool"
)

type renderProjectTool struct {
	deps Deps
}

func (*renderProjectTool) Name() string { return "render_project" }

func (*renderProjectTool) Description() string {
	return "Render a project or document through the external rendering engine."
}

func (*renderProjectTool) Params() []tool.ParamSpec {
	return []tool.ParamSpec{
		{Name: "path", Type: tool.TypeString, Required: true},
		{Name: "format", Type: tool.TypeString, Description: "Render a single format instead of all configured ones"},
	}
}

func (t *renderProjectTool) Execute(ctx context.Context, params map[string]any) (map[string]any, error) {
	if t.deps.Renderer == nil {
		return nil, tool.NewError(tool.ErrorCodeCollaboratorFailure, "no rendering engine configured")
	}
	path := tool.StringParam(params, "path")
	format := tool.StringParam(params, "format")

	t.deps.logger().Debug("rendering", "path", path, "format", format)
	result, err := t.deps.Renderer.Render(ctx, path, format)
	if err != nil {
		return nil, wrapCollabErr(err, "render")
	}
	return map[string]any{
		"path":        path,
		"command":     result.Command,
		"duration_ms": result.DurationMS,
		"stdout":      result.Stdout,
	}, nil
}

type installExtensionTool struct {
	deps Deps
}

func (*installExtensionTool) Name() string { return "install_extension" }

func (*installExtensionTool) Description() string {
	return "Install an extension through the rendering engine's package manager."
}

func (*installExtensionTool) Params() []tool.ParamSpec {
	return []tool.ParamSpec{
		{Name: "name", Type: tool.TypeString, Required: true, Description: "Extension identifier, e.g. quarto-ext/fontawesome"},
	}
}

func (t *installExtensionTool) Execute(ctx context.Context, params map[string]any) (map[string]any, error) {
	if t.deps.Renderer == nil {
		return nil, tool.NewError(tool.ErrorCodeCollaboratorFailure, "no rendering engine configured")
	}
	name := tool.StringParam(params, "name")

	result, err := t.deps.Renderer.AddExtension(ctx, name)
	if err != nil {
		return nil, wrapCollabErr(err, "extension install")
	}
	return map[string]any{
		"extension":   name,
		"command":     result.Command,
		"duration_ms": result.DurationMS,
	}, nil
}
