package tools

import (
	"context"
	"fmt"
	"os"

	"github.com/quillworks/quill/frontmatter"
	"github.com/quillworks/quill/tool"
)

const altTextSystemPrompt = "You write concise, descriptive alt text for images. " +
	"Answer with the alt text only: one sentence, no quotes, no preamble."

const draftSystemPrompt = "You draft well-structured articles in Markdown. " +
	"Start directly with body content; the document title lives in front matter, not in your output."

type generateAltTextTool struct {
	deps Deps
}

func (*generateAltTextTool) Name() string { return "generate_alt_text" }

func (*generateAltTextTool) Description() string {
	return "Generate alt text for an image using the configured AI provider."
}

func (*generateAltTextTool) Params() []tool.ParamSpec {
	return []tool.ParamSpec{
		{Name: "image", Type: tool.TypeString, Required: true, Description: "Image path or URL"},
		{Name: "context", Type: tool.TypeString, Description: "Surrounding text to inform the description"},
	}
}

func (t *generateAltTextTool) Execute(ctx context.Context, params map[string]any) (map[string]any, error) {
	if t.deps.Assistant == nil {
		return nil, tool.NewError(tool.ErrorCodeCollaboratorFailure, "no AI provider configured")
	}
	image := tool.StringParam(params, "image")

	prompt := fmt.Sprintf("Write alt text for the image %q.", image)
	if docContext := tool.StringParam(params, "context"); docContext != "" {
		prompt += "\n\nIt appears alongside this text:\n" + docContext
	}

	altText, err := t.deps.Assistant.Generate(ctx, altTextSystemPrompt, prompt)
	if err != nil {
		return nil, wrapCollabErr(err, "alt text generation")
	}
	return map[string]any{
		"image":    image,
		"alt_text": altText,
	}, nil
}

type draftDocumentTool struct {
	deps Deps
}

func (*draftDocumentTool) Name() string { return "draft_document" }

func (*draftDocumentTool) Description() string {
	return "Draft a new YAML-fronted document on a topic using the configured AI provider. Fails if the file already exists."
}

func (*draftDocumentTool) Params() []tool.ParamSpec {
	return []tool.ParamSpec{
		{Name: "path", Type: tool.TypeString, Required: true},
		{Name: "topic", Type: tool.TypeString, Required: true},
		{Name: "style", Type: tool.TypeString, Description: "Optional tone or structure guidance"},
	}
}

func (t *draftDocumentTool) Execute(ctx context.Context, params map[string]any) (map[string]any, error) {
	if t.deps.Assistant == nil {
		return nil, tool.NewError(tool.ErrorCodeCollaboratorFailure, "no AI provider configured")
	}
	path := tool.StringParam(params, "path")
	topic := tool.StringParam(params, "topic")

	if _, err := os.Stat(path); err == nil {
		return nil, tool.NewError(tool.ErrorCodeIOFailure, "document %q already exists", path)
	}

	prompt := "Draft an article about: " + topic
	if style := tool.StringParam(params, "style"); style != "" {
		prompt += "\n\nStyle guidance: " + style
	}
	body, err := t.deps.Assistant.Generate(ctx, draftSystemPrompt, prompt)
	if err != nil {
		return nil, wrapCollabErr(err, "document drafting")
	}

	doc := &frontmatter.Document{Body: "\n" + body + "\n"}
	if err := doc.Set("title", topic); err != nil {
		return nil, tool.WrapError(tool.ErrorCodeIOFailure, err, "building document header")
	}
	if err := doc.Set("draft", true); err != nil {
		return nil, tool.WrapError(tool.ErrorCodeIOFailure, err, "building document header")
	}
	if err := doc.WriteFile(path); err != nil {
		return nil, tool.WrapError(tool.ErrorCodeIOFailure, err, "writing %q", path)
	}

	content, err := doc.Serialize()
	if err != nil {
		return nil, tool.WrapError(tool.ErrorCodeIOFailure, err, "serializing document")
	}
	return map[string]any{
		"path":    path,
		"content": content,
	}, nil
}
