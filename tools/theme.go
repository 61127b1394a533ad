package tools

import (
	"context"
	"os"
	"path/filepath"

	"github.com/quillworks/quill/gen"
	"github.com/quillworks/quill/tool"
)

type generateThemeTool struct{}

func (*generateThemeTool) Name() string { return "generate_theme" }

func (*generateThemeTool) Description() string {
	return "Generate an SCSS theme from colors and fonts; writes <name>.scss when dir is given and always returns the content."
}

func (*generateThemeTool) Params() []tool.ParamSpec {
	return []tool.ParamSpec{
		{Name: "name", Type: tool.TypeString, Required: true},
		{Name: "colors", Type: tool.TypeObject, Required: true, Properties: map[string]tool.ParamSpec{
			"primary":    {Type: tool.TypeString},
			"secondary":  {Type: tool.TypeString},
			"background": {Type: tool.TypeString},
			"foreground": {Type: tool.TypeString},
			"link":       {Type: tool.TypeString},
		}},
		{Name: "fonts", Type: tool.TypeObject, Properties: map[string]tool.ParamSpec{
			"base":      {Type: tool.TypeString},
			"heading":   {Type: tool.TypeString},
			"monospace": {Type: tool.TypeString},
		}},
		{Name: "dir", Type: tool.TypeString, Description: "Directory to write the theme file into"},
	}
}

func (t *generateThemeTool) Execute(ctx context.Context, params map[string]any) (map[string]any, error) {
	name := tool.StringParam(params, "name")
	colors := tool.ObjectParam(params, "colors")
	fonts := tool.ObjectParam(params, "fonts")

	theme := gen.Theme{
		Name: name,
		Colors: gen.ThemeColors{
			Primary:    stringField(colors, "primary"),
			Secondary:  stringField(colors, "secondary"),
			Background: stringField(colors, "background"),
			Foreground: stringField(colors, "foreground"),
			Link:       stringField(colors, "link"),
		},
		Fonts: gen.ThemeFonts{
			Base:      stringField(fonts, "base"),
			Heading:   stringField(fonts, "heading"),
			Monospace: stringField(fonts, "monospace"),
		},
	}
	content := gen.SCSS(theme)

	outputs := map[string]any{"content": content}
	if dir := tool.StringParam(params, "dir"); dir != "" {
		path := filepath.Join(dir, name+".scss")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return nil, tool.WrapError(tool.ErrorCodeIOFailure, err, "writing theme %q", path)
		}
		outputs["path"] = path
	}
	return outputs, nil
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
