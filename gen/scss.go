package gen

import (
	"fmt"
	"strings"
)

// ThemeColors are the color inputs for a generated SCSS theme. Empty fields
// are omitted from the output.
type ThemeColors struct {
	Primary    string
	Secondary  string
	Background string
	Foreground string
	Link       string
}

// ThemeFonts are the font-family inputs for a generated SCSS theme.
type ThemeFonts struct {
	Base      string
	Heading   string
	Monospace string
}

// Theme describes one generated SCSS theme file.
type Theme struct {
	Name   string
	Colors ThemeColors
	Fonts  ThemeFonts
}

// SCSS renders a theme as stylesheet text with a defaults layer (variable
// declarations) and a rules layer (derived styling). Output is stable: fields
// always emit in declaration order.
func SCSS(theme Theme) string {
	var b strings.Builder

	fmt.Fprintf(&b, "// %s theme (generated)\n\n", theme.Name)
	b.WriteString("/*-- scss:defaults --*/\n\n")

	writeVar := func(name, value string) {
		if value != "" {
			fmt.Fprintf(&b, "$%s: %s;\n", name, value)
		}
	}
	writeVar("primary", theme.Colors.Primary)
	writeVar("secondary", theme.Colors.Secondary)
	writeVar("body-bg", theme.Colors.Background)
	writeVar("body-color", theme.Colors.Foreground)
	writeVar("link-color", theme.Colors.Link)
	writeVar("font-family-base", theme.Fonts.Base)
	writeVar("headings-font-family", theme.Fonts.Heading)
	writeVar("font-family-monospace", theme.Fonts.Monospace)

	b.WriteString("\n/*-- scss:rules --*/\n\n")
	if theme.Colors.Primary != "" {
		b.WriteString(".navbar {\n  background-color: $primary;\n}\n")
	}
	if theme.Fonts.Heading != "" {
		b.WriteString("h1, h2, h3 {\n  font-family: $headings-font-family;\n}\n")
	}
	return b.String()
}
