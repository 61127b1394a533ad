package gen

import (
	"fmt"
	"slices"
	"strings"
)

// CodeChunk renders an executable code chunk for a document body: a fenced
// block with the language in braces, option comments in name-sorted order,
// then the source verbatim.
func CodeChunk(language, source string, options map[string]any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "```{%s}\n", language)

	names := make([]string, 0, len(options))
	for name := range options {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(&b, "#| %s: %v\n", name, options[name])
	}

	b.WriteString(source)
	if !strings.HasSuffix(source, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```\n")
	return b.String()
}
