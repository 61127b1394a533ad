package frontmatter

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter is the exact trimmed content of a header boundary line.
const Delimiter = "---"

// ParseError reports a malformed header block. Line numbers are 1-based and
// refer to the original document, not the extracted header region.
type ParseError struct {
	StartLine int
	EndLine   int
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed front matter (lines %d-%d): %v", e.StartLine, e.EndLine, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Document is a parsed text document: an ordered YAML header plus an opaque
// body. The zero value is a document with no header and an empty body.
type Document struct {
	header *yaml.Node // mapping node; nil means empty header
	Body   string
}

// Parse splits text into a header mapping and a body.
//
// The first line whose trimmed content is the delimiter marks the header
// start and the second marks its end. When fewer than two delimiter lines
// exist the whole input is the body and the header is empty; documents
// without a header are legitimate, so this is not an error. Malformed header
// content fails with a *ParseError and nothing is partially applied.
func Parse(text string) (*Document, error) {
	lines := strings.Split(text, "\n")

	start, end := -1, -1
	for i, line := range lines {
		if strings.TrimSpace(line) != Delimiter {
			continue
		}
		if start == -1 {
			start = i
			continue
		}
		end = i
		break
	}
	if start == -1 || end == -1 {
		return &Document{Body: text}, nil
	}

	headerText := strings.Join(lines[start+1:end], "\n")
	body := strings.Join(lines[end+1:], "\n")

	header, err := decodeHeader(headerText)
	if err != nil {
		return nil, &ParseError{StartLine: start + 2, EndLine: end, Err: err}
	}
	return &Document{header: header, Body: body}, nil
}

func decodeHeader(text string) (*yaml.Node, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("header must be a mapping, got %s", kindName(root.Kind))
	}
	return root, nil
}

// Serialize re-emits the document: delimiter line, the header mapping encoded
// with two-space indent and its current key order, delimiter line, then the
// body exactly as held. An empty header encodes to nothing between the
// delimiters.
func (d *Document) Serialize() (string, error) {
	var b strings.Builder
	b.WriteString(Delimiter)
	b.WriteString("\n")

	if d.header != nil && len(d.header.Content) > 0 {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(d.header); err != nil {
			return "", fmt.Errorf("frontmatter: encode header: %w", err)
		}
		if err := enc.Close(); err != nil {
			return "", fmt.Errorf("frontmatter: encode header: %w", err)
		}
		b.Write(buf.Bytes())
	}

	b.WriteString(Delimiter)
	b.WriteString("\n")
	b.WriteString(d.Body)
	return b.String(), nil
}

// Header decodes the header into a plain map. The copy is detached: mutating
// it does not touch the document. An empty header yields an empty, non-nil
// map so callers never see a nil header.
func (d *Document) Header() map[string]any {
	header := make(map[string]any)
	if d.header == nil {
		return header
	}
	// Decoding a mapping node into a map cannot fail for nodes this package
	// constructs or accepts.
	_ = d.header.Decode(&header)
	return header
}

// Keys returns top-level header keys in document order.
func (d *Document) Keys() []string {
	if d.header == nil {
		return nil
	}
	keys := make([]string, 0, len(d.header.Content)/2)
	for i := 0; i+1 < len(d.header.Content); i += 2 {
		keys = append(keys, d.header.Content[i].Value)
	}
	return keys
}

// Get returns the decoded value of a top-level header field.
func (d *Document) Get(key string) (any, bool) {
	valueNode := d.lookup(key)
	if valueNode == nil {
		return nil, false
	}
	var value any
	if err := valueNode.Decode(&value); err != nil {
		return nil, false
	}
	return value, true
}

func (d *Document) lookup(key string) *yaml.Node {
	if d.header == nil {
		return nil
	}
	for i := 0; i+1 < len(d.header.Content); i += 2 {
		if d.header.Content[i].Value == key {
			return d.header.Content[i+1]
		}
	}
	return nil
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
