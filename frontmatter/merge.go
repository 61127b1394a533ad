package frontmatter

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Set overwrites a top-level header field, creating it when absent. The whole
// value is replaced: scalars, mappings, and sequences alike (sequence append
// semantics belong to callers). Existing keys keep their position; new keys
// append at the end of the header.
func (d *Document) Set(key string, value any) error {
	valueNode, err := encodeValue(value)
	if err != nil {
		return fmt.Errorf("frontmatter: encode value for %q: %w", key, err)
	}

	d.ensureHeader()
	for i := 0; i+1 < len(d.header.Content); i += 2 {
		if d.header.Content[i].Value == key {
			d.header.Content[i+1] = valueNode
			return nil
		}
	}
	d.header.Content = append(d.header.Content, scalarKey(key), valueNode)
	return nil
}

// MergeSection shallow-merges fields into the nested mapping held under key,
// one level deep: sibling sub-keys are preserved and only the addressed
// sub-keys are replaced. The section is created when absent; a non-mapping
// value under key is replaced by a fresh mapping. Fields are applied in
// name-sorted order so repeated merges serialize identically.
func (d *Document) MergeSection(key string, fields map[string]any) error {
	d.ensureHeader()

	section := d.lookup(key)
	if section == nil || section.Kind != yaml.MappingNode {
		section = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		attached := false
		for i := 0; i+1 < len(d.header.Content); i += 2 {
			if d.header.Content[i].Value == key {
				d.header.Content[i+1] = section
				attached = true
				break
			}
		}
		if !attached {
			d.header.Content = append(d.header.Content, scalarKey(key), section)
		}
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		valueNode, err := encodeValue(fields[name])
		if err != nil {
			return fmt.Errorf("frontmatter: encode value for %q.%q: %w", key, name, err)
		}
		replaced := false
		for i := 0; i+1 < len(section.Content); i += 2 {
			if section.Content[i].Value == name {
				section.Content[i+1] = valueNode
				replaced = true
				break
			}
		}
		if !replaced {
			section.Content = append(section.Content, scalarKey(name), valueNode)
		}
	}
	return nil
}

// Delete removes a top-level header field and reports whether it was present.
func (d *Document) Delete(key string) bool {
	if d.header == nil {
		return false
	}
	for i := 0; i+1 < len(d.header.Content); i += 2 {
		if d.header.Content[i].Value == key {
			d.header.Content = append(d.header.Content[:i], d.header.Content[i+2:]...)
			return true
		}
	}
	return false
}

func (d *Document) ensureHeader() {
	if d.header == nil {
		d.header = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	}
}

func encodeValue(value any) (*yaml.Node, error) {
	node := &yaml.Node{}
	if err := node.Encode(value); err != nil {
		return nil, err
	}
	return node, nil
}

func scalarKey(key string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
}
