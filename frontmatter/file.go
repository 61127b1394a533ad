package frontmatter

import (
	"fmt"
	"io/fs"
	"os"
)

// ErrNotExist is reported by Load and UpdateFile when the target file is
// absent. It wraps fs.ErrNotExist, so errors.Is(err, fs.ErrNotExist) holds.
var ErrNotExist = fmt.Errorf("frontmatter: document does not exist: %w", fs.ErrNotExist)

// Load reads and parses a document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotExist, path)
		}
		return nil, fmt.Errorf("frontmatter: reading %s: %w", path, err)
	}
	return Parse(string(data))
}

// WriteFile serializes the document and writes it in one step. The complete
// new content is built in memory first, so a serialization failure never
// leaves a half-written file. No cross-process atomicity is promised.
func (d *Document) WriteFile(path string) error {
	content, err := d.Serialize()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("frontmatter: writing %s: %w", path, err)
	}
	return nil
}

// UpdateFile loads a document, applies mutate, and writes the result back.
// It returns the serialized content so callers can report exactly what was
// written. Any failure from load, mutate, or serialize aborts before the
// write occurs.
func UpdateFile(path string, mutate func(*Document) error) (string, error) {
	doc, err := Load(path)
	if err != nil {
		return "", err
	}
	if err := mutate(doc); err != nil {
		return "", err
	}
	content, err := doc.Serialize()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("frontmatter: writing %s: %w", path, err)
	}
	return content, nil
}
