package tool

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
)

// Manifest is the externally maintained catalog of tool names a deployment
// expects. How the manifest file is produced is out of scope here; the
// registry only compares itself against it.
type Manifest struct {
	Version string   `json:"version,omitempty"`
	Tools   []string `json:"tools"`
}

// ManifestReport is the outcome of comparing a registry against a manifest.
type ManifestReport struct {
	Complete bool     `json:"complete"`
	Missing  []string `json:"missing"` // in the manifest, not registered
	Extra    []string `json:"extra"`   // registered, not in the manifest
}

// ParseManifest decodes a JSON manifest document.
func ParseManifest(data []byte) (Manifest, error) {
	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return Manifest{}, fmt.Errorf("tool: decode manifest: %w", err)
	}
	return manifest, nil
}

// LoadManifest reads and decodes a JSON manifest file.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Manifest{}, NewError(ErrorCodeNotFound, "manifest file %q does not exist", path)
		}
		return Manifest{}, WrapError(ErrorCodeIOFailure, err, "reading manifest %q", path)
	}
	return ParseManifest(data)
}

// ValidateAgainstManifest compares registered names with the manifest's
// expectations. Missing and Extra are name-sorted for deterministic output.
func (r *Registry) ValidateAgainstManifest(manifest Manifest) ManifestReport {
	registered := make(map[string]struct{}, len(r.tools))
	for name := range r.tools {
		registered[name] = struct{}{}
	}

	expected := make(map[string]struct{}, len(manifest.Tools))
	report := ManifestReport{Missing: []string{}, Extra: []string{}}
	for _, name := range manifest.Tools {
		clean := strings.TrimSpace(name)
		if clean == "" {
			continue
		}
		expected[clean] = struct{}{}
		if _, ok := registered[clean]; !ok {
			report.Missing = append(report.Missing, clean)
		}
	}
	for name := range registered {
		if _, ok := expected[name]; !ok {
			report.Extra = append(report.Extra, name)
		}
	}

	slices.Sort(report.Missing)
	slices.Sort(report.Extra)
	report.Complete = len(report.Missing) == 0 && len(report.Extra) == 0
	return report
}
