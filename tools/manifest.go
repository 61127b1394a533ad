package tools

import (
	_ "embed"

	"github.com/quillworks/quill/tool"
)

//go:embed manifest.json
var defaultManifestJSON []byte

// DefaultManifest returns the catalog's own manifest: the tool names a
// standard deployment expects. Deployments maintaining their own manifest
// file load it with tool.LoadManifest instead.
func DefaultManifest() tool.Manifest {
	manifest, err := tool.ParseManifest(defaultManifestJSON)
	if err != nil {
		// The embedded manifest is part of the build; failing to parse it is
		// a programming error.
		panic(err)
	}
	return manifest
}
