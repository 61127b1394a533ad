package tools

import (
	"log/slog"

	"github.com/quillworks/quill/collab"
	"github.com/quillworks/quill/tool"
)

// Deps carries the external collaborators the catalog needs. Nil fields are
// allowed: tools depending on an absent collaborator still register and
// validate, but fail execution with COLLABORATOR_FAILURE.
type Deps struct {
	Renderer  *collab.Renderer
	Hosting   collab.Hosting
	Assistant collab.Assistant
	Logger    *slog.Logger
}

func (d Deps) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

// Register adds the full catalog to reg in stable order. It fails on the
// first registration error, which can only be a duplicate name.
func Register(reg *tool.Registry, deps Deps) error {
	catalog := []tool.Tool{
		&createProjectTool{},
		&createDocumentTool{},
		&updateFrontMatterTool{},
		&setDocumentFormatTool{},
		&addNavigationTool{},
		&setThemeTool{},
		&addListingTool{},
		&insertCodeChunkTool{},
		&generateThemeTool{},
		&createPublishWorkflowTool{},
		&generateScheduleTool{},
		&renderProjectTool{deps: deps},
		&installExtensionTool{deps: deps},
		&publishSiteTool{deps: deps},
		&generateAltTextTool{deps: deps},
		&draftDocumentTool{deps: deps},
	}
	for _, t := range catalog {
		if err := reg.Register(t); err != nil {
			return err
		}
	}
	return nil
}
