package tools

import (
	"errors"

	"github.com/quillworks/quill/collab"
	"github.com/quillworks/quill/frontmatter"
	"github.com/quillworks/quill/tool"
)

// wrapEngineErr maps front-matter engine failures onto the tool error
// taxonomy so every document tool reports them the same way.
func wrapEngineErr(err error, path string) error {
	var parseErr *frontmatter.ParseError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, frontmatter.ErrNotExist):
		return tool.WrapError(tool.ErrorCodeNotFound, err, "document %q does not exist", path)
	case errors.As(err, &parseErr):
		return tool.WrapError(tool.ErrorCodeParseFailure, err, "document %q has malformed front matter", path).
			WithDetails(map[string]any{
				"start_line": parseErr.StartLine,
				"end_line":   parseErr.EndLine,
			})
	default:
		return tool.WrapError(tool.ErrorCodeIOFailure, err, "updating document %q", path)
	}
}

// wrapCollabErr maps collaborator failures (subprocess exits, hosting API
// responses) onto COLLABORATOR_FAILURE with their native details attached.
func wrapCollabErr(err error, what string) error {
	if err == nil {
		return nil
	}
	wrapped := tool.WrapError(tool.ErrorCodeCollaboratorFailure, err, "%s failed", what)

	var exitErr *collab.ExitError
	if errors.As(err, &exitErr) {
		return wrapped.WithDetails(map[string]any{
			"command":   exitErr.Command,
			"exit_code": exitErr.ExitCode,
		})
	}
	var hostErr *collab.HostingError
	if errors.As(err, &hostErr) {
		return wrapped.WithDetails(map[string]any{
			"status_code": hostErr.StatusCode,
		})
	}
	return wrapped
}
