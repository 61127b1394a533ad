package tools

import (
	"context"

	"github.com/google/uuid"

	"github.com/quillworks/quill/collab"
	"github.com/quillworks/quill/tool"
)

type publishSiteTool struct {
	deps Deps
}

func (*publishSiteTool) Name() string { return "publish_site" }

func (*publishSiteTool) Description() string {
	return "Publish a rendered site directory through the hosting provider's API."
}

func (*publishSiteTool) Params() []tool.ParamSpec {
	return []tool.ParamSpec{
		{Name: "dir", Type: tool.TypeString, Required: true, Description: "Rendered output directory, e.g. _site"},
		{Name: "site_id", Type: tool.TypeString, Description: "Existing site to deploy to"},
		{Name: "site_name", Type: tool.TypeString, Description: "Name for a new site when site_id is absent"},
	}
}

func (*publishSiteTool) ValidateParams(params map[string]any) []tool.Diagnostic {
	if tool.StringParam(params, "site_id") == "" && tool.StringParam(params, "site_name") == "" {
		return []tool.Diagnostic{{
			Field:    "site_id",
			Code:     "MISSING_TARGET",
			Severity: tool.SeverityError,
			Message:  "either site_id or site_name is required",
		}}
	}
	return nil
}

func (t *publishSiteTool) Execute(ctx context.Context, params map[string]any) (map[string]any, error) {
	if t.deps.Hosting == nil {
		return nil, tool.NewError(tool.ErrorCodeCollaboratorFailure, "no hosting provider configured")
	}

	req := collab.PublishRequest{
		SiteID:    tool.StringParam(params, "site_id"),
		SiteName:  tool.StringParam(params, "site_name"),
		SourceDir: tool.StringParam(params, "dir"),
		RequestID: uuid.NewString(),
	}
	deploy, err := t.deps.Hosting.Publish(ctx, req)
	if err != nil {
		return nil, wrapCollabErr(err, "publish")
	}

	t.deps.logger().Info("site published", "site_id", deploy.SiteID, "url", deploy.URL)
	return map[string]any{
		"deploy_id": deploy.DeployID,
		"site_id":   deploy.SiteID,
		"url":       deploy.URL,
		"state":     deploy.State,
	}, nil
}
