package tools

import (
	"context"
	"os"
	"path/filepath"

	"github.com/quillworks/quill/gen"
	"github.com/quillworks/quill/tool"
)

type generateScheduleTool struct{}

func (*generateScheduleTool) Name() string { return "generate_schedule" }

func (*generateScheduleTool) Description() string {
	return "Convert a natural-language time phrase into a cron expression."
}

func (*generateScheduleTool) Params() []tool.ParamSpec {
	return []tool.ParamSpec{
		{Name: "phrase", Type: tool.TypeString, Required: true, Description: "e.g. \"every day at 9am\""},
	}
}

func (t *generateScheduleTool) Execute(ctx context.Context, params map[string]any) (map[string]any, error) {
	phrase := tool.StringParam(params, "phrase")
	expr, err := gen.CronFromPhrase(phrase)
	if err != nil {
		return nil, tool.WrapError(tool.ErrorCodeExecutionFailed, err, "cannot derive a schedule from %q", phrase)
	}
	return map[string]any{"cron": expr}, nil
}

type createPublishWorkflowTool struct{}

func (*createPublishWorkflowTool) Name() string { return "create_publish_workflow" }

func (*createPublishWorkflowTool) Description() string {
	return "Write a publish workflow for the project, optionally with a scheduled re-render."
}

func (*createPublishWorkflowTool) Params() []tool.ParamSpec {
	return []tool.ParamSpec{
		{Name: "path", Type: tool.TypeString, Required: true, Description: "Project directory"},
		{Name: "target", Type: tool.TypeString, Required: true, Description: "gh-pages or netlify"},
		{Name: "branch", Type: tool.TypeString},
		{Name: "schedule", Type: tool.TypeString, Description: "Natural-language phrase, e.g. \"daily at 6am\""},
	}
}

func (*createPublishWorkflowTool) ValidateParams(params map[string]any) []tool.Diagnostic {
	target := tool.StringParam(params, "target")
	if target == "" || target == gen.TargetGitHubPages || target == gen.TargetNetlify {
		return nil
	}
	return []tool.Diagnostic{{
		Field:    "target",
		Code:     "UNSUPPORTED_VALUE",
		Severity: tool.SeverityError,
		Message:  "target must be gh-pages or netlify",
	}}
}

func (t *createPublishWorkflowTool) Execute(ctx context.Context, params map[string]any) (map[string]any, error) {
	projectDir := tool.StringParam(params, "path")

	spec := gen.WorkflowSpec{
		Target: tool.StringParam(params, "target"),
		Branch: tool.StringParam(params, "branch"),
	}
	outputs := map[string]any{}
	if phrase := tool.StringParam(params, "schedule"); phrase != "" {
		expr, err := gen.CronFromPhrase(phrase)
		if err != nil {
			return nil, tool.WrapError(tool.ErrorCodeExecutionFailed, err, "cannot derive a schedule from %q", phrase)
		}
		spec.Schedule = expr
		outputs["cron"] = expr
	}

	content, err := gen.PublishWorkflow(spec)
	if err != nil {
		return nil, tool.WrapError(tool.ErrorCodeExecutionFailed, err, "generating workflow")
	}

	workflowDir := filepath.Join(projectDir, ".github", "workflows")
	if err := os.MkdirAll(workflowDir, 0o755); err != nil {
		return nil, tool.WrapError(tool.ErrorCodeIOFailure, err, "creating %q", workflowDir)
	}
	workflowPath := filepath.Join(workflowDir, "publish.yml")
	if err := os.WriteFile(workflowPath, []byte(content), 0o644); err != nil {
		return nil, tool.WrapError(tool.ErrorCodeIOFailure, err, "writing %q", workflowPath)
	}

	outputs["path"] = workflowPath
	outputs["content"] = content
	return outputs, nil
}
