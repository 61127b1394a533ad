package gen

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Publish targets supported by generated workflows.
const (
	TargetGitHubPages = "gh-pages"
	TargetNetlify     = "netlify"
)

// WorkflowSpec describes one generated publish workflow.
type WorkflowSpec struct {
	Target   string // TargetGitHubPages or TargetNetlify
	Branch   string // push branch that triggers the publish; default "main"
	Schedule string // optional cron expression for scheduled re-renders
}

type workflowStep struct {
	Name string            `yaml:"name,omitempty"`
	Uses string            `yaml:"uses,omitempty"`
	Run  string            `yaml:"run,omitempty"`
	With map[string]string `yaml:"with,omitempty"`
	Env  map[string]string `yaml:"env,omitempty"`
}

type workflowJob struct {
	RunsOn      string            `yaml:"runs-on"`
	Permissions map[string]string `yaml:"permissions,omitempty"`
	Steps       []workflowStep    `yaml:"steps"`
}

type workflowTriggers struct {
	Push     map[string][]string `yaml:"push"`
	Schedule []map[string]string `yaml:"schedule,omitempty"`
}

type workflowFile struct {
	Name string                 `yaml:"name"`
	On   workflowTriggers       `yaml:"on"`
	Jobs map[string]workflowJob `yaml:"jobs"`
}

// PublishWorkflow renders workflow YAML that renders the project and deploys
// it to the chosen target on every push to the trigger branch, plus on the
// optional cron schedule. The schedule expression is validated, not trusted.
func PublishWorkflow(spec WorkflowSpec) (string, error) {
	branch := spec.Branch
	if branch == "" {
		branch = "main"
	}

	triggers := workflowTriggers{
		Push: map[string][]string{"branches": {branch}},
	}
	if spec.Schedule != "" {
		if _, err := standardParser.Parse(spec.Schedule); err != nil {
			return "", fmt.Errorf("gen: invalid workflow schedule %q: %w", spec.Schedule, err)
		}
		triggers.Schedule = []map[string]string{{"cron": spec.Schedule}}
	}

	steps := []workflowStep{
		{Name: "Check out repository", Uses: "actions/checkout@v4"},
		{Name: "Set up Quarto", Uses: "quarto-dev/quarto-actions/setup@v2"},
		{Name: "Render project", Run: "quarto render"},
	}

	job := workflowJob{RunsOn: "ubuntu-latest"}
	switch spec.Target {
	case TargetGitHubPages:
		job.Permissions = map[string]string{"contents": "write"}
		steps = append(steps, workflowStep{
			Name: "Deploy to GitHub Pages",
			Uses: "quarto-dev/quarto-actions/publish@v2",
			With: map[string]string{"target": "gh-pages"},
			Env:  map[string]string{"GITHUB_TOKEN": "${{ secrets.GITHUB_TOKEN }}"},
		})
	case TargetNetlify:
		steps = append(steps, workflowStep{
			Name: "Deploy to Netlify",
			Uses: "quarto-dev/quarto-actions/publish@v2",
			With: map[string]string{"target": "netlify"},
			Env:  map[string]string{"NETLIFY_AUTH_TOKEN": "${{ secrets.NETLIFY_AUTH_TOKEN }}"},
		})
	default:
		return "", fmt.Errorf("gen: unknown publish target %q", spec.Target)
	}
	job.Steps = steps

	file := workflowFile{
		Name: "Publish site",
		On:   triggers,
		Jobs: map[string]workflowJob{"publish": job},
	}

	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return "", fmt.Errorf("gen: encode workflow: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("gen: encode workflow: %w", err)
	}
	return b.String(), nil
}
