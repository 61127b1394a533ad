package collab

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// RunResult captures one finished subprocess.
type RunResult struct {
	Command    string `json:"command"`
	Stdout     string `json:"stdout,omitempty"`
	Stderr     string `json:"stderr,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

// ExitError reports a subprocess that ran but exited non-zero. Stderr is
// carried so the caller can surface the collaborator's own message.
type ExitError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with code %d: %s", e.Command, e.ExitCode, msg)
}

// Runner executes external commands in a working directory.
type Runner struct {
	dir string
}

// NewRunner creates a runner rooted at dir; an empty dir means the process
// working directory.
func NewRunner(dir string) *Runner {
	return &Runner{dir: dir}
}

// Run executes one command to completion, honoring ctx cancellation. A
// non-zero exit returns an *ExitError; failures to start return a plain
// error. Stdout and stderr are captured in full.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (RunResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if r != nil && r.dir != "" {
		cmd.Dir = r.dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	display := strings.Join(append([]string{name}, args...), " ")
	start := time.Now()
	err := cmd.Run()
	result := RunResult{
		Command:    display,
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		DurationMS: time.Since(start).Milliseconds(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return result, &ExitError{
				Command:  display,
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
			}
		}
		return result, fmt.Errorf("collab: running %s: %w", display, err)
	}
	return result, nil
}

// Renderer shells out to the external rendering engine.
type Renderer struct {
	binary string
	runner *Runner
}

// NewRenderer creates a renderer using the given binary name, defaulting to
// "quarto".
func NewRenderer(binary, dir string) *Renderer {
	if binary == "" {
		binary = "quarto"
	}
	return &Renderer{binary: binary, runner: NewRunner(dir)}
}

// Render renders the project or document at path, optionally to one format.
func (r *Renderer) Render(ctx context.Context, path, format string) (RunResult, error) {
	args := []string{"render", path}
	if format != "" {
		args = append(args, "--to", format)
	}
	return r.runner.Run(ctx, r.binary, args...)
}

// AddExtension installs an extension through the engine's package manager.
func (r *Renderer) AddExtension(ctx context.Context, name string) (RunResult, error) {
	return r.runner.Run(ctx, r.binary, "add", name, "--no-prompt")
}
