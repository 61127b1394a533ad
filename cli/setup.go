// Package cli implements the quill command surface: catalog listing,
// manifest checks, and tool invocation.
package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	otelapi "go.opentelemetry.io/otel"

	"github.com/quillworks/quill/collab"
	quillotel "github.com/quillworks/quill/otel"
	"github.com/quillworks/quill/tool"
	"github.com/quillworks/quill/tools"
)

// Environment variables consulted when building collaborators. Collaborators
// whose variables are unset are left nil; the tools that need them fail with
// COLLABORATOR_FAILURE instead of at startup.
const (
	envRenderBin  = "QUILL_RENDER_BIN"
	envHostingURL = "QUILL_HOSTING_URL"
	envAIProvider = "QUILL_AI_PROVIDER"
	envAIModel    = "QUILL_AI_MODEL"
)

// catalog bundles a ready registry with the manifest it is checked against
// and the resources that need closing once the command finishes.
type catalog struct {
	registry *tool.Registry
	manifest tool.Manifest
	closers  []func() error
}

func (c *catalog) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		_ = c.closers[i]()
	}
}

// buildCatalog constructs the full tool catalog from the command's persistent
// flags and the process environment.
func buildCatalog(cmd *cobra.Command) (*catalog, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cat := &catalog{}

	if endpoint, _ := cmd.Flags().GetString("otlp-endpoint"); strings.TrimSpace(endpoint) != "" {
		shutdown, err := quillotel.SetupTracing(cmd.Context(), endpoint, "quill")
		if err != nil {
			return nil, exitError(exitRuntime, "initializing tracing: %v", err)
		}
		cat.closers = append(cat.closers, func() error { return shutdown(cmd.Context()) })
	}

	observer, err := quillotel.NewToolObserver(
		otelapi.GetMeterProvider().Meter("quill/tool"),
		otelapi.GetTracerProvider().Tracer("quill/tool"),
	)
	if err != nil {
		cat.Close()
		return nil, exitError(exitRuntime, "initializing tool observability: %v", err)
	}

	options := []tool.RegistryOption{
		tool.WithObserver(observer),
		tool.WithLogger(logger),
	}
	auditPath, _ := cmd.Flags().GetString("audit-db")
	if auditPath != "off" {
		if strings.TrimSpace(auditPath) == "" {
			auditPath, err = tool.DefaultAuditPath()
			if err != nil {
				cat.Close()
				return nil, exitError(exitRuntime, "resolving audit database path: %v", err)
			}
		}
		audit, err := tool.NewSQLiteAuditStore(auditPath)
		if err != nil {
			cat.Close()
			return nil, exitError(exitRuntime, "opening audit database: %v", err)
		}
		cat.closers = append(cat.closers, audit.Close)
		options = append(options, tool.WithAuditStore(audit))
	}

	deps, err := buildDeps(logger)
	if err != nil {
		cat.Close()
		return nil, err
	}

	reg := tool.NewRegistry(options...)
	if err := tools.Register(reg, deps); err != nil {
		cat.Close()
		return nil, exitError(exitRuntime, "registering tools: %v", err)
	}
	cat.registry = reg

	manifestPath, _ := cmd.Flags().GetString("manifest")
	if strings.TrimSpace(manifestPath) == "" {
		cat.manifest = tools.DefaultManifest()
	} else {
		manifest, err := tool.LoadManifest(manifestPath)
		if err != nil {
			cat.Close()
			return nil, exitError(exitRuntime, "loading manifest: %v", err)
		}
		cat.manifest = manifest
	}

	return cat, nil
}

func buildDeps(logger *slog.Logger) (tools.Deps, error) {
	deps := tools.Deps{
		Renderer: collab.NewRenderer(os.Getenv(envRenderBin), ""),
		Logger:   logger,
	}

	if baseURL := os.Getenv(envHostingURL); baseURL != "" {
		hosting, err := collab.NewHTTPHosting(baseURL, "")
		if err != nil {
			return tools.Deps{}, exitError(exitRuntime, "configuring hosting: %v", err)
		}
		deps.Hosting = hosting
	}

	if provider := os.Getenv(envAIProvider); provider != "" {
		assistant, err := collab.NewAssistant(collab.AssistantConfig{
			Provider: provider,
			Model:    os.Getenv(envAIModel),
		})
		if err != nil {
			return tools.Deps{}, exitError(exitRuntime, "configuring AI provider: %v", err)
		}
		deps.Assistant = assistant
	}

	return deps, nil
}
