// Package collab wraps the external systems tools call into but do not
// implement: subprocesses (the rendering engine and its package manager), the
// hosting provider's HTTP API, and an AI provider for generated prose. Each
// collaborator owns its own credentials, timeouts, and failure reporting; the
// core never retries on their behalf.
package collab
