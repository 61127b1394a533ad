// Package tools implements Quill's concrete tool catalog: project
// scaffolding, front-matter mutation, content generation, and the
// collaborator-backed operations (render, install, publish, AI assistance).
//
// Every tool declares its parameters as tool.ParamSpec values and relies on
// the registry's generic validator; custom cross-field checks implement
// tool.ParamValidator. Register wires the whole catalog into a registry in
// one explicit call; there is no ambient global registration.
package tools
