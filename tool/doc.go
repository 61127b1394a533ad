// Package tool defines the contract boundary for Quill's operation catalog.
//
// The package is intentionally split by concern:
//   - params: declarative parameter schemas and the generic validator
//   - validate: validation diagnostics and aggregation
//   - registry: the name→tool dispatch surface
//   - manifest: the externally maintained catalog of expected tool names
//   - audit: persisted invocation history
//
// Concrete tools live in the tools package; this package carries no knowledge
// of what any individual tool does beyond its declared contract.
package tool
