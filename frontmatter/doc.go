// Package frontmatter parses, mutates, and re-serializes text documents that
// begin with a YAML header block delimited by lines containing exactly three
// hyphens. The body after the header is opaque: the engine never interprets,
// trims, or re-indents it.
//
// Headers are held as yaml.v3 nodes rather than Go maps so that key order is
// preserved across a parse/mutate/serialize round trip. Top-level sets
// overwrite, nested merges are shallow (one level deep), and sequence values
// are always replaced wholesale; callers wanting append semantics read the
// current sequence, concatenate, and write back.
//
// The engine offers no cross-invocation locking. Two concurrent mutations of
// the same file race and the last writer wins; callers that need safety must
// serialize calls targeting the same path.
package frontmatter
