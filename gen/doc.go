// Package gen holds pure content generators: typed inputs in, text out, no
// state and no I/O. Tools own the side effects; everything here is
// deterministic given identical input and unit-testable without a filesystem.
package gen
