// Package filesystem provides filesystem implementations for tmplfill.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem used by the CLI and an afero-backed
// filesystem, usually in-memory, used by tests.
package filesystem
