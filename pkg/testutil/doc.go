// Package testutil provides utilities for testing tmplfill components.
//
// Key components:
//   - NewTestFS: in-memory filesystem for fast, isolated tests
//   - Workspace: declarative setup of template folders, variable files and
//     settings documents, on the in-memory filesystem or a real temp dir
//   - CreateFile/CreateDir: real-filesystem helpers for CLI and config tests
//
// Usage guidelines:
//   - Prefer the in-memory filesystem; use real directories only where a
//     component reads through the os package (settings, config, CLI)
//   - All test data should be defined inline, not in external files
package testutil
