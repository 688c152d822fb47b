// Package types defines the core types and interfaces used throughout tmplfill.
// This includes the FS abstraction used by every component that touches disk,
// as well as data structures like Option, Variable and RunResult.
package types
