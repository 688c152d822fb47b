// Package batch runs an option: it turns a template folder into an output
// folder and reports the placeholders nothing resolved.
//
// A run has two explicit phases. The substitution phase reads every matched
// template, applies the variables and writes the result into the output
// folder. Only once every file has been written does the validation phase
// re-open each output and scan it for leftover placeholders. Keeping the
// phases apart means the diagnostics always describe what is on disk.
//
// Any failure before validation (unreadable variable file, missing template
// folder, write error) ends the run for that option. Files written before
// the failure stay on disk; nothing is rolled back or retried.
package batch
