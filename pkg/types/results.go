package types

// FileResult describes what happened to one template file during a run
type FileResult struct {
	// Template is the path of the source template
	Template string
	// Output is the path the substituted text was written to
	Output string
	// Replacements counts every token replaced in this file
	Replacements int
	// Unresolved lists the placeholder tokens left in the output,
	// deduplicated in order of first appearance
	Unresolved []string
	// Missing is set when the validation phase found no output file
	Missing bool
}

// HasUnresolved reports whether the file still carries placeholders
func (f FileResult) HasUnresolved() bool {
	return len(f.Unresolved) > 0
}

// RunResult is the outcome of running a single option
type RunResult struct {
	Option    Option
	Variables int
	Skipped   []MalformedLine
	Files     []FileResult
	DryRun    bool
}

// UnresolvedCount returns the number of files with leftover placeholders
func (r *RunResult) UnresolvedCount() int {
	count := 0
	for _, f := range r.Files {
		if f.HasUnresolved() {
			count++
		}
	}
	return count
}

// Clean reports whether every file was fully resolved
func (r *RunResult) Clean() bool {
	return r.UnresolvedCount() == 0
}
