package types

// Variable is a single key/value replacement rule read from a variable file.
// Line is the 1-based line it was read from, zero when built in code.
type Variable struct {
	Key   string
	Value string
	Line  int
}

// MalformedLine records a variable-file line that was skipped because it
// carries no key=value pair.
type MalformedLine struct {
	Line int
	Text string
}
