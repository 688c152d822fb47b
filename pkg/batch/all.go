package batch

import (
	"github.com/arthur-debert/tmplfill/pkg/types"
)

// Outcome pairs an option with the result or error of running it
type Outcome struct {
	Option types.Option
	Result *types.RunResult
	Err    error
}

// RunAll runs every option in order. A failing option does not stop the
// ones after it.
func (r *Runner) RunAll(options []types.Option) []Outcome {
	outcomes := make([]Outcome, 0, len(options))
	for _, option := range options {
		result, err := r.Run(option)
		if err != nil {
			r.logger.Error().Err(err).Str("option", option.ID).Msg("option run failed")
		}
		outcomes = append(outcomes, Outcome{Option: option, Result: result, Err: err})
	}
	return outcomes
}

// Failed counts the outcomes that ended in error
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
