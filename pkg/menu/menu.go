// Package menu asks the operator which option to run.
package menu

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/tmplfill/pkg/errors"
	"github.com/arthur-debert/tmplfill/pkg/logging"
	"github.com/arthur-debert/tmplfill/pkg/types"
)

const (
	MsgQuestion = "What action would you like to take?"
	MsgCancel   = "\t[C]. Cancel"
	MsgPrompt   = "Make your choice: "
	MsgInvalid  = "That option isn't valid..."

	// CancelAnswer cancels the menu, in either case
	CancelAnswer = "c"
)

// Prompt is a numbered menu read from in and written to out
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a prompt over the given streams
func New(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

// Choose shows the menu until the operator picks an option or cancels.
// ok is false when the operator cancelled or input ended.
func (p *Prompt) Choose(options []types.Option) (opt types.Option, ok bool, err error) {
	logger := logging.GetLogger("menu")

	invalid := false
	for {
		p.render(options, invalid)

		answer, readErr := p.in.ReadString('\n')
		if readErr != nil && !stderrors.Is(readErr, io.EOF) {
			return types.Option{}, false, errors.Wrap(readErr, errors.ErrInternal, "failed to read menu answer")
		}
		answer = strings.TrimSpace(answer)

		if strings.EqualFold(answer, CancelAnswer) {
			logger.Debug().Msg("menu cancelled")
			return types.Option{}, false, nil
		}
		if found, exists := types.FindOption(options, answer); exists {
			logger.Debug().Str("option", found.ID).Msg("option chosen")
			return found, true, nil
		}
		if readErr != nil {
			// input ended without a valid answer
			fmt.Fprintln(p.out)
			logger.Debug().Msg("menu input closed")
			return types.Option{}, false, nil
		}

		logger.Debug().Str("answer", answer).Msg("invalid menu answer")
		invalid = true
	}
}

func (p *Prompt) render(options []types.Option, invalid bool) {
	if invalid {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, MsgInvalid)
		fmt.Fprintln(p.out)
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, MsgQuestion)
	for _, opt := range options {
		fmt.Fprintf(p.out, "\t%s\n", opt)
	}
	fmt.Fprintln(p.out, MsgCancel)
	fmt.Fprintln(p.out)
	fmt.Fprint(p.out, MsgPrompt)
}
