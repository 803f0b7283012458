package callout

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType is reported for an opening fence whose type is not recognized.
	ErrUnknownType = errors.New("unknown block type")
	// ErrUnterminated is reported for an opening fence without a closing fence.
	ErrUnterminated = errors.New("unterminated block")
	// ErrMalformedFence is reported for a line that starts with ::: but is
	// neither an opening nor a closing fence.
	ErrMalformedFence = errors.New("malformed fence")
	// ErrStrayClose is reported for a closing fence outside of any block.
	ErrStrayClose = errors.New("closing fence outside of a block")
)

// Issue describes a fence that Rewrite passes through as plain text.
type Issue struct {
	Line int
	Text string
	Err  error
}

func (i Issue) Error() string {
	return fmt.Sprintf("line %d: %v: %q", i.Line, i.Err, i.Text)
}

func (i Issue) Unwrap() error {
	return i.Err
}

type issues []Issue

func (*issues) text(line) {}

func (*issues) block(*Block, line, line, []line) error { return nil }

func (is *issues) issue(i Issue) {
	*is = append(*is, i)
}

// Check returns, in line order, every fence that does not take part in a
// valid block. A document without issues yields nil.
func Check(document string) []Issue {
	var found issues

	_ = scan(document, &found)

	return found
}
