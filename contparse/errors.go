package contparse

import (
	"fmt"

	"github.com/bdwalton/ccanim/contast"
)

// SyntaxError reports an unparseable construct in a continuity text,
// per §4.1 / §4.6's SYNTAX error kind.
type SyntaxError struct {
	Span contast.Span
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Span.Line, e.Span.Col, e.Msg)
}
