package simulation

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("arena dimensions must be positive")
	ErrInvalidRadius     = errors.New("radius must be positive")
	ErrInvalidPosition   = errors.New("position must be finite")
	ErrInvalidSpeed      = errors.New("speed out of range")
	ErrNotAgent          = errors.New("item is not an agent")
	ErrUnknownItem       = errors.New("item does not belong to this arena")
	ErrUnknownKind       = errors.New("unknown item type")
	ErrMalformedLine     = errors.New("malformed line")
	ErrEmptySnapshot     = errors.New("no data to load")
)

// ParseError describes one snapshot line that could not be used.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
