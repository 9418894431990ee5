package export

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-ideaplan/pkg/analysis"
)

var (
	// ErrEmptyIdea is returned before any analysis runs on blank input.
	ErrEmptyIdea = analysis.ErrEmptyIdea
	// ErrRender marks failures of the external graph renderer.
	ErrRender = errors.New("export: graph rendering failed")
	// ErrExport marks deck, clipboard and file export failures.
	ErrExport = errors.New("export: export failed")
)

// Error attaches a kind sentinel and the failing operation to an underlying
// error. errors.Is matches both the kind and the wrapped error.
type Error struct {
	Kind error
	Op   string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	case e.Op == "":
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

func wrap(kind error, op string, err error) error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) && existing.Kind == kind {
		return err
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// RenderError wraps err as an ErrRender failure of op.
func RenderError(op string, err error) error { return wrap(ErrRender, op, err) }

// ExportError wraps err as an ErrExport failure of op.
func ExportError(op string, err error) error { return wrap(ErrExport, op, err) }
