package export

import (
	"context"
	"io"
	"sync"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// WriterClipboard copies text verbatim to a writer. Useful for piping the
// scaffold into another process or capturing it in tests.
type WriterClipboard struct {
	mu sync.Mutex
	W  io.Writer
}

func (c *WriterClipboard) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.W == nil {
		return ExportError("clipboard copy", io.ErrClosedPipe)
	}
	if _, err := io.WriteString(c.W, text); err != nil {
		return ExportError("clipboard copy", err)
	}
	return nil
}

// TerminalClipboard sets the system clipboard through the terminal using an
// OSC 52 escape sequence written to W (usually stderr).
type TerminalClipboard struct {
	W    io.Writer
	Tmux bool
}

func (c TerminalClipboard) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.W == nil {
		return ExportError("clipboard copy", io.ErrClosedPipe)
	}
	seq := osc52.New(text)
	if c.Tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(c.W); err != nil {
		return ExportError("clipboard copy", err)
	}
	return nil
}
