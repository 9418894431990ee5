package export

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// FileSink writes artifacts into a directory, creating it on first use.
type FileSink struct {
	Dir    string
	Logger *log.Logger
}

// NewFileSink returns a sink rooted at dir. A nil logger discards output.
func NewFileSink(dir string, logger *log.Logger) *FileSink {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &FileSink{Dir: dir, Logger: logger}
}

// Write stores a and returns the path written.
func (s *FileSink) Write(ctx context.Context, a Artifact) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := filepath.Base(strings.TrimSpace(a.Name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", ExportError("write artifact", fmt.Errorf("artifact name is required"))
	}

	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", ExportError("create output dir", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, a.Data, 0o644); err != nil {
		s.logf("export: write %s failed: %v", path, err)
		return "", ExportError("write "+name, err)
	}
	s.logf("export: wrote %s (%d bytes)", path, len(a.Data))
	return path, nil
}

// WriteAll stores every artifact, stopping at the first failure.
func (s *FileSink) WriteAll(ctx context.Context, artifacts ...Artifact) ([]string, error) {
	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		path, err := s.Write(ctx, a)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (s *FileSink) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}
