package file

import (
	"context"
	"os"
)

// Checker answers whether the file backing an upload exists.
type Checker interface {
	Exists(ctx context.Context, path string) bool
}

// CheckerFunc adapts a plain function to the Checker interface.
type CheckerFunc func(ctx context.Context, path string) bool

func (f CheckerFunc) Exists(ctx context.Context, path string) bool {
	return f(ctx, path)
}

// OSChecker stats paths directly on the local file system. Directories do
// not count as uploaded files.
type OSChecker struct{}

func (OSChecker) Exists(ctx context.Context, path string) bool {
	if path == "" {
		return false
	}
	select {
	case <-ctx.Done():
		return false
	default:
	}

	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
