package binder

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
)

// DefaultMaxMemory is the memory budget for multipart parsing (10MB).
const DefaultMaxMemory = 10 << 20

// Stager copies an uploaded part to storage the file checker can see and
// returns its path.
type Stager func(ctx context.Context, fh *multipart.FileHeader) (string, error)

// Option configures Record.
type Option func(*options)

type options struct {
	maxMemory int64
	stager    Stager
	cleanup   func(path string) error
}

func defaultOptions() *options {
	return &options{
		maxMemory: DefaultMaxMemory,
		stager:    TempStager(""),
		cleanup:   os.Remove,
	}
}

// WithMaxMemory sets the multipart memory budget.
func WithMaxMemory(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxMemory = n
		}
	}
}

// WithStager replaces the default temp-dir stager.
func WithStager(s Stager) Option {
	return func(o *options) {
		if s != nil {
			o.stager = s
		}
	}
}

// WithCleanup sets how already staged files are discarded when a later
// upload of the same request fails to stage. Defaults to os.Remove; pair it
// with WithStager when staging outside the local disk.
func WithCleanup(fn func(path string) error) Option {
	return func(o *options) {
		if fn != nil {
			o.cleanup = fn
		}
	}
}

// TempStager writes every upload to a new file in dir (os.TempDir when
// empty). Callers own the staged files and remove them when done.
func TempStager(dir string) Stager {
	return func(ctx context.Context, fh *multipart.FileHeader) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		src, err := fh.Open()
		if err != nil {
			return "", fmt.Errorf("open %q: %w", fh.Filename, err)
		}
		defer src.Close()

		dst, err := os.CreateTemp(dir, "upload-*")
		if err != nil {
			return "", err
		}
		if _, err := io.Copy(dst, src); err != nil {
			_ = dst.Close()
			_ = os.Remove(dst.Name())
			return "", err
		}
		if err := dst.Close(); err != nil {
			_ = os.Remove(dst.Name())
			return "", err
		}
		return dst.Name(), nil
	}
}
