package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

//go:embed locales/*.yaml
var defaultLocales embed.FS

// TranslationAdapter loads translations from a source.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from an in-memory map.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads a single translation file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a file adapter. A nil parser is resolved from the
// file extension. Returns nil when no parser fits or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if path == "" {
		return nil
	}
	if parser == nil {
		parser = NewParserForFile(path)
	}
	if parser == nil {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a == nil || a.parser == nil || a.path == "" {
		return nil, ErrInvalidAdapter
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrFailedToReadFile, a.path)
	}

	translations, err := a.parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return translations, nil
}

// FSAdapter loads every supported file from a directory of an fs.FS.
// Files are parsed by extension and merged in directory order.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

// NewFSAdapter creates an adapter over dir inside fsys.
func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	if fsys == nil || dir == "" {
		return nil
	}
	return &FSAdapter{fsys: fsys, dir: dir}
}

// NewDirectoryAdapter creates an adapter over a directory on disk.
func NewDirectoryAdapter(dir string) *FSAdapter {
	if dir == "" {
		return nil
	}
	return NewFSAdapter(os.DirFS(filepath.Clean(dir)), ".")
}

// DefaultAdapter serves the built-in validation catalogs (en, es).
func DefaultAdapter() *FSAdapter {
	return NewFSAdapter(defaultLocales, "locales")
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a == nil || a.fsys == nil {
		return nil, ErrInvalidAdapter
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := NewParserForFile(entry.Name())
		if parser == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		translations, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrFailedToParseFile, name, err)
		}
		mergeTranslations(all, translations)
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTranslations, a.dir)
	}
	return all, nil
}

// MergeAdapter loads each adapter in order; later sources override earlier keys.
type MergeAdapter []TranslationAdapter

func (m MergeAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	all := make(map[string]map[string]any)
	for _, a := range m {
		if a == nil {
			continue
		}
		translations, err := a.Load(ctx)
		if err != nil {
			return nil, err
		}
		mergeTranslations(all, translations)
	}
	return all, nil
}

func mergeTranslations(dst, src map[string]map[string]any) {
	for lang, keys := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(keys))
		}
		deepMerge(dst[lang], keys)
	}
}

func deepMerge(dst, src map[string]any) {
	for k, v := range src {
		srcMap := toStringMap(v)
		if srcMap == nil {
			dst[k] = v
			continue
		}
		dstMap := toStringMap(dst[k])
		if dstMap == nil {
			dstMap = make(map[string]any, len(srcMap))
		}
		deepMerge(dstMap, srcMap)
		dst[k] = dstMap
	}
}
