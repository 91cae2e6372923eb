package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// Adapter defines how translations are loaded. The result is keyed by
// locale; each value is the nested message document for that locale.
type Adapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves an in-memory, pre-loaded mapping.
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements the Adapter interface
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads a single file whose top-level keys are locales:
//
//	{"en": {"validations": {...}}, "pt_br": {"validations": {...}}}
type FileAdapter struct {
	path string
}

// NewFileAdapter creates a new FileAdapter instance.
// The parser is chosen from the file extension at load time.
func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{path: path}
}

// Load implements the Adapter interface
func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.path == "" {
		return nil, fmt.Errorf("%w: file path is empty", ErrFailedToReadFile)
	}

	parser := ParserForFile(a.path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, a.path)
	}

	content, err := readWithContext(ctx, func() ([]byte, error) {
		return os.ReadFile(a.path)
	})
	if err != nil {
		return nil, err
	}

	doc, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}

	result := make(map[string]map[string]any, len(doc))
	for locale, val := range doc {
		messages, ok := asStringMap(val)
		if !ok {
			return nil, fmt.Errorf("%w: locale %q: expected map, got %T", ErrInvalidStructure, locale, val)
		}
		result[locale] = messages
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoTranslations, a.path)
	}

	return result, nil
}

// FSAdapter loads one file per locale from a directory of an fs.FS.
// The locale is the file name without extension; files of the same locale
// in different formats are merged. Unsupported files and subdirectories are
// skipped. A file that cannot be read or parsed fails the whole load.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

// NewFSAdapter creates an adapter over dir inside fsys. It works with
// embed.FS as well as os.DirFS.
func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{fsys: fsys, dir: dir}
}

// NewDirectoryAdapter loads per-locale files from a directory on disk.
func NewDirectoryAdapter(dir string) *DirectoryAdapter {
	return &DirectoryAdapter{dir: dir}
}

// DirectoryAdapter is an FSAdapter rooted in a directory on disk.
type DirectoryAdapter struct {
	dir string
}

// Load implements the Adapter interface
func (a *DirectoryAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.dir == "" {
		return nil, fmt.Errorf("%w: directory path is empty", ErrFailedToAccessDirectory)
	}

	info, err := os.Stat(a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToAccessDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: path '%s' is not a directory", ErrFailedToAccessDirectory, a.dir)
	}

	return NewFSAdapter(os.DirFS(a.dir), ".").Load(ctx)
}

// Load implements the Adapter interface
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.fsys == nil {
		return nil, fmt.Errorf("%w: filesystem is nil", ErrFailedToReadDirectory)
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

		parser := ParserForFile(entry.Name())
		if parser == nil {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		filePath := path.Join(a.dir, entry.Name())
		doc, err := a.loadFile(ctx, parser, filePath)
		if err != nil {
			return nil, err
		}

		locale := localeFromFilename(entry.Name())
		if all[locale] == nil {
			all[locale] = make(map[string]any)
		}
		mergeInto(all[locale], doc)
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("%w: directory '%s'", ErrNoTranslations, a.dir)
	}

	return all, nil
}

func (a *FSAdapter) loadFile(ctx context.Context, parser Parser, filePath string) (map[string]any, error) {
	content, err := readWithContext(ctx, func() ([]byte, error) {
		return fs.ReadFile(a.fsys, filePath)
	})
	if err != nil {
		return nil, err
	}

	if len(content) == 0 {
		return nil, fmt.Errorf("%w: translation file '%s' is empty", ErrFailedToParseFile, filePath)
	}

	doc, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", filePath, err))
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: parser returned nil translations for '%s'", ErrFailedToParseFile, filePath)
	}

	return doc, nil
}

// readWithContext runs read in a goroutine so a cancelled context stops the
// wait even when the underlying read blocks.
func readWithContext(ctx context.Context, read func() ([]byte, error)) ([]byte, error) {
	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = read()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadFile, readErr)
	}
	return content, nil
}

// mergeInto deep-merges src into dst. Nested maps are merged key by key;
// any other value in src replaces the one in dst.
func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := asStringMap(v)
		dstMap, dstIsMap := asStringMap(dst[k])
		if srcIsMap && dstIsMap {
			merged := make(map[string]any, len(dstMap))
			mergeInto(merged, dstMap)
			mergeInto(merged, srcMap)
			dst[k] = merged
			continue
		}
		dst[k] = v
	}
}

// asStringMap accepts both map[string]any and map[any]any with string keys.
func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}
