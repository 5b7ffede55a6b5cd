package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"csub/internal/trace"
)

// DefaultExtensions are the file suffixes scanned in directory mode.
var DefaultExtensions = []string{".c", ".h"}

// DirOptions extends Options for directory runs.
type DirOptions struct {
	Options
	// Jobs limits parallel workers; <= 0 means GOMAXPROCS.
	Jobs int
	// Extensions filters files; empty means DefaultExtensions.
	Extensions []string
}

// FileResult содержит результат токенизации одного файла каталога.
// Err is set when the file could not be loaded; Result is nil then.
type FileResult struct {
	Path   string
	Result *TokenizeResult
	Err    error
}

// ListSourceFiles возвращает отсортированный список файлов с нужными
// расширениями в dir (рекурсивно).
func ListSourceFiles(dir string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range exts {
			if strings.HasSuffix(path, ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeDir scans every matching file under dir in parallel. Results keep
// the sorted file order regardless of completion order. A file that fails to
// load is reported in its FileResult and does not stop the others; only
// context cancellation aborts the run. opts.Handler and opts.Progress are
// called from several goroutines.
func TokenizeDir(ctx context.Context, dir string, opts DirOptions) ([]FileResult, error) {
	ctx, span := trace.StartSpan(ctx, trace.ScopeDriver, "tokenize-dir")
	defer span.End(dir)

	files, err := ListSourceFiles(dir, opts.Extensions)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			fctx, fileSpan := trace.StartSpan(trace.WithLane(gctx, uint64(i+1)), trace.ScopeFile, path)
			defer fileSpan.End("")

			res, err := Tokenize(fctx, path, opts.Options)
			results[i] = FileResult{Path: path, Result: res, Err: err}
			if err != nil && gctx.Err() != nil {
				return gctx.Err()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
