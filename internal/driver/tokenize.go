package driver

import (
	"context"
	"fmt"
	"time"

	"csub/internal/diag"
	"csub/internal/lexer"
	"csub/internal/observ"
	"csub/internal/source"
	"csub/internal/token"
	"csub/internal/trace"
)

// Options controls a tokenize run.
type Options struct {
	// MaxDiagnostics limits the bag; 0 means unbounded.
	MaxDiagnostics int
	// StopOnError прекращает сканирование файла на первой диагностике.
	StopOnError bool
	// Cache is optional; nil disables the disk cache.
	Cache *DiskCache
	// Progress receives per-file stage events.
	Progress ProgressSink
	// Handler sees every diagnostic as it is produced (or replayed from cache).
	Handler diag.Handler
}

// TokenizeResult holds the outcome of scanning one file.
type TokenizeResult struct {
	Path   string
	File   *source.File
	Words  []token.Word
	Bag    *diag.Bag
	Cached bool
	Timer  *observ.Timer
}

// HasErrors reports whether the scan produced any error diagnostics.
func (r *TokenizeResult) HasErrors() bool {
	return r != nil && r.Bag != nil && r.Bag.HasErrors()
}

// Tokenize loads path and scans it.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	ctx, span := trace.StartSpan(ctx, trace.ScopeDriver, "tokenize")
	defer span.End(path)

	timer := observ.NewTimer()
	emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusWorking})

	_, loadSpan := trace.StartSpan(ctx, trace.ScopePass, "load")
	done := timer.Track("load")
	file, err := source.Load(path)
	done(path)
	loadSpan.End("")
	if err != nil {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err})
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return tokenizeLoaded(ctx, path, file, opts, timer)
}

// TokenizeFile scans an already loaded (possibly virtual) file.
func TokenizeFile(ctx context.Context, file *source.File, opts Options) (*TokenizeResult, error) {
	ctx, span := trace.StartSpan(ctx, trace.ScopeDriver, "tokenize")
	defer span.End(file.Name())
	return tokenizeLoaded(ctx, file.Name(), file, opts, observ.NewTimer())
}

func tokenizeLoaded(ctx context.Context, path string, file *source.File, opts Options, timer *observ.Timer) (*TokenizeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	began := time.Now()
	res := &TokenizeResult{Path: path, File: file, Timer: timer}

	key := cacheKey(file.Hash(), opts)
	if opts.Cache != nil {
		emit(opts.Progress, Event{File: path, Stage: StageCache, Status: StatusWorking})
		done := timer.Track("cache")
		var payload DiskPayload
		hit, err := opts.Cache.Get(key, &payload)
		if err == nil && hit {
			words, bag, convErr := payloadToScan(&payload, file)
			if convErr == nil {
				done("hit")
				res.Words, res.Bag, res.Cached = words, bag, true
				replay(ctx, bag, opts.Handler)
				finish(opts.Progress, res, StageCache, time.Since(began))
				return res, nil
			}
			err = convErr
		}
		if err != nil {
			// испорченная запись: просто пересканируем
			trace.Point(ctx, trace.ScopePass, "cache-error", err.Error())
		}
		done("miss")
	}

	emit(opts.Progress, Event{File: path, Stage: StageScan, Status: StatusWorking})
	_, scanSpan := trace.StartSpan(ctx, trace.ScopePass, "scan")
	done := timer.Track("scan")

	// остановка по решению вызывающего не кешируется: ключ его не учитывает
	callerStopped := false
	caller := diag.NewHandler(func(d diag.Diag) bool {
		if !opts.Handler.Emit(d) {
			callerStopped = true
			return false
		}
		return true
	})
	handlers := []diag.Handler{caller, traceHandler(ctx)}
	if opts.StopOnError {
		handlers = append(handlers, diag.Halting())
	}
	sc := lexer.New(file, lexer.Options{
		Handler:        diag.Fanout(handlers...),
		MaxDiagnostics: opts.MaxDiagnostics,
	})
	res.Words, res.Bag = sc.Collect()
	done(fmt.Sprintf("%d words", len(res.Words)))
	scanSpan.End(fmt.Sprintf("words=%d diags=%d", len(res.Words), res.Bag.Len()))

	if opts.Cache != nil && !callerStopped {
		if err := opts.Cache.Put(key, scanToPayload(file.Name(), res.Words, res.Bag)); err != nil {
			trace.Point(ctx, trace.ScopePass, "cache-error", err.Error())
		}
	}
	finish(opts.Progress, res, StageScan, time.Since(began))
	return res, nil
}

// replay passes cached diagnostics to h as if they had just been produced.
func replay(ctx context.Context, bag *diag.Bag, h diag.Handler) {
	th := traceHandler(ctx)
	for _, d := range bag.Items() {
		th.Emit(d)
		if !h.Emit(d) {
			return
		}
	}
}

func traceHandler(ctx context.Context) diag.Handler {
	return diag.NewHandler(func(d diag.Diag) bool {
		trace.Point(ctx, trace.ScopeDiag, d.Code().ID(), d.Error())
		return true
	})
}

func finish(sink ProgressSink, res *TokenizeResult, stage Stage, elapsed time.Duration) {
	status := StatusDone
	if res.HasErrors() {
		status = StatusError
	}
	emit(sink, Event{File: res.Path, Stage: stage, Status: status, Elapsed: elapsed})
}
