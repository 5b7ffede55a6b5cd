package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"csub/internal/diag"
	"csub/internal/source"
	"csub/internal/token"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 2

// DiskCache хранит результаты сканирования по хешу содержимого файла.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// WordRecord is the on-disk form of token.Word.
type WordRecord struct {
	Kind    uint8
	Keyword uint8
	Start   uint32
	End     uint32
}

// DiagRecord is the on-disk form of diag.Diag.
type DiagRecord struct {
	Kind uint8
	Pos  uint32
}

// DiskPayload stores one scan result.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Name  string
	Words []WordRecord
	Diags []DiagRecord
	// MaxDiagnostics is the bag limit the diagnostics were collected with.
	MaxDiagnostics int
	// Dropped counts diagnostics past the limit.
	Dropped int
}

// DefaultCacheDir returns $XDG_CACHE_HOME/<app> or ~/.cache/<app>.
func DefaultCacheDir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}

// OpenDiskCache initializes a disk cache in dir, creating it if needed.
// An empty dir selects the standard location.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if dir == "" {
		def, err := DefaultCacheDir("csub")
		if err != nil {
			return nil, fmt.Errorf("cache dir: %w", err)
		}
		dir = def
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Для удобства читаемости/очистки: подкаталог "scan".
	return filepath.Join(c.dir, "scan", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) (err error) {
	if c == nil || payload == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	renamed := false
	defer func() {
		if renamed {
			return
		}
		_ = f.Close()
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	if err := os.Rename(f.Name(), p); err != nil {
		return err
	}
	renamed = true
	return nil
}

// Get reads and deserializes a payload from the disk cache. A missing entry
// or one written with another schema is a miss, not an error.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, fmt.Errorf("decode cache entry %s: %w", filepath.Base(p), err)
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименовываем каталог, затем удаляем
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

// scanToPayload converts a scan result for caching.
func scanToPayload(name string, words []token.Word, bag *diag.Bag) *DiskPayload {
	payload := &DiskPayload{
		Schema:         diskCacheSchemaVersion,
		Name:           name,
		Words:          make([]WordRecord, len(words)),
		Diags:          make([]DiagRecord, bag.Len()),
		MaxDiagnostics: bag.Cap(),
		Dropped:        bag.Dropped(),
	}
	for i, w := range words {
		payload.Words[i] = WordRecord{
			Kind:    uint8(w.Category.Kind),
			Keyword: uint8(w.Category.Keyword),
			Start:   uint32(w.Lexeme.Start),
			End:     uint32(w.Lexeme.End),
		}
	}
	for i, d := range bag.Items() {
		payload.Diags[i] = DiagRecord{Kind: uint8(d.Kind), Pos: uint32(d.Pos)}
	}
	return payload
}

// payloadToScan restores words and diagnostics. Spans are validated against
// the file so a corrupted entry never produces out-of-range words.
func payloadToScan(payload *DiskPayload, file *source.File) ([]token.Word, *diag.Bag, error) {
	if payload == nil || payload.Schema != diskCacheSchemaVersion {
		return nil, nil, fmt.Errorf("cache schema mismatch")
	}
	words := make([]token.Word, len(payload.Words))
	for i, r := range payload.Words {
		start, end := source.BytePos(r.Start), source.BytePos(r.End)
		if start > end || end > file.Len() {
			return nil, nil, fmt.Errorf("cached span %d-%d out of range", r.Start, r.End)
		}
		words[i] = token.Word{
			Category: token.Category{Kind: token.Kind(r.Kind), Keyword: token.Keyword(r.Keyword)},
			Lexeme:   source.Span{Start: start, End: end},
		}
	}
	bag := diag.NewBag(payload.MaxDiagnostics)
	for _, r := range payload.Diags {
		bag.Add(diag.Diag{Kind: diag.Kind(r.Kind), Pos: source.BytePos(r.Pos)})
	}
	bag.NoteDropped(payload.Dropped)
	return words, bag, nil
}
