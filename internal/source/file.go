package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"fortio.org/safecast"
)

// File holds one compilation unit: its name, immutable text and the
// precomputed line starts used to map byte offsets to lines and columns.
//
// A File never changes after construction, so every Span and Word derived
// from it stays valid for as long as the File is reachable, and a File may be
// shared between goroutines without locking.
type File struct {
	name  string
	text  string
	lines []BytePos // начала строк + финальный sentinel len(text)
	hash  [32]byte
	flags FileFlags
}

// NewFile builds a File from in-memory text. Line starts are computed here,
// once, in a single pass over the text.
func NewFile(name, text string) *File {
	return newFile(name, text, FileVirtual)
}

// Load reads a file from disk, strips a UTF-8 BOM and normalizes CRLF line
// endings before building the File.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content, hadBOM := stripBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return newFile(cleanSlash(path), string(content), flags), nil
}

func newFile(name, text string, flags FileFlags) *File {
	if _, err := safecast.Conv[uint32](len(text)); err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return &File{
		name:  name,
		text:  text,
		lines: buildLineIndex(text),
		hash:  sha256.Sum256([]byte(text)),
		flags: flags,
	}
}

func (f *File) Name() string     { return f.name }
func (f *File) Text() string     { return f.text }
func (f *File) Flags() FileFlags { return f.flags }

// Hash returns the SHA-256 digest of the (normalized) text.
func (f *File) Hash() [32]byte { return f.hash }

// Len returns the text length in bytes, which is also the end-of-text sentinel.
func (f *File) Len() BytePos {
	return f.lines[len(f.lines)-1]
}

// SpanToSnippet returns exactly text[s.Start:s.End]. The span must come from
// this file; an out-of-range span is a programming error and panics.
func (f *File) SpanToSnippet(s Span) string {
	return f.text[s.Start:s.End]
}

// LookupLineIndex returns the 0-based index of the line containing pos.
// Positions at or past the end-of-text sentinel have no line.
func (f *File) LookupLineIndex(pos BytePos) (int, bool) {
	// первое начало строки, строго большее pos; lines[0] == 0, поэтому i >= 1
	i := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > pos })
	if i == len(f.lines) {
		return 0, false
	}
	return i - 1, true
}

// LookupSourceLocation maps pos to a 1-based line and a 0-based byte column.
func (f *File) LookupSourceLocation(pos BytePos) (Loc, bool) {
	idx, ok := f.LookupLineIndex(pos)
	if !ok {
		return Loc{}, false
	}
	return Loc{Line: idx + 1, Col: pos.Sub(f.lines[idx])}, true
}

// LineCount returns the number of line starts recorded before the sentinel.
func (f *File) LineCount() int {
	return len(f.lines) - 1
}

// LineStart returns the byte offset where the 0-based line idx begins.
func (f *File) LineStart(idx int) BytePos {
	return f.lines[idx]
}

// Line returns the text of the 1-based line n without its newline.
// Если строки нет, возвращает пустую строку.
func (f *File) Line(n int) string {
	if n < 1 || n > f.LineCount() {
		return ""
	}
	start, end := f.lines[n-1], f.lines[n]
	if end > start && f.text[end-1] == '\n' {
		end--
	}
	return f.text[start:end]
}

// FormatPath форматирует имя файла в зависимости от режима.
// mode: "absolute", "relative", "basename", "auto"
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(f.name); err == nil {
			return abs
		}
		return f.name

	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := RelativePath(f.name, baseDir); err == nil {
			return rel
		}
		return f.name

	case "basename":
		return BaseName(f.name)

	case "auto":
		// короткий или относительный путь - как есть, иначе basename
		if len(f.name) < 40 || !filepath.IsAbs(f.name) {
			return f.name
		}
		return BaseName(f.name)

	default:
		return f.name
	}
}
