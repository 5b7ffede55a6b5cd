package source

import "fmt"

type (
	// BytePos is a byte offset into a file's text buffer.
	BytePos uint32 // в байтах, не в рунах
	// FileFlags encodes metadata about how a file was loaded.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was built from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	FileHadBOM
	FileNormalizedCRLF
)

// Add returns p+q.
func (p BytePos) Add(q BytePos) BytePos { return p + q }

// Sub returns p-q. Callers guarantee q <= p.
func (p BytePos) Sub(q BytePos) BytePos { return p - q }

// Loc is a human-oriented location: 1-based line, 0-based byte column.
// It is derived from a BytePos on demand and never stored.
type Loc struct {
	Line int     // 1-based
	Col  BytePos // 0-based, относительно начала строки
}

func (l Loc) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Col+1)
}
