package lexer

import (
	"fmt"
	"unicode/utf8"

	"csub/internal/source"

	"fortio.org/safecast"
)

// Cursor представляет собой позицию в тексте файла.
// Offsets are bytes; Peek and Bump work in whole UTF-8 characters.
type Cursor struct {
	text string
	off  source.BytePos
}

// NewCursor creates a new cursor at the start of the file.
func NewCursor(f *source.File) Cursor {
	return Cursor{text: f.Text(), off: 0}
}

// EOF проверяет, достигнут ли конец текста
func (c *Cursor) EOF() bool {
	return int(c.off) >= len(c.text)
}

// Off returns the current byte offset.
func (c *Cursor) Off() source.BytePos {
	return c.off
}

// Peek возвращает текущий символ, не сдвигая курсор.
func (c *Cursor) Peek() (rune, bool) {
	r, _ := c.decode()
	if r < 0 {
		return 0, false
	}
	return r, true
}

// PeekIs reports whether the current character is r.
func (c *Cursor) PeekIs(r rune) bool {
	got, ok := c.Peek()
	return ok && got == r
}

// Bump возвращает текущий символ и сдвигает курсор на его длину в байтах.
func (c *Cursor) Bump() (rune, bool) {
	r, size := c.decode()
	if r < 0 {
		return 0, false
	}
	usz, err := safecast.Conv[uint32](size)
	if err != nil {
		panic(fmt.Errorf("bump overflow: %w", err))
	}
	c.off = c.off.Add(source.BytePos(usz))
	return r, true
}

// BumpIf consumes the current character only when it equals r.
func (c *Cursor) BumpIf(r rune) bool {
	if !c.PeekIs(r) {
		return false
	}
	c.Bump()
	return true
}

// decode returns -1 at end of text. Invalid UTF-8 decodes as
// utf8.RuneError of width 1, so the cursor always makes progress.
func (c *Cursor) decode() (rune, int) {
	if c.EOF() {
		return -1, 0
	}
	b := c.text[c.off]
	if b < utf8.RuneSelf { // ASCII fast-path
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(c.text[c.off:])
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark source.BytePos

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.off)
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.MakeSpan(source.BytePos(m), c.off)
}
