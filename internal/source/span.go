package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) of a single file.
type Span struct {
	Start BytePos // в байтах включительно
	End   BytePos // в байтах не включительно
}

// DummySpan marks synthetic words (end of input) that have no real location.
var DummySpan = Span{}

// MakeSpan builds a span and panics on inverted bounds.
func MakeSpan(start, end BytePos) Span {
	if start > end {
		panic(fmt.Errorf("inverted span: start %d > end %d", start, end))
	}
	return Span{Start: start, End: end}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

// IsDummy reports whether s is the sentinel span.
func (s Span) IsDummy() bool {
	return s == DummySpan
}

func (s Span) Len() BytePos {
	return s.End - s.Start
}

// Contains reports whether pos lies inside [Start, End).
func (s Span) Contains(pos BytePos) bool {
	return pos >= s.Start && pos < s.End
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}
