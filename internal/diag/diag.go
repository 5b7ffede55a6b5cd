package diag

import (
	"fmt"

	"csub/internal/source"
)

// Kind is the closed set of lexical diagnostics.
type Kind uint8

const (
	// KindUnknownCharacter: a character that starts no word.
	KindUnknownCharacter Kind = iota + 1
	// KindInvalidDigit: a digit run immediately followed by a letter.
	KindInvalidDigit
	// KindMissingCommentTerminator: end of input inside a block comment.
	KindMissingCommentTerminator
)

func (k Kind) String() string {
	if info, ok := kindTable[k]; ok {
		return info.name
	}
	return "Kind(?)"
}

// Diag is a lexical diagnostic value. Pos is meaningful only when HasPos
// reports true. Diag implements error so scanners can return it through an
// ordinary error result.
type Diag struct {
	Kind Kind
	Pos  source.BytePos
}

func UnknownCharacter(pos source.BytePos) Diag {
	return Diag{Kind: KindUnknownCharacter, Pos: pos}
}

func InvalidDigit(pos source.BytePos) Diag {
	return Diag{Kind: KindInvalidDigit, Pos: pos}
}

func MissingCommentTerminator() Diag {
	return Diag{Kind: KindMissingCommentTerminator}
}

// HasPos reports whether the diagnostic carries a source position.
func (d Diag) HasPos() bool {
	return d.Kind != KindMissingCommentTerminator
}

// Terminal reports whether no further words can follow the diagnostic.
func (d Diag) Terminal() bool {
	return d.Kind == KindMissingCommentTerminator
}

// Severity is always SevError for lexical diagnostics.
func (d Diag) Severity() Severity {
	return SevError
}

func (d Diag) Code() Code {
	if info, ok := kindTable[d.Kind]; ok {
		return info.code
	}
	return UnknownCode
}

// Message returns a short human oriented description.
func (d Diag) Message() string {
	if info, ok := kindTable[d.Kind]; ok {
		return info.message
	}
	return "unknown diagnostic"
}

func (d Diag) Error() string {
	if d.HasPos() {
		return fmt.Sprintf("%s: %s at byte %d", d.Code().ID(), d.Message(), d.Pos)
	}
	return fmt.Sprintf("%s: %s", d.Code().ID(), d.Message())
}
