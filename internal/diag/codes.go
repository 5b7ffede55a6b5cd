package diag

import (
	"fmt"
)

// Code is the stable numeric identifier of a diagnostic, shown as LEXnnnn.
type Code uint16

const (
	UnknownCode Code = 0

	// 1000-1999: лексический анализ
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedBlockComment Code = 1003
	LexInvalidDigit             Code = 1004
)

var codeTitles = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexInvalidDigit:             "Invalid digit",
}

// kindTable связывает каждый Kind с кодом, именем и текстом сообщения.
var kindTable = map[Kind]struct {
	code    Code
	name    string
	message string
}{
	KindUnknownCharacter:         {LexUnknownChar, "UnknownCharacter", "unknown character"},
	KindInvalidDigit:             {LexInvalidDigit, "InvalidDigit", "invalid digit: a number cannot be followed by a letter"},
	KindMissingCommentTerminator: {LexUnterminatedBlockComment, "MissingCommentTerminator", "missing */ at the end of a block comment"},
}

func (c Code) ID() string {
	if c >= 1000 && c < 2000 {
		return fmt.Sprintf("LEX%04d", uint16(c))
	}
	return "E0000"
}

// Title returns the short description; unknown codes fall back to UnknownCode's.
func (c Code) Title() string {
	if desc, ok := codeTitles[c]; ok {
		return desc
	}
	return codeTitles[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
