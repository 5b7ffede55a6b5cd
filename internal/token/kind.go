package token

// Kind represents the category of a word.
type Kind uint8

const (
	// Invalid is the zero Kind; the scanner never produces it.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Kw is a keyword; the concrete keyword lives in Category.Keyword.
	Kw
	// Ident represents an identifier.
	Ident
	// Number represents a decimal number literal.
	Number

	// Plus represents the plus operator.
	Plus // +
	// Minus represents the minus operator.
	Minus // -
	// Star represents the star operator.
	Star // *
	// Slash represents the slash operator.
	Slash // /
	// Less represents the less-than operator.
	Less // <
	// LessEqual represents the less-or-equal operator.
	LessEqual // <=
	// Greater represents the greater-than operator.
	Greater // >
	// GreaterEqual represents the greater-or-equal operator.
	GreaterEqual // >=
	// EqualEqual represents the equality operator.
	EqualEqual // ==
	// ExclamaEqual represents the inequality operator.
	ExclamaEqual // !=
	// Equal represents the assignment operator.
	Equal // =
	Semicolon    // ;
	Comma        // ,
	OpenParen    // (
	CloseParen   // )
	OpenCurly    // {
	CloseCurly   // }
	OpenBracket  // [
	CloseBracket // ]
)

var kindNames = [...]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Kw:           "Kw",
	Ident:        "Ident",
	Number:       "Number",
	Plus:         "Plus",
	Minus:        "Minus",
	Star:         "Star",
	Slash:        "Slash",
	Less:         "Less",
	LessEqual:    "LessEqual",
	Greater:      "Greater",
	GreaterEqual: "GreaterEqual",
	EqualEqual:   "EqualEqual",
	ExclamaEqual: "ExclamaEqual",
	Equal:        "Equal",
	Semicolon:    "Semicolon",
	Comma:        "Comma",
	OpenParen:    "OpenParen",
	CloseParen:   "CloseParen",
	OpenCurly:    "OpenCurly",
	CloseCurly:   "CloseCurly",
	OpenBracket:  "OpenBracket",
	CloseBracket: "CloseBracket",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsEOF reports whether k marks the end of input.
func (k Kind) IsEOF() bool { return k == EOF }

// IsPunctOrOp reports whether k is a punctuation or operator kind.
func (k Kind) IsPunctOrOp() bool {
	return k >= Plus && k <= CloseBracket
}
