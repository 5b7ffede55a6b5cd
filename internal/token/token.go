package token

import (
	"csub/internal/source"
)

// Category is the tagged classification of a word. Keyword is meaningful
// only when Kind == Kw and is NoKeyword otherwise.
type Category struct {
	Kind    Kind
	Keyword Keyword
}

// Of returns the Category for a non-keyword kind.
func Of(k Kind) Category {
	return Category{Kind: k}
}

// KeywordOf returns the Category for a keyword.
func KeywordOf(kw Keyword) Category {
	return Category{Kind: Kw, Keyword: kw}
}

func (c Category) String() string {
	if c.Kind == Kw {
		return "Kw(" + c.Keyword.String() + ")"
	}
	return c.Kind.String()
}

// Word is a classified lexeme together with its span in the source file.
type Word struct {
	Category Category
	Lexeme   source.Span
}

// EndOfInput returns the terminal word; it carries the dummy span.
func EndOfInput() Word {
	return Word{Category: Of(EOF), Lexeme: source.DummySpan}
}

// Text returns the lexeme text. The end-of-input word has no text.
func (w Word) Text(f *source.File) string {
	if w.Category.Kind == EOF {
		return ""
	}
	return f.SpanToSnippet(w.Lexeme)
}

// IsEOF reports whether w is the end-of-input word.
func (w Word) IsEOF() bool { return w.Category.Kind == EOF }

// IsKeyword reports whether w is any keyword.
func (w Word) IsKeyword() bool { return w.Category.Kind == Kw }

// IsIdent reports whether w is an identifier.
func (w Word) IsIdent() bool { return w.Category.Kind == Ident }

// IsPunctOrOp reports whether w is a punctuation or operator.
func (w Word) IsPunctOrOp() bool { return w.Category.Kind.IsPunctOrOp() }
