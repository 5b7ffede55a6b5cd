package testkit

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"csub/internal/source"
	"csub/internal/token"
)

// CheckWordInvariants runs a minimal set of invariants on a scanned word list:
// 1) every word except the last end-of-input word has a non-empty span within the text
// 2) spans are ordered and do not overlap
// 3) lexemes carry no surrounding whitespace
// 4) the category agrees with the lexeme (keywords, identifiers, numbers)
// 5) the end-of-input word, if present, is last and carries the dummy span
func CheckWordInvariants(words []token.Word, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Text()))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd source.BytePos
	for i, w := range words {
		if w.IsEOF() {
			if i != len(words)-1 {
				return fmt.Errorf("end-of-input word at %d is not last (%d words)", i, len(words))
			}
			if w.Lexeme != source.DummySpan || w.Category.Keyword != token.NoKeyword {
				return fmt.Errorf("end-of-input word is not the sentinel: %v@%v", w.Category, w.Lexeme)
			}
			continue
		}

		// 1) span sanity
		sp := w.Lexeme
		if sp.End <= sp.Start {
			return fmt.Errorf("word %d has empty span %v", i, sp)
		}
		if uint32(sp.End) > lenContent {
			return fmt.Errorf("word %d span end beyond content: %d > %d", i, sp.End, lenContent)
		}

		// 2) order
		if sp.Start < prevEnd {
			return fmt.Errorf("word %d span %v overlaps previous word ending at %d", i, sp, prevEnd)
		}
		prevEnd = sp.End

		// 3) whitespace
		text := sf.SpanToSnippet(sp)
		if strings.TrimSpace(text) != text {
			return fmt.Errorf("word %d lexeme %q has surrounding whitespace", i, text)
		}

		// 4) category vs lexeme
		if err := checkCategory(w.Category, text); err != nil {
			return fmt.Errorf("word %d: %w", i, err)
		}
	}
	return nil
}

func checkCategory(c token.Category, text string) error {
	kw, isKw := token.LookupKeyword(text)
	switch c.Kind {
	case token.Invalid:
		return fmt.Errorf("invalid category for %q", text)
	case token.Kw:
		if !isKw || kw != c.Keyword {
			return fmt.Errorf("%q classified as %v", text, c)
		}
		return nil
	case token.Ident:
		if isKw {
			return fmt.Errorf("keyword %q classified as identifier", text)
		}
		if !isIdent(text) {
			return fmt.Errorf("%q is not an identifier", text)
		}
	case token.Number:
		if strings.TrimLeft(text, "0123456789") != "" {
			return fmt.Errorf("%q is not a number", text)
		}
	}
	if c.Keyword != token.NoKeyword {
		return fmt.Errorf("non-keyword %v carries keyword tag", c)
	}
	return nil
}

func isIdent(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		letter := (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
		digit := b >= '0' && b <= '9'
		if !letter && !(digit && i > 0) {
			return false
		}
	}
	return s != ""
}
