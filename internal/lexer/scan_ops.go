package lexer

import (
	"csub/internal/diag"
	"csub/internal/source"
	"csub/internal/token"
)

var singleCharKinds = map[rune]token.Kind{
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	';': token.Semicolon,
	',': token.Comma,
	'(': token.OpenParen,
	')': token.CloseParen,
	'{': token.OpenCurly,
	'}': token.CloseCurly,
	'[': token.OpenBracket,
	']': token.CloseBracket,
}

// scanOperatorOrPunct классифицирует слово по уже съеденному символу ch.
// Жадность: "<=", ">=", "==", "!=" предпочитаются односимвольным формам.
func (s *Scanner) scanOperatorOrPunct(start Mark, ch rune) (token.Word, error) {
	emit := func(k token.Kind) (token.Word, error) {
		return token.Word{Category: token.Of(k), Lexeme: s.cursor.SpanFrom(start)}, nil
	}

	switch ch {
	case '<':
		if s.cursor.BumpIf('=') {
			return emit(token.LessEqual)
		}
		return emit(token.Less)
	case '>':
		if s.cursor.BumpIf('=') {
			return emit(token.GreaterEqual)
		}
		return emit(token.Greater)
	case '=':
		if s.cursor.BumpIf('=') {
			return emit(token.EqualEqual)
		}
		return emit(token.Equal)
	case '!':
		if s.cursor.BumpIf('=') {
			return emit(token.ExclamaEqual)
		}
	default:
		if k, ok := singleCharKinds[ch]; ok {
			return emit(k)
		}
	}

	// неизвестный символ уже съеден, ошибка указывает на начало слова
	return token.Word{}, diag.UnknownCharacter(source.BytePos(start))
}
