package lexer

import (
	"csub/internal/token"
)

// scanIdentOrKeyword дочитывает [A-Za-z][A-Za-z0-9]*; первая буква уже съедена.
// Ключевые слова проверяются после всего прогона, регистрозависимо.
func (s *Scanner) scanIdentOrKeyword(start Mark) token.Word {
	s.skipWhile(isAlnum)

	sp := s.cursor.SpanFrom(start)
	if kw, ok := token.LookupKeyword(s.file.SpanToSnippet(sp)); ok {
		return token.Word{Category: token.KeywordOf(kw), Lexeme: sp}
	}
	return token.Word{Category: token.Of(token.Ident), Lexeme: sp}
}
