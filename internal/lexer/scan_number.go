package lexer

import (
	"csub/internal/diag"
	"csub/internal/token"
)

// scanNumber дочитывает [0-9]+; первая цифра уже съедена.
// Буква сразу после цифр: InvalidDigit по смещению этой буквы; остаток
// буквенно-цифрового прогона пропускается: "123abc" даёт одну ошибку.
func (s *Scanner) scanNumber(start Mark) (token.Word, error) {
	s.skipWhile(isDigit)

	if r, ok := s.cursor.Peek(); ok && isLetter(r) {
		pos := s.cursor.Off()
		s.skipWhile(isAlnum)
		return token.Word{}, diag.InvalidDigit(pos)
	}
	return token.Word{Category: token.Of(token.Number), Lexeme: s.cursor.SpanFrom(start)}, nil
}
