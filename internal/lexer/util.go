package lexer

// ===== Классификаторы =====

// Только ASCII: остальные символы не начинают слов.
func isLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isAlnum(r rune) bool { return isLetter(r) || isDigit(r) }

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

// skipWhile сдвигает курсор, пока pred истинен для текущего символа.
func (s *Scanner) skipWhile(pred func(rune) bool) {
	for {
		r, ok := s.cursor.Peek()
		if !ok || !pred(r) {
			return
		}
		s.cursor.Bump()
	}
}
