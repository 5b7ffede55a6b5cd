package lexer

import (
	"csub/internal/diag"
)

// skipBlockComment пропускает тело /* ... */; открывающие "/*" уже съедены.
// Комментарии не вкладываются: первое "*/" закрывает. Конец ввода внутри
// комментария: MissingCommentTerminator, после чего сканер завершён.
func (s *Scanner) skipBlockComment() error {
	for {
		r, ok := s.cursor.Bump()
		if !ok {
			s.done = true
			return diag.MissingCommentTerminator()
		}
		if r == '*' && s.cursor.BumpIf('/') {
			return nil
		}
	}
}
