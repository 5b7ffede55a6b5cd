package lexer

import (
	"csub/internal/diag"
	"csub/internal/source"
	"csub/internal/token"
)

// Scanner превращает текст файла в поток слов.
// Однопоточный, тянется вызывающим через Next.
type Scanner struct {
	file   *source.File
	cursor Cursor
	opts   Options
	done   bool // после терминальной диагностики: только EOF
}

// New создаёт сканер для file; сканирование начинается с первого байта.
func New(file *source.File, opts Options) *Scanner {
	return &Scanner{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// File returns the file being scanned.
func (s *Scanner) File() *source.File { return s.file }

// Next возвращает следующее слово или диагностику (как error, тип diag.Diag).
// Диагностика всегда уже потребила ошибочный ввод, поэтому Next можно вызывать
// дальше. После конца ввода всегда возвращает token.EndOfInput().
func (s *Scanner) Next() (token.Word, error) {
	for {
		// 1) пробелы, табы, переводы строк
		s.skipWhile(isWhitespace)

		// 2) конец ввода
		if s.done || s.cursor.EOF() {
			return token.EndOfInput(), nil
		}

		// 3) первый символ слова определяет сканер
		start := s.cursor.Mark()
		ch, _ := s.cursor.Bump()

		switch {
		case ch == '/' && s.cursor.BumpIf('*'):
			if err := s.skipBlockComment(); err != nil {
				return token.Word{}, err
			}
			continue

		case isLetter(ch):
			return s.scanIdentOrKeyword(start), nil

		case isDigit(ch):
			return s.scanNumber(start)

		default:
			return s.scanOperatorOrPunct(start, ch)
		}
	}
}

// Collect тянет слова до конца ввода. Каждая диагностика передаётся
// Options.Handler и добавляется в bag; сверх Options.MaxDiagnostics bag её
// не хранит, а только считает (Bag.Dropped), handler же видит все. Сбор
// останавливается, если handler вернул false (EOF тогда не добавляется).
func (s *Scanner) Collect() ([]token.Word, *diag.Bag) {
	words := make([]token.Word, 0, len(s.file.Text())/4+1)
	bag := diag.NewBag(s.opts.MaxDiagnostics)
	for {
		w, err := s.Next()
		if err != nil {
			d, ok := err.(diag.Diag)
			if !ok {
				// Next возвращает только diag.Diag
				panic(err)
			}
			bag.Add(d)
			if !s.opts.Handler.Emit(d) {
				return words, bag
			}
			continue
		}
		words = append(words, w)
		if w.IsEOF() {
			return words, bag
		}
	}
}
