package lexer_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"csub/internal/diag"
	"csub/internal/lexer"
	"csub/internal/source"
	"csub/internal/testkit"
	"csub/internal/token"
)

// makeTestScanner создаёт сканер для тестовой строки
func makeTestScanner(input string) (*lexer.Scanner, *source.File) {
	file := source.NewFile("test.c", input)
	return lexer.New(file, lexer.Options{}), file
}

// nextWord возвращает следующее слово; диагностика: ошибка теста
func nextWord(t *testing.T, sc *lexer.Scanner) token.Word {
	t.Helper()
	w, err := sc.Next()
	if err != nil {
		t.Fatalf("unexpected diagnostic: %v", err)
	}
	return w
}

// nextDiag ожидает диагностику
func nextDiag(t *testing.T, sc *lexer.Scanner) diag.Diag {
	t.Helper()
	_, err := sc.Next()
	if err == nil {
		t.Fatalf("expected a diagnostic")
	}
	var d diag.Diag
	if !errors.As(err, &d) {
		t.Fatalf("expected diag.Diag, got %T", err)
	}
	return d
}

// assertSymbol: вход даёт ровно одно слово категории c длиной length с нуля
func assertSymbol(t *testing.T, input string, c token.Category, length source.BytePos) {
	t.Helper()
	sc, _ := makeTestScanner(input)
	w := nextWord(t, sc)
	if w.Category != c {
		t.Errorf("%q: expected %s, got %s", input, c, w.Category)
	}
	if w.Lexeme != source.MakeSpan(0, length) {
		t.Errorf("%q: expected span 0-%d, got %s", input, length, w.Lexeme)
	}
}

func wordsToString(words []token.Word) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, fmt.Sprintf("%s@%s", w.Category, w.Lexeme))
	}
	return strings.Join(parts, " ")
}

func TestSymbols(t *testing.T) {
	tests := []struct {
		input  string
		kind   token.Kind
		length source.BytePos
	}{
		{"+", token.Plus, 1},
		{"-", token.Minus, 1},
		{"*", token.Star, 1},
		{"/", token.Slash, 1},
		{"<", token.Less, 1},
		{"<=", token.LessEqual, 2},
		{">", token.Greater, 1},
		{">=", token.GreaterEqual, 2},
		{"==", token.EqualEqual, 2},
		{"!=", token.ExclamaEqual, 2},
		{"=", token.Equal, 1},
		{";", token.Semicolon, 1},
		{",", token.Comma, 1},
		{"(", token.OpenParen, 1},
		{")", token.CloseParen, 1},
		{"{", token.OpenCurly, 1},
		{"}", token.CloseCurly, 1},
		{"[", token.OpenBracket, 1},
		{"]", token.CloseBracket, 1},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assertSymbol(t, tt.input, token.Of(tt.kind), tt.length)
		})
	}
}

func TestSpanStartAdvances(t *testing.T) {
	sc, _ := makeTestScanner("+-")
	if w := nextWord(t, sc); w.Lexeme != source.MakeSpan(0, 1) {
		t.Fatalf("first word: expected 0-1, got %s", w.Lexeme)
	}
	if w := nextWord(t, sc); w.Lexeme != source.MakeSpan(1, 2) {
		t.Fatalf("second word: expected 1-2, got %s", w.Lexeme)
	}
}

func TestSpanStartsAfterWhitespace(t *testing.T) {
	sc, file := makeTestScanner("  \n\tfoo")
	w := nextWord(t, sc)
	if w.Lexeme != source.MakeSpan(4, 7) {
		t.Fatalf("expected span 4-7, got %s", w.Lexeme)
	}
	if got := w.Text(file); got != "foo" {
		t.Fatalf("expected lexeme %q, got %q", "foo", got)
	}
}

func TestMaximalMunch(t *testing.T) {
	tests := []struct {
		input string
		want  []token.Kind
	}{
		{"<=<", []token.Kind{token.LessEqual, token.Less}},
		{"===", []token.Kind{token.EqualEqual, token.Equal}},
		{"> =", []token.Kind{token.Greater, token.Equal}},
		{">==", []token.Kind{token.GreaterEqual, token.Equal}},
		{"!==", []token.Kind{token.ExclamaEqual, token.Equal}},
	}
	for _, tt := range tests {
		sc, _ := makeTestScanner(tt.input)
		words, bag := sc.Collect()
		if bag.Len() != 0 {
			t.Fatalf("%q: unexpected diagnostics %v", tt.input, bag.Items())
		}
		words = words[:len(words)-1]
		if len(words) != len(tt.want) {
			t.Fatalf("%q: expected %d words, got %s", tt.input, len(tt.want), wordsToString(words))
		}
		for i, w := range words {
			if w.Category.Kind != tt.want[i] {
				t.Errorf("%q: word %d expected %s, got %s", tt.input, i, tt.want[i], w.Category)
			}
		}
	}
}

func TestIdentHead(t *testing.T) {
	for r := 'a'; r <= 'z'; r++ {
		assertSymbol(t, string(r), token.Of(token.Ident), 1)
	}
	for r := 'A'; r <= 'Z'; r++ {
		assertSymbol(t, string(r), token.Of(token.Ident), 1)
	}
}

func TestIdentLettersAndDigitsMixed(t *testing.T) {
	assertSymbol(t, "H3ll0W0r1d", token.Of(token.Ident), 10)
}

func TestIdentHeadAndBody(t *testing.T) {
	var b strings.Builder
	for r := 'a'; r <= 'z'; r++ {
		b.WriteRune(r)
	}
	for r := 'A'; r <= 'Z'; r++ {
		b.WriteRune(r)
	}
	for r := '0'; r <= '9'; r++ {
		b.WriteRune(r)
	}
	assertSymbol(t, b.String(), token.Of(token.Ident), 62)
}

// TestIdentStopsAtNonAlnum: любой ASCII символ кроме букв и цифр обрывает идентификатор
func TestIdentStopsAtNonAlnum(t *testing.T) {
	for c := 0; c <= 127; c++ {
		r := rune(c)
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			continue
		}
		sc, _ := makeTestScanner("hello" + string(r))
		w := nextWord(t, sc)
		if w.Category != token.Of(token.Ident) || w.Lexeme != source.MakeSpan(0, 5) {
			t.Errorf("char %#X: expected Ident@0-5, got %s@%s", c, w.Category, w.Lexeme)
		}
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		input string
		kw    token.Keyword
	}{
		{"else", token.KwElse},
		{"if", token.KwIf},
		{"int", token.KwInt},
		{"return", token.KwReturn},
		{"void", token.KwVoid},
		{"while", token.KwWhile},
	}
	for _, tt := range tests {
		assertSymbol(t, tt.input, token.KeywordOf(tt.kw), source.BytePos(len(tt.input)))
	}
}

func TestKeywordsAreCaseSensitiveAndWholeRun(t *testing.T) {
	for _, input := range []string{"Else", "WHILE", "iff", "int2", "returnx"} {
		assertSymbol(t, input, token.Of(token.Ident), source.BytePos(len(input)))
	}
}

func TestNumber(t *testing.T) {
	assertSymbol(t, "0", token.Of(token.Number), 1)
	assertSymbol(t, "1234567890", token.Of(token.Number), 10)

	sc, _ := makeTestScanner("12+3")
	words, bag := sc.Collect()
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics %v", bag.Items())
	}
	if got := wordsToString(words); got != "Number@0-2 Plus@2-3 Number@3-4 EOF@0-0" {
		t.Fatalf("unexpected words %s", got)
	}
}

func TestInvalidDigit(t *testing.T) {
	sc, _ := makeTestScanner("123abc")
	d := nextDiag(t, sc)
	if d != diag.InvalidDigit(3) {
		t.Fatalf("expected InvalidDigit at 3, got %v", d)
	}
	// остаток прогона пропущен
	if w := nextWord(t, sc); !w.IsEOF() {
		t.Fatalf("expected EOF after recovery, got %s", w.Category)
	}
}

func TestInvalidDigitRecoveryContinues(t *testing.T) {
	sc, _ := makeTestScanner("1a2b; x")
	words, bag := sc.Collect()
	if bag.Len() != 1 || bag.Items()[0] != diag.InvalidDigit(1) {
		t.Fatalf("unexpected diagnostics %v", bag.Items())
	}
	if got := wordsToString(words); got != "Semicolon@4-5 Ident@6-7 EOF@0-0" {
		t.Fatalf("unexpected words %s", got)
	}
}

func TestWhitespaceOnly(t *testing.T) {
	sc, _ := makeTestScanner(" \n\t")
	if w := nextWord(t, sc); w != token.EndOfInput() {
		t.Fatalf("expected end of input, got %s@%s", w.Category, w.Lexeme)
	}
}

func TestEndOfInputRepeats(t *testing.T) {
	sc, _ := makeTestScanner("x")
	nextWord(t, sc)
	for range 3 {
		if w := nextWord(t, sc); w != token.EndOfInput() {
			t.Fatalf("expected repeated end of input, got %s", w.Category)
		}
	}
}

func TestEmptyComment(t *testing.T) {
	sc, _ := makeTestScanner("/**/")
	if w := nextWord(t, sc); w != token.EndOfInput() {
		t.Fatalf("expected end of input, got %s", w.Category)
	}
}

func TestSkipEverythingInsideComment(t *testing.T) {
	sc, _ := makeTestScanner("/* this is a ++comment++!\nwith new lines!\n */")
	if w := nextWord(t, sc); w != token.EndOfInput() {
		t.Fatalf("expected end of input, got %s", w.Category)
	}
}

func TestCommentsDoNotNest(t *testing.T) {
	sc, _ := makeTestScanner("/*+/*-*/=*/")
	want := []token.Kind{token.Equal, token.Star, token.Slash, token.EOF}
	for i, k := range want {
		if w := nextWord(t, sc); w.Category.Kind != k {
			t.Fatalf("word %d: expected %s, got %s", i, k, w.Category)
		}
	}
}

func TestCommentBetweenWords(t *testing.T) {
	sc, file := makeTestScanner("a/* x */ b")
	words, _ := sc.Collect()
	if len(words) != 3 || words[0].Text(file) != "a" || words[1].Text(file) != "b" {
		t.Fatalf("unexpected words %s", wordsToString(words))
	}
}

func TestMissingCommentTerminator(t *testing.T) {
	for _, input := range []string{"/*", "x /* never closed *", "/*/"} {
		sc, _ := makeTestScanner(input)
		words, bag := sc.Collect()
		if bag.Len() != 1 || bag.Items()[0] != diag.MissingCommentTerminator() {
			t.Fatalf("%q: unexpected diagnostics %v", input, bag.Items())
		}
		if !words[len(words)-1].IsEOF() {
			t.Fatalf("%q: expected EOF after terminal diagnostic", input)
		}
		if w := nextWord(t, sc); !w.IsEOF() {
			t.Fatalf("%q: scanner must stay at end of input", input)
		}
	}
}

func TestUnknownCharacter(t *testing.T) {
	tests := []struct {
		input string
		pos   source.BytePos
	}{
		{"@", 0},
		{"  #", 2},
		{"!", 0},
		{"x!y", 1},
		{"é", 0},
	}
	for _, tt := range tests {
		sc, _ := makeTestScanner(tt.input)
		words, bag := sc.Collect()
		if bag.Len() != 1 || bag.Items()[0] != diag.UnknownCharacter(tt.pos) {
			t.Errorf("%q: expected UnknownCharacter at %d, got %v", tt.input, tt.pos, bag.Items())
		}
		if err := testkit.CheckWordInvariants(words, sc.File()); err != nil {
			t.Errorf("%q: %v", tt.input, err)
		}
	}
}

func TestLoneExclamationSkipsOnlyItself(t *testing.T) {
	sc, _ := makeTestScanner("!x")
	if d := nextDiag(t, sc); d != diag.UnknownCharacter(0) {
		t.Fatalf("unexpected diagnostic %v", d)
	}
	if w := nextWord(t, sc); w.Category != token.Of(token.Ident) || w.Lexeme != source.MakeSpan(1, 2) {
		t.Fatalf("expected Ident@1-2, got %s@%s", w.Category, w.Lexeme)
	}
}

func TestCollectStopsWhenHandlerHalts(t *testing.T) {
	file := source.NewFile("test.c", "a @ b @ c")
	sc := lexer.New(file, lexer.Options{Handler: diag.Halting()})
	words, bag := sc.Collect()
	if bag.Len() != 1 {
		t.Fatalf("expected one diagnostic, got %d", bag.Len())
	}
	if len(words) != 1 || words[0].IsEOF() {
		t.Fatalf("expected only the first word and no EOF, got %s", wordsToString(words))
	}
}

func TestCollectForwardsToHandler(t *testing.T) {
	var seen []diag.Diag
	h := diag.NewHandler(func(d diag.Diag) bool {
		seen = append(seen, d)
		return true
	})
	file := source.NewFile("test.c", "@ 1x #")
	sc := lexer.New(file, lexer.Options{Handler: h, MaxDiagnostics: 2})
	_, bag := sc.Collect()
	if len(seen) != 3 {
		t.Fatalf("handler should see all diagnostics, got %d", len(seen))
	}
	if bag.Len() != 2 {
		t.Fatalf("bag should respect the limit, got %d", bag.Len())
	}
}

func TestSmallProgram(t *testing.T) {
	src := "int main(void) {\n  /* loop */\n  while (x <= 10) { x = x + 1; }\n  return x != 0;\n}\n"
	sc, file := makeTestScanner(src)
	words, bag := sc.Collect()
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics %v", bag.Items())
	}
	if err := testkit.CheckWordInvariants(words, file); err != nil {
		t.Fatal(err)
	}

	texts := make([]string, 0, len(words))
	for _, w := range words[:len(words)-1] {
		texts = append(texts, w.Text(file))
	}
	want := "int main ( void ) { while ( x <= 10 ) { x = x + 1 ; } return x != 0 ; }"
	if got := strings.Join(texts, " "); got != want {
		t.Fatalf("unexpected lexemes:\n%s\nwant:\n%s", got, want)
	}
	if words[0].Category != token.KeywordOf(token.KwInt) {
		t.Fatalf("expected Kw(Int) first, got %s", words[0].Category)
	}
}
