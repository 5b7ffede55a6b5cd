// Package token defines word categories for the csub front end.
// Invariants:
//   - Every Word has exactly one Category; keywords are Kind Kw plus a Keyword
//     sub-tag, never a Kind of their own.
//   - Word.Lexeme covers the lexeme exactly, with no leading or trailing
//     whitespace; the text is recovered through source.File.SpanToSnippet.
//   - The end-of-input word carries source.DummySpan.
//   - Comments never produce words.
package token
