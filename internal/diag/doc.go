// Package diag defines the lexical diagnostic model of the csub front end.
//
// # Data model
//
// Diag is a small value: a Kind from a closed set and, for every kind except
// MissingCommentTerminator, a byte offset into the source file.
//
//   - UnknownCharacter – a character that starts no word; Pos is the
//     character's offset.
//   - InvalidDigit – a digit run immediately followed by a letter; Pos is the
//     offset of the first letter.
//   - MissingCommentTerminator – end of input reached inside /* ... */; it is
//     terminal, nothing follows it.
//
// Every diagnostic has Severity SevError and a stable Code (see codes.go)
// rendered as LEXnnnn.
//
// # Emitting diagnostics
//
// The scanner never decides how a diagnostic is reported. It passes each one
// to a Handler, whose sink answers whether scanning should continue.
// Ignoring, Halting and Collecting cover the usual cases; Fanout and Dedup
// compose handlers.
//
// Bag keeps diagnostics in order of appearance with an optional limit. Merge
// keeps the receiver's items first.
//
// # Scope
//
// Package diag does not format anything except the single-line short form
// in short.go. Pretty and JSON rendering live in internal/diagfmt.
package diag
