package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"csub/internal/source"
	"csub/internal/token"
)

type WordOutput struct {
	Category string      `json:"category"`
	Text     string      `json:"text,omitempty"`
	Span     source.Span `json:"span"`
	Line     int         `json:"line,omitempty"`
	Col      uint32      `json:"col,omitempty"`
}

// FormatWordsPretty выводит слова в человекочитаемом формате
func FormatWordsPretty(w io.Writer, words []token.Word, f *source.File) error {
	for i, word := range words {
		if _, err := fmt.Fprintf(w, "%3d: %-14s", i+1, word.Category.String()); err != nil {
			return err
		}
		if word.IsEOF() {
			fmt.Fprintln(w)
			break
		}

		fmt.Fprintf(w, " %q", word.Text(f))
		if loc, ok := f.LookupSourceLocation(word.Lexeme.Start); ok {
			fmt.Fprintf(w, " at %s", loc)
		}
		fmt.Fprintf(w, " [%s]\n", word.Lexeme)
	}
	return nil
}

// FormatWordsJSON выводит слова в JSON формате
func FormatWordsJSON(w io.Writer, words []token.Word, f *source.File) error {
	output := make([]WordOutput, 0, len(words))
	for _, word := range words {
		out := WordOutput{
			Category: word.Category.String(),
			Span:     word.Lexeme,
		}
		if !word.IsEOF() {
			out.Text = word.Text(f)
			if loc, ok := f.LookupSourceLocation(word.Lexeme.Start); ok {
				out.Line = loc.Line
				out.Col = uint32(loc.Col) + 1
			}
		}
		output = append(output, out)
		if word.IsEOF() {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
