package diagfmt

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"csub/internal/diag"
	"csub/internal/source"
)

type palette struct {
	path  *color.Color
	sev   *color.Color
	code  *color.Color
	gut   *color.Color
	caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		path:  color.New(color.Bold),
		sev:   color.New(color.FgRed, color.Bold),
		code:  color.New(color.FgRed),
		gut:   color.New(color.FgBlue),
		caret: color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.path, p.sev, p.code, p.gut, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() в порядке появления.
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^ под позицией.
// Диагностики без позиции печатаются без контекста.
func Pretty(w io.Writer, bag *diag.Bag, f *source.File, opts PrettyOpts) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	pal := newPalette(opts.Color)
	path := formatPath(f, opts.PathMode, opts.BaseDir)

	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		loc, ok := location(f, d)
		header := path
		if ok {
			header = path + ":" + loc.String()
		}
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			pal.path.Sprint(header),
			pal.sev.Sprint(d.Severity().String()),
			pal.code.Sprint(d.Code().ID()),
			d.Message(),
		)
		if ok {
			writeSnippet(w, f, d, loc, opts, pal)
		}
	}
}

func location(f *source.File, d diag.Diag) (source.Loc, bool) {
	if f == nil || !d.HasPos() {
		return source.Loc{}, false
	}
	return f.LookupSourceLocation(d.Pos)
}

func writeSnippet(w io.Writer, f *source.File, d diag.Diag, loc source.Loc, opts PrettyOpts, pal palette) {
	ctx := max(int(opts.Context), 0)
	first := max(loc.Line-ctx, 1)
	last := min(loc.Line+ctx, f.LineCount())
	gutter := len(fmt.Sprint(last))
	tab := opts.TabWidth
	if tab <= 0 {
		tab = 4
	}

	for n := first; n <= last; n++ {
		line := expandTabs(f.Line(n), tab)
		fmt.Fprintf(w, "%s %s\n", pal.gut.Sprintf("%*d |", gutter, n), line)
		if n != loc.Line {
			continue
		}
		raw := f.Line(n)
		col := min(int(loc.Col), len(raw))
		pad := runewidth.StringWidth(expandTabs(raw[:col], tab))
		width := caretWidth(raw[col:])
		fmt.Fprintf(w, "%s %s%s\n",
			pal.gut.Sprintf("%*s |", gutter, ""),
			strings.Repeat(" ", pad),
			pal.caret.Sprint("^"+strings.Repeat("~", width-1)),
		)
	}
}

// caretWidth: ширина символа под позицией в колонках терминала, минимум 1.
func caretWidth(rest string) int {
	r, size := utf8.DecodeRuneInString(rest)
	if size == 0 || r == '\t' {
		return 1
	}
	return max(runewidth.RuneWidth(r), 1)
}

func expandTabs(s string, width int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := width - col%width
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}
