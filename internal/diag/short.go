package diag

import (
	"path/filepath"
	"strings"

	"csub/internal/source"
)

// FormatShortDiagnostics renders one line per diagnostic:
//
//	error LEX1004 main.c:3:7 invalid digit: ...
//
// Order is preserved and there is no trailing newline. A positionless
// diagnostic has no :line:col suffix. Used by `diagnose --format short`
// and golden files.
func FormatShortDiagnostics(diags []Diag, f *source.File) string {
	var path string
	if f != nil {
		path = filepath.ToSlash(f.Name())
		for strings.HasPrefix(path, "./") {
			path = path[2:]
		}
	}

	lines := make([]string, 0, len(diags))
	for _, d := range diags {
		var b strings.Builder
		b.WriteString(d.Severity().Label())
		b.WriteByte(' ')
		b.WriteString(d.Code().ID())
		b.WriteByte(' ')
		b.WriteString(path)
		if loc, ok := shortLoc(f, d); ok {
			b.WriteString(":" + loc.String())
		}
		b.WriteByte(' ')
		b.WriteString(oneLine(d.Message()))
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func shortLoc(f *source.File, d Diag) (source.Loc, bool) {
	if f == nil || !d.HasPos() {
		return source.Loc{}, false
	}
	return f.LookupSourceLocation(d.Pos)
}

// oneLine folds any line breaks in msg into spaces.
func oneLine(msg string) string {
	return strings.Join(strings.Fields(msg), " ")
}
