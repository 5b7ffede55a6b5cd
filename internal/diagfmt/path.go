package diagfmt

import (
	"csub/internal/source"
)

func formatPath(f *source.File, mode PathMode, baseDir string) string {
	if f == nil {
		return "<unknown>"
	}
	return f.FormatPath(mode.String(), baseDir)
}
