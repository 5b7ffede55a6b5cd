package diagfmt

// PathMode selects how a file name is shown in rendered diagnostics.
type PathMode uint8

const (
	PathModeAuto     PathMode = iota // short or relative names as is, long absolute ones as basename
	PathModeAbsolute                 // --fullpath
	PathModeRelative                 // relative to BaseDir
	PathModeBasename
)

var pathModeNames = [...]string{"auto", "absolute", "relative", "basename"}

func (m PathMode) String() string {
	if int(m) < len(pathModeNames) {
		return pathModeNames[m]
	}
	return pathModeNames[PathModeAuto]
}

// PrettyOpts configures the human-readable renderer.
type PrettyOpts struct {
	Color    bool
	Context  int8 // строк контекста до и после
	PathMode PathMode
	BaseDir  string // пусто: рабочая директория
	TabWidth int    // 0: 4
}

// JSONOpts configures BuildDiagnosticsOutput.
type JSONOpts struct {
	IncludePositions bool // line/col в дополнение к байтовому смещению
	PathMode         PathMode
	BaseDir          string
	Max              int // ограничивает вывод, Bag не трогает
}
