package diagfmt

import (
	"encoding/json"
	"io"
	"unicode/utf8"

	"fortio.org/safecast"

	"csub/internal/diag"
	"csub/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	Line      int    `json:"line,omitempty"`
	Col       uint32 `json:"col,omitempty"`
}

// DiagnosticJSON представляет диагностику в JSON формате.
// Location отсутствует у диагностик без позиции.
type DiagnosticJSON struct {
	Severity string        `json:"severity"`
	Code     string        `json:"code"`
	Kind     string        `json:"kind"`
	Message  string        `json:"message"`
	File     string        `json:"file"`
	Location *LocationJSON `json:"location,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// Append добавляет диагностики другого вывода (например, другого файла).
func (o *DiagnosticsOutput) Append(other DiagnosticsOutput) {
	o.Diagnostics = append(o.Diagnostics, other.Diagnostics...)
	o.Count = len(o.Diagnostics)
}

// makeLocation создаёт LocationJSON для позиции; конец: после символа под позицией.
func makeLocation(pos source.BytePos, f *source.File, includePositions bool) *LocationJSON {
	loc := &LocationJSON{
		StartByte: uint32(pos),
		EndByte:   uint32(pos),
	}
	if f == nil {
		return loc
	}
	if int(pos) < len(f.Text()) {
		_, size := utf8.DecodeRuneInString(f.Text()[pos:])
		usz, err := safecast.Conv[uint32](size)
		if err != nil {
			panic(err)
		}
		loc.EndByte += usz
	}

	// Добавляем позиции строк/колонок если требуется
	if includePositions {
		if l, ok := f.LookupSourceLocation(pos); ok {
			loc.Line = l.Line
			loc.Col = uint32(l.Col) + 1
		}
	}
	return loc
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(bag *diag.Bag, f *source.File, opts JSONOpts) DiagnosticsOutput {
	if bag == nil {
		return DiagnosticsOutput{Diagnostics: []DiagnosticJSON{}}
	}
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	path := formatPath(f, opts.PathMode, opts.BaseDir)
	diagnostics := make([]DiagnosticJSON, 0, maxItems)
	for _, d := range items[:maxItems] {
		diagJSON := DiagnosticJSON{
			Severity: d.Severity().String(),
			Code:     d.Code().ID(),
			Kind:     d.Kind.String(),
			Message:  d.Message(),
			File:     path,
		}
		if d.HasPos() {
			diagJSON.Location = makeLocation(d.Pos, f, opts.IncludePositions)
		}
		diagnostics = append(diagnostics, diagJSON)
	}

	return DiagnosticsOutput{
		Diagnostics: diagnostics,
		Count:       len(diagnostics),
	}
}

// JSON форматирует диагностики одного файла в JSON формат.
func JSON(w io.Writer, bag *diag.Bag, f *source.File, opts JSONOpts) error {
	return WriteJSON(w, BuildDiagnosticsOutput(bag, f, opts))
}

// WriteJSON сериализует уже собранный вывод (в том числе по нескольким файлам).
func WriteJSON(w io.Writer, output DiagnosticsOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
