package diagfmt

import (
	"fmt"
	"io"

	"csub/internal/diag"
	"csub/internal/source"
)

// Short печатает по одной строке на диагностику:
// <severity> <CODE> <path>:<line>:<col> <message>
func Short(w io.Writer, bag *diag.Bag, f *source.File) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, diag.FormatShortDiagnostics(bag.Items(), f))
	return err
}
