package source

import "bytes"

var (
	utf8BOM = []byte{0xEF, 0xBB, 0xBF}
	crlf    = []byte("\r\n")
)

// stripBOM drops a leading UTF-8 byte order mark.
func stripBOM(content []byte) ([]byte, bool) {
	return bytes.CutPrefix(content, utf8BOM)
}

// normalizeCRLF rewrites every \r\n to \n. A lone \r stays, the scanner
// reports it as an unknown character.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, crlf) {
		return content, false
	}
	return bytes.ReplaceAll(content, crlf, []byte{'\n'}), true
}

// buildLineIndex records 0, the offset after every '\n' and the final
// sentinel len(text). The caller has already checked len(text) fits uint32.
func buildLineIndex(text string) []BytePos {
	out := make([]BytePos, 1, 16)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			out = append(out, BytePos(i+1))
		}
	}
	return append(out, BytePos(len(text)))
}
