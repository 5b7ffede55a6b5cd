package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB на одно зерно

// fixedSeeds cover the recovery paths even without testdata.
var fixedSeeds = []string{
	"",
	"int main(void) { return 0; }\n",
	"/*+/*-*/=*/",
	"123abc !x /*",
	"a<=b==c!=d>=e",
	"x = 0x1F;\t// no hex in this language\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range fixedSeeds {
		f.Add([]byte(s))
	}
	for _, src := range testdataSources() {
		f.Add(clampSeed(src))
	}
	for _, snippet := range readmeSnippets() {
		f.Add(clampSeed([]byte(snippet)))
	}
}

// testdataSources returns every *.c file under the repository testdata.
// Unreadable files are skipped.
func testdataSources() [][]byte {
	var out [][]byte
	root := filepath.Join("..", "..", "testdata")
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".c" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		if src, rerr := os.ReadFile(path); rerr == nil {
			out = append(out, src)
		}
		return nil
	})
	return out
}

// readmeSnippets extracts the ```c fenced blocks of README.md.
func readmeSnippets() []string {
	// #nosec G304 -- path is a fixed repository location
	data, err := os.ReadFile(filepath.Join("..", "..", "README.md"))
	if err != nil {
		return nil
	}
	var out []string
	rest := string(data)
	for {
		_, after, ok := strings.Cut(rest, "```c\n")
		if !ok {
			return out
		}
		body, tail, closed := strings.Cut(after, "```")
		if !closed {
			return out
		}
		if body = strings.TrimRight(body, "\n"); body != "" {
			out = append(out, body)
		}
		rest = tail
	}
}

func clampSeed(src []byte) []byte {
	return append([]byte(nil), src[:min(len(src), maxSeedBytes)]...)
}
