package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"csub/internal/diag"
	"csub/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	file := source.NewFile("/home/user/project/src/test.c", "int x = 1 @ 2;\n")

	bag := diag.NewBag(10)
	bag.Add(diag.UnknownCharacter(10))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{
			name:     "Absolute path",
			mode:     PathModeAbsolute,
			contains: "/home/user/project/src/test.c:1:11",
		},
		{
			name:     "Relative path",
			mode:     PathModeRelative,
			contains: "src/test.c:1:11",
		},
		{
			name:     "Basename only",
			mode:     PathModeBasename,
			contains: "test.c:1:11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := PrettyOpts{
				Color:    false,
				PathMode: tt.mode,
				BaseDir:  "/home/user/project",
			}

			Pretty(&buf, bag, file, opts)
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}

			// Проверяем что есть основные элементы
			if !strings.Contains(output, "ERROR") {
				t.Error("Expected ERROR in output")
			}
			if !strings.Contains(output, "LEX1001") {
				t.Error("Expected LEX1001 code in output")
			}
			if !strings.Contains(output, "unknown character") {
				t.Error("Expected error message in output")
			}
		})
	}
}

// TestPathModeAuto проверяет авто-режим выбора пути
func TestPathModeAuto(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "Short path - as is",
			path:     "test.c",
			expected: "test.c:",
		},
		{
			name:     "Long absolute path - basename",
			path:     "/very/long/absolute/path/to/some/nested/directory/file.c",
			expected: "file.c:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := source.NewFile(tt.path, "int x = 42abc;\n")
			bag := diag.NewBag(10)
			bag.Add(diag.InvalidDigit(10))

			var buf bytes.Buffer
			Pretty(&buf, bag, file, PrettyOpts{PathMode: PathModeAuto})
			output := buf.String()

			if !strings.Contains(output, tt.expected) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.expected, output)
			}
			if strings.Contains(output, "/very/") {
				t.Errorf("Expected long path to be shortened, got:\n%s", output)
			}
		})
	}
}

func TestPrettySnippetAndCaret(t *testing.T) {
	file := source.NewFile("a.c", "int f(void) {\n\treturn 1 @ 2;\n}\n")
	bag := diag.NewBag(0)
	bag.Add(diag.UnknownCharacter(24))

	var buf bytes.Buffer
	Pretty(&buf, bag, file, PrettyOpts{PathMode: PathModeBasename})

	want := "a.c:2:11: ERROR LEX1001: unknown character\n" +
		"2 |     return 1 @ 2;\n" +
		"  |              ^\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", got, want)
	}
}

func TestPrettyContextLines(t *testing.T) {
	file := source.NewFile("a.c", "a\nb\nc $\nd\ne\n")
	bag := diag.NewBag(0)
	bag.Add(diag.UnknownCharacter(6))

	var buf bytes.Buffer
	Pretty(&buf, bag, file, PrettyOpts{PathMode: PathModeBasename, Context: 1})
	output := buf.String()

	for _, want := range []string{"2 | b", "3 | c $", "4 | d", "  |   ^"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
	if strings.Contains(output, "1 | a") || strings.Contains(output, "5 | e") {
		t.Errorf("context wider than requested:\n%s", output)
	}
}

func TestPrettyWideCharacterCaret(t *testing.T) {
	file := source.NewFile("w.c", "x = 日;\n")
	bag := diag.NewBag(0)
	bag.Add(diag.UnknownCharacter(4))

	var buf bytes.Buffer
	Pretty(&buf, bag, file, PrettyOpts{PathMode: PathModeBasename})
	if !strings.Contains(buf.String(), "  |     ^~\n") {
		t.Fatalf("expected a two column caret, got:\n%s", buf.String())
	}
}

func TestPrettyPositionless(t *testing.T) {
	file := source.NewFile("c.c", "int x; /* open")
	bag := diag.NewBag(0)
	bag.Add(diag.MissingCommentTerminator())

	var buf bytes.Buffer
	Pretty(&buf, bag, file, PrettyOpts{PathMode: PathModeBasename})
	want := "c.c: ERROR LEX1003: missing */ at the end of a block comment\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", got, want)
	}
}

func TestPrettyEmptyBag(t *testing.T) {
	var buf bytes.Buffer
	Pretty(&buf, diag.NewBag(0), source.NewFile("e.c", ""), PrettyOpts{})
	Pretty(&buf, nil, nil, PrettyOpts{})
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestShort(t *testing.T) {
	file := source.NewFile("s.c", "1x\n@")
	bag := diag.NewBag(0)
	bag.Add(diag.InvalidDigit(1))
	bag.Add(diag.UnknownCharacter(3))

	var buf bytes.Buffer
	if err := Short(&buf, bag, file); err != nil {
		t.Fatal(err)
	}
	want := "error LEX1004 s.c:1:2 invalid digit: a number cannot be followed by a letter\n" +
		"error LEX1001 s.c:2:1 unknown character\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", got, want)
	}
}
