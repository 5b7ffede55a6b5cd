package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"csub/internal/diagfmt"
	"csub/internal/trace"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file|directory>",
	Short: "Split a source file into words",
	Long:  `Tokenize breaks a C-subset source file (or every .c/.h file in a directory) into words`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	tokenizeCmd.Flags().String("ui", "off", "progress UI for directories (auto|on|off)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := parseSwitch("ui", uiValue)
	if err != nil {
		return err
	}
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	results, err := scanTarget(cmd.Context(), args[0], s, mode)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	_, span := trace.StartSpan(cmd.Context(), trace.ScopePass, "render")
	defer span.End("")

	out := cmd.OutOrStdout()
	prettyOpts := diagfmt.PrettyOpts{Color: s.useColor(os.Stderr), Context: 2}
	loadFailed := false
	for i, r := range results {
		if r.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Path, r.Err)
			loadFailed = true
			continue
		}
		res := r.Result
		// диагностики в stderr, слова в stdout
		if res.HasErrors() {
			diagfmt.Pretty(cmd.ErrOrStderr(), res.Bag, res.File, prettyOpts)
		}
		if len(results) > 1 && format == "pretty" {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "== %s ==\n", res.File.Name())
		}
		switch format {
		case "pretty":
			err = diagfmt.FormatWordsPretty(out, res.Words, res.File)
		case "json":
			err = diagfmt.FormatWordsJSON(out, res.Words, res.File)
		}
		if err != nil {
			return err
		}
	}

	if s.timings {
		printTimings(cmd.ErrOrStderr(), mergeTimers(results))
	}
	if loadFailed {
		return errDiagnostics
	}
	return nil
}
