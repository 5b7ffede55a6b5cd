package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"csub/internal/diagfmt"
	"csub/internal/trace"
)

var diagCmd = &cobra.Command{
	Use:   "diag [flags] <file|directory>",
	Short: "Report lexical diagnostics for a file or directory",
	Long:  `Run the scanner over a source file, or all .c/.h files within a directory, and print only the diagnostics`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDiagnose,
}

func init() {
	diagCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	diagCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	diagCmd.Flags().String("ui", "off", "progress UI for directories (auto|on|off)")
	diagCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	diagCmd.Flags().Bool("no-positions", false, "omit line/col from JSON output")
}

// runDiagnose prints diagnostics for the given path in the chosen format and
// returns errDiagnostics (exit status 1) when any file has errors or failed
// to load.
func runDiagnose(cmd *cobra.Command, args []string) error {
	// Ensure trace is dumped on panic
	defer dumpTraceOnPanic()

	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := parseSwitch("ui", uiValue)
	if err != nil {
		return err
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	noPositions, err := cmd.Flags().GetBool("no-positions")
	if err != nil {
		return fmt.Errorf("failed to get no-positions flag: %w", err)
	}
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	switch s.format {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("unknown format: %s", s.format)
	}

	results, err := scanTarget(cmd.Context(), args[0], s, mode)
	if err != nil {
		return fmt.Errorf("diagnose failed: %w", err)
	}

	_, span := trace.StartSpan(cmd.Context(), trace.ScopePass, "render")
	defer span.End(s.format)

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	out := cmd.OutOrStdout()
	hasErrors := false
	combined := diagfmt.DiagnosticsOutput{Diagnostics: []diagfmt.DiagnosticJSON{}}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Path, r.Err)
			hasErrors = true
			continue
		}
		res := r.Result
		if res.HasErrors() {
			hasErrors = true
		}
		switch s.format {
		case "pretty":
			if res.Bag.Len() == 0 {
				continue
			}
			diagfmt.Pretty(out, res.Bag, res.File, diagfmt.PrettyOpts{
				Color:    s.useColor(os.Stdout),
				Context:  2,
				PathMode: pathMode,
			})
		case "short":
			if res.Bag.Len() == 0 {
				continue
			}
			if err := diagfmt.Short(out, res.Bag, res.File); err != nil {
				return err
			}
		case "json":
			combined.Append(diagfmt.BuildDiagnosticsOutput(res.Bag, res.File, diagfmt.JSONOpts{
				IncludePositions: !noPositions,
				PathMode:         pathMode,
			}))
		}
		if n := res.Bag.Dropped(); n > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d more diagnostics not shown (limit %d)\n", res.Path, n, res.Bag.Cap())
		}
	}

	if s.format == "json" {
		if err := diagfmt.WriteJSON(out, combined); err != nil {
			return fmt.Errorf("failed to encode diagnostics: %w", err)
		}
	}
	if s.timings {
		printTimings(cmd.ErrOrStderr(), mergeTimers(results))
	}
	if hasErrors {
		return errDiagnostics
	}
	return nil
}
