package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"csub/internal/version"
)

// errDiagnostics сигнализирует, что вывод уже напечатан, но есть ошибки.
var errDiagnostics = errors.New("diagnostics reported")

var traceCleanup = func() {}

var rootCmd = &cobra.Command{
	Use:           "csub",
	Short:         "Lexical front end for a C subset",
	Long:          `csub splits C-subset source files into words and reports lexical diagnostics`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cleanup, err := setupTracing(cmd)
		if err != nil {
			return err
		}
		traceCleanup = cleanup
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(diagCmd)
	rootCmd.AddCommand(versionCmd)
	addGlobalFlags(rootCmd.PersistentFlags())
}

// addGlobalFlags registers the flags shared by every command.
func addGlobalFlags(pf *pflag.FlagSet) {
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics per file (0 = unbounded)")
	pf.Bool("stop-on-error", false, "stop scanning a file at its first diagnostic")
	pf.Bool("timings", false, "show timing information")
	pf.Bool("cache", false, "enable the persistent scan cache")
	pf.String("cache-dir", "", "scan cache directory (default $XDG_CACHE_HOME/csub)")
	pf.String("config", "", "path to csub.toml (default: search upwards from the working directory)")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "ring", "trace storage mode (stream|ring|both)")
	pf.Int("trace-ring-size", 4096, "ring buffer size for trace events")
	pf.Duration("trace-heartbeat", 0, "heartbeat interval for long runs (0 = disabled)")
}

// main executes the root command. Any error, including reported
// diagnostics, exits with status 1.
func main() {
	// версия для автоматического флага --version
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Info(isTerminal(os.Stdout)) + "\n")

	err := rootCmd.Execute()
	traceCleanup()
	if err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintf(os.Stderr, "csub: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
