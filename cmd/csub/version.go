package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"csub/internal/version"
)

// versionPayload is the --format json shape; empty fields are omitted.
type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version,omitempty"`
	Platform  string `json:"platform,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show csub build information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	f := versionCmd.Flags()
	f.Bool("hash", false, "include git commit hash")
	f.Bool("date", false, "include build timestamp")
	f.Bool("full", false, "include commit, date, Go toolchain and platform")
	f.String("format", "pretty", "output format (pretty|json)")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	hash, _ := cmd.Flags().GetBool("hash")
	date, _ := cmd.Flags().GetBool("date")
	full, _ := cmd.Flags().GetBool("full")

	p := versionPayload{Tool: "csub", Version: strings.TrimSpace(version.Version)}
	if p.Version == "" {
		p.Version = "dev"
	}
	if hash || full {
		p.GitCommit = orUnknown(version.GitCommit)
	}
	if date || full {
		p.BuildDate = orUnknown(version.BuildDate)
	}
	if full {
		p.GoVersion = runtime.Version()
		p.Platform = runtime.GOOS + "/" + runtime.GOARCH
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case "pretty":
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}

	v := p.Version
	if f, ok := out.(*os.File); ok && isTerminal(f) {
		v = version.Colored(v)
	}
	fmt.Fprintf(out, "csub %s\n", v)
	for _, row := range [][2]string{
		{"commit", p.GitCommit},
		{"built", p.BuildDate},
		{"go", p.GoVersion},
		{"platform", p.Platform},
	} {
		if row[1] != "" {
			fmt.Fprintf(out, "%-9s %s\n", row[0]+":", row[1])
		}
	}
	return nil
}

func orUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "unknown"
	}
	return s
}
