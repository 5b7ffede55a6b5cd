package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func writeConfig(t *testing.T, dir, data string) string {
	t.Helper()
	path := filepath.Join(dir, configFileName)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write %s: %v", configFileName, err)
	}
	return path
}

func newSettingsCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addGlobalFlags(cmd.PersistentFlags())
	cmd.Flags().String("format", "pretty", "")
	cmd.Flags().Int("jobs", 0, "")
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	return cmd
}

func TestFindConfig_WalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok, err := findConfig(nested)
	if err != nil || !ok {
		t.Fatalf("findConfig: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("findConfig = %q, want %q", got, want)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `# test config
[diagnostics]
max = 5
color = "off"
format = "short"
stop_on_error = true

[scan]
jobs = 3
extensions = [".c"]

[cache]
enabled = true
dir = "/tmp/csub-cache"
`)
	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	s := defaultSettings()
	if err := s.applyFile(cfg); err != nil {
		t.Fatal(err)
	}
	if s.maxDiagnostics != 5 || s.color != "off" || s.format != "short" || !s.stopOnError {
		t.Errorf("diagnostics section not applied: %+v", s)
	}
	if s.jobs != 3 || len(s.extensions) != 1 || s.extensions[0] != ".c" {
		t.Errorf("scan section not applied: %+v", s)
	}
	if !s.cacheEnabled || s.cacheDir != "/tmp/csub-cache" {
		t.Errorf("cache section not applied: %+v", s)
	}
}

func TestLoadConfigFile_UnknownKey(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[diagnostics]\nmaximum = 5\n")
	_, err := loadConfigFile(path)
	if err == nil || !strings.Contains(err.Error(), "diagnostics.maximum") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadConfigFile_Malformed(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[diagnostics\n")
	if _, err := loadConfigFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestApplyFile_RejectsNegative(t *testing.T) {
	neg := -1
	s := defaultSettings()
	if err := s.applyFile(fileConfig{Diagnostics: diagnosticsConfig{Max: &neg}}); err == nil {
		t.Error("negative max must be rejected")
	}
	if err := s.applyFile(fileConfig{Scan: scanConfig{Jobs: -2}}); err == nil {
		t.Error("negative jobs must be rejected")
	}
}

func TestResolveSettings_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[diagnostics]\nmax = 5\nformat = \"short\"\n[scan]\njobs = 2\n")

	s, err := resolveSettings(newSettingsCmd(t, "--config", path))
	if err != nil {
		t.Fatalf("resolveSettings: %v", err)
	}
	if s.maxDiagnostics != 5 || s.format != "short" || s.jobs != 2 {
		t.Errorf("file values not applied: %+v", s)
	}
	if s.configPath != path {
		t.Errorf("configPath = %q", s.configPath)
	}

	s, err = resolveSettings(newSettingsCmd(t, "--config", path, "--max-diagnostics", "9", "--format", "json", "--jobs", "4"))
	if err != nil {
		t.Fatalf("resolveSettings: %v", err)
	}
	if s.maxDiagnostics != 9 || s.format != "json" || s.jobs != 4 {
		t.Errorf("flags must override file: %+v", s)
	}
}

func TestResolveSettings_Defaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "")
	s, err := resolveSettings(newSettingsCmd(t, "--config", path))
	if err != nil {
		t.Fatalf("resolveSettings: %v", err)
	}
	want := defaultSettings()
	if s.maxDiagnostics != want.maxDiagnostics || s.color != want.color || s.format != want.format {
		t.Errorf("defaults changed: %+v", s)
	}
	if s.cacheEnabled {
		t.Error("cache must be off by default")
	}
}

func TestResolveSettings_BadColor(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "")
	if _, err := resolveSettings(newSettingsCmd(t, "--config", path, "--color", "sometimes")); err == nil {
		t.Fatal("expected invalid color error")
	}
}

func TestParseSwitch(t *testing.T) {
	cases := map[string]switchMode{"": switchAuto, "AUTO": switchAuto, "on": switchOn, " off ": switchOff}
	for in, want := range cases {
		got, err := parseSwitch("ui", in)
		if err != nil || got != want {
			t.Errorf("parseSwitch(%q) = %q, %v", in, got, err)
		}
	}
	_, err := parseSwitch("ui", "maybe")
	if err == nil || !strings.Contains(err.Error(), "--ui") {
		t.Errorf("expected error naming the flag, got %v", err)
	}
	if !switchOn.enabledFor(nil) || switchOff.enabledFor(nil) {
		t.Error("explicit on/off must not consult the terminal")
	}
}
