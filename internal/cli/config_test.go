package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"gconsole/internal/config"
	tu "gconsole/internal/testutil"
	appver "gconsole/internal/version"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigSetGetShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.txt")
	defer tu.WithEnv(t, "GCONSOLE_SETTINGS", path)()

	if out, err := runCLI(t, "config", "path"); err != nil || strings.TrimSpace(out) != path {
		t.Fatalf("config path = %q, %v", out, err)
	}
	if _, err := runCLI(t, "config", "set", "Font", "Courier New-bold-14"); err != nil {
		t.Fatalf("config set: %v", err)
	}
	s, err := config.Load(path)
	if err != nil || s.Font != "Courier New-bold-14" {
		t.Fatalf("saved settings = %+v, %v", s, err)
	}
	if out, err := runCLI(t, "config", "get", "font"); err != nil || strings.TrimSpace(out) != "Courier New-bold-14" {
		t.Fatalf("config get = %q, %v", out, err)
	}
	out, err := runCLI(t, "config", "show")
	if err != nil || !strings.Contains(out, "font=Courier New-bold-14") {
		t.Fatalf("config show = %q, %v", out, err)
	}
}

func TestConfigSet_UnknownKey(t *testing.T) {
	defer tu.WithEnv(t, "GCONSOLE_SETTINGS", filepath.Join(t.TempDir(), "s.txt"))()
	if _, err := runCLI(t, "config", "set", "size", "12"); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestConfigSchema(t *testing.T) {
	out, err := runCLI(t, "config", "schema")
	if err != nil || !strings.Contains(out, `"background"`) {
		t.Fatalf("schema = %q, %v", out, err)
	}
}

func TestVersion(t *testing.T) {
	defer func() { versionShort = false }()
	out, err := runCLI(t, "version")
	if err != nil || !strings.HasPrefix(out, "gconsole "+appver.AppVersion+" (go") {
		t.Fatalf("version = %q, %v", out, err)
	}
	out, err = runCLI(t, "version", "--short")
	if err != nil || strings.TrimSpace(out) != appver.AppVersion {
		t.Fatalf("version --short = %q, %v", out, err)
	}
}
