package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tu "gconsole/internal/testutil"
)

func TestParse(t *testing.T) {
	in := `# comment
  FONT = Menlo-14
background=#ffffff
bogus=1
no equals sign

foreground=blue
`
	s, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := Settings{Font: "Menlo-14", Background: "#ffffff", Foreground: "blue"}
	if s != want {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", SettingsFileName)
	s := Settings{Font: "Monospace-13", Foreground: "red"}
	if err := Save(path, s); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	b, _ := os.ReadFile(path)
	if !strings.HasPrefix(string(b), fileHeader) || strings.Contains(string(b), "background=") {
		t.Fatalf("unexpected file: %q", b)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != s {
		t.Fatalf("round trip: %+v", got)
	}
}

func TestLoad_Missing(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "none.txt"))
	if err != nil || !got.IsZero() {
		t.Fatalf("missing file: %+v, %v", got, err)
	}
}

func TestSetGet(t *testing.T) {
	var s Settings
	if err := s.Set("Background", " black "); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if v, _ := s.Get("background"); v != "black" {
		t.Fatalf("Get = %q", v)
	}
	if err := s.Set("size", "3"); err == nil {
		t.Fatalf("unknown key accepted")
	}
}

func TestSettingsPath_Env(t *testing.T) {
	p := filepath.Join(t.TempDir(), "x.txt")
	defer tu.WithEnv(t, "GCONSOLE_SETTINGS", p)()
	if got := SettingsPath(); got != p {
		t.Fatalf("SettingsPath = %q", got)
	}
	defer tu.WithEnv(t, "GCONSOLE_SETTINGS", "")()
	if got := SettingsPath(); filepath.Base(got) != SettingsFileName {
		t.Fatalf("default path = %q", got)
	}
}

func TestSchema(t *testing.T) {
	b, err := MarshalSchema(SettingsSchema())
	if err != nil {
		t.Fatalf("MarshalSchema error: %v", err)
	}
	for _, k := range Keys() {
		if !strings.Contains(string(b), `"`+k+`"`) {
			t.Fatalf("schema missing %q: %s", k, b)
		}
	}
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFileName)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan Settings, 4)
	if err := Watch(ctx, path, func(s Settings) { got <- s }); err != nil {
		t.Fatalf("Watch error: %v", err)
	}
	if err := Save(path, Settings{Background: "navy"}); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	select {
	case s := <-got:
		if s.Background != "navy" {
			t.Fatalf("reloaded %+v", s)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("no reload")
	}
}
