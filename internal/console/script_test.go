package console

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tu "gconsole/internal/testutil"
)

func TestLoadNumberedScript(t *testing.T) {
	dir := t.TempDir()
	tu.WriteFile(t, filepath.Join(dir, "input", "input-12-long.txt"), "wrong\n")
	tu.WriteFile(t, filepath.Join(dir, "input", "input-1-basic.txt"), "x\r\ny\n")
	tu.WriteFile(t, filepath.Join(dir, "output", "expected-output-1-basic.txt"), "EXPECTED")
	host := newRecordingHost()
	c := newTestConsole(t, Options{ScriptDir: dir, Host: host, CompareDelay: 10 * time.Millisecond})

	c.Print("printed", false)
	press(c, Ctrl('1'))
	if n := c.ScriptQueueLen(); n != 2 {
		t.Fatalf("script queue = %d", n)
	}
	if got := c.ReadLine(); got != "x" {
		t.Fatalf("first script line = %q", got)
	}
	select {
	case got := <-host.compare:
		if got[0] != "EXPECTED" || !strings.HasPrefix(got[1], "printed") {
			t.Fatalf("compare = %q", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no comparison requested")
	}
}

func TestLoadNumberedScript_Missing(t *testing.T) {
	c := newTestConsole(t, Options{ScriptDir: t.TempDir()})
	press(c, Ctrl('7'))
	c.Flush()
	if !strings.Contains(c.AllOutput(), "#7") {
		t.Fatalf("expected in-band message, got %q", c.AllOutput())
	}
}

func TestCompareOutputFile_Missing(t *testing.T) {
	host := newRecordingHost()
	c := newTestConsole(t, Options{Host: host})
	c.CompareOutputFile("/nope/expected.txt")
	got := <-host.compare
	if got[0] != "File not found: /nope/expected.txt" {
		t.Fatalf("expected text = %q", got[0])
	}
}

func TestNumbered(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"input-1.txt", true},
		{"input-1-foo.txt", true},
		{"input-12.txt", false},
		{"my-input-1.txt", true},
		{"expected-output-1.txt", false},
	}
	for _, tc := range cases {
		if got := numbered(tc.name, "input-", "1"); got != tc.want {
			t.Fatalf("numbered(%q) = %v", tc.name, got)
		}
	}
}

func TestLoadInputScriptFile_Error(t *testing.T) {
	c := newTestConsole(t, Options{})
	if err := c.LoadInputScriptFile(filepath.Join(t.TempDir(), "none.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
