package console

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSave(t *testing.T) {
	host := newRecordingHost()
	c := newTestConsole(t, Options{Host: host})
	c.Print("abc\n", false)

	press(c, Ctrl('s'))
	if len(host.saveAs) != 1 || host.saveAs[0] != "" {
		t.Fatalf("save without a name should ask the host, got %v", host.saveAs)
	}

	path := filepath.Join(t.TempDir(), "out.txt")
	var err error
	c.Do(func() { err = c.SaveAs(path) })
	if err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	c.Print("def", false)
	press(c, Ctrl('s'))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "abc\ndef" {
		t.Fatalf("saved %q", data)
	}

	press(c, Key{Code: KeyRune, Rune: 'S', Mod: ModCtrl | ModShift})
	if len(host.saveAs) != 2 || host.saveAs[1] != path {
		t.Fatalf("save-as suggestion = %v", host.saveAs)
	}
}
