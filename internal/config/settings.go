package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Settings are the persisted console preferences.
type Settings struct {
	Font       string `json:"font,omitempty" jsonschema:"description=Font as Family-Size[-Weight],example=Monospace-12"`
	Background string `json:"background,omitempty" jsonschema:"description=Background color name or #rrggbb,example=white"`
	Foreground string `json:"foreground,omitempty" jsonschema:"description=Output color name or #rrggbb,example=black"`
}

const fileHeader = "# gconsole configuration file"

// Keys lists the recognised setting names.
func Keys() []string { return []string{"background", "font", "foreground"} }

// Get returns the value of key.
func (s Settings) Get(key string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "font":
		return s.Font, nil
	case "background":
		return s.Background, nil
	case "foreground":
		return s.Foreground, nil
	}
	return "", fmt.Errorf("unknown setting %q (want one of %s)", key, strings.Join(Keys(), ", "))
}

// Set assigns value to key.
func (s *Settings) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "font":
		s.Font = value
	case "background":
		s.Background = value
	case "foreground":
		s.Foreground = value
	default:
		return fmt.Errorf("unknown setting %q (want one of %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}

// IsZero reports whether nothing is set.
func (s Settings) IsZero() bool { return s == Settings{} }

// Parse reads key=value lines. Blank lines, '#' comments, lines without
// '=' and unknown keys are skipped; keys are case-insensitive.
func Parse(r io.Reader) (Settings, error) {
	var s Settings
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		_ = s.Set(key, value)
	}
	return s, sc.Err()
}

// Format renders s in the file format Parse reads.
func Format(s Settings) string {
	var b strings.Builder
	b.WriteString(fileHeader + "\n")
	vals := map[string]string{"background": s.Background, "foreground": s.Foreground, "font": s.Font}
	keys := Keys()
	sort.Strings(keys)
	for _, k := range keys {
		if v := vals[k]; v != "" {
			fmt.Fprintf(&b, "%s=%s\n", k, v)
		}
	}
	return b.String()
}

// Load reads settings from path. A missing file yields zero settings.
func Load(path string) (Settings, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, err
	}
	defer f.Close()
	return Parse(f)
}

// Save writes settings to path, creating parent directories.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(Format(s)), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
