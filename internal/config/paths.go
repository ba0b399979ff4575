package config

import (
    "errors"
    "os"
    "path/filepath"
    "strings"
)

// SettingsFileName is the name of the persisted settings file.
const SettingsFileName = "gconsole-settings.txt"

// Dir returns the gconsole config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/gconsole; on macOS
// to ~/Library/Application Support/gconsole; and on Windows to %AppData%/gconsole.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
    base, err := os.UserConfigDir()
    if err != nil || strings.TrimSpace(base) == "" {
        if home, herr := os.UserHomeDir(); herr == nil {
            base = home
        } else {
            return "", errors.New("cannot determine config directory")
        }
    }
    return filepath.Join(base, "gconsole"), nil
}

// SettingsPath returns where console settings live: the temp directory,
// unless GCONSOLE_SETTINGS names another file.
func SettingsPath() string {
    if p := strings.TrimSpace(os.Getenv("GCONSOLE_SETTINGS")); p != "" {
        return p
    }
    return filepath.Join(os.TempDir(), SettingsFileName)
}

// LogPath returns the default log file used while the console UI owns the
// terminal.
func LogPath() (string, error) {
    dir, err := Dir()
    if err != nil {
        return "", err
    }
    return filepath.Join(dir, "gconsole.log"), nil
}
