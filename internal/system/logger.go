package system

import (
    "io"
    "os"

    clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger.
// It prints to stderr with timestamps enabled; while the console UI owns
// the terminal it is redirected with RouteTo.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
    ReportTimestamp: true,
})

// RouteTo sends log output to path, or discards it when path is empty.
// The returned func restores stderr and closes the file.
func RouteTo(path string) (func(), error) {
    if path == "" {
        Logger.SetOutput(io.Discard)
        return func() { Logger.SetOutput(os.Stderr) }, nil
    }
    f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
    if err != nil {
        return nil, err
    }
    Logger.SetOutput(f)
    return func() {
        Logger.SetOutput(os.Stderr)
        _ = f.Close()
    }, nil
}

// SetVerbose enables debug logging.
func SetVerbose(v bool) {
    if v {
        Logger.SetLevel(clog.DebugLevel)
        return
    }
    Logger.SetLevel(clog.InfoLevel)
}
