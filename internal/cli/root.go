package cli

import (
    "context"
    "errors"
    "fmt"
    "io"
    "os"
    "os/signal"
    "strings"
    "syscall"

    "github.com/spf13/cobra"
    "github.com/spf13/viper"
    "golang.org/x/term"

    "gconsole/internal/app"
    "gconsole/internal/config"
    "gconsole/internal/system"
)

// cfg holds flag values; GCONSOLE_* environment variables fill the gaps.
var cfg = viper.New()

var rootCmd = &cobra.Command{
    Use:   "gconsole",
    Short: "gconsole – interactive console window for line-oriented programs",
    Long: "gconsole shows a program's output in a scrollable console window and feeds it\n" +
        "the lines you type. Without arguments it runs a small demo program; use\n" +
        "`gconsole run -- <command>` to run your own.",
    Args: cobra.NoArgs,
    PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
        return cfg.BindPFlags(cmd.Flags())
    },
    RunE: func(cmd *cobra.Command, args []string) error {
        // Default action: the demo program in a console window
        return startConsole(cmd.Context(), nil)
    },
    SilenceUsage:  true,
    SilenceErrors: true,
}

func init() {
    cfg.SetEnvPrefix("GCONSOLE")
    cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
    cfg.AutomaticEnv()

    f := rootCmd.PersistentFlags()
    f.Bool("echo", false, "mirror console input and output to the real stdout/stderr")
    f.Bool("no-clear", false, "print a marker instead of clearing the console")
    f.Bool("lock", false, "freeze the echo/clear toggles")
    f.String("script", "", "input script whose lines are read before anything typed")
    f.String("script-dir", ".", "directory searched for input-N / expected-output-N files")
    f.String("http", "", "serve the HTTP endpoint on this address (e.g. 127.0.0.1:8787)")
    f.String("log-file", "", "write logs here while the console is open (default: discard)")
    f.String("title", "", "window title")
    f.BoolP("verbose", "v", false, "debug logging")
}

// Execute runs the CLI.
func Execute() {
    ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer cancel()
    if err := rootCmd.ExecuteContext(ctx); err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }
}

var errNoTerminal = errors.New("gconsole needs an interactive terminal")

// startConsole opens the console window running command, or the demo when
// command is empty.
func startConsole(ctx context.Context, command []string) error {
    if !term.IsTerminal(int(os.Stdin.Fd())) {
        return errNoTerminal
    }
    // With stdout redirected the window is drawn on stderr, so --echo
    // can capture a transcript.
    var tui io.Writer
    switch {
    case term.IsTerminal(int(os.Stdout.Fd())):
        tui = os.Stdout
    case term.IsTerminal(int(os.Stderr.Fd())):
        tui = os.Stderr
    default:
        return errNoTerminal
    }

    system.SetVerbose(cfg.GetBool("verbose"))
    restore, err := system.RouteTo(cfg.GetString("log-file"))
    if err != nil {
        return fmt.Errorf("log file: %w", err)
    }
    defer restore()

    return app.Start(ctx, app.Options{
        Title:        cfg.GetString("title"),
        Echo:         cfg.GetBool("echo"),
        DisableClear: cfg.GetBool("no-clear"),
        Locked:       cfg.GetBool("lock"),
        Script:       cfg.GetString("script"),
        ScriptDir:    cfg.GetString("script-dir"),
        HTTPAddr:     cfg.GetString("http"),
        SettingsPath: config.SettingsPath(),
        Command:      command,
        TUIOutput:    tui,
    })
}
