package app

import (
	"context"
	"errors"
	"io"
	"net/http"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gconsole/internal/config"
	"gconsole/internal/console"
	"gconsole/internal/demo"
	"gconsole/internal/runner"
	"gconsole/internal/system"
	"gconsole/internal/ui"
	"gconsole/internal/webui/server"
)

// Options configures one console session.
type Options struct {
	Title        string
	Echo         bool
	DisableClear bool
	Locked       bool
	// Script is an input script loaded before the program starts.
	Script string
	// ScriptDir is searched for numbered input scripts.
	ScriptDir string
	// HTTPAddr enables the HTTP endpoint when set.
	HTTPAddr string
	// SettingsPath is the settings file; empty means config.SettingsPath().
	SettingsPath string
	// Command runs a child process in the console; empty runs the demo.
	Command []string
	// Stdout and Stderr receive echoed I/O.
	Stdout io.Writer
	Stderr io.Writer
	// TUIOutput is where the interface is drawn. Default os.Stdout.
	TUIOutput io.Writer
}

// Start runs the console window and the program inside it until the window
// is closed or ctx is done.
func Start(ctx context.Context, opts Options) error {
	// Initialize global bubblezone manager for mouse-aware zones.
	zone.NewGlobal()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bridge := ui.NewBridge()
	c := console.New(console.Options{
		Title:        opts.Title,
		Host:         bridge,
		Echo:         opts.Echo,
		DisableClear: opts.DisableClear,
		ScriptDir:    opts.ScriptDir,
		Stdout:       opts.Stdout,
		Stderr:       opts.Stderr,
	})
	defer c.Stop()
	c.OnRender(bridge.Observe)
	c.SetLocked(opts.Locked)

	settingsPath := opts.SettingsPath
	if settingsPath == "" {
		settingsPath = config.SettingsPath()
	}
	if s, err := config.Load(settingsPath); err != nil {
		system.Logger.Warn("load settings", "path", settingsPath, "err", err)
	} else {
		Apply(c, s)
	}
	if err := config.Watch(ctx, settingsPath, func(s config.Settings) { Apply(c, s) }); err != nil {
		system.Logger.Debug("settings watch disabled", "err", err)
	}

	if opts.Script != "" {
		if err := c.LoadInputScriptFile(opts.Script); err != nil {
			return err
		}
	}
	if opts.HTTPAddr != "" {
		srv := &server.Server{Addr: opts.HTTPAddr, Console: c}
		go func() {
			if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				system.Logger.Error("http endpoint", "err", err)
				bridge.Notify("http endpoint: " + err.Error())
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := runProgram(ctx, c, opts.Command); err != nil && ctx.Err() == nil {
			system.Logger.Warn("program", "err", err)
		}
		c.Shutdown()
	}()

	popts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx)}
	if opts.TUIOutput != nil {
		popts = append(popts, tea.WithOutput(opts.TUIOutput))
	}
	_, err := tea.NewProgram(ui.New(c, bridge), popts...).Run()

	// closing the window ends the program
	c.Shutdown()
	cancel()
	<-done
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func runProgram(ctx context.Context, c *console.Console, command []string) error {
	if len(command) > 0 {
		return runner.Run(ctx, c, command[0], command[1:]...)
	}
	out, errOut := c.Writer(false), c.Writer(true)
	defer out.Flush()
	defer errOut.Flush()
	return demo.Autocomplete(c.ReaderContext(ctx), out, errOut)
}

// Apply pushes persisted settings onto c. Empty fields keep the current value.
func Apply(c *console.Console, s config.Settings) {
	if s.Font != "" {
		c.SetFont(s.Font)
	}
	if s.Background != "" {
		c.SetBackground(s.Background)
	}
	if s.Foreground != "" {
		c.SetOutputColor(s.Foreground)
	}
}
