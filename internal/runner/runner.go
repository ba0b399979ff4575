package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"gconsole/internal/console"
	"gconsole/internal/system"
)

// Console is the part of the console a child process talks to.
type Console interface {
	Writer(isErr bool) *console.StreamWriter
	ReadLineContext(ctx context.Context) (string, error)
	Println(text string, isErr bool)
}

// Run starts name with args and connects it to c: stdout and stderr are
// printed, and every line read from c is written to the child's stdin.
// End of input closes stdin. Run returns when the child exits.
func Run(ctx context.Context, c Console, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	stdout, stderr := c.Writer(false), c.Writer(true)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	log := system.Logger.WithPrefix("runner")
	log.Debug("started", "cmd", name, "pid", cmd.Process.Pid)

	feedCtx, stopFeed := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		feed(feedCtx, c, stdin)
	}()

	err = cmd.Wait()
	stopFeed()
	wg.Wait()
	_ = stdout.Flush()
	_ = stderr.Flush()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		log.Debug("exited", "cmd", name)
	case errors.As(err, &exitErr):
		log.Info("exited", "cmd", name, "code", exitErr.ExitCode())
		if ctx.Err() == nil {
			c.Println(fmt.Sprintf("[%s exited with status %d]", name, exitErr.ExitCode()), true)
		}
	default:
		log.Warn("wait", "cmd", name, "err", err)
	}
	return err
}

func feed(ctx context.Context, c Console, stdin io.WriteCloser) {
	defer stdin.Close()
	for {
		// once the child is gone, typed-ahead lines stay queued
		if ctx.Err() != nil {
			return
		}
		line, err := c.ReadLineContext(ctx)
		if err != nil {
			return
		}
		if _, err := io.WriteString(stdin, line+"\n"); err != nil {
			return
		}
	}
}
