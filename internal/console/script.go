package console

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// DefaultCompareDelay is how long LoadNumberedScript waits before comparing
// output, giving the program time to consume the script.
const DefaultCompareDelay = 500 * time.Millisecond

// LoadInputScript replaces the script queue. Script lines are returned by
// ReadLine ahead of anything typed.
func (c *Console) LoadInputScript(lines []string) {
	c.queueMu.Lock()
	c.script = append([]string(nil), lines...)
	c.queueCond.Broadcast()
	c.queueMu.Unlock()
	c.logger.Debug("input script loaded", "lines", len(lines))
}

// LoadInputScriptFile loads the lines of path as the script queue.
func (c *Console) LoadInputScriptFile(path string) error {
	lines, err := readLines(path)
	if err != nil {
		return fmt.Errorf("load input script: %w", err)
	}
	c.LoadInputScript(lines)
	return nil
}

// ScriptQueueLen returns the number of script lines not yet read.
func (c *Console) ScriptQueueLen() int {
	c.queueMu.Lock()
	defer c.queueMu.Unlock()
	return len(c.script)
}

// LoadNumberedScript looks for input-<n>*.txt and expected-output-<n>*.txt
// in the script directory and its input/ and output/ children. The input
// file becomes the script queue; after a delay the expected output is
// handed to the host next to everything printed so far.
func (c *Console) LoadNumberedScript(n int) {
	if c.shutdown.Load() {
		return
	}
	input, expected := findNumberedScripts(c.opts.ScriptDir, n)
	if input == "" && expected == "" {
		c.Println(fmt.Sprintf("No input or expected output file for #%d in %s", n, c.opts.ScriptDir), true)
		return
	}
	if input != "" {
		if err := c.LoadInputScriptFile(input); err != nil {
			c.logger.Warn("numbered script", "n", n, "err", err)
			c.Println(err.Error(), true)
		}
	}
	if expected == "" {
		return
	}
	delay := c.opts.CompareDelay
	if delay <= 0 {
		delay = DefaultCompareDelay
	}
	time.AfterFunc(delay, func() { c.CompareOutputFile(expected) })
}

// CompareOutputFile hands the contents of path and AllOutput to the host.
func (c *Console) CompareOutputFile(path string) {
	expected := "File not found: " + path
	if data, err := os.ReadFile(path); err == nil {
		expected = string(data)
	}
	c.host.CompareOutput(expected, c.AllOutput())
}

func findNumberedScripts(root string, n int) (input, expected string) {
	num := strconv.Itoa(n)
	for _, dir := range []string{root, filepath.Join(root, "input"), filepath.Join(root, "output")} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || !strings.HasSuffix(name, ".txt") {
				continue
			}
			switch {
			case expected == "" && numbered(name, "expected-output-", num):
				expected = filepath.Join(dir, name)
			case input == "" && numbered(name, "input-", num):
				input = filepath.Join(dir, name)
			}
		}
	}
	return input, expected
}

// numbered reports whether name contains prefix+num not followed by
// another digit, so input-1 does not match input-12.txt.
func numbered(name, prefix, num string) bool {
	key := prefix + num
	for i := strings.Index(name, key); i >= 0; {
		rest := name[i+len(key):]
		if rest == "" || rest[0] < '0' || rest[0] > '9' {
			return true
		}
		j := strings.Index(rest, key)
		if j < 0 {
			break
		}
		i += len(key) + j
	}
	return false
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	return lines, sc.Err()
}
