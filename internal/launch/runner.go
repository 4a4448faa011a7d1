package launch

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
)

// maxLineChunk is the longest piece of output forwarded as one line. Longer
// lines are forwarded in chunks of this size.
const maxLineChunk = 64 * 1024

// Command is one child process to spawn.
type Command struct {
	Program string
	Args    []string

	// Line is the raw argument string handed to the child as-is where the
	// platform supports it (Windows). Empty means Args are escaped normally.
	Line string

	// Hidden suppresses the child's console window (Windows).
	Hidden bool
}

func (c Command) String() string {
	if c.Line != "" {
		return c.Program + " " + c.Line
	}
	return strings.Join(append([]string{c.Program}, c.Args...), " ")
}

// Runner spawns processes. ExecRunner is the only production implementation.
type Runner interface {
	// Start spawns the command and returns without waiting for it.
	Start(cmd Command) error

	// Run spawns the command, forwards every stdout and stderr line to out
	// as it arrives and blocks until the child exits.
	Run(cmd Command, out io.Writer) error
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

func (r *ExecRunner) Start(c Command) error {
	cmd := exec.Command(c.Program, c.Args...)
	configure(cmd, c, true)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", c.Program, err)
	}

	// The child outlives us; nothing will Wait on it
	return cmd.Process.Release()
}

func (r *ExecRunner) Run(c Command, out io.Writer) error {
	cmd := exec.Command(c.Program, c.Args...)
	configure(cmd, c, false)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to pipe stdout: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to pipe stderr: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", c.Program, err)
	}

	w := &lineWriter{w: out}

	var wg sync.WaitGroup
	wg.Add(2)
	go forwardLines(&wg, stdout, w)
	go forwardLines(&wg, stderr, w)

	// Pipes must be drained before Wait closes them
	wg.Wait()

	// A non-zero exit status is the child's own business; its output already
	// said what went wrong.
	var exitErr *exec.ExitError
	if err := cmd.Wait(); err != nil && !errors.As(err, &exitErr) {
		return fmt.Errorf("failed to wait for %s: %w", c.Program, err)
	}
	return nil
}

func forwardLines(wg *sync.WaitGroup, r io.Reader, w *lineWriter) {
	defer wg.Done()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4*1024), 2*maxLineChunk)
	scanner.Split(scanOutputLines)
	for scanner.Scan() {
		w.WriteLine(scanner.Text())
	}

	// Keep the pipe drained so the child never blocks on a full buffer
	if scanner.Err() != nil {
		_, _ = io.Copy(io.Discard, r)
	}
}

// scanOutputLines is a bufio.SplitFunc ending lines on "\n", "\r" or "\r\n",
// so progress output rewritten with "\r" arrives update by update.
// A line longer than maxLineChunk is split into chunks.
func scanOutputLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 && i <= maxLineChunk {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// '\r': swallow a following '\n', ask for more when it may still come
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}

	if len(data) >= maxLineChunk {
		return maxLineChunk, data[:maxLineChunk], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// lineWriter serializes whole lines from both output streams.
type lineWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lineWriter) WriteLine(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.w, line+"\n")
}
