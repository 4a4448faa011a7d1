package launch

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/MrSnakeDoc/lc/internal/config"
	"github.com/MrSnakeDoc/lc/internal/domain"
	"github.com/MrSnakeDoc/lc/internal/logger"
)

type fakeRunner struct {
	started []Command
	ran     []Command
	output  []string
	err     error
}

func (f *fakeRunner) Start(c Command) error {
	f.started = append(f.started, c)
	return f.err
}

func (f *fakeRunner) Run(c Command, out io.Writer) error {
	f.ran = append(f.ran, c)
	for _, line := range f.output {
		_, _ = io.WriteString(out, line+"\n")
	}
	return f.err
}

func newTestDispatcher(goos string) (*Dispatcher, *fakeRunner, *bytes.Buffer) {
	runner := &fakeRunner{}
	out := &bytes.Buffer{}
	d := NewDispatcher(runner, newOpeners(goos, config.Settings{}), out, logger.NewNop())
	return d, runner, out
}

func TestLaunchDiskLocationReveals(t *testing.T) {
	dir := t.TempDir()
	d, runner, _ := newTestDispatcher("windows")

	if err := d.Launch(context.Background(), dir, nil, false); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}

	if len(runner.started) != 1 {
		t.Fatalf("Start() called %d times, want 1", len(runner.started))
	}
	got := runner.started[0]
	if got.Program != "explorer.exe" || got.Line != `/select,"`+dir+`"` {
		t.Errorf("Launch() started %+v, want explorer reveal", got)
	}
}

func TestLaunchDiskLocationPreferDefaultOpens(t *testing.T) {
	file := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	d, runner, _ := newTestDispatcher("darwin")

	if err := d.Launch(context.Background(), file, []string{"-a"}, true); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}

	got := runner.started[0]
	want := []string{file, "--args", "-a"}
	if got.Program != "open" || !equalStrings(got.Args, want) {
		t.Errorf("Launch() started %+v, want open %v", got, want)
	}
}

func TestLaunchURLAlwaysOpensDefault(t *testing.T) {
	for _, preferDefault := range []bool{false, true} {
		d, runner, _ := newTestDispatcher("windows")

		if err := d.Launch(context.Background(), "https://example.com", nil, preferDefault); err != nil {
			t.Fatalf("Launch() error = %v", err)
		}

		got := runner.started[0]
		if got.Program != "explorer.exe" || got.Line != `"https://example.com"` {
			t.Errorf("preferDefault=%v: started %+v, want default opener", preferDefault, got)
		}
	}
}

func TestLaunchURLArgsQuoted(t *testing.T) {
	d, runner, _ := newTestDispatcher("windows")

	err := d.Launch(context.Background(), "https://example.com", []string{"a b", "c"}, false)
	if err != nil {
		t.Fatalf("Launch() error = %v", err)
	}

	if got := runner.started[0].Line; got != `"https://example.com" "a b" c` {
		t.Errorf("Line = %q", got)
	}
}

func TestLaunchExecutable(t *testing.T) {
	exe := filepath.Join(t.TempDir(), "tool.exe")
	if err := os.WriteFile(exe, nil, 0o755); err != nil {
		t.Fatal(err)
	}
	d, runner, _ := newTestDispatcher("windows")

	if err := d.Launch(context.Background(), exe, []string{"--flag", "value"}, true); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}

	got := runner.started[0]
	if got.Program != exe || !equalStrings(got.Args, []string{"--flag", "value"}) {
		t.Errorf("Launch() started %+v", got)
	}
}

func TestLaunchInvalidPath(t *testing.T) {
	d, runner, _ := newTestDispatcher("linux")
	missing := filepath.Join(t.TempDir(), "missing")

	err := d.Launch(context.Background(), missing, nil, false)

	var le *domain.LaunchError
	if !errors.As(err, &le) {
		t.Fatalf("Launch() error = %v, want *LaunchError", err)
	}
	if le.Error() != "Invalid path: "+missing {
		t.Errorf("Error() = %q", le.Error())
	}
	if len(runner.started) != 0 {
		t.Error("nothing should be spawned for an invalid path")
	}
}

func TestLaunchVerbatimFireAndForget(t *testing.T) {
	d, runner, _ := newTestDispatcher("linux")

	// Verbatim commands skip the existence check
	if err := d.Launch(context.Background(), "!code --new-window", nil, false); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}

	if len(runner.started) != 1 || len(runner.ran) != 0 {
		t.Fatalf("started=%d ran=%d, want 1/0", len(runner.started), len(runner.ran))
	}
	got := runner.started[0]
	if got.Program != "code" || !equalStrings(got.Args, []string{"--new-window"}) || got.Hidden {
		t.Errorf("Launch() started %+v", got)
	}
}

func TestLaunchVerbatimMonitored(t *testing.T) {
	d, runner, out := newTestDispatcher("linux")
	runner.output = []string{"PING 127.0.0.1", "64 bytes from 127.0.0.1"}

	if err := d.Launch(context.Background(), "!?ping 127.0.0.1", nil, false); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}

	if len(runner.ran) != 1 || len(runner.started) != 0 {
		t.Fatalf("ran=%d started=%d, want 1/0", len(runner.ran), len(runner.started))
	}
	got := runner.ran[0]
	if got.Program != "ping" || !equalStrings(got.Args, []string{"127.0.0.1"}) || !got.Hidden {
		t.Errorf("Launch() ran %+v", got)
	}
	if out.String() != "PING 127.0.0.1\n64 bytes from 127.0.0.1\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestLaunchVerbatimEmpty(t *testing.T) {
	d, _, _ := newTestDispatcher("linux")

	err := d.Launch(context.Background(), "!?", nil, false)
	if !errors.Is(err, ErrEmptyCommand) {
		t.Errorf("Launch() error = %v, want ErrEmptyCommand", err)
	}
}

func TestLaunchRunnerError(t *testing.T) {
	d, runner, _ := newTestDispatcher("linux")
	runner.err = errors.New("exec: not found")

	err := d.Launch(context.Background(), "https://example.com", nil, false)
	if !errors.Is(err, runner.err) {
		t.Errorf("Launch() error = %v, want wrapped runner error", err)
	}
}

func TestLaunchCancelledContext(t *testing.T) {
	d, runner, _ := newTestDispatcher("linux")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := d.Launch(ctx, "https://example.com", nil, false); !errors.Is(err, context.Canceled) {
		t.Errorf("Launch() error = %v, want context.Canceled", err)
	}
	if len(runner.started) != 0 {
		t.Error("nothing should be spawned after cancellation")
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
