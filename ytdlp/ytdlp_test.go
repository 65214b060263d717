package ytdlp

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func requireBinary(t *testing.T, name string) string {
	t.Helper()
	path, err := exec.LookPath(name)
	if err != nil {
		t.Skipf("%s not available", name)
	}
	return path
}

func TestCommandRunnerExitError(t *testing.T) {
	runner := NewCommandRunner(requireBinary(t, "sh"), quietLogger())

	_, _, err := runner.Run(context.Background(), "-c", "echo 'ERROR: Video unavailable' >&2; exit 1")
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %v", err)
	}
	if !strings.Contains(exitErr.Stderr, "Video unavailable") {
		t.Errorf("stderr not captured: %q", exitErr.Stderr)
	}
}

func TestCommandRunnerTimeout(t *testing.T) {
	runner := NewCommandRunner(requireBinary(t, "sleep"), quietLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, _, err := runner.Run(ctx, "5")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestCommandRunnerDefaultPath(t *testing.T) {
	if r := NewCommandRunner("", quietLogger()); r.Path != "yt-dlp" {
		t.Errorf("default path = %q", r.Path)
	}
}
