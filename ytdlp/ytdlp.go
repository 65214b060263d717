package ytdlp

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Runner executes yt-dlp with the provided args and returns (stdout, stderr, error).
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, []byte, error)
}

// ExitError is returned when yt-dlp runs but fails. Stderr holds the
// "ERROR: ..." lines yt-dlp printed.
type ExitError struct {
	Stderr string
	Err    error
}

func (e *ExitError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("yt-dlp: %v", e.Err)
	}
	return fmt.Sprintf("yt-dlp: %v: %s", e.Err, msg)
}

func (e *ExitError) Unwrap() error { return e.Err }

type CommandRunner struct {
	Path string // defaults to "yt-dlp" from $PATH
	log  *logrus.Entry
}

func NewCommandRunner(path string, logger *logrus.Logger) *CommandRunner {
	if path == "" {
		path = "yt-dlp"
	}
	return &CommandRunner{
		Path: path,
		log:  logger.WithField("component", "ytdlp"),
	}
}

func (r *CommandRunner) Run(ctx context.Context, args ...string) ([]byte, []byte, error) {
	r.log.Infoln(r.Path, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, r.Path, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	if err != nil {
		r.log.Errorf("yt-dlp error: %v", err)
		r.log.Debugln("stderr:", stderr.String())
		if ctxErr := ctx.Err(); ctxErr != nil {
			return stdout.Bytes(), stderr.Bytes(), fmt.Errorf("yt-dlp: %w", ctxErr)
		}
		return stdout.Bytes(), stderr.Bytes(), &ExitError{Stderr: stderr.String(), Err: err}
	}
	r.log.Debugf("stdout: %d bytes", stdout.Len())
	return stdout.Bytes(), stderr.Bytes(), nil
}
