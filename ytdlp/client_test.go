package ytdlp

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
)

type fakeRunner struct {
	stdout string
	stderr string
	err    error
	args   []string
}

func (f *fakeRunner) Run(_ context.Context, args ...string) ([]byte, []byte, error) {
	f.args = args
	return []byte(f.stdout), []byte(f.stderr), f.err
}

const sampleInfo = `{
  "id": "abc",
  "title": "A video",
  "thumbnail": "https://img.example/abc.jpg",
  "format_id": "18",
  "url": "https://cdn.example/18",
  "formats": [
    {"format_id": "18", "ext": "mp4", "url": "https://cdn.example/18", "vcodec": "avc1.42001E",
     "acodec": "mp4a.40.2", "height": 360, "width": 640, "tbr": 500.5, "fps": 30,
     "filesize": 1048576, "protocol": "https"},
    {"format_id": "140", "ext": "m4a", "url": "https://cdn.example/140", "vcodec": "none",
     "acodec": "mp4a.40.2", "height": null, "tbr": 129.5, "filesize_approx": 3000000.5,
     "format_note": "medium", "protocol": "https"}
  ]
}`

func TestExtractDecodesFormats(t *testing.T) {
	runner := &fakeRunner{stdout: sampleInfo}
	client := NewClient(runner)

	info, err := client.Extract(context.Background(), "https://example.com/watch?v=abc", "")
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if info.Title != "A video" || info.Thumbnail != "https://img.example/abc.jpg" {
		t.Errorf("unexpected header fields: %+v", info)
	}
	if len(info.Formats) != 2 {
		t.Fatalf("got %d formats, want 2", len(info.Formats))
	}
	f := info.Formats[0]
	if f.Height == nil || *f.Height != 360 || f.TBR == nil || *f.TBR != 500.5 {
		t.Errorf("numeric fields not decoded: %+v", f)
	}
	a := info.Formats[1]
	if a.Height != nil {
		t.Errorf("null height should stay nil, got %v", *a.Height)
	}
	if a.FileSizeApprox == nil || *a.FileSizeApprox != 3000000.5 {
		t.Errorf("filesize_approx not decoded: %+v", a)
	}
	if slices.Contains(runner.args, "--format") {
		t.Errorf("listing must not restrict the format: %v", runner.args)
	}
}

func TestExtractArgs(t *testing.T) {
	runner := &fakeRunner{stdout: `{"format_id":"22","url":"x"}`}
	client := NewClient(runner, WithCookies("/etc/cookies.txt"))

	if _, err := client.Extract(context.Background(), "--exec=rm", "22"); err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	args := runner.args
	for _, want := range []string{"--dump-single-json", "--skip-download", "--no-playlist", "--quiet", "--no-warnings"} {
		if !slices.Contains(args, want) {
			t.Errorf("missing %s in %v", want, args)
		}
	}
	if i := slices.Index(args, "--format"); i < 0 || args[i+1] != "22" {
		t.Errorf("format selector not passed: %v", args)
	}
	if i := slices.Index(args, "--cookies"); i < 0 || args[i+1] != "/etc/cookies.txt" {
		t.Errorf("cookies not passed: %v", args)
	}
	if n := len(args); args[n-2] != "--" || args[n-1] != "--exec=rm" {
		t.Errorf("url must follow --: %v", args)
	}
}

func TestExtractErrors(t *testing.T) {
	exitErr := &ExitError{Stderr: "ERROR: [generic] Unsupported URL: https://example.com", Err: errors.New("exit status 1")}

	tests := []struct {
		name   string
		runner *fakeRunner
		check  func(error) bool
	}{
		{
			name:   "process failure keeps stderr",
			runner: &fakeRunner{err: exitErr},
			check: func(err error) bool {
				var e *ExitError
				return errors.As(err, &e) && strings.Contains(err.Error(), "Unsupported URL")
			},
		},
		{
			name:   "null output",
			runner: &fakeRunner{stdout: "null\n"},
			check:  func(err error) bool { return strings.Contains(err.Error(), "no metadata") },
		},
		{
			name:   "garbage output",
			runner: &fakeRunner{stdout: "<html>"},
			check:  func(err error) bool { return strings.Contains(err.Error(), "couldn't parse") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.runner).Extract(context.Background(), "https://example.com", "")
			if err == nil || !tt.check(err) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	client := NewClient(&fakeRunner{stdout: "2025.10.22\n"})
	v, err := client.Version(context.Background())
	if err != nil || v != "2025.10.22" {
		t.Errorf("Version() = %q, %v", v, err)
	}
}
