package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"ytdlp-direct/media"
)

// Client asks yt-dlp for metadata only. It never downloads media.
type Client struct {
	runner  Runner
	cookies string
}

type Option func(*Client)

// WithCookies passes a Netscape cookies file to every invocation.
func WithCookies(path string) Option {
	return func(c *Client) { c.cookies = path }
}

func NewClient(runner Runner, opts ...Option) *Client {
	c := &Client{runner: runner}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) args(url, formatID string) []string {
	args := []string{
		"--dump-single-json",
		"--skip-download",
		"--no-playlist",
		"--quiet",
		"--no-warnings",
	}
	if c.cookies != "" {
		args = append(args, "--cookies", c.cookies)
	}
	if formatID != "" {
		args = append(args, "--format", formatID)
	}
	// everything after "--" is a URL, never an option
	return append(args, "--", url)
}

// Extract returns the metadata for url. With an empty formatID the full
// format catalog is returned; otherwise yt-dlp resolves exactly that format.
func (c *Client) Extract(ctx context.Context, url, formatID string) (*media.Info, error) {
	stdout, _, err := c.runner.Run(ctx, c.args(url, formatID)...)
	if err != nil {
		return nil, err
	}
	stdout = bytes.TrimSpace(stdout)
	if len(stdout) == 0 || bytes.Equal(stdout, []byte("null")) {
		return nil, fmt.Errorf("yt-dlp returned no metadata for %s", url)
	}

	var info media.Info
	if err := json.Unmarshal(stdout, &info); err != nil {
		return nil, fmt.Errorf("couldn't parse yt-dlp output: %w", err)
	}
	return &info, nil
}

// Version returns the output of `yt-dlp --version`.
func (c *Client) Version(ctx context.Context) (string, error) {
	stdout, _, err := c.runner.Run(ctx, "--version")
	if err != nil {
		return "", err
	}
	return string(bytes.TrimSpace(stdout)), nil
}
