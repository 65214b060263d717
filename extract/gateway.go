package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"ytdlp-direct/formats"
	"ytdlp-direct/media"
)

// Extractor fetches metadata for a URL. An empty formatID asks for the full
// catalog; otherwise only that format is resolved.
type Extractor interface {
	Extract(ctx context.Context, url, formatID string) (*media.Info, error)
}

// Gateway is the only caller of the extraction tool. Every error it returns
// is an *Error.
type Gateway struct {
	extractor Extractor
	vocab     *Vocabulary
	timeout   time.Duration
	log       *logrus.Entry
}

// NewGateway returns a Gateway. A zero timeout leaves calls bounded only by
// the caller's context.
func NewGateway(extractor Extractor, vocab *Vocabulary, timeout time.Duration, logger *logrus.Logger) *Gateway {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Gateway{
		extractor: extractor,
		vocab:     vocab,
		timeout:   timeout,
		log:       logger.WithField("component", "extract"),
	}
}

// ListFormats returns the title, thumbnail and ranked redirectable formats for url.
func (g *Gateway) ListFormats(ctx context.Context, url string) (*media.VideoResult, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, g.fail(EmptyInput, nil)
	}

	info, err := g.extract(ctx, url, "")
	if err != nil {
		g.log.Errorf("yt-dlp error for URL %s: %v", url, err)
		return nil, g.classify(err)
	}

	result := &media.VideoResult{
		Title:       info.Title,
		Thumbnail:   info.Thumbnail,
		Formats:     formats.Build(info.Formats),
		OriginalURL: url,
	}
	if result.Title == "" {
		result.Title = "N/A"
	}
	g.log.Debugf("%s: %d of %d formats usable", url, len(result.Formats), len(info.Formats))
	if len(result.Formats) == 0 {
		return nil, g.fail(NoPlayableFormats, fmt.Errorf("none of %d formats is a single progressive file", len(info.Formats)))
	}
	return result, nil
}

// ResolveDownloadURL runs a fresh extraction restricted to formatID and returns
// the provider's direct URL for it. URLs from ListFormats are never reused
// because providers issue short-lived, per-request links.
func (g *Gateway) ResolveDownloadURL(ctx context.Context, url, formatID string) (string, error) {
	url = strings.TrimSpace(url)
	formatID = strings.TrimSpace(formatID)
	if url == "" || formatID == "" {
		return "", g.fail(EmptyInput, nil)
	}

	info, err := g.extract(ctx, url, formatID)
	if err != nil {
		g.log.Errorf("yt-dlp download error for URL %s format %s: %v", url, formatID, err)
		return "", g.classify(err)
	}

	direct, ok := directURL(info, formatID)
	if !ok {
		return "", g.fail(FormatLinkNotFound, fmt.Errorf("format %s of %s", formatID, url))
	}
	return direct, nil
}

func (g *Gateway) extract(ctx context.Context, url, formatID string) (*media.Info, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	return g.extractor.Extract(ctx, url, formatID)
}

func (g *Gateway) fail(kind Kind, err error) *Error {
	return &Error{Kind: kind, Message: g.vocab.Message(kind), Err: err}
}

// classify maps an extraction failure onto a Kind. Timeouts and cancellations
// count as network errors; everything else is matched against the vocabulary.
func (g *Gateway) classify(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return g.fail(NetworkError, err)
	}
	return g.fail(g.vocab.Classify(err.Error()), err)
}

// directURL searches info in order: a merged selection, the selected
// top-level format, then the per-format list.
func directURL(info *media.Info, formatID string) (string, bool) {
	if len(info.RequestedFormats) > 0 {
		if u := info.RequestedFormats[0].URL; u != "" {
			return u, true
		}
		if info.URL != "" {
			return info.URL, true
		}
	}
	if info.URL != "" && (info.FormatID == formatID || info.FormatID == "") {
		return info.URL, true
	}
	for _, f := range info.Formats {
		if f.FormatID == formatID && f.URL != "" {
			return f.URL, true
		}
	}
	return "", false
}
