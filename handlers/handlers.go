package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"ytdlp-direct/config"
	"ytdlp-direct/extract"
	"ytdlp-direct/media"
)

// Extractor is the part of extract.Gateway the handlers need.
type Extractor interface {
	ListFormats(ctx context.Context, url string) (*media.VideoResult, error)
	ResolveDownloadURL(ctx context.Context, url, formatID string) (string, error)
}

type VersionReporter interface {
	Version(ctx context.Context) (string, error)
}

type Handler struct {
	extractor Extractor
	versions  VersionReporter
	store     sessions.Store
	cfg       config.Config
	log       *logrus.Entry
}

func New(cfg config.Config, extractor Extractor, versions VersionReporter, logger *logrus.Logger) *Handler {
	return &Handler{
		extractor: extractor,
		versions:  versions,
		store:     newCookieStore(cfg),
		cfg:       cfg,
		log:       logger.WithField("component", "handlers"),
	}
}

type indexPage struct {
	Video        *media.VideoResult
	Error        string
	SubmittedURL string
	Flashes      []string
	Footer       Footer
}

func (h *Handler) requestLog(c echo.Context) *logrus.Entry {
	return h.log.WithField("request_id", c.Response().Header().Get(echo.HeaderXRequestID))
}

// IndexGet renders the empty form, pre-filled from ?submitted_url=.
func (h *Handler) IndexGet(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", indexPage{
		SubmittedURL: c.QueryParam("submitted_url"),
		Flashes:      h.popFlashes(c),
		Footer:       MakeFooter(),
	})
}

// IndexPost lists the formats for the submitted URL.
func (h *Handler) IndexPost(c echo.Context) error {
	videoURL := strings.TrimSpace(c.FormValue("url"))
	page := indexPage{
		SubmittedURL: videoURL,
		Footer:       MakeFooter(),
	}

	result, err := h.extractor.ListFormats(c.Request().Context(), videoURL)
	if err != nil {
		h.requestLog(c).WithField("kind", extract.KindOf(err)).Warnf("list formats for %q: %v", videoURL, err)
		page.Error = extract.UserMessage(err)
	} else {
		page.Video = result
	}
	return c.Render(http.StatusOK, "index.html", page)
}

// Download redirects the browser to the provider's direct URL for the chosen format.
func (h *Handler) Download(c echo.Context) error {
	videoURL := strings.TrimSpace(c.QueryParam("url"))
	formatID := strings.TrimSpace(c.QueryParam("format_id"))

	if videoURL == "" || formatID == "" {
		h.addFlash(c, "Error: Missing video URL or format ID for download.")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	direct, err := h.extractor.ResolveDownloadURL(c.Request().Context(), videoURL, formatID)
	if err != nil {
		h.requestLog(c).WithField("kind", extract.KindOf(err)).Warnf("resolve %q format %s: %v", videoURL, formatID, err)
		h.addFlash(c, extract.UserMessage(err))
		return c.Redirect(http.StatusSeeOther, "/?submitted_url="+url.QueryEscape(videoURL))
	}

	h.requestLog(c).Infof("redirecting %q format %s", videoURL, formatID)
	return c.Redirect(http.StatusFound, direct)
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
