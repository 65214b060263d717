package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (h *Handler) StatusGet(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	version, err := h.versions.Version(ctx)
	if err != nil {
		h.log.Errorln(err)
		version = "unavailable"
	}

	return c.Render(http.StatusOK, "status.html", map[string]interface{}{
		"Ytdlp":            version,
		"Timeout":          h.cfg.ExtractTimeout.String(),
		"SessionKeySource": h.cfg.SessionKeySource,
		"Footer":           MakeFooter(),
	})
}
