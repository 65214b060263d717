package handlers

import (
	"fmt"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"

	"ytdlp-direct/config"
)

const sessionName = "session"

func newCookieStore(cfg config.Config) *sessions.CookieStore {
	store := sessions.NewCookieStore(cfg.SessionAuthKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   24 * 60 * 60, // seconds
		HttpOnly: true,
		Secure:   cfg.Secure,
	}
	return store
}

// session returns the visitor's session. A cookie signed with an old key
// yields a fresh session rather than an error.
func (h *Handler) session(c echo.Context) *sessions.Session {
	session, err := h.store.Get(c.Request(), sessionName)
	if err != nil {
		h.log.Debugf("discarding unreadable session: %v", err)
	}
	return session
}

func (h *Handler) addFlash(c echo.Context, msg string) {
	session := h.session(c)
	session.AddFlash(msg)
	if err := session.Save(c.Request(), c.Response().Writer); err != nil {
		h.log.Errorf("couldn't save flash: %v", err)
	}
}

func (h *Handler) popFlashes(c echo.Context) []string {
	session := h.session(c)
	flashes := session.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	if err := session.Save(c.Request(), c.Response().Writer); err != nil {
		h.log.Errorf("couldn't clear flashes: %v", err)
	}

	out := make([]string, 0, len(flashes))
	for _, f := range flashes {
		out = append(out, fmt.Sprint(f))
	}
	return out
}
