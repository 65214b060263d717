package extract

import (
	"errors"
	"fmt"
)

// Kind is a user-facing failure class.
type Kind string

const (
	EmptyInput         Kind = "empty-input"
	UnsupportedURL     Kind = "unsupported-url"
	VideoUnavailable   Kind = "video-unavailable"
	LoginRequired      Kind = "login-required"
	BotVerification    Kind = "bot-verification-required"
	NetworkError       Kind = "network-error"
	ExtractionFailed   Kind = "extraction-failed"
	NoPlayableFormats  Kind = "no-playable-formats"
	FormatLinkNotFound Kind = "format-link-not-found"
	Unknown            Kind = "unknown-error"
)

// kinds that can be inferred from yt-dlp's error text
var matchable = map[Kind]bool{
	UnsupportedURL:   true,
	VideoUnavailable: true,
	LoginRequired:    true,
	BotVerification:  true,
	NetworkError:     true,
	ExtractionFailed: true,
}

var known = map[Kind]bool{
	EmptyInput:         true,
	UnsupportedURL:     true,
	VideoUnavailable:   true,
	LoginRequired:      true,
	BotVerification:    true,
	NetworkError:       true,
	ExtractionFailed:   true,
	NoPlayableFormats:  true,
	FormatLinkNotFound: true,
	Unknown:            true,
}

// Error is returned by every Gateway operation. Message is safe to show to
// users; Err keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind carried by err, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

const genericMessage = "An unexpected error occurred. Please try again later."

// UserMessage returns text suitable for the UI. Raw error text is never returned.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return genericMessage
}
