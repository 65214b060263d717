package formats

import (
	"fmt"
	"math"
	"strings"

	"ytdlp-direct/media"
)

const noCodec = "none"

// protocols that deliver the whole file from a single URL
var progressive = map[string]bool{
	"":      true, // not reported; the URL is taken as-is
	"http":  true,
	"https": true,
	"ftp":   true,
	"ftps":  true,
}

// Redirectable reports whether f can be handed to a browser as one redirect
// target: it has a URL, a progressive protocol and at least one codec.
func Redirectable(f media.RawFormat) bool {
	if f.URL == "" {
		return false
	}
	if !progressive[strings.ToLower(f.Protocol)] {
		return false
	}
	return hasCodec(f.VCodec) || hasCodec(f.ACodec)
}

func hasCodec(codec string) bool {
	return codec != noCodec
}

// Classify turns a raw yt-dlp format into a display row.
// The second result is false when the format is excluded.
func Classify(f media.RawFormat) (media.DisplayFormat, bool) {
	if !Redirectable(f) {
		return media.DisplayFormat{}, false
	}

	var class media.Class
	switch {
	case hasCodec(f.VCodec) && hasCodec(f.ACodec):
		class = media.VideoAudio
	case hasCodec(f.VCodec):
		class = media.VideoOnly
	default:
		class = media.AudioOnly
	}

	bytes := sizeOf(f)
	var size *int64
	if f.FileSize != nil || f.FileSizeApprox != nil {
		size = &bytes
	}

	return media.DisplayFormat{
		FormatID: f.FormatID,
		Ext:      f.Ext,
		Quality:  label(f, class),
		Class:    class,
		Size:     HumanSize(size),
		Bytes:    bytes,
		Height:   int(valueOr(f.Height, 0)),
		Bitrate:  valueOr(f.TBR, 0),
	}, true
}

func label(f media.RawFormat, class media.Class) string {
	quality := strings.TrimSpace(f.FormatNote)
	if quality == "" {
		switch class {
		case media.VideoAudio, media.VideoOnly:
			quality = videoLabel(f, class)
		case media.AudioOnly:
			quality = audioLabel(f)
		}
	}
	quality = strings.TrimSpace(quality)
	if quality == "" {
		quality = "ID: " + f.FormatID
	}
	return quality
}

func videoLabel(f media.RawFormat, class media.Class) string {
	var quality string
	if known(f.Height) {
		quality = fmt.Sprintf("%dp", int(*f.Height))
	} else if f.Resolution != "" {
		quality = f.Resolution
	} else if class == media.VideoOnly {
		quality = "Video"
	} else {
		quality = "Unknown"
	}
	if class == media.VideoOnly && known(f.FPS) {
		quality += fmt.Sprintf(" @%dfps", int(math.Round(*f.FPS)))
	}
	return quality
}

func audioLabel(f media.RawFormat) string {
	if known(f.TBR) {
		return fmt.Sprintf("%d kbps", int(math.Round(*f.TBR)))
	}
	if f.Resolution != "" {
		return f.Resolution
	}
	return "Audio"
}

// exact size, else yt-dlp's estimate, else 0
func sizeOf(f media.RawFormat) int64 {
	if f.FileSize != nil {
		return int64(*f.FileSize)
	}
	if f.FileSizeApprox != nil {
		return int64(*f.FileSizeApprox)
	}
	return 0
}

func known(v *float64) bool {
	return v != nil && *v > 0
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
