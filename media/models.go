package media

// Class is the media-type class of a format. Its integer value is the
// ranking priority: lower sorts first.
type Class int

const (
	VideoAudio Class = iota
	VideoOnly
	AudioOnly
)

func (c Class) String() string {
	switch c {
	case VideoAudio:
		return "Video+Audio"
	case VideoOnly:
		return "Video-Only"
	case AudioOnly:
		return "Audio-Only"
	}
	return "Unknown"
}

// RawFormat is one entry of yt-dlp's "formats" list.
// Numeric fields are pointers because yt-dlp reports them as null when unknown.
type RawFormat struct {
	FormatID       string   `json:"format_id"`
	Ext            string   `json:"ext"`
	URL            string   `json:"url"`
	VCodec         string   `json:"vcodec"`
	ACodec         string   `json:"acodec"`
	Height         *float64 `json:"height"`
	Width          *float64 `json:"width"`
	TBR            *float64 `json:"tbr"` // kbps
	FPS            *float64 `json:"fps"`
	FormatNote     string   `json:"format_note"`
	Resolution     string   `json:"resolution"`
	FileSize       *float64 `json:"filesize"`
	FileSizeApprox *float64 `json:"filesize_approx"`
	Protocol       string   `json:"protocol"`
}

// Info is the top-level document printed by `yt-dlp -J`.
type Info struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Thumbnail  string `json:"thumbnail"`
	WebpageURL string `json:"webpage_url"`

	// set when a single format was selected with -f
	FormatID string `json:"format_id"`
	URL      string `json:"url"`

	Formats          []RawFormat `json:"formats"`
	RequestedFormats []RawFormat `json:"requested_formats"` // merged selections
}

type DisplayFormat struct {
	FormatID string // passed back to yt-dlp -f unchanged
	Ext      string
	Quality  string
	Class    Class
	Size     string

	Bytes   int64
	Height  int
	Bitrate float64 // kbps
}

type VideoResult struct {
	Title       string
	Thumbnail   string
	Formats     []DisplayFormat
	OriginalURL string
}
