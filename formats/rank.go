package formats

import (
	"cmp"
	"slices"

	"ytdlp-direct/media"
)

// Rank orders formats by class (Video+Audio first), then height and bitrate,
// both descending. The sort is stable so full ties keep yt-dlp's order.
func Rank(formats []media.DisplayFormat) {
	slices.SortStableFunc(formats, func(a, b media.DisplayFormat) int {
		if c := cmp.Compare(a.Class, b.Class); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Height, a.Height); c != 0 {
			return c
		}
		return cmp.Compare(b.Bitrate, a.Bitrate)
	})
}

// Build classifies every raw format, drops the excluded ones and ranks the rest.
func Build(raw []media.RawFormat) []media.DisplayFormat {
	out := make([]media.DisplayFormat, 0, len(raw))
	for _, f := range raw {
		if d, ok := Classify(f); ok {
			out = append(out, d)
		}
	}
	Rank(out)
	return out
}
