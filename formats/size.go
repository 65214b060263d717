package formats

import "fmt"

const (
	KB = 1024
	MB = 1024 * KB
	GB = 1024 * MB
)

// HumanSize renders a byte count with the largest unit that keeps the value >= 1.
// A nil count renders as "N/A".
func HumanSize(bytes *int64) string {
	if bytes == nil {
		return "N/A"
	}
	n := *bytes
	if n >= GB {
		return fmt.Sprintf("%.2f GB", float64(n)/float64(GB))
	} else if n >= MB {
		return fmt.Sprintf("%.2f MB", float64(n)/float64(MB))
	} else if n >= KB {
		return fmt.Sprintf("%.1f KB", float64(n)/float64(KB))
	}
	return fmt.Sprintf("%d B", n)
}
