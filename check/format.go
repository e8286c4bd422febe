package check

import "fmt"

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatReduction formats the relative size reduction between before and
// after byte counts, e.g. "23.4% reduction".
func FormatReduction(before, after int) string {
	if before == 0 {
		return "0.0% reduction"
	}
	pct := float64(before-after) / float64(before) * 100
	return fmt.Sprintf("%.1f%% reduction", pct)
}
