package downloading

import (
	"time"

	"github.com/mara/criteo-performance-downloader/internal/domain"
)

// The reporting API refuses ranges spanning more than 90 days, so larger
// histories must be requested in 90-day windows.
const maxWindowDays = 90

// ChunkDateRange tiles [start, end) into consecutive windows of at most
// maxWindowDays calendar days, each emitted exactly once. The final window's
// nominal end may lie beyond end; the remote returns only the data it has.
// start >= end yields no windows.
func ChunkDateRange(start, end time.Time) []domain.DateWindow {
	var windows []domain.DateWindow
	for current := start; current.Before(end); current = current.AddDate(0, 0, maxWindowDays) {
		windows = append(windows, domain.DateWindow{
			Start: current,
			End:   current.AddDate(0, 0, maxWindowDays-1),
		})
	}
	return windows
}

// previousDay truncates now to its calendar date and steps back one day. The
// current, incomplete day is never downloaded.
func previousDay(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
}
