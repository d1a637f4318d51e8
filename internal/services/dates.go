package services

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// formatLongDate renders t in loc as e.g. "April 10th, 2024".
func formatLongDate(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return fmt.Sprintf("%s %s, %d", t.Month(), humanize.Ordinal(t.Day()), t.Year())
}
