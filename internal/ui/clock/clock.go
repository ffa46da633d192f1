// Package clock renders countdown values for display.
package clock

import "fmt"

// Format renders seconds as zero-padded mm:ss. Negative values render as
// 00:00; minutes are not wrapped into hours.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
