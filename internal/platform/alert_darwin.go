//go:build darwin

package platform

import "time"

func alertPattern() []time.Duration {
	return []time.Duration{0, 500 * time.Millisecond}
}
