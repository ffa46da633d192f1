package platform

import "time"

// AlertPattern returns the phase-ended pulse pattern for this platform as
// alternating off/on durations.
func AlertPattern() []time.Duration {
	return alertPattern()
}
