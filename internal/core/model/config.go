package model

// Default values used at process start.
const (
	DefaultWorkMinutes = 25
	DefaultRestMinutes = 5
	DefaultTotalRounds = 4
)

// Config contains the user-tunable parameters of the interval timer.
type Config struct {
	WorkMinutes int
	RestMinutes int
	TotalRounds int
}

// DefaultConfig returns the 25/5/4 configuration.
func DefaultConfig() Config {
	return Config{
		WorkMinutes: DefaultWorkMinutes,
		RestMinutes: DefaultRestMinutes,
		TotalRounds: DefaultTotalRounds,
	}
}

// Valid reports whether every field is a positive integer.
func (config Config) Valid() bool {
	return config.WorkMinutes > 0 && config.RestMinutes > 0 && config.TotalRounds > 0
}

// WorkSeconds returns the length of a work phase in seconds.
func (config Config) WorkSeconds() int {
	return config.WorkMinutes * 60
}

// RestSeconds returns the length of a rest phase in seconds.
func (config Config) RestSeconds() int {
	return config.RestMinutes * 60
}

// WithDefaults replaces non-positive fields with their defaults.
func (config Config) WithDefaults() Config {
	if config.WorkMinutes <= 0 {
		config.WorkMinutes = DefaultWorkMinutes
	}
	if config.RestMinutes <= 0 {
		config.RestMinutes = DefaultRestMinutes
	}
	if config.TotalRounds <= 0 {
		config.TotalRounds = DefaultTotalRounds
	}
	return config
}
