package settings

import (
	"strconv"
	"sync"

	"pomodoro/internal/core/model"
)

// MaxDigits is the longest text a field accepts.
const MaxDigits = 2

// Field identifies one of the editable parameters.
type Field int

const (
	FieldWork Field = iota
	FieldRest
	FieldRounds
)

// Fields lists every editable parameter in display order.
var Fields = []Field{FieldWork, FieldRest, FieldRounds}

func (field Field) String() string {
	switch field {
	case FieldWork:
		return "work_minutes"
	case FieldRest:
		return "rest_minutes"
	case FieldRounds:
		return "total_rounds"
	default:
		return "unknown"
	}
}

// Edit describes the outcome of a Set call.
type Edit struct {
	Field    Field
	Text     string
	Value    int
	Accepted bool
	Valid    bool
}

// Store holds the textual form of each parameter together with the last
// value that parsed successfully.
type Store struct {
	mu   sync.RWMutex
	text [3]string
	last model.Config
}

// NewStore creates a store seeded with config. Non-positive fields fall back
// to defaults.
func NewStore(config model.Config) *Store {
	config = config.WithDefaults()
	store := &Store{last: config}
	store.text[FieldWork] = strconv.Itoa(config.WorkMinutes)
	store.text[FieldRest] = strconv.Itoa(config.RestMinutes)
	store.text[FieldRounds] = strconv.Itoa(config.TotalRounds)
	return store
}

// Set stores text for field. Text longer than MaxDigits is rejected and
// nothing changes. Empty or non-numeric text is kept verbatim but does not
// replace the last valid value.
func (store *Store) Set(field Field, text string) Edit {
	edit := Edit{Field: field, Text: text}
	if !field.known() || len(text) > MaxDigits {
		return edit
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	edit.Accepted = true
	store.text[field] = text
	if value, ok := ParseValue(text); ok {
		edit.Value = value
		edit.Valid = true
		store.setLastLocked(field, value)
	}
	return edit
}

// Text returns the stored text of field.
func (store *Store) Text(field Field) string {
	if !field.known() {
		return ""
	}
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.text[field]
}

// Config returns the parsed configuration. ok is false when any field does
// not currently hold a valid value.
func (store *Store) Config() (model.Config, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	work, workOK := ParseValue(store.text[FieldWork])
	rest, restOK := ParseValue(store.text[FieldRest])
	rounds, roundsOK := ParseValue(store.text[FieldRounds])
	if !workOK || !restOK || !roundsOK {
		return model.Config{}, false
	}
	return model.Config{WorkMinutes: work, RestMinutes: rest, TotalRounds: rounds}, true
}

// Effective returns the last valid value of every field.
func (store *Store) Effective() model.Config {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.last
}

func (store *Store) setLastLocked(field Field, value int) {
	switch field {
	case FieldWork:
		store.last.WorkMinutes = value
	case FieldRest:
		store.last.RestMinutes = value
	case FieldRounds:
		store.last.TotalRounds = value
	}
}

func (field Field) known() bool {
	return field >= FieldWork && field <= FieldRounds
}

// ParseValue parses a 1-2 digit positive integer.
func ParseValue(text string) (int, bool) {
	if text == "" || len(text) > MaxDigits {
		return 0, false
	}
	for _, char := range text {
		if char < '0' || char > '9' {
			return 0, false
		}
	}
	parsed, err := strconv.Atoi(text)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
