package settings

import (
	"testing"

	"pomodoro/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreDefaults(t *testing.T) {
	store := NewStore(model.DefaultConfig())

	assert.Equal(t, "25", store.Text(FieldWork))
	assert.Equal(t, "5", store.Text(FieldRest))
	assert.Equal(t, "4", store.Text(FieldRounds))

	config, ok := store.Config()
	require.True(t, ok)
	assert.Equal(t, model.DefaultConfig(), config)
	assert.Equal(t, model.DefaultConfig(), store.Effective())
}

func TestNewStoreFillsMissingFields(t *testing.T) {
	store := NewStore(model.Config{WorkMinutes: 50})

	assert.Equal(t, model.Config{WorkMinutes: 50, RestMinutes: 5, TotalRounds: 4}, store.Effective())
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		text  string
		value int
		ok    bool
	}{
		{text: "1", value: 1, ok: true},
		{text: "25", value: 25, ok: true},
		{text: "99", value: 99, ok: true},
		{text: "07", value: 7, ok: true},
		{text: "", ok: false},
		{text: "0", ok: false},
		{text: "00", ok: false},
		{text: "-1", ok: false},
		{text: "+5", ok: false},
		{text: "5a", ok: false},
		{text: " 5", ok: false},
		{text: "100", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			value, ok := ParseValue(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestSetValidValue(t *testing.T) {
	store := NewStore(model.DefaultConfig())

	edit := store.Set(FieldRest, "10")

	assert.Equal(t, Edit{Field: FieldRest, Text: "10", Value: 10, Accepted: true, Valid: true}, edit)
	assert.Equal(t, 10, store.Effective().RestMinutes)
	config, ok := store.Config()
	require.True(t, ok)
	assert.Equal(t, 10, config.RestMinutes)
}

func TestSetEmptyKeepsLastValid(t *testing.T) {
	store := NewStore(model.DefaultConfig())

	edit := store.Set(FieldWork, "")

	assert.True(t, edit.Accepted)
	assert.False(t, edit.Valid)
	assert.Equal(t, "", store.Text(FieldWork))
	assert.Equal(t, 25, store.Effective().WorkMinutes)

	_, ok := store.Config()
	assert.False(t, ok)
}

func TestSetNonNumericStoredVerbatim(t *testing.T) {
	store := NewStore(model.DefaultConfig())

	edit := store.Set(FieldRounds, "x")

	assert.True(t, edit.Accepted)
	assert.False(t, edit.Valid)
	assert.Equal(t, "x", store.Text(FieldRounds))
	assert.Equal(t, 4, store.Effective().TotalRounds)
}

func TestSetRejectsLongText(t *testing.T) {
	store := NewStore(model.DefaultConfig())

	edit := store.Set(FieldWork, "120")

	assert.False(t, edit.Accepted)
	assert.Equal(t, "25", store.Text(FieldWork))
	assert.Equal(t, 25, store.Effective().WorkMinutes)
}

func TestSetUnknownField(t *testing.T) {
	store := NewStore(model.DefaultConfig())

	edit := store.Set(Field(7), "5")

	assert.False(t, edit.Accepted)
	assert.Equal(t, "", store.Text(Field(7)))
	assert.Equal(t, model.DefaultConfig(), store.Effective())
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "work_minutes", FieldWork.String())
	assert.Equal(t, "rest_minutes", FieldRest.String())
	assert.Equal(t, "total_rounds", FieldRounds.String())
	assert.Equal(t, "unknown", Field(9).String())
}
