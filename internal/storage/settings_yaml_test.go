package storage

import (
	"errors"
	"strings"
	"testing"

	"pomodoro/internal/core/model"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPath = "/config/pomodoro/settings.yaml"

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	repository := NewRepository(afero.NewMemMapFs(), testPath)

	config, err := repository.Load()

	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), config)
}

func TestSaveThenLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	repository := NewRepository(fs, testPath)
	want := model.Config{WorkMinutes: 50, RestMinutes: 10, TotalRounds: 2}

	require.NoError(t, repository.Save(want))

	raw, err := afero.ReadFile(fs, testPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "work_minutes: 50")
	assert.Contains(t, string(raw), "rest_minutes: 10")
	assert.Contains(t, string(raw), "total_rounds: 2")

	config, err := repository.Load()
	require.NoError(t, err)
	assert.Equal(t, want, config)

	entries, err := afero.ReadDir(fs, "/config/pomodoro")
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file must not remain")
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	repository := NewRepository(fs, testPath)

	err := repository.Save(model.Config{WorkMinutes: 0, RestMinutes: 5, TotalRounds: 4})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSettings))
	exists, err := afero.Exists(fs, testPath)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLoadPartialFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testPath, []byte("rest_minutes: 15\n"), 0o644))

	config, err := NewRepository(fs, testPath).Load()

	require.NoError(t, err)
	assert.Equal(t, model.Config{WorkMinutes: 25, RestMinutes: 15, TotalRounds: 4}, config)
}

func TestLoadOutOfRangeValues(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "work_minutes: 120\nrest_minutes: -3\ntotal_rounds: 6\n"
	require.NoError(t, afero.WriteFile(fs, testPath, []byte(content), 0o644))

	config, err := NewRepository(fs, testPath).Load()

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSettings))
	assert.True(t, strings.Contains(err.Error(), "work_minutes=120"))
	assert.True(t, strings.Contains(err.Error(), "rest_minutes=-3"))
	assert.Equal(t, model.Config{WorkMinutes: 25, RestMinutes: 5, TotalRounds: 6}, config)
}

func TestLoadMalformedYaml(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testPath, []byte("work_minutes: ["), 0o644))

	config, err := NewRepository(fs, testPath).Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse settings yaml")
	assert.Equal(t, model.DefaultConfig(), config)
}

func TestRemove(t *testing.T) {
	fs := afero.NewMemMapFs()
	repository := NewRepository(fs, testPath)
	require.NoError(t, repository.Save(model.DefaultConfig()))

	require.NoError(t, repository.Remove())
	require.NoError(t, repository.Remove())

	exists, err := afero.Exists(fs, testPath)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath("pomodoro")
	assert.True(t, strings.HasSuffix(path, "pomodoro/settings.yaml") || strings.HasSuffix(path, `pomodoro\settings.yaml`))
}
