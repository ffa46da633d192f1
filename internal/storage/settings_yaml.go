package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/settings"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

// ErrInvalidSettings marks a settings file value that was ignored.
var ErrInvalidSettings = errors.New("invalid settings value")

type yamlSettings struct {
	WorkMinutes int `yaml:"work_minutes"`
	RestMinutes int `yaml:"rest_minutes"`
	TotalRounds int `yaml:"total_rounds"`
}

// Repository reads and writes the timer configuration. Only the three
// durations are stored; run state never leaves the process.
type Repository struct {
	fs   afero.Fs
	path string
}

// NewRepository creates a repository for the file at path on fs.
func NewRepository(fs afero.Fs, path string) *Repository {
	return &Repository{fs: fs, path: path}
}

// DefaultPath returns the settings file location under the XDG config home.
func DefaultPath(appName string) string {
	return filepath.Join(xdg.ConfigHome, appName, settingsFileName)
}

// Path returns the settings file path.
func (repository *Repository) Path() string {
	return repository.path
}

// Load reads the configuration. A missing file yields the defaults. Values
// out of range are replaced by their default and reported in a joined
// error wrapping ErrInvalidSettings; the returned config is always usable.
func (repository *Repository) Load() (model.Config, error) {
	config := model.DefaultConfig()

	rawData, err := afero.ReadFile(repository.fs, repository.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return config, fmt.Errorf("parse settings yaml: %w", err)
	}

	return applyYamlSettings(config, fileData)
}

// Save writes config atomically.
func (repository *Repository) Save(config model.Config) error {
	if !config.Valid() {
		return fmt.Errorf("save settings: %w: %+v", ErrInvalidSettings, config)
	}

	fileData := yamlSettings{
		WorkMinutes: config.WorkMinutes,
		RestMinutes: config.RestMinutes,
		TotalRounds: config.TotalRounds,
	}
	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := writeFileAtomic(repository.fs, repository.path, serialized); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

// Remove deletes the settings file. A missing file is not an error.
func (repository *Repository) Remove() error {
	if err := repository.fs.Remove(repository.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove settings file: %w", err)
	}
	return nil
}

func applyYamlSettings(config model.Config, fileData yamlSettings) (model.Config, error) {
	var problems []error
	apply := func(field settings.Field, value int, target *int) {
		switch {
		case value == 0:
		case value > 0 && value < 100:
			*target = value
		default:
			problems = append(problems, fmt.Errorf("%w: %s=%d", ErrInvalidSettings, field, value))
		}
	}

	apply(settings.FieldWork, fileData.WorkMinutes, &config.WorkMinutes)
	apply(settings.FieldRest, fileData.RestMinutes, &config.RestMinutes)
	apply(settings.FieldRounds, fileData.TotalRounds, &config.TotalRounds)
	return config, errors.Join(problems...)
}

func writeFileAtomic(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmpFile, err := afero.TempFile(fs, dir, ".settings-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = fs.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := fs.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
