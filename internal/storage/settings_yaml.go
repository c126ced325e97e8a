// Package storage persists user settings as a flat key-value YAML file.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"focustimer/internal/core/model"
)

// SettingsFileName is the well-known settings location, relative to the
// working directory.
const SettingsFileName = "pomodoro_settings.yaml"

// Pointer fields distinguish an absent key from an explicit zero value,
// so keys missing from the file keep their defaults.
type yamlSettings struct {
	WorkTime                *int  `yaml:"work_time"`
	BreakTime               *int  `yaml:"break_time"`
	LongBreakTime           *int  `yaml:"long_break_time"`
	SessionsBeforeLongBreak *int  `yaml:"sessions_before_long_break"`
	SoundEnabled            *bool `yaml:"sound_enabled"`
	AutoStartBreaks         *bool `yaml:"auto_start_breaks"`
}

// LoadSettings reads settings from path, merging persisted overrides
// over the defaults. A missing file is not an error. Any other read or
// parse failure also yields defaults; the returned error exists only so
// the caller can log it. Unknown keys are ignored.
func LoadSettings(path string) (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings.Normalize(), nil
}

// SaveSettings writes the full settings object to path, overwriting any
// prior data. Write failures are returned: saving is a user-visible
// action and must not fail silently.
func SaveSettings(path string, settings model.Settings) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings directory: %w", err)
		}
	}

	fileData := yamlSettings{
		WorkTime:                &settings.WorkMinutes,
		BreakTime:               &settings.BreakMinutes,
		LongBreakTime:           &settings.LongBreakMinutes,
		SessionsBeforeLongBreak: &settings.SessionsBeforeLongBreak,
		SoundEnabled:            &settings.SoundEnabled,
		AutoStartBreaks:         &settings.AutoAdvance,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	if fileData.WorkTime != nil && *fileData.WorkTime > 0 {
		settings.WorkMinutes = *fileData.WorkTime
	}
	if fileData.BreakTime != nil && *fileData.BreakTime > 0 {
		settings.BreakMinutes = *fileData.BreakTime
	}
	if fileData.LongBreakTime != nil && *fileData.LongBreakTime > 0 {
		settings.LongBreakMinutes = *fileData.LongBreakTime
	}
	if fileData.SessionsBeforeLongBreak != nil && *fileData.SessionsBeforeLongBreak > 0 {
		settings.SessionsBeforeLongBreak = *fileData.SessionsBeforeLongBreak
	}
	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
	if fileData.AutoStartBreaks != nil {
		settings.AutoAdvance = *fileData.AutoStartBreaks
	}
}
