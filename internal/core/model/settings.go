package model

import "time"

// Settings defines user-configurable timer durations and flags.
// Durations are whole minutes; the engine converts to seconds.
type Settings struct {
	WorkMinutes             int
	BreakMinutes            int
	LongBreakMinutes        int
	SessionsBeforeLongBreak int
	SoundEnabled            bool
	AutoAdvance             bool
}

// DefaultSettings returns the stock Pomodoro configuration.
func DefaultSettings() Settings {
	return Settings{
		WorkMinutes:             25,
		BreakMinutes:            5,
		LongBreakMinutes:        15,
		SessionsBeforeLongBreak: 4,
		SoundEnabled:            true,
		AutoAdvance:             false,
	}
}

// Normalize replaces non-positive duration fields with their defaults.
// A zero or negative duration would complete immediately or never count
// down, so such values are never allowed to reach the engine.
func (settings Settings) Normalize() Settings {
	defaults := DefaultSettings()
	if settings.WorkMinutes <= 0 {
		settings.WorkMinutes = defaults.WorkMinutes
	}
	if settings.BreakMinutes <= 0 {
		settings.BreakMinutes = defaults.BreakMinutes
	}
	if settings.LongBreakMinutes <= 0 {
		settings.LongBreakMinutes = defaults.LongBreakMinutes
	}
	if settings.SessionsBeforeLongBreak <= 0 {
		settings.SessionsBeforeLongBreak = defaults.SessionsBeforeLongBreak
	}
	return settings
}

// WorkDuration returns the work interval length.
func (settings Settings) WorkDuration() time.Duration {
	return time.Duration(settings.WorkMinutes) * time.Minute
}

// BreakDuration returns the short break length.
func (settings Settings) BreakDuration() time.Duration {
	return time.Duration(settings.BreakMinutes) * time.Minute
}

// LongBreakDuration returns the long break length.
func (settings Settings) LongBreakDuration() time.Duration {
	return time.Duration(settings.LongBreakMinutes) * time.Minute
}
