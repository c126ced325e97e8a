package platform

// SoundPlayer plays the phase-completion notification sound.
// Playback is best-effort: it never blocks and reports nothing back.
type SoundPlayer interface {
	Play()
}

// NewSoundPlayer returns a platform-specific sound player. When no
// usable playback command exists, the returned player does nothing.
func NewSoundPlayer() SoundPlayer {
	return newSoundPlayer()
}

type silentSoundPlayer struct{}

func (silentSoundPlayer) Play() {}
