//go:build darwin

package platform

import (
	"log"
	"os/exec"
)

const notificationSound = "/System/Library/Sounds/Glass.aiff"

type soundPlayer struct {
	afplayPath string
}

func newSoundPlayer() SoundPlayer {
	path, err := exec.LookPath("afplay")
	if err != nil {
		return silentSoundPlayer{}
	}
	return &soundPlayer{afplayPath: path}
}

// Play starts afplay without waiting for it; the tick path must never
// block on playback.
func (player *soundPlayer) Play() {
	command := exec.Command(player.afplayPath, notificationSound)
	if err := command.Start(); err != nil {
		log.Printf("play sound: %v", err)
		return
	}
	go func() {
		_ = command.Wait()
	}()
}
