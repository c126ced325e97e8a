//go:build linux

package platform

import (
	"log"
	"os"
	"os/exec"
)

type soundPlayer struct {
	commandPath string
	soundFile   string
}

var soundBackends = []struct {
	command string
	file    string
}{
	{"paplay", "/usr/share/sounds/freedesktop/stereo/complete.oga"},
	{"aplay", "/usr/share/sounds/alsa/Front_Center.wav"},
}

func newSoundPlayer() SoundPlayer {
	for _, backend := range soundBackends {
		commandPath, err := exec.LookPath(backend.command)
		if err != nil {
			continue
		}
		if _, err := os.Stat(backend.file); err != nil {
			continue
		}
		return &soundPlayer{commandPath: commandPath, soundFile: backend.file}
	}
	return silentSoundPlayer{}
}

// Play starts the playback command without waiting for it; the tick
// path must never block on playback.
func (player *soundPlayer) Play() {
	command := exec.Command(player.commandPath, player.soundFile)
	if err := command.Start(); err != nil {
		log.Printf("play sound: %v", err)
		return
	}
	go func() {
		_ = command.Wait()
	}()
}
