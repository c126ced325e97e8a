//go:build windows

package platform

import (
	"log"
	"os/exec"
)

const playSoundScript = `(New-Object Media.SoundPlayer "$env:windir\Media\Windows Notify.wav").PlaySync()`

type soundPlayer struct {
	powershellPath string
}

func newSoundPlayer() SoundPlayer {
	path, err := exec.LookPath("powershell")
	if err != nil {
		return silentSoundPlayer{}
	}
	return &soundPlayer{powershellPath: path}
}

// Play starts PowerShell without waiting for it; the tick path must
// never block on playback.
func (player *soundPlayer) Play() {
	command := exec.Command(player.powershellPath, "-NoProfile", "-Command", playSoundScript)
	if err := command.Start(); err != nil {
		log.Printf("play sound: %v", err)
		return
	}
	go func() {
		_ = command.Wait()
	}()
}
