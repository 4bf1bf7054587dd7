package notify

import (
	"os"
	"os/exec"
	"runtime"
)

// AudioPlayer plays the short alarm cue when a focus session or alert
// fires. Playback is best-effort; a missing player is silence, not an error.
type AudioPlayer interface {
	Play() error
}

type NoopAudioPlayer struct{}

func (NoopAudioPlayer) Play() error { return nil }

// ExecAudioPlayer shells out to the platform sound player, falling back to
// the terminal bell when none is available.
type ExecAudioPlayer struct {
	// SoundPath overrides the default chime file when set.
	SoundPath string
}

func (p ExecAudioPlayer) Play() error {
	switch runtime.GOOS {
	case "darwin":
		path := p.SoundPath
		if path == "" {
			path = "/System/Library/Sounds/Glass.aiff"
		}
		return exec.Command("afplay", path).Start()
	case "linux":
		if p.SoundPath != "" {
			if _, err := exec.LookPath("paplay"); err == nil {
				return exec.Command("paplay", p.SoundPath).Start()
			}
		}
		return ringBell()
	default:
		return ringBell()
	}
}

func ringBell() error {
	_, err := os.Stdout.Write([]byte("\a"))
	return err
}
