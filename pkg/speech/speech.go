// Package speech provides fire-and-forget pronunciation of Japanese text.
package speech

import (
	"log"
	"os/exec"
	"strings"
)

// Speaker speaks text aloud. Speak returns immediately; playback errors
// are logged, never returned, since nothing in the application depends on
// speech succeeding.
type Speaker interface {
	Speak(text string)
}

// ExecSpeaker shells out to a TTS command (e.g. "espeak-ng -v ja" or
// "say -v Kyoko"). The text is appended as the final argument.
type ExecSpeaker struct {
	Command string
}

// NewExecSpeaker parses a command line into an ExecSpeaker. An empty
// command yields a NopSpeaker.
func NewExecSpeaker(command string) Speaker {
	if strings.TrimSpace(command) == "" {
		return NopSpeaker{}
	}
	return &ExecSpeaker{Command: command}
}

func (s *ExecSpeaker) Speak(text string) {
	parts := strings.Fields(s.Command)
	if len(parts) == 0 {
		return
	}
	args := append(parts[1:], text)
	cmd := exec.Command(parts[0], args...)
	go func() {
		if err := cmd.Run(); err != nil {
			log.Printf("speech: %v", err)
		}
	}()
}

// NopSpeaker silently discards speech requests.
type NopSpeaker struct{}

func (NopSpeaker) Speak(string) {}
