package speech

import "testing"

func TestNewExecSpeakerEmptyCommand(t *testing.T) {
	for _, cmd := range []string{"", "   "} {
		if _, ok := NewExecSpeaker(cmd).(NopSpeaker); !ok {
			t.Errorf("NewExecSpeaker(%q) should return a NopSpeaker", cmd)
		}
	}
}

func TestExecSpeakerEmptyCommandIsSafe(t *testing.T) {
	// A zero-value ExecSpeaker must not panic.
	s := &ExecSpeaker{}
	s.Speak("テスト")
}

func TestNopSpeaker(t *testing.T) {
	NopSpeaker{}.Speak("テスト")
}
