package logging

import "testing"

func TestNewAcceptsKnownLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "", "warn", "warning", "error", "INFO"} {
		if _, err := New(level); err != nil {
			t.Fatalf("level %q: %v", level, err)
		}
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("loud"); err == nil {
		t.Fatalf("expected an error for an unknown level")
	}
}
