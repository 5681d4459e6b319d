package common

import (
	"errors"
	"log/slog"
	"testing"
)

func TestSetupLoggerRejectsUnknownFormat(t *testing.T) {
	err := SetupLogger(slog.LevelInfo, "xml")
	if err == nil {
		t.Fatal("expected an error for unknown format")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error should wrap the invalid config sentinel, got: %v", err)
	}
}

func TestSetupLoggerFormats(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		if err := SetupLogger(slog.LevelWarn, format); err != nil {
			t.Errorf("SetupLogger(%q) failed: %v", format, err)
		}
	}
}
