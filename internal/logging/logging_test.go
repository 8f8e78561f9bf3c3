package logging

import "testing"

func TestNewRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	if _, err := New("info", "xml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	if _, err := New("loud", "json"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewBuildsLogger(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"", "console", "json"} {
		logger, err := New("debug", format)
		if err != nil {
			t.Fatalf("format %q: unexpected error %v", format, err)
		}
		if !logger.Core().Enabled(-1) {
			t.Fatalf("format %q: expected debug level to be enabled", format)
		}
	}
}

func TestOrNop(t *testing.T) {
	t.Parallel()

	if OrNop(nil) == nil {
		t.Fatal("expected no-op logger for nil input")
	}
}
