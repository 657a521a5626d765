package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestRedactHandlerMasksKeys tests that sensitive attribute keys are masked.
func TestRedactHandlerMasksKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
		val  string
		want bool // want masked
	}{
		{name: "api_key", key: "api_key", val: "abc123", want: true},
		{name: "password", key: "password", val: "hunter2", want: true},
		{name: "token substring", key: "session_token", val: "xyz", want: true},
		{name: "authorization header", key: "Authorization", val: "Bearer abc", want: true},
		{name: "plain key passes", key: "source", val: "example.json", want: false},
		{name: "key_terms is not a key", key: "key_terms", val: "cookies", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewRedactHandler(slog.NewTextHandler(&buf, nil)))
			logger.Info("msg", tt.key, tt.val)

			out := buf.String()
			masked := strings.Contains(out, MaskValue)
			if masked != tt.want {
				t.Errorf("masked = %v, want %v (output: %s)", masked, tt.want, out)
			}
			if tt.want && strings.Contains(out, tt.val) {
				t.Errorf("sensitive value leaked: %s", out)
			}
		})
	}
}

// TestRedactHandlerMasksValues tests value-pattern redaction.
func TestRedactHandlerMasksValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		val  string
		want bool
	}{
		{name: "email address", val: "privacy@example.com", want: true},
		{name: "jwt", val: "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.sig", want: true},
		{name: "bearer value", val: "Bearer tok-123", want: true},
		{name: "ordinary value", val: "example.com Privacy Policy", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewRedactHandler(slog.NewTextHandler(&buf, nil)))
			logger.Info("msg", "contact", tt.val)

			masked := strings.Contains(buf.String(), MaskValue)
			if masked != tt.want {
				t.Errorf("masked = %v, want %v (output: %s)", masked, tt.want, buf.String())
			}
		})
	}
}

// TestRedactHandlerTruncatesLongValues tests narrative truncation.
func TestRedactHandlerTruncatesLongValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewRedactHandler(slog.NewTextHandler(&buf, nil)))

	long := strings.Repeat("policy text ", 50)
	logger.Info("msg", "summary", long)

	out := buf.String()
	if strings.Contains(out, long) {
		t.Error("expected long value to be truncated")
	}
	if !strings.Contains(out, "...") {
		t.Errorf("expected truncation marker in output: %s", out)
	}
}

// TestRedactHandlerGroups tests that group attributes are redacted recursively.
func TestRedactHandlerGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewRedactHandler(slog.NewTextHandler(&buf, nil)))
	logger.Info("msg", slog.Group("request", slog.String("api_key", "abc123")))

	out := buf.String()
	if strings.Contains(out, "abc123") {
		t.Errorf("group attribute leaked: %s", out)
	}
	if !strings.Contains(out, MaskValue) {
		t.Errorf("expected mask in output: %s", out)
	}
}

// TestRedactHandlerWithAttrs tests pre-bound attributes are redacted.
func TestRedactHandlerWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewRedactHandler(slog.NewTextHandler(&buf, nil)))
	logger = logger.With("token", "secret-value")
	logger.Info("msg")

	if strings.Contains(buf.String(), "secret-value") {
		t.Errorf("bound attribute leaked: %s", buf.String())
	}
}

// TestNewRedactLogger tests level selection.
func TestNewRedactLogger(t *testing.T) {
	t.Parallel()

	t.Run("default level suppresses info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewRedactLogger(&buf, false)
		logger.Info("hidden")
		logger.Warn("visible")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Error("info logged at default level")
		}
		if !strings.Contains(out, "visible") {
			t.Error("warn not logged at default level")
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewRedactLogger(&buf, true)
		logger.Debug("debug line")

		if !strings.Contains(buf.String(), "debug line") {
			t.Error("debug not logged in verbose mode")
		}
	})
}

// TestNewRedactJSONLogger tests JSON output with redaction.
func TestNewRedactJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewRedactJSONLogger(&buf, true)
	logger.Warn("msg", "password", "hunter2")

	out := buf.String()
	if !strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("expected JSON output: %s", out)
	}
	if strings.Contains(out, "hunter2") {
		t.Errorf("sensitive value leaked: %s", out)
	}
}
