package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestAnonymizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
	}{
		{name: "regular address", email: "user@example.com"},
		{name: "uppercase normalized", email: "User@Example.COM"},
		{name: "surrounding whitespace normalized", email: "  user@example.com  "},
	}

	want := AnonymizeEmail("user@example.com")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnonymizeEmail(tt.email)
			if got != want {
				t.Errorf("AnonymizeEmail(%q) = %v, want %v", tt.email, got, want)
			}
			if !strings.HasPrefix(got, "user:") {
				t.Errorf("AnonymizeEmail(%q) = %v, missing user: prefix", tt.email, got)
			}
			if strings.Contains(got, "@") {
				t.Errorf("AnonymizeEmail(%q) = %v, leaks address", tt.email, got)
			}
		})
	}
}

func TestAnonymizeEmailEmpty(t *testing.T) {
	if got := AnonymizeEmail(""); got != "" {
		t.Errorf("AnonymizeEmail(\"\") = %v, want empty", got)
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{name: "regular address", email: "user@example.com", want: "example.com"},
		{name: "no at sign", email: "not-an-email", want: ""},
		{name: "multiple at signs", email: "a@b@c", want: ""},
		{name: "empty", email: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractDomain(tt.email); got != tt.want {
				t.Errorf("ExtractDomain(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestErrWithNil(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("operation done", Err(nil))

	if strings.Contains(buf.String(), KeyError) {
		t.Errorf("Err(nil) produced an error attribute: %s", buf.String())
	}
}

func TestWithHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	l := WithRunID(WithPhase(WithOperation(logger, "agent.run"), "execution"), "run-1")
	l.Info("tool call dispatched", Tool("process_email_and_label"), Status(StatusSuccess))

	out := buf.String()
	for _, want := range []string{
		"operation=agent.run",
		"phase=execution",
		"run_id=run-1",
		"tool=process_email_and_label",
		"status=success",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}
