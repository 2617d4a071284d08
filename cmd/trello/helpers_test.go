package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/boardkit/trello/internal/config"
	"github.com/boardkit/trello/pkg/trello"
)

func TestMapErrorToExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: ExitSuccess,
		},
		{
			name:     "not configured",
			err:      config.ErrNotConfigured,
			expected: ExitNotConfigured,
		},
		{
			name:     "resource unavailable",
			err:      fmt.Errorf("fetch board b1 failed: %w", &trello.ResourceUnavailableError{URL: "https://api.trello.com/1/boards/b1", StatusCode: 404}),
			expected: ExitUnavailable,
		},
		{
			name:     "missing field",
			err:      fmt.Errorf("board: %w: %q", trello.ErrMissingField, "name"),
			expected: ExitBadResponse,
		},
		{
			name:     "unexpected JSON",
			err:      trello.ErrUnexpectedJSON,
			expected: ExitBadResponse,
		},
		{
			name:     "generic error",
			err:      errors.New("something went wrong"),
			expected: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := mapErrorToExitCode(tt.err)
			if result != tt.expected {
				t.Errorf("mapErrorToExitCode() = %d, expected %d", result, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"text", formatText, false},
		{"", formatText, false},
		{"JSON", formatJSON, false},
		{"yaml", formatYAML, false},
		{"yml", formatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := parseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseFormat(%q) should return error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFormat(%q) returned error: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("parseFormat(%q) = %s, expected %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCurrentFormat_JSONFlagWins(t *testing.T) {
	resetFlags(t)
	jsonOutput = true
	outputFormat = formatYAML

	format, err := currentFormat()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != formatJSON {
		t.Errorf("currentFormat() = %s, expected %s", format, formatJSON)
	}
}

func TestGetClient_NotConfigured(t *testing.T) {
	resetFlags(t)
	t.Setenv("HOME", t.TempDir())
	chdirForTest(t, t.TempDir())
	for _, name := range []string{config.EnvAPIKey, config.EnvToken, config.EnvAPISecret, config.EnvTokenSecret, config.EnvBaseURL} {
		t.Setenv(name, "")
	}

	_, err := getClient()
	if !errors.Is(err, config.ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestGetClient_OAuthFromEnv(t *testing.T) {
	resetFlags(t)
	t.Setenv("HOME", t.TempDir())
	chdirForTest(t, t.TempDir())
	t.Setenv(config.EnvAPIKey, "ck")
	t.Setenv(config.EnvToken, "tok")
	t.Setenv(config.EnvAPISecret, "cs")
	t.Setenv(config.EnvTokenSecret, "ts")

	c, err := getClient()
	if err != nil {
		t.Fatalf("getClient failed: %v", err)
	}
	if c.Mode() != trello.AuthOAuth {
		t.Errorf("expected OAuth mode, got %s", c.Mode())
	}
}
