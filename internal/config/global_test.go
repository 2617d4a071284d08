package config

import (
	"os"
	"path/filepath"
	"testing"
)

// writeGlobalConfig writes content to homeDir/.trello/config.toml.
func writeGlobalConfig(t *testing.T, homeDir, content string) {
	t.Helper()
	dir := filepath.Join(homeDir, ".trello")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create .trello directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
}

func TestGlobal_KeyToken(t *testing.T) {
	tmpDir := t.TempDir()
	writeGlobalConfig(t, tmpDir, `
[auth]
key = "file-key"
token = "file-token"

[api]
base_url = "http://localhost:9999/1"
`)

	creds, err := LoadGlobalConfigFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if creds.APIKey != "file-key" {
		t.Errorf("expected key 'file-key', got '%s'", creds.APIKey)
	}
	if creds.Token != "file-token" {
		t.Errorf("expected token 'file-token', got '%s'", creds.Token)
	}
	if creds.BaseURL != "http://localhost:9999/1" {
		t.Errorf("expected base URL, got '%s'", creds.BaseURL)
	}
	if creds.OAuth() {
		t.Error("expected key/token mode")
	}
}

func TestGlobal_OAuth(t *testing.T) {
	tmpDir := t.TempDir()
	writeGlobalConfig(t, tmpDir, `
[oauth]
consumer_key = "ck"
consumer_secret = "cs"
token = "tok"
token_secret = "ts"
`)

	creds, err := LoadGlobalConfigFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !creds.OAuth() {
		t.Fatal("expected OAuth mode")
	}
	if creds.APIKey != "ck" || creds.APISecret != "cs" || creds.Token != "tok" || creds.TokenSecret != "ts" {
		t.Errorf("unexpected credentials: %+v", creds)
	}
}

func TestGlobal_FileNotExists(t *testing.T) {
	tmpDir := t.TempDir()

	creds, err := LoadGlobalConfigFromDir(tmpDir)
	if err != nil {
		t.Fatalf("expected no error when config doesn't exist, got: %v", err)
	}

	if creds.APIKey != "" || creds.Token != "" {
		t.Errorf("expected empty credentials, got %+v", creds)
	}
}

func TestGlobal_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	writeGlobalConfig(t, tmpDir, `this is not valid toml {{{`)

	_, err := LoadGlobalConfigFromDir(tmpDir)
	if err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestGlobal_MixedModes(t *testing.T) {
	tmpDir := t.TempDir()
	writeGlobalConfig(t, tmpDir, `
[auth]
key = "k"
token = "t"

[oauth]
consumer_key = "ck"
`)

	_, err := LoadGlobalConfigFromDir(tmpDir)
	if err == nil {
		t.Fatal("expected error when both [auth] and [oauth] are set")
	}
}
