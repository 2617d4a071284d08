package config

import (
	"errors"
	"os"

	"github.com/boardkit/trello/pkg/trello"
)

// ErrNotConfigured is returned when no API key and token could be found.
var ErrNotConfigured = errors.New("no Trello credentials found: set TRELLO_API_KEY and TRELLO_TOKEN or create ~/.trello/config.toml")

// Credentials holds the values needed to build a client. OAuth mode is
// selected when both secrets are set.
type Credentials struct {
	APIKey      string
	Token       string
	APISecret   string
	TokenSecret string
	BaseURL     string
}

// OAuth reports whether the credentials select OAuth1 mode.
func (c *Credentials) OAuth() bool {
	return c.APISecret != "" && c.TokenSecret != ""
}

// merge overlays the non-empty fields of other onto c.
func (c *Credentials) merge(other *Credentials) {
	if other.APIKey != "" {
		c.APIKey = other.APIKey
	}
	if other.Token != "" {
		c.Token = other.Token
	}
	if other.APISecret != "" {
		c.APISecret = other.APISecret
	}
	if other.TokenSecret != "" {
		c.TokenSecret = other.TokenSecret
	}
	if other.BaseURL != "" {
		c.BaseURL = other.BaseURL
	}
}

// ClientOptions converts the credentials into client options.
func (c *Credentials) ClientOptions() []trello.ClientOption {
	var opts []trello.ClientOption
	if c.OAuth() {
		opts = append(opts, trello.WithOAuth(c.APIKey, c.APISecret, c.Token, c.TokenSecret))
	} else {
		opts = append(opts, trello.WithAPIKey(c.APIKey, c.Token))
	}
	if c.BaseURL != "" {
		opts = append(opts, trello.WithBaseURL(c.BaseURL))
	}
	return opts
}

// Resolve merges every credential source. Precedence order (highest to lowest):
// 1. Process environment (TRELLO_*)
// 2. .env in the working directory
// 3. Global config (~/.trello/config.toml)
func Resolve() (*Credentials, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	workDir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return ResolveWith(homeDir, workDir, os.Getenv)
}

// ResolveWith resolves credentials using the given home and working
// directories and environment lookup.
// This is useful for testing.
func ResolveWith(homeDir, workDir string, getenv func(string) string) (*Credentials, error) {
	global, err := LoadGlobalConfigFromDir(homeDir)
	if err != nil {
		return nil, err
	}
	return overlay(global, workDir, getenv)
}

// ResolveFile is like Resolve but reads the given config file in place of
// the global one.
func ResolveFile(path string) (*Credentials, error) {
	file, err := LoadConfigFile(path)
	if err != nil {
		return nil, err
	}
	workDir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return overlay(file, workDir, os.Getenv)
}

// overlay applies .env and then the environment on top of base.
func overlay(base *Credentials, workDir string, getenv func(string) string) (*Credentials, error) {
	dotenv, err := LoadDotEnv(workDir)
	if err != nil {
		return nil, err
	}
	base.merge(FromEnv(func(name string) string { return dotenv[name] }))
	base.merge(FromEnv(getenv))

	if base.APIKey == "" || base.Token == "" {
		return nil, ErrNotConfigured
	}
	return base, nil
}
