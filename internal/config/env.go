package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variables read by FromEnv.
const (
	EnvAPIKey      = "TRELLO_API_KEY"
	EnvToken       = "TRELLO_TOKEN"
	EnvAPISecret   = "TRELLO_API_SECRET"
	EnvTokenSecret = "TRELLO_TOKEN_SECRET"
	EnvBaseURL     = "TRELLO_BASE_URL"

	// DotEnvFileName is read from the working directory.
	DotEnvFileName = ".env"
)

// LoadDotEnv reads the .env file in dir without modifying the process
// environment. A missing file yields an empty map.
func LoadDotEnv(dir string) (map[string]string, error) {
	path := filepath.Join(dir, DotEnvFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return map[string]string{}, nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return values, nil
}

// FromEnv builds credentials from the TRELLO_* variables returned by lookup.
func FromEnv(lookup func(string) string) *Credentials {
	return &Credentials{
		APIKey:      lookup(EnvAPIKey),
		Token:       lookup(EnvToken),
		APISecret:   lookup(EnvAPISecret),
		TokenSecret: lookup(EnvTokenSecret),
		BaseURL:     lookup(EnvBaseURL),
	}
}
