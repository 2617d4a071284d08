package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// GlobalConfigDir is the name of the global config directory in home
	GlobalConfigDir = ".trello"

	// GlobalConfigFileName is the name of the global config file
	GlobalConfigFileName = "config.toml"
)

// globalConfigFile represents the raw TOML structure for global config
type globalConfigFile struct {
	Auth  authSection  `toml:"auth"`
	OAuth oauthSection `toml:"oauth"`
	API   apiSection   `toml:"api"`
}

// authSection represents the [auth] section (key/token mode)
type authSection struct {
	Key   string `toml:"key"`
	Token string `toml:"token"`
}

// oauthSection represents the [oauth] section
type oauthSection struct {
	ConsumerKey    string `toml:"consumer_key"`
	ConsumerSecret string `toml:"consumer_secret"`
	Token          string `toml:"token"`
	TokenSecret    string `toml:"token_secret"`
}

// apiSection represents the [api] section
type apiSection struct {
	BaseURL string `toml:"base_url"`
}

// GlobalConfigPath returns the path of the global config file under homeDir.
func GlobalConfigPath(homeDir string) string {
	return filepath.Join(homeDir, GlobalConfigDir, GlobalConfigFileName)
}

// LoadGlobalConfigFromDir loads global config using the specified directory as home.
// This is useful for testing.
func LoadGlobalConfigFromDir(homeDir string) (*Credentials, error) {
	return LoadConfigFile(GlobalConfigPath(homeDir))
}

// LoadConfigFile loads credentials from a TOML file at path. A missing file
// yields empty credentials.
func LoadConfigFile(path string) (*Credentials, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Credentials{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var rawConfig globalConfigFile
	if _, err := toml.Decode(string(data), &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config TOML: %w", err)
	}

	hasAuth := rawConfig.Auth.Key != "" || rawConfig.Auth.Token != ""
	hasOAuth := rawConfig.OAuth.ConsumerKey != "" || rawConfig.OAuth.ConsumerSecret != "" ||
		rawConfig.OAuth.Token != "" || rawConfig.OAuth.TokenSecret != ""
	if hasAuth && hasOAuth {
		return nil, fmt.Errorf("%s: set either [auth] or [oauth], not both", path)
	}

	creds := &Credentials{
		APIKey:  rawConfig.Auth.Key,
		Token:   rawConfig.Auth.Token,
		BaseURL: rawConfig.API.BaseURL,
	}
	if hasOAuth {
		creds.APIKey = rawConfig.OAuth.ConsumerKey
		creds.APISecret = rawConfig.OAuth.ConsumerSecret
		creds.Token = rawConfig.OAuth.Token
		creds.TokenSecret = rawConfig.OAuth.TokenSecret
	}

	return creds, nil
}
