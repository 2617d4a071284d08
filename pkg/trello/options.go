package trello

import (
	"log"
	"net/http"
	"time"
)

// DefaultBaseURL is the root every request path is resolved against.
const DefaultBaseURL = "https://api.trello.com/1"

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

// clientConfig holds the configuration for a Client.
type clientConfig struct {
	baseURL string
	timeout time.Duration

	apiKey string
	token  string

	oauth *oauthCredentials

	httpClient *http.Client
	logger     *log.Logger
}

// oauthCredentials holds the four OAuth1 values.
type oauthCredentials struct {
	consumerKey    string
	consumerSecret string
	token          string
	tokenSecret    string
}

// defaultConfig returns the default client configuration.
func defaultConfig() *clientConfig {
	return &clientConfig{
		baseURL: DefaultBaseURL,
		timeout: 30 * time.Second,
	}
}

// WithAPIKey selects key/token authentication.
func WithAPIKey(apiKey, token string) ClientOption {
	return func(c *clientConfig) {
		c.apiKey = apiKey
		c.token = token
	}
}

// WithOAuth selects OAuth1 authentication. Requests are signed with the
// consumer and token secrets.
func WithOAuth(consumerKey, consumerSecret, token, tokenSecret string) ClientOption {
	return func(c *clientConfig) {
		c.oauth = &oauthCredentials{
			consumerKey:    consumerKey,
			consumerSecret: consumerSecret,
			token:          token,
			tokenSecret:    tokenSecret,
		}
	}
}

// WithBaseURL overrides the API root. Mostly useful for tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *clientConfig) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets the HTTP client used in key/token mode. In OAuth mode
// it is used as the base client the signer wraps.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *clientConfig) {
		c.httpClient = httpClient
	}
}

// WithLogger enables request logging. Credentials are never logged.
func WithLogger(logger *log.Logger) ClientOption {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
