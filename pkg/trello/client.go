package trello

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/dghubble/oauth1"
)

// AuthMode identifies how a Client authenticates.
type AuthMode int

const (
	// AuthKeyToken appends the API key and user token to every request.
	AuthKeyToken AuthMode = iota + 1
	// AuthOAuth signs every request with OAuth1 and also appends the
	// consumer key and access token as key/token parameters.
	AuthOAuth
)

func (m AuthMode) String() string {
	switch m {
	case AuthKeyToken:
		return "key/token"
	case AuthOAuth:
		return "oauth1"
	default:
		return "unknown"
	}
}

// Client is an HTTP client for the Trello REST API.
//
// A Client owns its credentials and transport. Resource handles created from
// it (Board, List, Card) keep a pointer back to it and issue their requests
// through it.
type Client struct {
	baseURL string
	mode    AuthMode

	// key and token are the values placed in the key= and token= query
	// parameters, whichever mode is active.
	key   string
	token string

	http   *http.Client
	logger *log.Logger
}

// NewClient creates a new Trello API client.
//
// Exactly one authentication mode must be configured:
//   - WithAPIKey: API key and user token
//   - WithOAuth: consumer key/secret and access token/secret
//
// Optional options:
//   - WithBaseURL: overrides https://api.trello.com/1
//   - WithTimeout: sets the HTTP client timeout (default: 30s)
//   - WithHTTPClient: supplies the underlying HTTP client
//   - WithLogger: logs each request
//
// Example:
//
//	client, err := trello.NewClient(
//	    trello.WithAPIKey(os.Getenv("TRELLO_API_KEY"), os.Getenv("TRELLO_TOKEN")),
//	)
func NewClient(opts ...ClientOption) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	keyToken := cfg.apiKey != "" || cfg.token != ""
	switch {
	case keyToken && cfg.oauth != nil:
		return nil, errors.New("conflicting credentials: use either WithAPIKey or WithOAuth, not both")
	case cfg.oauth != nil:
		return newOAuthClient(cfg)
	case keyToken:
		return newKeyTokenClient(cfg)
	default:
		return nil, errors.New("credentials are required: use WithAPIKey or WithOAuth option")
	}
}

func newKeyTokenClient(cfg *clientConfig) (*Client, error) {
	if cfg.apiKey == "" {
		return nil, errors.New("API key is required")
	}
	if cfg.token == "" {
		return nil, errors.New("token is required")
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.baseURL, "/"),
		mode:    AuthKeyToken,
		key:     cfg.apiKey,
		token:   cfg.token,
		http:    httpClient,
		logger:  cfg.logger,
	}, nil
}

func newOAuthClient(cfg *clientConfig) (*Client, error) {
	o := cfg.oauth
	if o.consumerKey == "" || o.consumerSecret == "" {
		return nil, errors.New("OAuth consumer key and secret are required")
	}
	if o.token == "" || o.tokenSecret == "" {
		return nil, errors.New("OAuth token and token secret are required")
	}

	ctx := context.Background()
	if cfg.httpClient != nil {
		ctx = context.WithValue(ctx, oauth1.HTTPClient, cfg.httpClient)
	}
	signer := oauth1.NewConfig(o.consumerKey, o.consumerSecret)
	httpClient := signer.Client(ctx, oauth1.NewToken(o.token, o.tokenSecret))
	httpClient.Timeout = cfg.timeout

	return &Client{
		baseURL: strings.TrimSuffix(cfg.baseURL, "/"),
		mode:    AuthOAuth,
		key:     o.consumerKey,
		token:   o.token,
		http:    httpClient,
		logger:  cfg.logger,
	}, nil
}

// Mode returns the active authentication mode.
func (c *Client) Mode() AuthMode {
	return c.mode
}

// ListBoards returns every board of the authenticated member, in the order
// the server returns them.
func (c *Client) ListBoards(ctx context.Context) ([]*Board, error) {
	v, err := c.Fetch(ctx, http.MethodGet, "/members/me/boards/all", nil, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("list boards failed: %w", err)
	}

	items, err := asArray(v)
	if err != nil {
		return nil, err
	}

	boards := make([]*Board, 0, len(items))
	for _, item := range items {
		b, err := boardFromJSON(c, item)
		if err != nil {
			return nil, err
		}
		boards = append(boards, b)
	}
	return boards, nil
}

// Logout is a no-op. Token credentials carry no server-side session, so
// there is nothing to invalidate; revoke the token on trello.com instead.
func (c *Client) Logout(ctx context.Context) error {
	return nil
}

// Board returns an unhydrated handle for the board with the given ID.
func (c *Client) Board(id string) *Board {
	return &Board{client: c, ID: id}
}

// List returns an unhydrated handle for the list with the given ID.
func (c *Client) List(id string) *List {
	return &List{client: c, ID: id}
}

// Card returns an unhydrated handle for the card with the given ID.
func (c *Client) Card(id string) *Card {
	return &Card{client: c, ID: id}
}
