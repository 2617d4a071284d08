// Package trello provides a Go client for the Trello REST API.
//
// The client authenticates with either an API key and user token or with
// full OAuth1 credentials, and exposes boards, lists and cards as
// lightweight handles. A handle holds an identifier (and sometimes a name);
// its remaining attributes are loaded with an explicit Fetch call.
//
// # Getting Started
//
// Create a client with key/token credentials:
//
//	client, err := trello.NewClient(
//	    trello.WithAPIKey("my-api-key", "my-token"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or with OAuth1:
//
//	client, err := trello.NewClient(
//	    trello.WithOAuth(consumerKey, consumerSecret, token, tokenSecret),
//	)
//
// # Traversing Boards
//
// List the boards of the authenticated member:
//
//	boards, err := client.ListBoards(ctx)
//
// List the open lists of a board, then the cards of a list:
//
//	lists, err := boards[0].OpenLists(ctx)
//	cards, err := lists[0].ListCards(ctx)
//
// Cards returned by ListCards carry only id, name, description, closed and
// URL. Fetch the card for members, labels, attachments and badges:
//
//	err := cards[0].Fetch(ctx)
//
// Handles can also be created directly from an ID:
//
//	board := client.Board("5f0c1a...")
//	err := board.Fetch(ctx)
//
// # Creating Cards
//
//	card, err := list.AddCard(ctx, "Write release notes", "for v1.2")
//
// # Error Handling
//
// Any response other than 200 OK is reported as a *ResourceUnavailableError
// carrying the request URL:
//
//	if trello.IsResourceUnavailable(err) {
//	    // 401, 404, 500, ...
//	}
//
// Responses missing an expected field fail with an error wrapping
// ErrMissingField.
//
// # Configuration Options
//
//	trello.WithAPIKey(key, token)                  // key/token auth
//	trello.WithOAuth(ck, cs, token, tokenSecret)   // OAuth1 auth
//	trello.WithBaseURL(url)                        // default: https://api.trello.com/1
//	trello.WithTimeout(duration)                   // default: 30s
//	trello.WithHTTPClient(client)                  // custom *http.Client
//	trello.WithLogger(logger)                      // log each request
package trello
