package trello

import (
	"context"
	"fmt"
	"net/http"
)

// List is a column on a board. BoardID refers to the parent board without
// holding it.
type List struct {
	client *Client

	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Closed  bool   `json:"closed" yaml:"closed"`
	BoardID string `json:"idBoard,omitempty" yaml:"idBoard,omitempty"`
}

func (l *List) String() string {
	return "<List " + l.Name + ">"
}

// Fetch reloads the list's name and closed flag.
func (l *List) Fetch(ctx context.Context) error {
	v, err := l.client.getJSON(ctx, "/lists/"+l.ID, nil)
	if err != nil {
		return fmt.Errorf("fetch list %s failed: %w", l.ID, err)
	}
	fresh, err := listDetailFromJSON(l.client, l.ID, l.BoardID, v)
	if err != nil {
		return err
	}
	*l = *fresh
	return nil
}

// ListCards returns the cards in the list. Only id, name, description,
// closed and URL are populated; call Card.Fetch for the rest.
func (l *List) ListCards(ctx context.Context) ([]*Card, error) {
	v, err := l.client.getJSON(ctx, "/lists/"+l.ID+"/cards", nil)
	if err != nil {
		return nil, fmt.Errorf("list cards for list %s failed: %w", l.ID, err)
	}

	items, err := asArray(v)
	if err != nil {
		return nil, err
	}

	cards := make([]*Card, 0, len(items))
	for _, item := range items {
		card, err := cardSummaryFromJSON(l.client, l.ID, item)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// addCardRequest is the body of POST /lists/{id}/cards.
type addCardRequest struct {
	Name   string `json:"name"`
	IDList string `json:"idList"`
	Desc   string `json:"desc"`
}

// AddCard creates a card at the end of the list and returns it with the
// same fields ListCards populates.
func (l *List) AddCard(ctx context.Context, name, description string) (*Card, error) {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	body := addCardRequest{
		Name:   name,
		IDList: l.ID,
		Desc:   description,
	}

	v, err := l.client.Fetch(ctx, http.MethodPost, "/lists/"+l.ID+"/cards", headers, nil, body)
	if err != nil {
		return nil, fmt.Errorf("add card to list %s failed: %w", l.ID, err)
	}
	return cardSummaryFromJSON(l.client, l.ID, v)
}
