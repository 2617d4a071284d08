package trello

import (
	"context"
	"fmt"
	"net/url"
)

// ListFilter selects which lists of a board are returned.
type ListFilter string

const (
	ListFilterAll    ListFilter = "all"
	ListFilterOpen   ListFilter = "open"
	ListFilterClosed ListFilter = "closed"
)

// Valid reports whether f is one of the known filters.
func (f ListFilter) Valid() bool {
	switch f {
	case ListFilterAll, ListFilterOpen, ListFilterClosed:
		return true
	}
	return false
}

// Board is a Trello board. Attributes are plain fields; lists are always
// fetched with an API call.
type Board struct {
	client *Client

	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"desc" yaml:"desc"`
	Closed      bool   `json:"closed" yaml:"closed"`
	URL         string `json:"url" yaml:"url"`
}

func (b *Board) String() string {
	return "<Board " + b.Name + ">"
}

// Fetch reloads every attribute of the board, replacing the current values.
func (b *Board) Fetch(ctx context.Context) error {
	v, err := b.client.getJSON(ctx, "/boards/"+b.ID, nil)
	if err != nil {
		return fmt.Errorf("fetch board %s failed: %w", b.ID, err)
	}
	fresh, err := boardDetailFromJSON(b.client, b.ID, v)
	if err != nil {
		return err
	}
	*b = *fresh
	return nil
}

// AllLists returns all lists on the board.
func (b *Board) AllLists(ctx context.Context) ([]*List, error) {
	return b.GetLists(ctx, ListFilterAll)
}

// OpenLists returns the open lists on the board.
func (b *Board) OpenLists(ctx context.Context) ([]*List, error) {
	return b.GetLists(ctx, ListFilterOpen)
}

// ClosedLists returns the closed lists on the board.
func (b *Board) ClosedLists(ctx context.Context) ([]*List, error) {
	return b.GetLists(ctx, ListFilterClosed)
}

// GetLists returns the board's lists matching filter. Cards are not
// included; the lists carry id, name and closed only.
func (b *Board) GetLists(ctx context.Context, filter ListFilter) ([]*List, error) {
	if !filter.Valid() {
		return nil, fmt.Errorf("invalid list filter %q: use all, open or closed", filter)
	}

	query := url.Values{}
	query.Set("cards", "none")
	query.Set("filter", string(filter))

	v, err := b.client.getJSON(ctx, "/boards/"+b.ID+"/lists", query)
	if err != nil {
		return nil, fmt.Errorf("get lists for board %s failed: %w", b.ID, err)
	}

	items, err := asArray(v)
	if err != nil {
		return nil, err
	}

	lists := make([]*List, 0, len(items))
	for _, item := range items {
		l, err := listFromJSON(b.client, b.ID, item)
		if err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}
	return lists, nil
}
