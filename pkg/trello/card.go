package trello

import (
	"context"
	"fmt"
)

// Card is a single item in a list.
//
// Cards returned by List.ListCards and List.AddCard carry only ID, Name,
// Description, Closed, URL and the parent ListID. Fetch populates the rest.
type Card struct {
	client *Client

	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"desc" yaml:"desc"`
	Closed      bool   `json:"closed" yaml:"closed"`
	URL         string `json:"url" yaml:"url"`

	// ListID is the parent list. After Fetch it is the server's idList.
	ListID  string `json:"idList,omitempty" yaml:"idList,omitempty"`
	BoardID string `json:"idBoard,omitempty" yaml:"idBoard,omitempty"`

	MemberIDs   []string                 `json:"idMembers,omitempty" yaml:"idMembers,omitempty"`
	ShortID     int                      `json:"idShort,omitempty" yaml:"idShort,omitempty"`
	Attachments []map[string]interface{} `json:"attachments,omitempty" yaml:"attachments,omitempty"`
	Labels      []map[string]interface{} `json:"labels,omitempty" yaml:"labels,omitempty"`
	Badges      map[string]interface{}   `json:"badges,omitempty" yaml:"badges,omitempty"`

	hydrated bool
}

func (c *Card) String() string {
	return "<Card " + c.Name + ">"
}

// Hydrated reports whether Fetch has populated the detail fields.
func (c *Card) Hydrated() bool {
	return c.hydrated
}

// Fetch reloads every attribute of the card. The previous values are
// replaced entirely.
func (c *Card) Fetch(ctx context.Context) error {
	v, err := c.client.getJSON(ctx, "/cards/"+c.ID, nil)
	if err != nil {
		return fmt.Errorf("fetch card %s failed: %w", c.ID, err)
	}
	fresh, err := cardDetailFromJSON(c.client, c.ID, v)
	if err != nil {
		return err
	}
	*c = *fresh
	return nil
}
