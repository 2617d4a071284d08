package trello

import (
	"encoding/json"
	"errors"
	"testing"
)

// decode parses a JSON literal the same way Fetch does.
func decode(t *testing.T, s string) interface{} {
	t.Helper()
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("invalid test JSON: %v", err)
	}
	return v
}

func TestBoardFromJSON(t *testing.T) {
	v := decode(t, `{"id":"b1","name":"Demo","desc":"d","closed":false,"url":"https://trello.com/b/b1"}`)

	b, err := boardFromJSON(nil, v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.ID != "b1" {
		t.Errorf("expected ID b1, got %s", b.ID)
	}
	if b.Name != "Demo" {
		t.Errorf("expected name Demo, got %s", b.Name)
	}
	if b.Description != "d" {
		t.Errorf("expected desc d, got %s", b.Description)
	}
	if b.Closed {
		t.Error("expected closed false")
	}
	if b.URL != "https://trello.com/b/b1" {
		t.Errorf("expected url https://trello.com/b/b1, got %s", b.URL)
	}
}

func TestBoardFromJSON_NonASCII(t *testing.T) {
	v := decode(t, `{"id":"b1","name":"Café ✓","desc":"","closed":true,"url":"u"}`)

	b, err := boardFromJSON(nil, v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Name != "Café ✓" {
		t.Errorf("expected name to round-trip, got %q", b.Name)
	}
}

func TestMapper_Errors(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		mapFn   func(v interface{}) error
		wantErr error
	}{
		{
			name: "board missing url",
			json: `{"id":"b1","name":"Demo","desc":"d","closed":false}`,
			mapFn: func(v interface{}) error {
				_, err := boardFromJSON(nil, v)
				return err
			},
			wantErr: ErrMissingField,
		},
		{
			name: "board closed is a string",
			json: `{"id":"b1","name":"Demo","desc":"d","closed":"no","url":"u"}`,
			mapFn: func(v interface{}) error {
				_, err := boardFromJSON(nil, v)
				return err
			},
			wantErr: ErrFieldType,
		},
		{
			name: "board is an array",
			json: `[]`,
			mapFn: func(v interface{}) error {
				_, err := boardFromJSON(nil, v)
				return err
			},
			wantErr: ErrUnexpectedJSON,
		},
		{
			name: "list missing closed",
			json: `{"id":"l1","name":"Todo"}`,
			mapFn: func(v interface{}) error {
				_, err := listFromJSON(nil, "b1", v)
				return err
			},
			wantErr: ErrMissingField,
		},
		{
			name: "card summary missing desc",
			json: `{"id":"c1","name":"x","closed":false,"url":"u"}`,
			mapFn: func(v interface{}) error {
				_, err := cardSummaryFromJSON(nil, "l1", v)
				return err
			},
			wantErr: ErrMissingField,
		},
		{
			name: "card detail missing badges",
			json: `{"name":"x","desc":"","closed":false,"url":"u","idMembers":[],"idShort":1,
				"idList":"l1","idBoard":"b1","attachments":[],"labels":[]}`,
			mapFn: func(v interface{}) error {
				_, err := cardDetailFromJSON(nil, "c1", v)
				return err
			},
			wantErr: ErrMissingField,
		},
		{
			name: "card detail idShort is fractional",
			json: `{"name":"x","desc":"","closed":false,"url":"u","idMembers":[],"idShort":1.5,
				"idList":"l1","idBoard":"b1","attachments":[],"labels":[],"badges":{}}`,
			mapFn: func(v interface{}) error {
				_, err := cardDetailFromJSON(nil, "c1", v)
				return err
			},
			wantErr: ErrFieldType,
		},
		{
			name: "card detail member id is a number",
			json: `{"name":"x","desc":"","closed":false,"url":"u","idMembers":[7],"idShort":1,
				"idList":"l1","idBoard":"b1","attachments":[],"labels":[],"badges":{}}`,
			mapFn: func(v interface{}) error {
				_, err := cardDetailFromJSON(nil, "c1", v)
				return err
			},
			wantErr: ErrFieldType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mapFn(decode(t, tt.json))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if !IsMappingError(err) {
				t.Errorf("expected IsMappingError to be true for %v", err)
			}
		})
	}
}

func TestCardDetailFromJSON(t *testing.T) {
	v := decode(t, `{
		"id": "ignored",
		"name": "Task",
		"desc": "details",
		"closed": true,
		"url": "https://trello.com/c/c1",
		"idMembers": ["m1", "m2"],
		"idShort": 42,
		"idList": "l9",
		"idBoard": "b9",
		"attachments": [{"id": "a1", "name": "spec.pdf"}],
		"labels": [{"id": "lb1", "color": "green"}],
		"badges": {"comments": 3}
	}`)

	card, err := cardDetailFromJSON(nil, "c1", v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if card.ID != "c1" {
		t.Errorf("expected id from handle c1, got %s", card.ID)
	}
	if len(card.MemberIDs) != 2 || card.MemberIDs[1] != "m2" {
		t.Errorf("unexpected member ids: %v", card.MemberIDs)
	}
	if card.ShortID != 42 {
		t.Errorf("expected short id 42, got %d", card.ShortID)
	}
	if card.ListID != "l9" || card.BoardID != "b9" {
		t.Errorf("expected l9/b9, got %s/%s", card.ListID, card.BoardID)
	}
	if len(card.Attachments) != 1 || card.Attachments[0]["name"] != "spec.pdf" {
		t.Errorf("unexpected attachments: %v", card.Attachments)
	}
	if len(card.Labels) != 1 || card.Labels[0]["color"] != "green" {
		t.Errorf("unexpected labels: %v", card.Labels)
	}
	if card.Badges["comments"] != float64(3) {
		t.Errorf("unexpected badges: %v", card.Badges)
	}
	if !card.Hydrated() {
		t.Error("expected card to be hydrated")
	}
}
