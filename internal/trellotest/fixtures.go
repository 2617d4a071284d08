package trellotest

import (
	"fmt"
	"sync"

	"github.com/boardkit/trello/pkg/idgen"
)

// Board is a board as served by the fake API.
type Board struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Desc   string `json:"desc"`
	Closed bool   `json:"closed"`
	URL    string `json:"url"`
}

// List is a list as served by the fake API.
type List struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Closed  bool    `json:"closed"`
	IDBoard string  `json:"idBoard"`
	Pos     float64 `json:"pos"`
}

// Card is a card as served by the fake API.
type Card struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Desc        string                   `json:"desc"`
	Closed      bool                     `json:"closed"`
	URL         string                   `json:"url"`
	IDMembers   []string                 `json:"idMembers"`
	IDShort     int                      `json:"idShort"`
	IDList      string                   `json:"idList"`
	IDBoard     string                   `json:"idBoard"`
	Attachments []map[string]interface{} `json:"attachments"`
	Labels      []map[string]interface{} `json:"labels"`
	Badges      map[string]interface{}   `json:"badges"`
}

// data holds the fake API's state. Slices keep insertion order, which is
// the order the API returns.
type data struct {
	mu     sync.Mutex
	boards []*Board
	lists  []*List
	cards  []*Card
	// nextShort is the next idShort per board.
	nextShort map[string]int
}

func newData() *data {
	return &data{nextShort: make(map[string]int)}
}

// AddBoard creates a board and returns a copy of it.
func (s *Server) AddBoard(name, desc string, closed bool) Board {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	id := idgen.MustGenerate()
	b := &Board{
		ID:     id,
		Name:   name,
		Desc:   desc,
		Closed: closed,
		URL:    fmt.Sprintf("https://trello.com/b/%s", id[len(id)-8:]),
	}
	s.data.boards = append(s.data.boards, b)
	return *b
}

// AddList creates a list on a board and returns a copy of it.
func (s *Server) AddList(boardID, name string, closed bool) List {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	l := &List{
		ID:      idgen.MustGenerate(),
		Name:    name,
		Closed:  closed,
		IDBoard: boardID,
		Pos:     float64(len(s.data.lists)+1) * 16384,
	}
	s.data.lists = append(s.data.lists, l)
	return *l
}

// AddCard creates a card in a list and returns a copy of it. It returns an
// error if the list does not exist.
func (s *Server) AddCard(listID, name, desc string) (Card, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	c, err := s.data.addCardLocked(listID, name, desc)
	if err != nil {
		return Card{}, err
	}
	return *c, nil
}

// UpdateCard applies fn to the stored card. It returns false if the card
// does not exist.
func (s *Server) UpdateCard(id string, fn func(c *Card)) bool {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	c := s.data.card(id)
	if c == nil {
		return false
	}
	fn(c)
	return true
}

func (d *data) addCardLocked(listID, name, desc string) (*Card, error) {
	l := d.list(listID)
	if l == nil {
		return nil, fmt.Errorf("list %s not found", listID)
	}

	d.nextShort[l.IDBoard]++
	id := idgen.MustGenerate()
	c := &Card{
		ID:          id,
		Name:        name,
		Desc:        desc,
		URL:         fmt.Sprintf("https://trello.com/c/%s", id[len(id)-8:]),
		IDMembers:   []string{},
		IDShort:     d.nextShort[l.IDBoard],
		IDList:      l.ID,
		IDBoard:     l.IDBoard,
		Attachments: []map[string]interface{}{},
		Labels:      []map[string]interface{}{},
		Badges:      map[string]interface{}{"comments": 0, "attachments": 0, "votes": 0},
	}
	d.cards = append(d.cards, c)
	return c, nil
}

func (d *data) board(id string) *Board {
	for _, b := range d.boards {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (d *data) list(id string) *List {
	for _, l := range d.lists {
		if l.ID == id {
			return l
		}
	}
	return nil
}

func (d *data) card(id string) *Card {
	for _, c := range d.cards {
		if c.ID == id {
			return c
		}
	}
	return nil
}
