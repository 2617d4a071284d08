package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/boardkit/trello/pkg/trello"
)

// Tree is a board with all of its lists and fully fetched cards.
type Tree struct {
	Board *trello.Board
	Lists []*trello.List
	// Cards maps a list ID to its cards in listing order.
	Cards map[string][]*trello.Card
}

// CardCount returns the number of cards in the tree.
func (t *Tree) CardCount() int {
	n := 0
	for _, cards := range t.Cards {
		n += len(cards)
	}
	return n
}

// Collect fetches board, every list on it (open and closed) and every card
// in those lists, hydrating each card with its own request.
func Collect(ctx context.Context, board *trello.Board) (*Tree, error) {
	if err := board.Fetch(ctx); err != nil {
		return nil, err
	}

	lists, err := board.AllLists(ctx)
	if err != nil {
		return nil, err
	}

	tree := &Tree{
		Board: board,
		Lists: lists,
		Cards: make(map[string][]*trello.Card, len(lists)),
	}
	for _, l := range lists {
		cards, err := l.ListCards(ctx)
		if err != nil {
			return nil, err
		}
		for _, c := range cards {
			if err := c.Fetch(ctx); err != nil {
				return nil, fmt.Errorf("list %s: %w", l.ID, err)
			}
		}
		tree.Cards[l.ID] = cards
	}
	return tree, nil
}

// Export collects board and writes it to store.
func Export(ctx context.Context, store *Store, board *trello.Board) (*Tree, error) {
	tree, err := Collect(ctx, board)
	if err != nil {
		return nil, fmt.Errorf("export board %s failed: %w", board.ID, err)
	}
	if err := store.SaveTree(ctx, tree, time.Now()); err != nil {
		return nil, err
	}
	return tree, nil
}
