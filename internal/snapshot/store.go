// Package snapshot writes fully hydrated board trees to a SQLite file and
// reads them back.
package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/boardkit/trello/pkg/trello"
)

// BoardRecord is a stored board.
type BoardRecord struct {
	ID          string
	Name        string
	Description string
	Closed      bool
	URL         string
	ExportedAt  time.Time
}

// ListRecord is a stored list. Position is the list's index in the
// board listing.
type ListRecord struct {
	ID       string
	BoardID  string
	Name     string
	Closed   bool
	Position int
}

// CardRecord is a stored card.
type CardRecord struct {
	ID          string
	ListID      string
	BoardID     string
	Name        string
	Description string
	Closed      bool
	URL         string
	ShortID     int
	Position    int
	MemberIDs   []string
	Attachments []map[string]interface{}
	Labels      []map[string]interface{}
	Badges      map[string]interface{}
}

// Store is a SQLite-backed snapshot file.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the snapshot at dsn. The dsn can be a
// file path or ":memory:".
func Open(dsn string) (*Store, error) {
	connStr := dsn
	if !strings.Contains(dsn, "?") {
		connStr += "?"
	} else {
		connStr += "&"
	}
	connStr += "_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on&_synchronous=NORMAL"

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveTree replaces any stored copy of the tree's board with tree.
func (s *Store) SaveTree(ctx context.Context, tree *Tree, exportedAt time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	b := tree.Board
	if _, err := tx.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, b.ID); err != nil {
		return fmt.Errorf("failed to clear board %s: %w", b.ID, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO boards (id, name, description, closed, url, exported_at) VALUES (?, ?, ?, ?, ?, ?)`,
		b.ID, b.Name, b.Description, b.Closed, b.URL, exportedAt.UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("failed to insert board %s: %w", b.ID, err)
	}

	for i, l := range tree.Lists {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO lists (id, board_id, name, closed, position) VALUES (?, ?, ?, ?, ?)`,
			l.ID, b.ID, l.Name, l.Closed, i,
		); err != nil {
			return fmt.Errorf("failed to insert list %s: %w", l.ID, err)
		}

		for j, c := range tree.Cards[l.ID] {
			if err := insertCard(ctx, tx, l.ID, j, c); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

func insertCard(ctx context.Context, tx *sql.Tx, listID string, position int, c *trello.Card) error {
	members, err := marshalJSON(c.MemberIDs, "[]")
	if err != nil {
		return err
	}
	attachments, err := marshalJSON(c.Attachments, "[]")
	if err != nil {
		return err
	}
	labels, err := marshalJSON(c.Labels, "[]")
	if err != nil {
		return err
	}
	badges, err := marshalJSON(c.Badges, "{}")
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO cards (id, list_id, board_id, name, description, closed, url, short_id,
			position, member_ids, attachments, labels, badges)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, listID, c.BoardID, c.Name, c.Description, c.Closed, c.URL, c.ShortID,
		position, members, attachments, labels, badges,
	)
	if err != nil {
		return fmt.Errorf("failed to insert card %s: %w", c.ID, err)
	}
	return nil
}

// marshalJSON encodes v, storing empty for nil values.
func marshalJSON(v interface{}, empty string) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode JSON column: %w", err)
	}
	if string(data) == "null" {
		return empty, nil
	}
	return string(data), nil
}

// Boards returns every stored board ordered by name.
func (s *Store) Boards(ctx context.Context) ([]BoardRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, closed, url, exported_at FROM boards ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query boards: %w", err)
	}
	defer rows.Close()

	var boards []BoardRecord
	for rows.Next() {
		var b BoardRecord
		var exportedAt string
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.Closed, &b.URL, &exportedAt); err != nil {
			return nil, fmt.Errorf("failed to scan board: %w", err)
		}
		b.ExportedAt, err = time.Parse(time.RFC3339, exportedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid exported_at %q: %w", exportedAt, err)
		}
		boards = append(boards, b)
	}
	return boards, rows.Err()
}

// Lists returns the stored lists of a board in listing order.
func (s *Store) Lists(ctx context.Context, boardID string) ([]ListRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, board_id, name, closed, position FROM lists WHERE board_id = ? ORDER BY position`, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists: %w", err)
	}
	defer rows.Close()

	var lists []ListRecord
	for rows.Next() {
		var l ListRecord
		if err := rows.Scan(&l.ID, &l.BoardID, &l.Name, &l.Closed, &l.Position); err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

// Cards returns the stored cards of a list in listing order.
func (s *Store) Cards(ctx context.Context, listID string) ([]CardRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, list_id, board_id, name, description, closed, url, short_id, position,
			member_ids, attachments, labels, badges
		FROM cards WHERE list_id = ? ORDER BY position`, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer rows.Close()

	var cards []CardRecord
	for rows.Next() {
		var c CardRecord
		var members, attachments, labels, badges string
		if err := rows.Scan(&c.ID, &c.ListID, &c.BoardID, &c.Name, &c.Description, &c.Closed,
			&c.URL, &c.ShortID, &c.Position, &members, &attachments, &labels, &badges); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		if err := unmarshalColumns(
			column{members, &c.MemberIDs},
			column{attachments, &c.Attachments},
			column{labels, &c.Labels},
			column{badges, &c.Badges},
		); err != nil {
			return nil, fmt.Errorf("card %s: %w", c.ID, err)
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

type column struct {
	raw  string
	dest interface{}
}

func unmarshalColumns(cols ...column) error {
	for _, col := range cols {
		if err := json.Unmarshal([]byte(col.raw), col.dest); err != nil {
			return fmt.Errorf("invalid JSON column: %w", err)
		}
	}
	return nil
}
