package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/boardkit/trello/internal/snapshot"
	"github.com/boardkit/trello/pkg/trello"
)

// Output formats
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func parseFormat(s string) (string, error) {
	switch strings.ToLower(s) {
	case formatText, "":
		return formatText, nil
	case formatJSON:
		return formatJSON, nil
	case formatYAML, "yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("invalid output format: %s (use text, json or yaml)", s)
	}
}

// writeStructured writes v as JSON or YAML. It returns false for the text
// format, leaving the output to the caller.
func writeStructured(w io.Writer, v interface{}, format string) bool {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(v)
		return true
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		enc.Encode(v)
		enc.Close()
		return true
	}
	return false
}

// printBoards prints a list of boards
func printBoards(w io.Writer, boards []*trello.Board, format string) {
	if writeStructured(w, boards, format) {
		return
	}

	if len(boards) == 0 {
		fmt.Fprintln(w, "No boards found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNAME\tSTATE\n")
	fmt.Fprintf(tw, "--\t----\t-----\n")
	for _, b := range boards {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", b.ID, truncate(b.Name, 40), stateString(b.Closed))
	}
	tw.Flush()
}

// printBoard prints a single board
func printBoard(w io.Writer, b *trello.Board, format string) {
	if writeStructured(w, b, format) {
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", b.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", b.Name)
	fmt.Fprintf(tw, "State:\t%s\n", stateString(b.Closed))
	if b.Description != "" {
		fmt.Fprintf(tw, "Description:\t%s\n", b.Description)
	}
	fmt.Fprintf(tw, "URL:\t%s\n", b.URL)
	tw.Flush()
}

// printLists prints the lists of a board
func printLists(w io.Writer, lists []*trello.List, format string) {
	if writeStructured(w, lists, format) {
		return
	}

	if len(lists) == 0 {
		fmt.Fprintln(w, "No lists found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNAME\tSTATE\n")
	fmt.Fprintf(tw, "--\t----\t-----\n")
	for _, l := range lists {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", l.ID, truncate(l.Name, 40), stateString(l.Closed))
	}
	tw.Flush()
}

// printList prints a single list
func printList(w io.Writer, l *trello.List, format string) {
	if writeStructured(w, l, format) {
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", l.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", l.Name)
	fmt.Fprintf(tw, "State:\t%s\n", stateString(l.Closed))
	tw.Flush()
}

// printCards prints the cards of a list
func printCards(w io.Writer, cards []*trello.Card, format string) {
	if writeStructured(w, cards, format) {
		return
	}

	if len(cards) == 0 {
		fmt.Fprintln(w, "No cards found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNAME\tSTATE\n")
	fmt.Fprintf(tw, "--\t----\t-----\n")
	for _, c := range cards {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, truncate(c.Name, 50), stateString(c.Closed))
	}
	tw.Flush()
}

// printCard prints a single card with its details
func printCard(w io.Writer, c *trello.Card, format string) {
	if writeStructured(w, c, format) {
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", c.ID)
	if c.ShortID != 0 {
		fmt.Fprintf(tw, "Number:\t#%d\n", c.ShortID)
	}
	fmt.Fprintf(tw, "Name:\t%s\n", c.Name)
	fmt.Fprintf(tw, "State:\t%s\n", stateString(c.Closed))
	if c.Description != "" {
		fmt.Fprintf(tw, "Description:\t%s\n", c.Description)
	}
	if c.ListID != "" {
		fmt.Fprintf(tw, "List:\t%s\n", c.ListID)
	}
	if c.BoardID != "" {
		fmt.Fprintf(tw, "Board:\t%s\n", c.BoardID)
	}
	if len(c.MemberIDs) > 0 {
		fmt.Fprintf(tw, "Members:\t%s\n", strings.Join(c.MemberIDs, ", "))
	}
	if names := labelNames(c.Labels); len(names) > 0 {
		fmt.Fprintf(tw, "Labels:\t%s\n", strings.Join(names, ", "))
	}
	if len(c.Attachments) > 0 {
		fmt.Fprintf(tw, "Attachments:\t%d\n", len(c.Attachments))
	}
	fmt.Fprintf(tw, "URL:\t%s\n", c.URL)
	tw.Flush()
}

// exportResult is the structured form of an export summary
type exportResult struct {
	BoardID string `json:"board_id" yaml:"board_id"`
	Board   string `json:"board" yaml:"board"`
	Lists   int    `json:"lists" yaml:"lists"`
	Cards   int    `json:"cards" yaml:"cards"`
	Path    string `json:"path" yaml:"path"`
}

// printExport prints the summary of an export
func printExport(w io.Writer, path string, tree *snapshot.Tree, format string) {
	res := exportResult{
		BoardID: tree.Board.ID,
		Board:   tree.Board.Name,
		Lists:   len(tree.Lists),
		Cards:   tree.CardCount(),
		Path:    path,
	}
	if writeStructured(w, res, format) {
		return
	}

	fmt.Fprintf(w, "Exported %s (%d lists, %d cards) to %s\n", res.Board, res.Lists, res.Cards, res.Path)
}

// printError prints an error message
func printError(w io.Writer, err error, format string) {
	if writeStructured(w, map[string]interface{}{
		"error": map[string]interface{}{
			"message": err.Error(),
		},
	}, format) {
		return
	}

	fmt.Fprintf(w, "Error: %s\n", err.Error())
}

func stateString(closed bool) string {
	if closed {
		return "closed"
	}
	return "open"
}

// labelNames returns the names of labels, falling back to the color for
// unnamed labels.
func labelNames(labels []map[string]interface{}) []string {
	var names []string
	for _, l := range labels {
		if name, _ := l["name"].(string); name != "" {
			names = append(names, name)
		} else if color, _ := l["color"].(string); color != "" {
			names = append(names, color)
		}
	}
	return names
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
