package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/boardkit/trello/internal/config"
	"github.com/boardkit/trello/internal/snapshot"
	"github.com/boardkit/trello/internal/trellotest"
)

// resetFlags restores global and per-command flag values between tests.
func resetFlags(t *testing.T) {
	t.Helper()
	jsonOutput = false
	outputFormat = formatText
	configPath = ""
	verbose = false
	listsCmd.Flags().Set("filter", "open")
	addCardCmd.Flags().Set("description", "")
	exportCmd.Flags().Set("out", "trello.db")
}

// runCLI executes the root command against srv and returns stdout.
func runCLI(t *testing.T, srv *trellotest.Server, args ...string) string {
	t.Helper()
	resetFlags(t)
	t.Setenv("HOME", t.TempDir())
	chdirForTest(t, t.TempDir())
	t.Setenv(config.EnvAPIKey, trellotest.DefaultKey)
	t.Setenv(config.EnvToken, trellotest.DefaultToken)
	t.Setenv(config.EnvAPISecret, "")
	t.Setenv(config.EnvTokenSecret, "")
	t.Setenv(config.EnvBaseURL, srv.URL)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("trello %s failed: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestCommands_Registered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"boards", "board", "lists", "list", "cards", "card", "add-card", "export"} {
		if !names[want] {
			t.Errorf("rootCmd should have %s subcommand", want)
		}
	}
}

func TestRootCmd_HasGlobalFlags(t *testing.T) {
	for _, name := range []string{"json", "output", "config", "verbose"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("rootCmd should have --%s flag", name)
		}
	}
}

func TestAddCardCmd_HasDescriptionShortFlag(t *testing.T) {
	if addCardCmd.Flags().ShorthandLookup("d") == nil {
		t.Error("addCardCmd should have -d flag")
	}
}

func TestBoardsCmd_ListsBoards(t *testing.T) {
	srv := trellotest.New()
	defer srv.Close()
	srv.AddBoard("Roadmap", "", false)
	srv.AddBoard("Archive", "", true)

	output := runCLI(t, srv, "boards")

	if !strings.Contains(output, "Roadmap") || !strings.Contains(output, "Archive") {
		t.Errorf("expected both boards in output, got:\n%s", output)
	}
	if strings.Index(output, "Roadmap") > strings.Index(output, "Archive") {
		t.Errorf("expected server order, got:\n%s", output)
	}
}

func TestBoardCmd_JSON(t *testing.T) {
	srv := trellotest.New()
	defer srv.Close()
	b := srv.AddBoard("Roadmap", "Q3 plans", false)

	output := runCLI(t, srv, "board", b.ID, "--json")

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("output should be valid JSON: %v\n%s", err, output)
	}
	if result["desc"] != "Q3 plans" {
		t.Errorf("expected description, got %v", result)
	}
}

func TestListsCmd_Filter(t *testing.T) {
	srv := trellotest.New()
	defer srv.Close()
	b := srv.AddBoard("Roadmap", "", false)
	srv.AddList(b.ID, "Todo", false)
	srv.AddList(b.ID, "Old", true)

	open := runCLI(t, srv, "lists", b.ID)
	if !strings.Contains(open, "Todo") || strings.Contains(open, "Old") {
		t.Errorf("expected only open lists, got:\n%s", open)
	}

	closed := runCLI(t, srv, "lists", b.ID, "--filter", "closed")
	if strings.Contains(closed, "Todo") || !strings.Contains(closed, "Old") {
		t.Errorf("expected only closed lists, got:\n%s", closed)
	}
}

func TestCardsAndCardCmd(t *testing.T) {
	srv := trellotest.New()
	defer srv.Close()
	b := srv.AddBoard("Roadmap", "", false)
	l := srv.AddList(b.ID, "Todo", false)
	c, _ := srv.AddCard(l.ID, "Write docs", "")
	srv.UpdateCard(c.ID, func(card *trellotest.Card) {
		card.IDMembers = []string{"member-1"}
	})

	cards := runCLI(t, srv, "cards", l.ID)
	if !strings.Contains(cards, c.ID) {
		t.Errorf("expected card in listing, got:\n%s", cards)
	}

	detail := runCLI(t, srv, "card", c.ID, "-o", "yaml")
	if !strings.Contains(detail, "member-1") || !strings.Contains(detail, "idShort: 1") {
		t.Errorf("expected hydrated card in YAML, got:\n%s", detail)
	}
}

func TestAddCardCmd_CreatesCard(t *testing.T) {
	srv := trellotest.New()
	defer srv.Close()
	b := srv.AddBoard("Roadmap", "", false)
	l := srv.AddList(b.ID, "Todo", false)

	output := runCLI(t, srv, "add-card", l.ID, "Ship it", "-d", "friday")
	if !strings.Contains(output, "Ship it") || !strings.Contains(output, "friday") {
		t.Errorf("expected new card in output, got:\n%s", output)
	}

	var posted bool
	for _, req := range srv.Requests() {
		if req.Method == "POST" && req.Path == "/lists/"+l.ID+"/cards" {
			posted = true
		}
	}
	if !posted {
		t.Error("expected a POST to the list cards endpoint")
	}
}

func TestExportCmd_WritesSnapshot(t *testing.T) {
	srv := trellotest.New()
	defer srv.Close()
	b := srv.AddBoard("Roadmap", "", false)
	l := srv.AddList(b.ID, "Todo", false)
	srv.AddCard(l.ID, "Write docs", "")

	out := filepath.Join(t.TempDir(), "roadmap.db")
	output := runCLI(t, srv, "export", b.ID, "--out", out)
	if !strings.Contains(output, "1 lists, 1 cards") {
		t.Errorf("unexpected summary: %s", output)
	}

	store, err := snapshot.Open(out)
	if err != nil {
		t.Fatalf("failed to open snapshot: %v", err)
	}
	defer store.Close()

	cards, err := store.Cards(context.Background(), l.ID)
	if err != nil {
		t.Fatalf("Cards failed: %v", err)
	}
	if len(cards) != 1 || cards[0].Name != "Write docs" {
		t.Errorf("unexpected stored cards: %+v", cards)
	}
}
