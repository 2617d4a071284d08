package trellotest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) listBoards(w http.ResponseWriter, r *http.Request) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	boards := make([]Board, 0, len(s.data.boards))
	for _, b := range s.data.boards {
		boards = append(boards, *b)
	}
	writeJSON(w, boards)
}

func (s *Server) getBoard(w http.ResponseWriter, r *http.Request) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	b := s.data.board(chi.URLParam(r, "id"))
	if b == nil {
		http.Error(w, "The requested resource was not found.", http.StatusNotFound)
		return
	}
	writeJSON(w, b)
}

func (s *Server) listLists(w http.ResponseWriter, r *http.Request) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	boardID := chi.URLParam(r, "id")
	if s.data.board(boardID) == nil {
		http.Error(w, "The requested resource was not found.", http.StatusNotFound)
		return
	}

	filter := r.URL.Query().Get("filter")
	if filter == "" {
		filter = "open"
	}
	if filter != "all" && filter != "open" && filter != "closed" {
		http.Error(w, "invalid value for filter", http.StatusBadRequest)
		return
	}

	lists := make([]List, 0)
	for _, l := range s.data.lists {
		if l.IDBoard != boardID {
			continue
		}
		if (filter == "open" && l.Closed) || (filter == "closed" && !l.Closed) {
			continue
		}
		lists = append(lists, *l)
	}
	writeJSON(w, lists)
}

func (s *Server) getList(w http.ResponseWriter, r *http.Request) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	l := s.data.list(chi.URLParam(r, "id"))
	if l == nil {
		http.Error(w, "The requested resource was not found.", http.StatusNotFound)
		return
	}
	writeJSON(w, l)
}

func (s *Server) listCards(w http.ResponseWriter, r *http.Request) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	listID := chi.URLParam(r, "id")
	if s.data.list(listID) == nil {
		http.Error(w, "The requested resource was not found.", http.StatusNotFound)
		return
	}

	cards := make([]Card, 0)
	for _, c := range s.data.cards {
		if c.IDList == listID && !c.Closed {
			cards = append(cards, *c)
		}
	}
	writeJSON(w, cards)
}

// createCardRequest mirrors the JSON body the client sends.
type createCardRequest struct {
	Name   string `json:"name"`
	IDList string `json:"idList"`
	Desc   string `json:"desc"`
}

func (s *Server) createCard(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	listID := chi.URLParam(r, "id")
	if req.IDList != "" && req.IDList != listID {
		http.Error(w, "invalid value for idList", http.StatusBadRequest)
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	c, err := s.data.addCardLocked(listID, req.Name, req.Desc)
	if err != nil {
		http.Error(w, "invalid value for idList", http.StatusBadRequest)
		return
	}
	writeJSON(w, c)
}

func (s *Server) getCard(w http.ResponseWriter, r *http.Request) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	c := s.data.card(chi.URLParam(r, "id"))
	if c == nil {
		http.Error(w, "The requested resource was not found.", http.StatusNotFound)
		return
	}
	writeJSON(w, c)
}
