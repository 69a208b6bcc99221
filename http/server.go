package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fwojciec/nyhetsindex"
)

// SearchRequest is the body of POST /search.
type SearchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

// Server exposes article search over HTTP. It is stateless per request;
// the only shared state is the read-only searcher handle.
type Server struct {
	searcher nyhetsindex.Searcher
	logger   *slog.Logger
}

// NewServer creates a Server backed by the given searcher.
func NewServer(searcher nyhetsindex.Searcher, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{searcher: searcher, logger: logger}
}

// Handler returns the HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /search", s.handleSearch)
	return mux
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.TopK <= 0 {
		req.TopK = 1
	}

	results, err := s.searcher.Search(r.Context(), req.Query, req.TopK)
	if err != nil {
		switch nyhetsindex.ErrorCode(err) {
		case nyhetsindex.EINVALID:
			http.Error(w, nyhetsindex.ErrorMessage(err), http.StatusBadRequest)
		default:
			s.logger.Error("search failed", "query", req.Query, "error", err)
			http.Error(w, "search failed", http.StatusInternalServerError)
		}
		return
	}

	if results == nil {
		results = []nyhetsindex.SearchResult{}
	}
	renderJSON(w, results)
}

func renderJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already written; nothing left to do.
		return
	}
}
