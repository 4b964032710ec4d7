package web

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nakamura-oss/cubescan/internal/scan"
)

// Server exposes the scan-matching core over HTTP. It holds one
// read-only ScoreTable shared across every request; each request
// constructs its own scan.Matcher (cheap: two small builder structs)
// so concurrent requests never contend over matcher state.
type Server struct {
	router *mux.Router
	table  *scan.ScoreTable
}

func NewServer(table *scan.ScoreTable) *Server {
	s := &Server{
		router: mux.NewRouter(),
		table:  table,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/match", s.handleMatch).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
}

func (s *Server) Start(addr string) error {
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
