package server

import "github.com/matryer/way"

const (
	uriSolve    = "/solve"
	uriBreach   = "/breach"
	uriGenerate = "/generate"
	uriPlay     = "/play"
	uriHealth   = "/healthz"
	uriStats    = "/stats"
)

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("POST", uriSolve, s.handleSolve())
	s.router.HandleFunc("POST", uriBreach, s.handleBreach())
	s.router.HandleFunc("POST", uriGenerate, s.handleGenerate())
	s.router.HandleFunc("GET", uriPlay, s.handlePlay())
	s.router.HandleFunc("GET", uriHealth, s.handleHealth())
	s.router.HandleFunc("GET", uriStats, s.handleStats())
}
