package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/cache"
	"github.com/katalvlaran/mazepath/generator"
	"github.com/katalvlaran/mazepath/maze"
)

// errTooLarge rejects generate requests above the configured dimension.
var errTooLarge = errors.New("server: dimension too large")

type solveRequest struct {
	Rows []string `json:"rows"`
}

type solveResponse struct {
	Outcome  bfs.Outcome `json:"outcome"`
	Path     bfs.Path    `json:"path"`
	Length   int         `json:"length"`
	Explored int         `json:"explored"`
	Cached   bool        `json:"cached,omitempty"`
}

type breachResponse struct {
	Outcome   bfs.Outcome  `json:"outcome"`
	Route     bfs.Path     `json:"route"`
	Walls     []maze.Coord `json:"walls"`
	Reachable int          `json:"reachable"`
}

type generateRequest struct {
	generator.Config
	Seed *int64 `json:"seed,omitempty"`
}

type generateResponse struct {
	Rows   []string       `json:"rows"`
	Result *solveResponse `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSolve() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req solveRequest
		if err := decode(w, r, &req); err != nil {
			s.fail(w, r, http.StatusBadRequest, err)
			return
		}
		resp, err := s.solveRows(req.Rows)
		if err != nil {
			s.fail(w, r, statusOf(err), err)
			return
		}
		s.log(r, http.StatusOK).WithField("outcome", resp.Outcome.String()).Info("server: solved")
		respond(w, http.StatusOK, resp)
	}
}

func (s *Server) handleBreach() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req solveRequest
		if err := decode(w, r, &req); err != nil {
			s.fail(w, r, http.StatusBadRequest, err)
			return
		}
		g, err := maze.Parse(req.Rows)
		if err != nil {
			s.fail(w, r, http.StatusBadRequest, err)
			return
		}
		b, err := bfs.MinBreaches(g)
		if err != nil {
			s.fail(w, r, http.StatusInternalServerError, err)
			return
		}
		walls := b.Walls
		if walls == nil {
			walls = []maze.Coord{}
		}
		s.log(r, http.StatusOK).WithField("walls", len(walls)).Info("server: breach computed")
		respond(w, http.StatusOK, &breachResponse{Outcome: b.Outcome, Route: b.Route, Walls: walls, Reachable: b.Reachable})
	}
}

func (s *Server) handleGenerate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := decode(w, r, &req); err != nil {
			s.fail(w, r, http.StatusBadRequest, err)
			return
		}
		if req.Dimension > s.maxDim {
			s.fail(w, r, http.StatusBadRequest, fmt.Errorf("%w: %d > %d", errTooLarge, req.Dimension, s.maxDim))
			return
		}
		seed := time.Now().UnixNano()
		if req.Seed != nil {
			seed = *req.Seed
		}
		g, err := generator.Generate(req.Config, rand.New(rand.NewSource(seed)))
		if err != nil {
			s.fail(w, r, http.StatusBadRequest, err)
			return
		}
		res, err := s.solveGrid(g)
		if err != nil {
			s.fail(w, r, http.StatusInternalServerError, err)
			return
		}
		s.log(r, http.StatusOK).WithFields(logrus.Fields{
			"dim":     g.Dim(),
			"seed":    seed,
			"outcome": res.Outcome.String(),
		}).Info("server: generated")
		respond(w, http.StatusOK, &generateResponse{Rows: g.Rows(), Result: res})
	}
}

// handlePlay upgrades to a websocket and answers every text message, a
// solve request, with a solve response. It returns on the first read error,
// including a message larger than the request body limit.
func (s *Server) handlePlay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			s.log(r, http.StatusBadRequest).WithError(err).Warn("server: websocket upgrade failed")
			return
		}
		defer conn.Close()
		conn.SetReadLimit(maxBodyBytes)
		logger := s.log(r, http.StatusSwitchingProtocols)
		logger.Info("server: play session started")

		for n := 0; ; n++ {
			kind, data, err := conn.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					logger.WithError(err).Debug("server: play read ended")
				}
				logger.WithField("messages", n).Info("server: play session ended")
				return
			}
			if kind != websocket.TextMessage {
				continue
			}

			var reply any
			var req solveRequest
			if err := json.Unmarshal(data, &req); err != nil {
				reply = &errorResponse{Error: err.Error()}
			} else if resp, err := s.solveRows(req.Rows); err != nil {
				reply = &errorResponse{Error: err.Error()}
			} else {
				reply = resp
			}
			if err := conn.WriteJSON(reply); err != nil {
				logger.WithError(err).Warn("server: play write failed")
				return
			}
		}
	}
}

func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	}
}

func (s *Server) handleStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var st cache.Stats
		if s.cache != nil {
			st = s.cache.Stats()
		}
		respond(w, http.StatusOK, st)
	}
}

// solveRows validates rows and solves them.
func (s *Server) solveRows(rows []string) (*solveResponse, error) {
	g, err := maze.Parse(rows)
	if err != nil {
		return nil, err
	}
	return s.solveGrid(g)
}

func (s *Server) solveGrid(g *maze.Grid) (*solveResponse, error) {
	if res, ok := s.cache.Get(g); ok {
		r := toResponse(res)
		r.Cached = true
		return r, nil
	}
	res, err := bfs.Solve(g, bfs.WithLogger(s.logger))
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Put(g, res); err != nil {
			s.logger.WithError(err).Warn("server: cache store failed")
		}
	}
	return toResponse(res), nil
}

func toResponse(res *bfs.Result) *solveResponse {
	path := res.Path
	if path == nil {
		path = bfs.Path{}
	}
	return &solveResponse{
		Outcome:  res.Outcome,
		Path:     path,
		Length:   path.Len(),
		Explored: res.Explored,
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.log(r, status).WithError(err).Warn("server: request failed")
	respond(w, status, &errorResponse{Error: err.Error()})
}

func (s *Server) log(r *http.Request, status int) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"remote": r.RemoteAddr,
		"status": status,
	})
}

func statusOf(err error) int {
	if errors.Is(err, maze.ErrMalformedGrid) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("server: decode request: %w", err)
	}
	return nil
}

func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
