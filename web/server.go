package web

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/logging"
	"github.com/katalvlaran/lvroute/routes"
)

// Server routes HTTP requests to a Querier.
type Server struct {
	router *mux.Router
	q      Querier
	frags  *Fragments
}

// NewServer builds the router. gatherer backs /metrics; nil disables it.
func NewServer(q Querier, gatherer prometheus.Gatherer) *Server {
	s := &Server{router: mux.NewRouter(), q: q, frags: NewFragments(q)}
	s.setupRoutes(gatherer)

	return s
}

func (s *Server) setupRoutes(gatherer prometheus.Gatherer) {
	s.router.Use(logging.RequestIDMiddleware)

	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	s.router.HandleFunc("/path", s.handlePathHTML).Methods(http.MethodGet)
	s.router.HandleFunc("/furthest", s.handleFurthestHTML).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/locations", s.handleLocations).Methods(http.MethodGet)
	api.HandleFunc("/path", s.handlePath).Methods(http.MethodGet)
	api.HandleFunc("/stops", s.handleStops).Methods(http.MethodGet)
	api.HandleFunc("/furthest", s.handleFurthest).Methods(http.MethodGet)
	api.HandleFunc("/reload", s.handleReload).Methods(http.MethodPost)

	s.router.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	if gatherer != nil {
		s.router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.router.ServeHTTP(w, r) }

// statusFor maps a query error to an HTTP status.
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, dijkstra.ErrEndpointNotFound):
		return http.StatusNotFound
	case errors.Is(err, dijkstra.ErrNoPath):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeHTML(w http.ResponseWriter, status int, html template.HTML) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(html))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// GET /
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	writeHTML(w, http.StatusOK, s.frags.index())
}

// GET /path?start=&end=
func (s *Server) handlePathHTML(w http.ResponseWriter, r *http.Request) {
	start, end := r.URL.Query().Get("start"), r.URL.Query().Get("end")
	if start == "" || end == "" {
		writeHTML(w, http.StatusBadRequest, render("error", "start and end are required"))
		return
	}
	html, err := s.frags.shortestPath(start, end)
	status := statusFor(err)
	if errors.Is(err, dijkstra.ErrNoPath) {
		// the message is the answer
		status = http.StatusOK
	}
	writeHTML(w, status, html)
}

// GET /furthest?from=
func (s *Server) handleFurthestHTML(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	if from == "" {
		writeHTML(w, http.StatusBadRequest, render("error", "from is required"))
		return
	}
	html, err := s.frags.furthest(from)
	writeHTML(w, statusFor(err), html)
}

// GET /api/locations
func (s *Server) handleLocations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"locations": s.q.Locations()})
}

// GET /api/path?start=&end=
func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	s.serveRoute(w, r, s.q.Route)
}

// GET /api/stops?start=&end=
func (s *Server) handleStops(w http.ResponseWriter, r *http.Request) {
	s.serveRoute(w, r, s.q.FewestStops)
}

func (s *Server) serveRoute(w http.ResponseWriter, r *http.Request, query func(start, end string) (routes.Route, error)) {
	start, end := r.URL.Query().Get("start"), r.URL.Query().Get("end")
	if start == "" || end == "" {
		writeError(w, http.StatusBadRequest, "start and end are required")
		return
	}
	route, err := query(start, end)
	if err != nil {
		logging.DebugContext(r.Context(), "route query failed", "path", r.URL.Path, "start", start, "end", end, "error", err)
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, route)
}

// GET /api/furthest?from=
func (s *Server) handleFurthest(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	if from == "" {
		writeError(w, http.StatusBadRequest, "from is required")
		return
	}
	res, err := s.q.Furthest(from)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type statsResponse struct {
	Status   string    `json:"status"`
	Nodes    int       `json:"nodes"`
	Edges    int       `json:"edges"`
	LoadedAt time.Time `json:"loadedAt"`
}

func (s *Server) stats(status string) statsResponse {
	nodes, edges, at := s.q.Stats()

	return statsResponse{Status: status, Nodes: nodes, Edges: edges, LoadedAt: at}
}

// POST /api/reload
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	err := s.q.Reload()
	switch {
	case err == nil:
		logging.InfoContext(r.Context(), "graph reloaded on request")
		writeJSON(w, http.StatusOK, s.stats("reloaded"))
	case errors.Is(err, routes.ErrNoSource):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logging.WarnContext(r.Context(), "reload failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// GET /healthz
func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.stats("ok"))
}
