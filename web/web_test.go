package web_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvroute/dotgraph"
	"github.com/katalvlaran/lvroute/metrics"
	"github.com/katalvlaran/lvroute/routes"
	"github.com/katalvlaran/lvroute/web"
)

const campusPath = "<p>Shortest path from Memorial Union to Computer Sciences:</p><ol>" +
	"<li>Memorial Union</li><li>Library Mall</li><li>Union South</li><li>Computer Sciences</li>" +
	"</ol><p>Total travel time: 476 seconds.</p>"

func loadCampus(t testing.TB, opts ...routes.Option) *routes.Service {
	svc := routes.NewService(opts...)
	require.NoError(t, svc.Load("testdata/campus.dot", dotgraph.FormatAuto))

	return svc
}

func TestPrompts(t *testing.T) {
	f := web.NewFragments(loadCampus(t))

	p := string(f.ShortestPathPromptHTML())
	assert.Contains(t, p, "id='start'")
	assert.Contains(t, p, "id='end'")
	assert.Contains(t, p, "Find Shortest Path")

	p = string(f.FurthestPromptHTML())
	assert.Contains(t, p, "id='from'")
	assert.Contains(t, p, "Furthest Destination From")
}

func TestShortestPathResponseHTML(t *testing.T) {
	f := web.NewFragments(loadCampus(t))

	require.Equal(t, campusPath, string(f.ShortestPathResponseHTML("Memorial Union", "Computer Sciences")))
	require.Equal(t, "<p>No path found from Memorial Union to Picnic Point.</p>",
		string(f.ShortestPathResponseHTML("Memorial Union", "Picnic Point")))

	html := string(f.ShortestPathResponseHTML("Nowhere", "Picnic Point"))
	require.True(t, strings.HasPrefix(html, "<p>Error: "), html)
	require.Contains(t, html, "endpoint not found")
}

func TestFurthestResponseHTML(t *testing.T) {
	f := web.NewFragments(loadCampus(t))

	require.Equal(t,
		"<p>Searching for the furthest destination from Memorial Union:</p>"+
			"<p>Furthest destination: Computer Sciences</p><ol>"+
			"<li>Memorial Union</li><li>Library Mall</li><li>Union South</li><li>Computer Sciences</li></ol>",
		string(f.FurthestResponseHTML("Memorial Union")))

	require.Contains(t, string(f.FurthestResponseHTML("Picnic Point")),
		"<p>No other location is reachable from Picnic Point.</p>")
	require.True(t, strings.HasPrefix(string(f.FurthestResponseHTML("Nowhere")), "<p>Error: "))
}

// stubQuerier returns canned answers.
type stubQuerier struct {
	route     routes.Route
	reloadErr error
}

func (s *stubQuerier) Locations() []string { return []string{"<x>"} }

func (s *stubQuerier) Route(string, string) (routes.Route, error) { return s.route, nil }

func (s *stubQuerier) FewestStops(string, string) (routes.Route, error) { return s.route, nil }

func (s *stubQuerier) Furthest(start string) (routes.Furthest, error) {
	return routes.Furthest{Start: start}, nil
}

func (s *stubQuerier) Reload() error { return s.reloadErr }

func (s *stubQuerier) Stats() (int, int, time.Time) { return 0, 0, time.Time{} }

func TestFragmentsEscape(t *testing.T) {
	f := web.NewFragments(&stubQuerier{route: routes.Route{Stops: []string{"<script>", "B&B"}, Total: 1.5}})

	html := string(f.ShortestPathResponseHTML("<script>", "B&B"))
	require.NotContains(t, html, "<script>")
	require.Contains(t, html, "<li>&lt;script&gt;</li><li>B&amp;B</li>")
	require.Contains(t, html, "Total travel time: 1.5 seconds.")
}

// ServerSuite drives the HTTP surface over the campus map.
type ServerSuite struct {
	suite.Suite
	srv *httptest.Server
}

func (s *ServerSuite) SetupTest() {
	reg := prometheus.NewRegistry()
	svc := loadCampus(s.T(), routes.WithMetrics(metrics.New(reg)))
	s.srv = httptest.NewServer(web.NewServer(svc, reg))
}

func (s *ServerSuite) TearDownTest() { s.srv.Close() }

func (s *ServerSuite) get(path string, q url.Values) (*http.Response, string) {
	u := s.srv.URL + path
	if q != nil {
		u += "?" + q.Encode()
	}
	resp, err := http.Get(u)
	s.Require().NoError(err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	return resp, string(body)
}

func (s *ServerSuite) TestIndex() {
	resp, body := s.get("/", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(resp.Header.Get("Content-Type"), "text/html")
	s.Contains(body, "7 locations")
	s.Contains(body, "id='start'")
	s.Contains(body, "<li>Bascom Hall</li>")
	s.NotEmpty(resp.Header.Get("X-Request-ID"))
}

func (s *ServerSuite) TestPathHTML() {
	resp, body := s.get("/path", url.Values{"start": {"Memorial Union"}, "end": {"Computer Sciences"}})
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(campusPath, body)

	resp, body = s.get("/path", url.Values{"start": {"Memorial Union"}, "end": {"Picnic Point"}})
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(body, "No path found")

	resp, _ = s.get("/path", url.Values{"start": {"Nowhere"}, "end": {"Picnic Point"}})
	s.Equal(http.StatusNotFound, resp.StatusCode)

	resp, _ = s.get("/path", url.Values{"start": {"Memorial Union"}})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *ServerSuite) TestFurthestHTML() {
	resp, body := s.get("/furthest", url.Values{"from": {"Memorial Union"}})
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(body, "Furthest destination: Computer Sciences")

	resp, _ = s.get("/furthest", nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *ServerSuite) TestAPIPath() {
	resp, body := s.get("/api/path", url.Values{"start": {"Memorial Union"}, "end": {"Computer Sciences"}})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var r routes.Route
	s.Require().NoError(json.Unmarshal([]byte(body), &r))
	s.Equal([]float64{60, 240, 176}, r.Times)
	s.Equal(476.0, r.Total)

	resp, body = s.get("/api/path", url.Values{"start": {"Memorial Union"}, "end": {"Picnic Point"}})
	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
	s.Contains(body, "no path exists")

	resp, _ = s.get("/api/path", url.Values{"start": {"X"}, "end": {"Y"}})
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *ServerSuite) TestAPIStops() {
	resp, body := s.get("/api/stops", url.Values{"start": {"Memorial Union"}, "end": {"Computer Sciences"}})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var r routes.Route
	s.Require().NoError(json.Unmarshal([]byte(body), &r))
	s.Equal([]string{"Memorial Union", "Science Hall", "Bascom Hall", "Computer Sciences"}, r.Stops)

	resp, _ = s.get("/api/stops", url.Values{"start": {"Memorial Union"}, "end": {"Picnic Point"}})
	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = s.get("/api/stops", url.Values{"end": {"Picnic Point"}})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *ServerSuite) TestAPILocationsAndFurthest() {
	resp, body := s.get("/api/locations", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var locs struct {
		Locations []string `json:"locations"`
	}
	s.Require().NoError(json.Unmarshal([]byte(body), &locs))
	s.Len(locs.Locations, 7)

	resp, body = s.get("/api/furthest", url.Values{"from": {"Picnic Point"}})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var f routes.Furthest
	s.Require().NoError(json.Unmarshal([]byte(body), &f))
	s.Empty(f.Destination)
}

func (s *ServerSuite) TestReloadAndHealth() {
	resp, err := http.Post(s.srv.URL+"/api/reload", "application/json", nil)
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	resp, _ = s.get("/api/reload", nil)
	s.Equal(http.StatusMethodNotAllowed, resp.StatusCode)

	resp, body := s.get("/healthz", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(body, `"nodes":7`)
	s.Contains(body, `"edges":8`)
}

func (s *ServerSuite) TestMetrics() {
	s.get("/path", url.Values{"start": {"Memorial Union"}, "end": {"Computer Sciences"}})

	resp, body := s.get("/metrics", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(body, `lvroute_queries_total{op="path",outcome="ok"} 1`)
	s.Contains(body, "lvroute_graph_nodes 7")
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func TestReloadErrors(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{routes.ErrNoSource, http.StatusConflict},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		srv := web.NewServer(&stubQuerier{reloadErr: tc.err}, nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/reload", nil))
		require.Equal(t, tc.want, rec.Code, tc.err.Error())
	}

	// no gatherer, no /metrics
	rec := httptest.NewRecorder()
	web.NewServer(&stubQuerier{}, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
