// Package web renders route answers as HTML fragments and serves them, plus a
// small JSON API, over HTTP.
package web

import (
	"bytes"
	"errors"
	"html/template"
	"strconv"
	"time"

	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/routes"
)

// Querier is the subset of routes.Service the web layer uses.
type Querier interface {
	Locations() []string
	Route(start, end string) (routes.Route, error)
	FewestStops(start, end string) (routes.Route, error)
	Furthest(start string) (routes.Furthest, error)
	Reload() error
	Stats() (nodes, edges int, loadedAt time.Time)
}

var fragments = template.Must(template.New("fragments").Funcs(template.FuncMap{
	"seconds": func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
}).Parse(`
{{- define "pathPrompt" -}}
<label for='start'>Start Location:</label><input type='text' id='start' name='start'><br>
<label for='end'>Destination:</label><input type='text' id='end' name='end'><br>
<button type='button'>Find Shortest Path</button>
{{- end -}}

{{- define "pathResponse" -}}
<p>Shortest path from {{.Start}} to {{.End}}:</p><ol>
{{- range .Route.Stops}}<li>{{.}}</li>{{end -}}
</ol><p>Total travel time: {{seconds .Route.Total}} seconds.</p>
{{- end -}}

{{- define "furthestPrompt" -}}
<label for='from'>Start Location:</label><input type='text' id='from' name='from'><br>
<button type='button'>Furthest Destination From</button>
{{- end -}}

{{- define "furthestResponse" -}}
<p>Searching for the furthest destination from {{.Start}}:</p>
{{- if .Destination}}<p>Furthest destination: {{.Destination}}</p><ol>
{{- range .Stops}}<li>{{.}}</li>{{end -}}
</ol>
{{- else}}<p>No other location is reachable from {{.Start}}.</p>
{{- end -}}
{{- end -}}

{{- define "noPath" -}}<p>No path found from {{.Start}} to {{.End}}.</p>{{- end -}}

{{- define "error" -}}<p>Error: {{.}}</p>{{- end -}}

{{- define "index" -}}
<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>lvroute</title></head><body>
<h1>Campus routes</h1>
<form action="/path" method="get">{{.PathPrompt}}</form>
<form action="/furthest" method="get">{{.FurthestPrompt}}</form>
<p>{{len .Locations}} locations:</p><ul>
{{- range .Locations}}<li>{{.}}</li>{{end -}}
</ul>
</body></html>
{{- end -}}
`))

func render(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		// templates are fixed; only a programming error gets here
		panic("web: render " + name + ": " + err.Error())
	}

	return template.HTML(buf.String())
}

// Fragments produces HTML fragments from a Querier.
type Fragments struct {
	q Querier
}

// NewFragments returns Fragments reading from q.
func NewFragments(q Querier) *Fragments { return &Fragments{q: q} }

// ShortestPathPromptHTML returns inputs named start and end and a submit button.
func (f *Fragments) ShortestPathPromptHTML() template.HTML { return render("pathPrompt", nil) }

// FurthestPromptHTML returns an input named from and a submit button.
func (f *Fragments) FurthestPromptHTML() template.HTML { return render("furthestPrompt", nil) }

// ShortestPathResponseHTML lists the stops from start to end and the total
// travel time, or explains why there is no such path.
func (f *Fragments) ShortestPathResponseHTML(start, end string) template.HTML {
	html, _ := f.shortestPath(start, end)

	return html
}

// FurthestResponseHTML names the furthest destination from start and the
// stops leading there.
func (f *Fragments) FurthestResponseHTML(start string) template.HTML {
	html, _ := f.furthest(start)

	return html
}

func (f *Fragments) shortestPath(start, end string) (template.HTML, error) {
	r, err := f.q.Route(start, end)
	switch {
	case err == nil:
		return render("pathResponse", struct {
			Start, End string
			Route      routes.Route
		}{start, end, r}), nil
	case errors.Is(err, dijkstra.ErrNoPath):
		return render("noPath", struct{ Start, End string }{start, end}), err
	default:
		return render("error", err.Error()), err
	}
}

func (f *Fragments) furthest(start string) (template.HTML, error) {
	res, err := f.q.Furthest(start)
	if err != nil {
		return render("error", err.Error()), err
	}

	return render("furthestResponse", res), nil
}

func (f *Fragments) index() template.HTML {
	return render("index", struct {
		PathPrompt, FurthestPrompt template.HTML
		Locations                  []string
	}{f.ShortestPathPromptHTML(), f.FurthestPromptHTML(), f.q.Locations()})
}
