// Package chartjs renders chart configurations as a Chart.js HTML page.
package chartjs

import (
	"html/template"
	"io"
	"sync"

	"github.com/ukaji3/benchchart-go/pkg/benchchart"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
)

// EngineName identifies this engine in chart handles and errors.
const EngineName = "chartjs"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.ScriptURL}}"></script>
</head>
<body>
{{- if .Title}}
<h1>{{.Title}}</h1>
{{- end}}
{{- range .Charts}}
<div class="chart-container">
<canvas id="{{.SurfaceID}}"></canvas>
</div>
{{- end}}
<script>
{{- range .Charts}}
new Chart(document.getElementById({{.SurfaceID}}).getContext('2d'), {{.Config}});
{{- end}}
</script>
</body>
</html>
`))

// Page collects charts and renders them into a single HTML document.
type Page struct {
	// Title is the page title and heading.
	Title string
	// ScriptURL is where the browser loads Chart.js from.
	ScriptURL string

	surfaces *benchchart.Surfaces
	mu       sync.Mutex
	charts   []*benchchart.Chart
}

// NewPage creates a page. When layout ids are given, only those canvases exist.
func NewPage(title, scriptURL string, layout ...string) *Page {
	if scriptURL == "" {
		scriptURL = benchchart.DefaultScriptURL
	}
	return &Page{
		Title:     title,
		ScriptURL: scriptURL,
		surfaces:  benchchart.NewSurfaces(layout...),
	}
}

// Draw binds cfg to the canvas surfaceID.
func (p *Page) Draw(surfaceID string, cfg models.Config) (*benchchart.Chart, error) {
	if err := p.surfaces.Claim(surfaceID); err != nil {
		return nil, benchchart.NewRenderError(surfaceID, EngineName, err)
	}

	chart := &benchchart.Chart{SurfaceID: surfaceID, Engine: EngineName, Config: cfg}
	p.mu.Lock()
	p.charts = append(p.charts, chart)
	p.mu.Unlock()
	return chart, nil
}

// Charts returns the drawn charts in draw order.
func (p *Page) Charts() []*benchchart.Chart {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*benchchart.Chart(nil), p.charts...)
}

// Render writes the HTML document.
func (p *Page) Render(w io.Writer) error {
	return pageTemplate.Execute(w, struct {
		Title     string
		ScriptURL string
		Charts    []*benchchart.Chart
	}{
		Title:     p.Title,
		ScriptURL: p.ScriptURL,
		Charts:    p.Charts(),
	})
}
