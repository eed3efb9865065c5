package benchchart

import (
	"sync"

	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
)

// Engine paints a configuration onto the surface it names.
type Engine interface {
	Draw(surfaceID string, cfg models.Config) (*Chart, error)
}

// Chart is the handle an engine returns for a drawn configuration.
type Chart struct {
	// SurfaceID is the surface the chart is bound to.
	SurfaceID string
	// Engine names the engine owning the chart.
	Engine string
	// Config is the configuration that was drawn.
	Config models.Config
}

// Surfaces tracks which surfaces an engine has claimed. A non-empty layout
// restricts drawing to the declared ids.
type Surfaces struct {
	mu      sync.Mutex
	layout  map[string]bool
	claimed map[string]bool
	order   []string
}

// NewSurfaces creates a tracker. With no layout ids any surface may be claimed.
func NewSurfaces(layout ...string) *Surfaces {
	s := &Surfaces{claimed: make(map[string]bool)}
	if len(layout) > 0 {
		s.layout = make(map[string]bool, len(layout))
		for _, id := range layout {
			s.layout[id] = true
		}
	}
	return s
}

// Claim marks id as drawn. Each surface may be claimed once.
func (s *Surfaces) Claim(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.layout != nil && !s.layout[id] {
		return ErrUnknownSurface
	}
	if s.claimed[id] {
		return ErrSurfaceInUse
	}
	s.claimed[id] = true
	s.order = append(s.order, id)
	return nil
}

// Claimed returns the claimed ids in claim order.
func (s *Surfaces) Claimed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.order...)
}

// Recorder is an in-memory engine that keeps every drawn chart.
type Recorder struct {
	surfaces *Surfaces
	mu       sync.Mutex
	charts   []*Chart
}

// NewRecorder creates a Recorder, optionally restricted to a layout.
func NewRecorder(layout ...string) *Recorder {
	return &Recorder{surfaces: NewSurfaces(layout...)}
}

// Draw records cfg under surfaceID.
func (r *Recorder) Draw(surfaceID string, cfg models.Config) (*Chart, error) {
	if err := r.surfaces.Claim(surfaceID); err != nil {
		return nil, NewRenderError(surfaceID, "recorder", err)
	}

	chart := &Chart{SurfaceID: surfaceID, Engine: "recorder", Config: cfg}
	r.mu.Lock()
	r.charts = append(r.charts, chart)
	r.mu.Unlock()
	return chart, nil
}

// Charts returns the recorded charts in draw order.
func (r *Recorder) Charts() []*Chart {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Chart(nil), r.charts...)
}
