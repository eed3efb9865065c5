package benchchart

import (
	"errors"
	"fmt"
)

// ErrUnknownSurface indicates the engine has a fixed layout that does not contain the surface.
var ErrUnknownSurface = errors.New("unknown surface")

// ErrSurfaceInUse indicates the surface has already been drawn on by this engine.
var ErrSurfaceInUse = errors.New("surface already in use")

// ErrUnknownFormat indicates an output format no engine is registered for.
var ErrUnknownFormat = errors.New("unknown output format")

// ErrInvalidDataset indicates a loaded dataset does not fit the chart layout.
var ErrInvalidDataset = errors.New("invalid dataset")

// RenderError represents a failure while an engine draws a chart.
type RenderError struct {
	SurfaceID string
	Engine    string // "chartjs", "echarts", "plot", "xlsx", "recorder"
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error on surface %q (%s): %v", e.SurfaceID, e.Engine, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(surfaceID, engine string, err error) *RenderError {
	return &RenderError{
		SurfaceID: surfaceID,
		Engine:    engine,
		Err:       err,
	}
}
