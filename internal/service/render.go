package service

import (
	"fmt"
	"io"

	"github.com/bluecolored/gitversion/internal/domain"
)

// RenderService defines the interface for rendering resolved coordinates.

type RenderService interface {
	Render(w io.Writer, coords domain.Coordinates, format domain.OutputFormat) error
}

// NewRenderService creates a new RenderService.
func NewRenderService() RenderService {
	return &renderService{}
}

// FormatError is returned for formats the renderer does not know.
type FormatError struct {
	Format domain.OutputFormat
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unsupported output format: %s", e.Format)
}
