package service

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/bluecolored/gitversion/internal/domain"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// renderService is the implementation of the RenderService interface.
type renderService struct{}

// Render writes coords to w in the requested format.
func (s *renderService) Render(w io.Writer, coords domain.Coordinates, format domain.OutputFormat) error {
	switch format {
	case domain.FormatText:
		return s.renderText(w, coords)
	case domain.FormatJSON:
		return s.renderJSON(w, coords)
	case domain.FormatYAML:
		return s.renderYAML(w, coords)
	case domain.FormatProperties:
		return s.renderProperties(w, coords)
	case domain.FormatTable:
		return s.renderTable(w, coords)
	default:
		return &FormatError{Format: format}
	}
}

func (s *renderService) renderText(w io.Writer, coords domain.Coordinates) error {
	_, err := fmt.Fprintln(w, coords.Version)
	return err
}

func (s *renderService) renderJSON(w io.Writer, coords domain.Coordinates) error {
	data, err := json.MarshalIndent(coords, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal coordinates: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func (s *renderService) renderYAML(w io.Writer, coords domain.Coordinates) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(coords); err != nil {
		return fmt.Errorf("failed to encode coordinates: %w", err)
	}
	return enc.Close()
}

// renderProperties writes a Java properties file consumable by build tools.
func (s *renderService) renderProperties(w io.Writer, coords domain.Coordinates) error {
	_, err := fmt.Fprintf(w, "group=%s\nartifact=%s\nversion=%s\ncommit=%s\ndirty=%s\n",
		coords.Group, coords.Artifact, coords.Version, coords.Commit, strconv.FormatBool(coords.Dirty))
	return err
}

func (s *renderService) renderTable(w io.Writer, coords domain.Coordinates) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Group", "Artifact", "Version", "Commit", "Dirty"})
	t.AppendRow(table.Row{coords.Group, coords.Artifact, coords.Version, shortHash(coords.Commit), coords.Dirty})
	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
