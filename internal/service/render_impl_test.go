package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/bluecolored/gitversion/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var testCoords = domain.Coordinates{
	Group:    "de.bluecolored.bluecommands.brigadier",
	Artifact: "bluecommands-brigadier",
	Version:  "2.1.0-3-dirty",
	Commit:   "0123456789abcdef0123456789abcdef01234567",
	Dirty:    true,
}

func TestRenderService_Render(t *testing.T) {
	svc := NewRenderService()
	t.Run("Should render version only for text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, svc.Render(&buf, testCoords, domain.FormatText))
		assert.Equal(t, "2.1.0-3-dirty\n", buf.String())
	})
	t.Run("Should render json document", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, svc.Render(&buf, testCoords, domain.FormatJSON))
		var got domain.Coordinates
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, testCoords, got)
		assert.Contains(t, buf.String(), `"version": "2.1.0-3-dirty"`)
	})
	t.Run("Should render yaml document", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, svc.Render(&buf, testCoords, domain.FormatYAML))
		var got domain.Coordinates
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, testCoords, got)
	})
	t.Run("Should render properties", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, svc.Render(&buf, testCoords, domain.FormatProperties))
		assert.Equal(t, "group=de.bluecolored.bluecommands.brigadier\n"+
			"artifact=bluecommands-brigadier\n"+
			"version=2.1.0-3-dirty\n"+
			"commit=0123456789abcdef0123456789abcdef01234567\n"+
			"dirty=true\n", buf.String())
	})
	t.Run("Should render table with short hash", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, svc.Render(&buf, testCoords, domain.FormatTable))
		out := buf.String()
		assert.Contains(t, out, "2.1.0-3-dirty")
		assert.Contains(t, out, "0123456789ab")
		assert.NotContains(t, out, testCoords.Commit)
	})
	t.Run("Should reject unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		err := svc.Render(&buf, testCoords, domain.OutputFormat("xml"))
		var formatErr *FormatError
		assert.True(t, errors.As(err, &formatErr))
		assert.Empty(t, buf.String())
	})
}
