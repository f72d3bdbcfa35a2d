package domain

import (
	"fmt"
	"strings"
)

// OutputFormat selects how resolved coordinates are rendered.
type OutputFormat string

const (
	FormatText       OutputFormat = "text"
	FormatJSON       OutputFormat = "json"
	FormatYAML       OutputFormat = "yaml"
	FormatProperties OutputFormat = "properties"
	FormatTable      OutputFormat = "table"
)

// OutputFormats lists every supported format.
var OutputFormats = []OutputFormat{FormatText, FormatJSON, FormatYAML, FormatProperties, FormatTable}

// ParseOutputFormat validates a format name, case-insensitively.
func ParseOutputFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range OutputFormats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format: %s", s)
}
