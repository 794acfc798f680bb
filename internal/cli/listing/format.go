// Package listing renders groupd membership groups for the ls command.
package listing

import (
	"fmt"
	"strings"
)

// Format selects how groups are rendered.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

func AllFormats() []Format {
	return []Format{FormatTable, FormatJSON, FormatYAML}
}

func AllFormatNames() []string {
	formats := AllFormats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

// ParseFormat parses a format name. The empty string selects the table.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table", "":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid output format: %q (valid: %s)", s, strings.Join(AllFormatNames(), ", "))
	}
}
