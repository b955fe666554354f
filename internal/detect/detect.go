// Package detect determines the serialization format of a theme file.
package detect

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/dkoosis/rtheme/pkg/codec"
)

// Format reports the detected format of a theme file, or "" when unknown.
// The file extension wins; content sniffing is the fallback.
func Format(path string, data []byte) codec.Format {
	if f := FromPath(path); f != "" {
		return f
	}
	return Sniff(data)
}

// FromPath maps a file extension to a format.
func FromPath(path string) codec.Format {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return ""
	}
	f, err := codec.ParseFormat(ext)
	if err != nil {
		return ""
	}
	return f
}

// Sniff examines the content to determine format.
func Sniff(data []byte) codec.Format {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return ""
	}

	// JSON themes are a single object.
	if data[0] == '{' {
		if json.Valid(data) {
			return codec.JSON
		}
		return ""
	}

	first := firstContentLine(data)
	switch {
	case strings.HasPrefix(first, "["):
		return codec.TOML
	case strings.Contains(first, " = "):
		return codec.TOML
	case strings.HasSuffix(first, ":") || strings.Contains(first, ": ") || first == "---":
		return codec.YAML
	}
	return ""
}

// firstContentLine returns the first line that is neither blank nor a comment.
func firstContentLine(data []byte) string {
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line
	}
	return ""
}
