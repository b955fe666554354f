// Package codec serializes theme documents to and from YAML, JSON and TOML.
package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dkoosis/rtheme/pkg/theme"
)

// Format names a serialization format. The value doubles as the file extension.
type Format string

// Supported formats.
const (
	YAML Format = "yaml"
	JSON Format = "json"
	TOML Format = "toml"
)

// Formats lists the supported formats in the order the editor offers them.
var Formats = []Format{YAML, JSON, TOML}

// ErrUnknownFormat is returned for format names other than yaml, json or toml.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat accepts yaml, yml, json or toml in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	case "toml":
		return TOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) String() string { return string(f) }

// Filename returns the download name for a theme: "<name>.<format>".
func Filename(name string, f Format) string {
	return name + "." + string(f)
}

// Encode serializes doc. The document is not modified.
func Encode(doc *theme.Document, f Format) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch f {
	case YAML:
		out, err = encodeYAML(doc)
	case JSON:
		out, err = encodeJSON(doc)
	case TOML:
		out, err = encodeTOML(doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", f, err)
	}
	return out, nil
}

// Decode parses a serialized theme. Sections missing from the input take
// their default values.
func Decode(data []byte, f Format) (*theme.Document, error) {
	doc := &theme.Document{}
	var err error
	switch f {
	case YAML:
		err = decodeYAML(data, doc)
	case JSON:
		err = decodeJSON(data, doc)
	case TOML:
		err = decodeTOML(data, doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", f, err)
	}
	doc.FillDefaults()
	return doc, nil
}
