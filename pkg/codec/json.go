package codec

import (
	"bytes"
	"encoding/json"

	"github.com/dkoosis/rtheme/pkg/theme"
)

func encodeJSON(doc *theme.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	// Logo art may contain <, > and &.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeJSON(data []byte, doc *theme.Document) error {
	return json.Unmarshal(data, doc)
}
