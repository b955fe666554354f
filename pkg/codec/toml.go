package codec

import (
	"bytes"

	"github.com/BurntSushi/toml"

	"github.com/dkoosis/rtheme/pkg/theme"
)

// encodeTOML writes flat [section] tables. Nil rgb and animation values are
// omitted since TOML has no null.
func encodeTOML(doc *theme.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeTOML(data []byte, doc *theme.Document) error {
	_, err := toml.Decode(string(data), doc)
	return err
}
