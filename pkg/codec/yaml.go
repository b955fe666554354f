package codec

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/rtheme/pkg/theme"
)

const yamlIndent = 2

// encodeYAML goes through a yaml.Node so that every string value can be
// double-quoted while keys stay plain.
func encodeYAML(doc *theme.Document) ([]byte, error) {
	var root yaml.Node
	if err := root.Encode(doc); err != nil {
		return nil, err
	}
	quoteStrings(&root, false)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(&root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func quoteStrings(n *yaml.Node, isKey bool) {
	switch n.Kind {
	case yaml.ScalarNode:
		if !isKey && n.ShortTag() == "!!str" {
			n.Style = yaml.DoubleQuotedStyle
		}
	case yaml.MappingNode:
		for i, c := range n.Content {
			quoteStrings(c, i%2 == 0)
		}
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, c := range n.Content {
			quoteStrings(c, false)
		}
	}
}

func decodeYAML(data []byte, doc *theme.Document) error {
	return yaml.Unmarshal(data, doc)
}
