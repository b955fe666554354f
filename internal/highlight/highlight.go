// Package highlight colors exported theme text for terminal display.
package highlight

import (
	"bytes"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/dkoosis/rtheme/internal/prefs"
	"github.com/dkoosis/rtheme/pkg/codec"
)

// Style names per editor mode.
const (
	DarkStyle  = "monokai"
	LightStyle = "github"
)

// StyleFor returns the chroma style name suited to an editor mode.
func StyleFor(mode string) string {
	if mode == prefs.Light {
		return LightStyle
	}
	return DarkStyle
}

// Code highlights src as the given format using a 256-color terminal
// formatter. On any failure src is returned unchanged.
func Code(src string, f codec.Format, style string) string {
	lexer := lexers.Get(string(f))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	s := chromaStyles.Get(style)
	if s == nil {
		s = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return src
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, s, iterator); err != nil {
		return src
	}
	return buf.String()
}
