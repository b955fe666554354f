// Package preview renders a theme applied to sample system information, the
// way rFetch would display it.
package preview

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/rtheme/pkg/theme"
)

// Renderer turns a theme and sample data into displayable text.
type Renderer interface {
	Render(doc *theme.Document, info theme.SampleInfo) string
}

// Prompt is the command line shown above the output.
const Prompt = "rfetch"

// BorderWidth is the number of rule characters in a border line.
const BorderWidth = 50

const (
	borderChar = "─"
	swatch     = "██"
)

// Swatches are the 16 standard ANSI colors shown in the color bar.
var Swatches = []string{
	"#000000", "#800000", "#008000", "#808000", "#000080", "#800080", "#008080", "#c0c0c0",
	"#808080", "#ff0000", "#00ff00", "#ffff00", "#0000ff", "#ff00ff", "#00ffff", "#ffffff",
}

// RFetchLogo is the built-in logo used for logo_type "auto".
const RFetchLogo = `  ██████╗ ███████╗███████╗████████╗ ██████╗██╗  ██╗
  ██╔══██╗██╔════╝██╔════╝╚══██╔══╝██╔════╝██║  ██║
  ██████╔╝█████╗  █████╗     ██║   ██║     ███████║
  ██╔══██╗██╔══╝  ██╔══╝     ██║   ██║     ██╔══██║
  ██║  ██║██║     ███████╗   ██║   ╚██████╗██║  ██║
  ╚═╝  ╚═╝╚═╝     ╚══════╝   ╚═╝    ╚═════╝╚═╝  ╚═╝`

// LogoKind resolves which logo a document shows. A blank custom logo with
// logo_type "ascii" shows nothing.
func LogoKind(doc *theme.Document) string {
	switch doc.Display.LogoType {
	case theme.LogoASCII:
		if strings.TrimSpace(doc.ASCII.CustomLogo) != "" {
			return theme.LogoASCII
		}
	case theme.LogoSmall, theme.LogoAuto:
		return doc.Display.LogoType
	}
	return theme.LogoNone
}

// LogoLines returns the lines of the logo the document shows, or nil.
func LogoLines(doc *theme.Document) []string {
	switch LogoKind(doc) {
	case theme.LogoASCII:
		return strings.Split(doc.ASCII.CustomLogo, "\n")
	case theme.LogoSmall:
		small := doc.ASCII.SmallLogo
		if small == "" {
			small = theme.DefaultSmallLogo
		}
		return []string{small}
	case theme.LogoAuto:
		return strings.Split(RFetchLogo, "\n")
	}
	return nil
}

// Label capitalizes a sample info key for display: "cpu" becomes "Cpu".
func Label(key string) string {
	return cases.Title(language.English, cases.NoLower).String(key)
}

func separator(doc *theme.Document) string {
	if doc.Display.Separator == "" {
		return theme.DefaultSeparator
	}
	return doc.Display.Separator
}
