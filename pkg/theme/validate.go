package theme

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxPadding is the largest display padding Validate accepts.
const MaxPadding = 10

// ValidationError describes one problem found by Validate.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks a document for problems an rFetch theme loader would reject.
// All problems are returned joined; nil means the document is valid.
func Validate(d *Document) error {
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(d.Meta.Name) == "" {
		add("meta.name", "theme name cannot be empty")
	}
	if strings.TrimSpace(d.Meta.Description) == "" {
		add("meta.description", "theme description cannot be empty")
	}
	if !isSemver(d.Meta.Version) {
		add("meta.version", "invalid version %q (use semantic versioning)", d.Meta.Version)
	}

	for _, name := range ColorNames {
		c, _ := d.Colors.Lookup(name)
		field := "colors." + name
		if strings.TrimSpace(c.Base) == "" {
			add(field+".base", "base cannot be empty")
		}
		if c.RGB != nil && !c.RGB.Valid() {
			add(field+".rgb", "channels must be within 0-255, got %v", *c.RGB)
		}
		for _, e := range c.Effects {
			if !IsEffect(e) {
				add(field+".effects", "unknown effect %q", e)
			}
		}
	}

	if !contains(LogoTypes, d.Display.LogoType) {
		add("display.logo_type", "must be one of %s", strings.Join(LogoTypes, ", "))
	}
	if !contains(Alignments, d.Display.Alignment) {
		add("display.alignment", "must be one of %s", strings.Join(Alignments, ", "))
	}
	if d.Display.Padding < 0 || d.Display.Padding > MaxPadding {
		add("display.padding", "must be between 0 and %d", MaxPadding)
	}
	if d.Effects.GlowIntensity < 0 {
		add("effects.glow_intensity", "cannot be negative")
	}

	return errors.Join(errs...)
}

func isSemver(v string) bool {
	parts := strings.Split(v, ".")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if _, err := strconv.ParseUint(p, 10, 32); err != nil {
			return false
		}
	}
	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
