package report

import (
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
)

var namedColors = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"purple":  color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,

	"hi-black":   color.FgHiBlack,
	"grey":       color.FgHiBlack,
	"gray":       color.FgHiBlack,
	"hi-red":     color.FgHiRed,
	"hi-green":   color.FgHiGreen,
	"hi-yellow":  color.FgHiYellow,
	"hi-blue":    color.FgHiBlue,
	"hi-magenta": color.FgHiMagenta,
	"hi-cyan":    color.FgHiCyan,
	"hi-white":   color.FgHiWhite,
}

// ColorNames lists the accepted color names.
func ColorNames() []string {
	names := make([]string, 0, len(namedColors))
	for n := range namedColors {
		names = append(names, n)
	}
	return names
}

// LookupColor returns the terminal color for name, or nil when the name is unknown.
func LookupColor(name string) *color.Color {
	attr, ok := namedColors[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil
	}
	return color.New(attr)
}

// palette colors any cell whose full text equals a key of the mapping.
// The mapping is supplied by the caller and passed through untouched.
type palette map[string]*color.Color

func newPalette(mapping map[string]string) palette {
	p := make(palette, len(mapping))
	for value, name := range mapping {
		c := LookupColor(name)
		if c == nil {
			log.Warn().Str("value", value).Str("color", name).Msg("unknown color, leaving cell uncolored")
			continue
		}
		p[value] = c
	}
	return p
}

func (p palette) paint(value string) string {
	if c, ok := p[value]; ok {
		return c.Sprint(value)
	}
	return value
}
