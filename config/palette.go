package config

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultStyle is the style used when a requested style is unknown.
const DefaultStyle = "default"

// Color indices shared by the built-in widgets.
const (
	ColorBackground = iota
	ColorTitle
	ColorIdle
	ColorHover
	ColorPressed
	ColorBorder
	ColorText
	ColorAccent
)

func defaultColors() []Hex {
	return []Hex{
		{100, 100, 100, 200}, // background
		{60, 60, 60, 200},    // title
		{150, 150, 150, 255}, // idle
		{180, 180, 180, 255}, // hover
		{100, 100, 100, 255}, // pressed
		{0, 0, 0, 255},       // border
		{255, 255, 255, 255}, // text
		{33, 150, 243, 255},  // accent
	}
}

// Hex is a color written as "#rrggbb" or "#rrggbbaa".
type Hex color.RGBA

// ParseHex parses "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func ParseHex(s string) (Hex, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return Hex{}, fmt.Errorf("invalid color %q: want 6 or 8 hex digits", s)
	}
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Hex{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Hex{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *Hex) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHex(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*h = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (h Hex) MarshalYAML() (any, error) {
	return h.String(), nil
}

func (h Hex) String() string {
	if h.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", h.R, h.G, h.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", h.R, h.G, h.B, h.A)
}

// RGBA implements color.Color. Hex values are not premultiplied, so the
// conversion goes through color.NRGBA.
func (h Hex) RGBA() (r, g, b, a uint32) {
	return color.NRGBA(h).RGBA()
}

// Palette maps (index, style) pairs to colors. Widgets treat it as an
// opaque lookup.
type Palette struct {
	styles map[string][]color.Color
}

// NewPalette builds a palette from style definitions. The default style
// is always present.
func NewPalette(styles map[string]StyleConfig) *Palette {
	p := &Palette{styles: make(map[string][]color.Color)}
	for name, style := range styles {
		colors := make([]color.Color, len(style.Colors))
		for i, c := range style.Colors {
			colors[i] = c
		}
		p.styles[name] = colors
	}
	if len(p.styles[DefaultStyle]) == 0 {
		def := defaultColors()
		colors := make([]color.Color, len(def))
		for i, c := range def {
			colors[i] = c
		}
		p.styles[DefaultStyle] = colors
	}
	return p
}

// ColorForIndex returns color i of style. Unknown styles fall back to the
// default style; indices wrap around the style's color list.
func (p *Palette) ColorForIndex(i int, style string) color.Color {
	colors, ok := p.styles[style]
	if !ok || len(colors) == 0 {
		colors = p.styles[DefaultStyle]
	}
	i %= len(colors)
	if i < 0 {
		i += len(colors)
	}
	return colors[i]
}

// Styles returns the style names in sorted order.
func (p *Palette) Styles() []string {
	names := make([]string, 0, len(p.styles))
	for name := range p.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
