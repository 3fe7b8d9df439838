// Package palette holds the ordered color targets that cyclers move between.
package palette

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
)

// Swatch is one palette entry: a base color with alpha and an optional
// emissive color.
type Swatch struct {
	Name        string
	Color       colorful.Color
	Alpha       float64
	Emission    colorful.Color
	HasEmission bool
}

// Palette is an ordered list of swatches. It is not modified after load.
type Palette []Swatch

// Names returns the swatch names in order.
func (p Palette) Names() []string {
	names := make([]string, len(p))
	for i, s := range p {
		names[i] = s.Name
	}
	return names
}

// Lerp blends a toward b in linear RGB. Alpha and emission move with the
// same factor; a side without emission counts as black.
func Lerp(a, b Swatch, t float64) Swatch {
	out := Swatch{
		Name:        b.Name,
		Color:       a.Color.BlendRgb(b.Color, t),
		Alpha:       a.Alpha + (b.Alpha-a.Alpha)*t,
		HasEmission: a.HasEmission || b.HasEmission,
	}
	if out.HasEmission {
		out.Emission = a.emission().BlendRgb(b.emission(), t)
	}
	return out
}

func (s Swatch) emission() colorful.Color {
	if !s.HasEmission {
		return colorful.Color{}
	}
	return s.Emission
}

// RL converts the base color to a raylib color.
func (s Swatch) RL() rl.Color {
	return toRL(s.Color, s.Alpha)
}

// EmissionRL converts the emissive color to a raylib color. Swatches
// without emission report black.
func (s Swatch) EmissionRL() rl.Color {
	return toRL(s.emission(), 1)
}

func toRL(c colorful.Color, alpha float64) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.NewColor(r, g, b, alphaByte(alpha))
}

func alphaByte(alpha float64) uint8 {
	if alpha <= 0 {
		return 0
	}
	if alpha >= 1 {
		return 255
	}
	return uint8(math.Round(alpha * 255))
}

// FromRL builds a swatch from a raylib color.
func FromRL(name string, c rl.Color) Swatch {
	return Swatch{
		Name:  name,
		Color: colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255},
		Alpha: float64(c.A) / 255,
	}
}

var colorByName = map[string]rl.Color{
	"red":       rl.Red,
	"blue":      rl.Blue,
	"green":     rl.Green,
	"purple":    rl.Purple,
	"orange":    rl.Orange,
	"yellow":    rl.Yellow,
	"pink":      rl.Pink,
	"skyblue":   rl.SkyBlue,
	"lime":      rl.Lime,
	"magenta":   rl.Magenta,
	"white":     rl.White,
	"lightgray": rl.LightGray,
	"gray":      rl.Gray,
	"darkgray":  rl.DarkGray,
	"black":     rl.Black,
	"brown":     rl.Brown,
	"beige":     rl.Beige,
	"maroon":    rl.Maroon,
	"gold":      rl.Gold,
	"darkblue":  rl.DarkBlue,
	"violet":    rl.Violet,
}

// ParseColor accepts "#rrggbb", "#rrggbbaa" or a raylib color name
// ("Red", "SkyBlue"). It returns the color and its alpha in [0, 1].
func ParseColor(s string) (colorful.Color, float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return colorful.Color{}, 0, fmt.Errorf("empty color")
	}

	if strings.HasPrefix(s, "#") {
		alpha := 1.0
		hex := s
		if len(s) == 9 {
			a, err := strconv.ParseUint(s[7:], 16, 8)
			if err != nil {
				return colorful.Color{}, 0, fmt.Errorf("parse alpha of %q: %w", s, err)
			}
			alpha = float64(a) / 255
			hex = s[:7]
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("parse color %q: %w", s, err)
		}
		return c, alpha, nil
	}

	if c, ok := colorByName[strings.ToLower(s)]; ok {
		sw := FromRL(s, c)
		return sw.Color, sw.Alpha, nil
	}
	return colorful.Color{}, 0, fmt.Errorf("unknown color %q", s)
}

// FormatColor is the inverse of ParseColor for hex output.
func FormatColor(c colorful.Color, alpha float64) string {
	hex := c.Clamped().Hex()
	if a := alphaByte(alpha); a != 255 {
		hex += fmt.Sprintf("%02x", a)
	}
	return hex
}

// Entry is the serialized form of a swatch used in scene props.
type Entry struct {
	Name     string `json:"name,omitempty"`
	Color    string `json:"color"`
	Emission string `json:"emission,omitempty"`
}

// Parse builds a palette from serialized entries.
func Parse(entries []Entry) (Palette, error) {
	p := make(Palette, 0, len(entries))
	for i, e := range entries {
		c, alpha, err := ParseColor(e.Color)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		sw := Swatch{Name: e.Name, Color: c, Alpha: alpha}
		if sw.Name == "" {
			sw.Name = e.Color
		}
		if e.Emission != "" {
			em, _, err := ParseColor(e.Emission)
			if err != nil {
				return nil, fmt.Errorf("palette entry %d emission: %w", i, err)
			}
			sw.Emission = em
			sw.HasEmission = true
		}
		p = append(p, sw)
	}
	return p, nil
}

// Entries converts the palette back to its serialized form.
func (p Palette) Entries() []Entry {
	entries := make([]Entry, len(p))
	for i, s := range p {
		entries[i] = Entry{Name: s.Name, Color: FormatColor(s.Color, s.Alpha)}
		if s.HasEmission {
			entries[i].Emission = FormatColor(s.Emission, 1)
		}
	}
	return entries
}

// ParseRL parses a color string straight to a raylib color.
func ParseRL(s string) (rl.Color, error) {
	c, alpha, err := ParseColor(s)
	if err != nil {
		return rl.Color{}, err
	}
	return toRL(c, alpha), nil
}

// FormatRL formats a raylib color as hex.
func FormatRL(c rl.Color) string {
	sw := FromRL("", c)
	return FormatColor(sw.Color, sw.Alpha)
}
