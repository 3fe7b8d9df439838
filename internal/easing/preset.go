package easing

import (
	"fmt"
	"strings"

	"github.com/gen2brain/raylib-go/easings"
)

// Preset names a built-in curve shape.
type Preset int

const (
	EaseInOut Preset = iota
	Linear
	EaseIn
	EaseOut
	EaseInFastOutSlow
	Pulse
	Bounce
	Overshoot
)

// DefaultPreset is used when nothing else is configured.
const DefaultPreset = EaseInOut

var presetNames = map[Preset]string{
	EaseInOut:         "ease-in-out",
	Linear:            "linear",
	EaseIn:            "ease-in",
	EaseOut:           "ease-out",
	EaseInFastOutSlow: "ease-in-fast-out-slow",
	Pulse:             "pulse",
	Bounce:            "bounce",
	Overshoot:         "overshoot",
}

func (p Preset) String() string {
	if name, ok := presetNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Preset(%d)", int(p))
}

// Presets returns every preset in declaration order.
func Presets() []Preset {
	return []Preset{EaseInOut, Linear, EaseIn, EaseOut, EaseInFastOutSlow, Pulse, Bounce, Overshoot}
}

// ParsePreset accepts the canonical kebab-case name as well as
// CamelCase or snake_case spellings ("EaseInOut", "ease_in_out").
func ParsePreset(name string) (Preset, error) {
	key := normalizeName(name)
	for p, canonical := range presetNames {
		if normalizeName(canonical) == key {
			return p, nil
		}
	}
	return DefaultPreset, fmt.Errorf("unknown easing preset %q", name)
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

// Curve builds the curve for a preset. Unknown presets fall back to
// the default shape.
func (p Preset) Curve() Curve {
	switch p {
	case Linear:
		return fromRaylib(easings.LinearNone)
	case EaseIn:
		return fromRaylib(easings.QuadIn)
	case EaseOut:
		return fromRaylib(easings.QuadOut)
	case EaseInFastOutSlow:
		return NewKeyframeCurve(
			Keyframe{0, 0, 0, 3.5},
			Keyframe{0.6, 0.9, 0.5, 0.5},
			Keyframe{1, 1, 0, 0},
		)
	case Pulse:
		return NewKeyframeCurve(
			Keyframe{0, 0, 0, 4},
			Keyframe{0.2, 1, 0, 0},
			Keyframe{0.4, 0.1, 0, 0},
			Keyframe{0.6, 1, 0, 0},
			Keyframe{1, 0, 0, 0},
		)
	case Bounce:
		return NewKeyframeCurve(
			Keyframe{0, 0, 0, 6},
			Keyframe{0.55, 1.1, 0, 0},
			Keyframe{0.75, 0.92, 0, 0},
			Keyframe{0.88, 1.02, 0, 0},
			Keyframe{1, 1, 0, 0},
		)
	case Overshoot:
		return NewKeyframeCurve(
			Keyframe{0, 0, 0, 3},
			Keyframe{0.7, 1.1, 0, 0},
			Keyframe{1, 1, 0, 0},
		)
	default:
		return fromRaylib(easings.SineInOut)
	}
}
