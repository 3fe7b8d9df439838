// Package easing maps normalized transition progress onto eased progress.
//
// Curves take a progress value in [0, 1] and return the eased value.
// Preset curves are built either from raylib's easing functions or from
// keyframes evaluated as cubic Hermite segments.
package easing

import "sort"

// Curve evaluates eased progress for a normalized progress value.
type Curve interface {
	Evaluate(t float32) float32
}

// Func adapts a plain function to the Curve interface.
type Func func(t float32) float32

func (f Func) Evaluate(t float32) float32 {
	return f(t)
}

// fromRaylib wraps a raylib easing function (t, begin, change, duration)
// into a normalized curve.
func fromRaylib(fn func(t, b, c, d float32) float32) Func {
	return func(t float32) float32 {
		return fn(Clamp01(t), 0, 1, 1)
	}
}

// Keyframe is a single key on a keyframe curve. Tangents are slopes
// (value per unit of time) on either side of the key.
type Keyframe struct {
	Time       float32
	Value      float32
	InTangent  float32
	OutTangent float32
}

// KeyframeCurve is a piecewise cubic Hermite curve through its keys.
// Inputs outside the key range clamp to the first or last key value.
type KeyframeCurve struct {
	Keys []Keyframe
}

// NewKeyframeCurve returns a curve with keys sorted by time.
func NewKeyframeCurve(keys ...Keyframe) *KeyframeCurve {
	sorted := make([]Keyframe, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})
	return &KeyframeCurve{Keys: sorted}
}

func (c *KeyframeCurve) Evaluate(t float32) float32 {
	n := len(c.Keys)
	switch {
	case n == 0:
		return Clamp01(t)
	case n == 1:
		return c.Keys[0].Value
	}

	if t <= c.Keys[0].Time {
		return c.Keys[0].Value
	}
	if t >= c.Keys[n-1].Time {
		return c.Keys[n-1].Value
	}

	// First key strictly after t; the segment is [i-1, i]
	i := sort.Search(n, func(i int) bool { return c.Keys[i].Time > t })
	k0, k1 := c.Keys[i-1], c.Keys[i]

	span := k1.Time - k0.Time
	if span <= 0 {
		return k1.Value
	}
	s := (t - k0.Time) / span
	s2 := s * s
	s3 := s2 * s

	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2

	return h00*k0.Value + h10*k0.OutTangent*span + h01*k1.Value + h11*k1.InTangent*span
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
