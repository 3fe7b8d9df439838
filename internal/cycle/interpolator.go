// Package cycle advances a color between palette entries on a timer.
//
// An Interpolator is driven by Tick once per frame. It waits for the
// configured interval, then blends from the current color toward the next
// palette entry over the transition duration, shaped by an easing curve.
// Only one transition runs at a time and there is no cancellation.
package cycle

import (
	"math/rand"

	"exhibit3d/internal/easing"
	"exhibit3d/internal/palette"
)

// MinTransitionDuration keeps progress computation away from a zero divisor.
const MinTransitionDuration float32 = 0.01

// Config is the timing policy of an Interpolator.
type Config struct {
	Interval     float32 // seconds idle between transitions
	Duration     float32 // seconds per transition
	Loop         bool    // wrap to the first entry after the last
	Random       bool    // uniformly random order, never repeating the current entry
	FadeEmission bool    // blend emission alongside the base color
	Curve        easing.Curve
}

// DefaultConfig matches the exhibit's stock color changer.
func DefaultConfig() Config {
	return Config{
		Interval:     1.5,
		Duration:     0.75,
		Loop:         true,
		FadeEmission: true,
		Curve:        easing.DefaultPreset.Curve(),
	}
}

// Interpolator is the cycling state machine. Not safe for concurrent use;
// it lives on a single frame loop.
type Interpolator struct {
	palette palette.Palette
	cfg     Config
	rng     *rand.Rand

	current       int
	next          int
	waited        float32
	elapsed       float32
	progress      float32
	transitioning bool

	value palette.Swatch
	from  palette.Swatch
	to    palette.Swatch

	// OnTransitionStart fires when a transition toward next begins.
	OnTransitionStart func(from, to int)
	// OnTransitionComplete fires once the new index is committed.
	OnTransitionComplete func(index int)
}

// Option customizes an Interpolator at construction.
type Option func(*Interpolator)

// WithRand sets the random source used for random order.
func WithRand(r *rand.Rand) Option {
	return func(ip *Interpolator) {
		ip.rng = r
	}
}

// New creates an Interpolator showing the first palette entry.
func New(p palette.Palette, cfg Config, opts ...Option) *Interpolator {
	owned := make(palette.Palette, len(p))
	copy(owned, p)

	ip := &Interpolator{palette: owned}
	for _, opt := range opts {
		opt(ip)
	}
	if ip.rng == nil {
		ip.rng = rand.New(rand.NewSource(rand.Int63()))
	}

	ip.cfg = cfg
	ip.SetInterval(cfg.Interval)
	ip.SetTransitionDuration(cfg.Duration)
	if ip.cfg.Curve == nil {
		ip.cfg.Curve = easing.DefaultPreset.Curve()
	}

	if len(owned) > 0 {
		ip.value = owned[0]
	}
	return ip
}

// Tick is the per-frame entry point.
func (ip *Interpolator) Tick(deltaTime float32) {
	if ip.transitioning {
		ip.AdvanceTransition(deltaTime)
		return
	}
	if !ip.canAdvance() {
		return
	}

	ip.waited += deltaTime
	if ip.waited >= ip.cfg.Interval {
		ip.waited = 0
		ip.begin(ip.nextIndex())
	}
}

// AdvanceTransition moves an active transition forward by deltaTime.
// It does nothing while idle.
func (ip *Interpolator) AdvanceTransition(deltaTime float32) {
	if !ip.transitioning {
		return
	}

	if deltaTime > 0 {
		ip.elapsed += deltaTime
	}
	duration := max(ip.cfg.Duration, MinTransitionDuration)
	if ip.elapsed > duration {
		ip.elapsed = duration
	}
	ip.progress = easing.Clamp01(ip.elapsed / duration)

	if ip.progress >= 1 {
		ip.complete()
		return
	}

	eased := easing.Clamp01(ip.cfg.Curve.Evaluate(ip.progress))
	ip.value = ip.blend(eased)
}

// ForceAdvance starts a transition to the next entry immediately and
// resets the wait timer. It reports whether a transition was started;
// a running transition is never interrupted.
func (ip *Interpolator) ForceAdvance() bool {
	if ip.transitioning || !ip.canAdvance() {
		return false
	}
	ip.waited = 0
	ip.begin(ip.nextIndex())
	return true
}

func (ip *Interpolator) canAdvance() bool {
	n := len(ip.palette)
	if n < 2 {
		return false
	}
	return ip.cfg.Loop || ip.current != n-1
}

func (ip *Interpolator) nextIndex() int {
	n := len(ip.palette)
	if ip.cfg.Random {
		if n <= 1 {
			return ip.current
		}
		// Draw from n-1 slots and skip over the current index
		r := ip.rng.Intn(n - 1)
		if r >= ip.current {
			r++
		}
		return r
	}

	next := ip.current + 1
	if next >= n {
		if ip.cfg.Loop {
			return 0
		}
		return n - 1
	}
	return next
}

func (ip *Interpolator) begin(next int) {
	ip.next = next
	ip.elapsed = 0
	ip.progress = 0
	ip.transitioning = true
	ip.from = ip.value
	ip.to = ip.palette[next]

	if ip.OnTransitionStart != nil {
		ip.OnTransitionStart(ip.current, next)
	}
}

func (ip *Interpolator) complete() {
	ip.value = ip.blend(1)
	ip.current = ip.next
	ip.transitioning = false
	ip.elapsed = 0

	if ip.OnTransitionComplete != nil {
		ip.OnTransitionComplete(ip.current)
	}
}

func (ip *Interpolator) blend(t float32) palette.Swatch {
	v := palette.Lerp(ip.from, ip.to, float64(t))
	if t >= 1 {
		// Commit the target exactly
		v = ip.to
	}
	if !ip.cfg.FadeEmission {
		v.Emission = ip.from.Emission
		v.HasEmission = ip.from.HasEmission
	}
	return v
}

// Value is the currently displayed swatch.
func (ip *Interpolator) Value() palette.Swatch { return ip.value }

// Index is the committed palette index.
func (ip *Interpolator) Index() int { return ip.current }

// NextIndex is the target of the running transition, or the current
// index while idle.
func (ip *Interpolator) NextIndex() int {
	if ip.transitioning {
		return ip.next
	}
	return ip.current
}

// Transitioning reports whether a transition is running.
func (ip *Interpolator) Transitioning() bool { return ip.transitioning }

// Progress is the linear progress of the running transition in [0, 1].
func (ip *Interpolator) Progress() float32 { return ip.progress }

// Elapsed is the time spent in the running transition.
func (ip *Interpolator) Elapsed() float32 { return ip.elapsed }

// Waited is the time spent idle since the last transition.
func (ip *Interpolator) Waited() float32 { return ip.waited }

// Palette returns the owned palette. Callers must not modify it.
func (ip *Interpolator) Palette() palette.Palette { return ip.palette }

// Config returns the current timing policy.
func (ip *Interpolator) Config() Config { return ip.cfg }

// SetInterval changes the idle time between transitions. Negative values
// clamp to zero.
func (ip *Interpolator) SetInterval(seconds float32) {
	ip.cfg.Interval = max(seconds, 0)
}

// SetTransitionDuration changes the transition length, clamped to
// MinTransitionDuration.
func (ip *Interpolator) SetTransitionDuration(seconds float32) {
	ip.cfg.Duration = max(seconds, MinTransitionDuration)
}

func (ip *Interpolator) SetLoop(loop bool)         { ip.cfg.Loop = loop }
func (ip *Interpolator) SetRandom(random bool)     { ip.cfg.Random = random }
func (ip *Interpolator) SetFadeEmission(fade bool) { ip.cfg.FadeEmission = fade }

// SetCurve replaces the easing curve. A nil curve restores the default
// preset.
func (ip *Interpolator) SetCurve(c easing.Curve) {
	if c == nil {
		c = easing.DefaultPreset.Curve()
	}
	ip.cfg.Curve = c
}
