package scripts

import (
	"fmt"
	"math/rand"

	"exhibit3d/internal/components"
	"exhibit3d/internal/cycle"
	"exhibit3d/internal/easing"
	"exhibit3d/internal/engine"
	"exhibit3d/internal/palette"
)

// Transition describes a color change between two palette indices.
type Transition struct {
	From, To int
}

// ColorCycler fades its object's ModelRenderer through a palette.
// The cycling state is created on Start and dropped on Stop.
type ColorCycler struct {
	engine.BaseComponent

	Palette      palette.Palette
	Interval     float32
	Duration     float32
	Loop         bool
	Random       bool
	FadeEmission bool
	Preset       easing.Preset
	Keys         []easing.Keyframe // custom curve, overrides Preset when set
	Seed         int64             // 0 picks a random seed

	OnTransitionStart    engine.EventWithArg[Transition]
	OnTransitionComplete engine.EventWithArg[int]

	interp   *cycle.Interpolator
	renderer *components.ModelRenderer
}

func NewColorCycler(p palette.Palette) *ColorCycler {
	cfg := cycle.DefaultConfig()
	return &ColorCycler{
		Palette:      p,
		Interval:     cfg.Interval,
		Duration:     cfg.Duration,
		Loop:         cfg.Loop,
		FadeEmission: cfg.FadeEmission,
		Preset:       easing.DefaultPreset,
	}
}

func (c *ColorCycler) curve() easing.Curve {
	if len(c.Keys) > 0 {
		return easing.NewKeyframeCurve(c.Keys...)
	}
	return c.Preset.Curve()
}

func (c *ColorCycler) Start() {
	g := c.GetGameObject()
	name := "<detached>"
	if g != nil {
		name = g.Name
		c.renderer = engine.GetComponent[*components.ModelRenderer](g)
	}
	if c.renderer == nil {
		fmt.Printf("ColorCycler: '%s' has no ModelRenderer, colors will not be shown\n", name)
	}
	if len(c.Palette) < 2 {
		fmt.Printf("ColorCycler: '%s' has %d colors, cycling disabled\n", name, len(c.Palette))
	}

	var opts []cycle.Option
	if c.Seed != 0 {
		opts = append(opts, cycle.WithRand(rand.New(rand.NewSource(c.Seed))))
	}
	c.interp = cycle.New(c.Palette, cycle.Config{
		Interval:     c.Interval,
		Duration:     c.Duration,
		Loop:         c.Loop,
		Random:       c.Random,
		FadeEmission: c.FadeEmission,
		Curve:        c.curve(),
	}, opts...)

	// Keep the exported fields in step with the clamped values
	c.Interval = c.interp.Config().Interval
	c.Duration = c.interp.Config().Duration

	c.interp.OnTransitionStart = func(from, to int) {
		c.OnTransitionStart.Invoke(Transition{From: from, To: to})
	}
	c.interp.OnTransitionComplete = func(index int) {
		c.OnTransitionComplete.Invoke(index)
	}

	if len(c.Palette) > 0 {
		c.apply(c.interp.Value(), true)
	}
}

func (c *ColorCycler) Update(deltaTime float32) {
	if c.interp == nil {
		return
	}
	wasTransitioning := c.interp.Transitioning()
	c.interp.Tick(deltaTime)
	if wasTransitioning || c.interp.Transitioning() {
		c.apply(c.interp.Value(), c.FadeEmission)
	}
}

// Stop discards the cycling state.
func (c *ColorCycler) Stop() {
	c.interp = nil
	c.renderer = nil
}

func (c *ColorCycler) apply(v palette.Swatch, withEmission bool) {
	if c.renderer == nil {
		return
	}
	c.renderer.SetColor(v.RL())
	if withEmission && v.HasEmission {
		c.renderer.SetEmission(v.EmissionRL())
	}
}

// ForceNext starts the next transition right away. It reports false when a
// transition is already running or cycling is disabled.
func (c *ColorCycler) ForceNext() bool {
	if c.interp == nil {
		return false
	}
	return c.interp.ForceAdvance()
}

// Interpolator exposes the running state machine, nil before Start.
func (c *ColorCycler) Interpolator() *cycle.Interpolator {
	return c.interp
}

func (c *ColorCycler) SetInterval(seconds float32) {
	c.Interval = max(seconds, 0)
	if c.interp != nil {
		c.interp.SetInterval(seconds)
	}
}

func (c *ColorCycler) SetTransitionDuration(seconds float32) {
	c.Duration = max(seconds, cycle.MinTransitionDuration)
	if c.interp != nil {
		c.interp.SetTransitionDuration(seconds)
	}
}

func (c *ColorCycler) SetLoop(loop bool) {
	c.Loop = loop
	if c.interp != nil {
		c.interp.SetLoop(loop)
	}
}

func (c *ColorCycler) SetRandom(random bool) {
	c.Random = random
	if c.interp != nil {
		c.interp.SetRandom(random)
	}
}

func (c *ColorCycler) SetFadeEmission(fade bool) {
	c.FadeEmission = fade
	if c.interp != nil {
		c.interp.SetFadeEmission(fade)
	}
}

// SetPreset rebuilds the curve from a preset, discarding custom keys.
func (c *ColorCycler) SetPreset(p easing.Preset) {
	c.Preset = p
	c.Keys = nil
	if c.interp != nil {
		c.interp.SetCurve(c.curve())
	}
}

// SetKeys installs a custom keyframe curve.
func (c *ColorCycler) SetKeys(keys []easing.Keyframe) {
	c.Keys = keys
	if c.interp != nil {
		c.interp.SetCurve(c.curve())
	}
}

func init() {
	engine.RegisterScriptWithApplier("ColorCycler", colorCyclerFactory, colorCyclerSerializer, colorCyclerApplier)
}

func colorCyclerFactory(props engine.Props) engine.Component {
	p, err := paletteProp(props, "palette")
	if err != nil {
		fmt.Printf("ColorCycler: %v\n", err)
	}

	c := NewColorCycler(p)
	c.Interval = max(props.Float("interval", c.Interval), 0)
	c.Duration = max(props.Float("duration", c.Duration), cycle.MinTransitionDuration)
	c.Loop = props.Bool("loop", c.Loop)
	c.Random = props.Bool("random", c.Random)
	c.FadeEmission = props.Bool("fadeEmission", c.FadeEmission)
	c.Seed = int64(props.Float("seed", 0))

	if name := props.String("preset", ""); name != "" {
		preset, err := easing.ParsePreset(name)
		if err != nil {
			fmt.Printf("ColorCycler: %v, using %s\n", err, preset)
		}
		c.Preset = preset
	}

	keys, err := curveProp(props, "curve")
	if err != nil {
		fmt.Printf("ColorCycler: %v, using preset %s\n", err, c.Preset)
	}
	c.Keys = keys

	return c
}

func colorCyclerSerializer(comp engine.Component) map[string]any {
	c, ok := comp.(*ColorCycler)
	if !ok {
		return nil
	}
	props := map[string]any{
		"palette":      c.Palette.Entries(),
		"interval":     c.Interval,
		"duration":     c.Duration,
		"loop":         c.Loop,
		"random":       c.Random,
		"fadeEmission": c.FadeEmission,
		"preset":       c.Preset.String(),
	}
	if len(c.Keys) > 0 {
		props["curve"] = curveRows(c.Keys)
	}
	if c.Seed != 0 {
		props["seed"] = c.Seed
	}
	return props
}

func colorCyclerApplier(comp engine.Component, propName string, value any) bool {
	c, ok := comp.(*ColorCycler)
	if !ok {
		return false
	}
	switch propName {
	case "interval":
		if v, ok := engine.ToFloat(value); ok {
			c.SetInterval(v)
			return true
		}
	case "duration":
		if v, ok := engine.ToFloat(value); ok {
			c.SetTransitionDuration(v)
			return true
		}
	case "loop":
		if v, ok := value.(bool); ok {
			c.SetLoop(v)
			return true
		}
	case "random":
		if v, ok := value.(bool); ok {
			c.SetRandom(v)
			return true
		}
	case "fadeEmission":
		if v, ok := value.(bool); ok {
			c.SetFadeEmission(v)
			return true
		}
	case "preset":
		if p, ok := presetValue(value); ok {
			c.SetPreset(p)
			return true
		}
	}
	return false
}
