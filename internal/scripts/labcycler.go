package scripts

import (
	"fmt"

	"exhibit3d/internal/components"
	"exhibit3d/internal/cycle"
	"exhibit3d/internal/easing"
	"exhibit3d/internal/engine"
	"exhibit3d/internal/palette"
)

// snap jumps straight to the target on the first progress step.
var snap = easing.Func(func(float32) float32 { return 1 })

// LabCycler steps through a list of labs, switching its object's color and
// a label's text at a fixed interval. The label defaults to one on the
// same object.
type LabCycler struct {
	engine.BaseComponent

	Labs     palette.Palette // swatch name is the lab name
	Interval float32
	Label    engine.GameObjectRef

	interp   *cycle.Interpolator
	renderer *components.ModelRenderer
	label    *components.Label
}

func NewLabCycler(labs palette.Palette) *LabCycler {
	return &LabCycler{Labs: labs, Interval: 1}
}

func (l *LabCycler) Start() {
	g := l.GetGameObject()
	if g == nil || len(l.Labs) == 0 {
		return
	}

	l.renderer = engine.GetComponent[*components.ModelRenderer](g)
	l.label = engine.GetComponent[*components.Label](l.Label.Resolve(g.Scene, g))
	if l.Label.IsValid() && l.label == nil {
		fmt.Printf("LabCycler: '%s' label reference is broken or has no Label component\n", g.Name)
	}

	l.interp = cycle.New(l.Labs, cycle.Config{
		Interval: l.Interval,
		Duration: cycle.MinTransitionDuration,
		Loop:     true,
		Curve:    snap,
	})
	l.interp.OnTransitionStart = func(_, to int) {
		l.show(l.Labs[to])
	}
	l.show(l.Labs[0])
}

func (l *LabCycler) Update(deltaTime float32) {
	if l.interp == nil {
		return
	}
	l.interp.Tick(deltaTime)
	// Labs switch on the frame the interval elapses
	if l.interp.Transitioning() {
		l.interp.AdvanceTransition(cycle.MinTransitionDuration)
	}
}

func (l *LabCycler) Stop() {
	l.interp = nil
	l.renderer = nil
	l.label = nil
}

func (l *LabCycler) show(lab palette.Swatch) {
	if l.label != nil {
		l.label.SetText(lab.Name)
	}
	if l.renderer != nil {
		l.renderer.SetColor(lab.RL())
	}
}

// Current returns the lab being shown, or false when there are none.
func (l *LabCycler) Current() (palette.Swatch, bool) {
	if l.interp == nil || len(l.Labs) == 0 {
		return palette.Swatch{}, false
	}
	return l.Labs[l.interp.NextIndex()], true
}

func (l *LabCycler) SetInterval(seconds float32) {
	l.Interval = max(seconds, 0)
	if l.interp != nil {
		l.interp.SetInterval(seconds)
	}
}

func init() {
	engine.RegisterScriptWithApplier("LabCycler", labCyclerFactory, labCyclerSerializer, labCyclerApplier)
}

func labCyclerFactory(props engine.Props) engine.Component {
	labs, err := paletteProp(props, "labs")
	if err != nil {
		fmt.Printf("LabCycler: %v\n", err)
	}
	l := NewLabCycler(labs)
	l.Interval = max(props.Float("interval", l.Interval), 0)
	l.Label.UID = props.UID("label")
	return l
}

func labCyclerSerializer(c engine.Component) map[string]any {
	l, ok := c.(*LabCycler)
	if !ok {
		return nil
	}
	props := map[string]any{
		"labs":     l.Labs.Entries(),
		"interval": l.Interval,
	}
	if l.Label.IsValid() {
		props["label"] = l.Label.UID
	}
	return props
}

func labCyclerApplier(c engine.Component, propName string, value any) bool {
	l, ok := c.(*LabCycler)
	if !ok {
		return false
	}
	if propName == "interval" {
		if v, ok := engine.ToFloat(value); ok {
			l.SetInterval(v)
			return true
		}
	}
	return false
}
