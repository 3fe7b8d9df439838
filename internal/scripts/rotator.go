package scripts

import (
	"strings"

	"exhibit3d/internal/engine"
)

// Rotator spins an object around one of its local axes.
type Rotator struct {
	engine.BaseComponent
	Speed float32 // degrees per second, negative spins the other way
	Axis  string  // "x", "y" or "z"
}

func (r *Rotator) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil {
		return
	}

	angle := &g.Transform.Rotation.Y
	switch r.Axis {
	case "x":
		angle = &g.Transform.Rotation.X
	case "z":
		angle = &g.Transform.Rotation.Z
	}

	*angle = wrapDegrees(*angle + r.Speed*deltaTime)
}

func wrapDegrees(a float32) float32 {
	for a >= 360 {
		a -= 360
	}
	for a < 0 {
		a += 360
	}
	return a
}

func init() {
	engine.RegisterScriptWithApplier("Rotator", rotatorFactory, rotatorSerializer, rotatorApplier)
}

func normalizeAxis(axis string) string {
	switch a := strings.ToLower(strings.TrimSpace(axis)); a {
	case "x", "z":
		return a
	}
	return "y"
}

func rotatorFactory(props engine.Props) engine.Component {
	return &Rotator{
		Speed: props.Float("speed", 10),
		Axis:  normalizeAxis(props.String("axis", "y")),
	}
}

func rotatorSerializer(c engine.Component) map[string]any {
	r, ok := c.(*Rotator)
	if !ok {
		return nil
	}
	return map[string]any{
		"speed": r.Speed,
		"axis":  r.Axis,
	}
}

func rotatorApplier(c engine.Component, propName string, value any) bool {
	r, ok := c.(*Rotator)
	if !ok {
		return false
	}
	switch propName {
	case "speed":
		if v, ok := engine.ToFloat(value); ok {
			r.Speed = v
			return true
		}
	case "axis":
		if v, ok := value.(string); ok {
			r.Axis = normalizeAxis(v)
			return true
		}
	}
	return false
}
