package exhibit

import (
	"fmt"

	"exhibit3d/internal/engine"
	"exhibit3d/internal/scripts"
	"exhibit3d/internal/settings"
)

func cyclerName(c *scripts.ColorCycler) string {
	if g := c.GetGameObject(); g != nil {
		return g.Name
	}
	return ""
}

// tuningOf captures the operator-adjustable settings of a cycler. Cyclers
// running a custom keyframe curve keep it: no preset is recorded.
func tuningOf(c *scripts.ColorCycler) settings.Tuning {
	t := settings.Tuning{
		Interval:     c.Interval,
		Duration:     c.Duration,
		Loop:         c.Loop,
		Random:       c.Random,
		FadeEmission: c.FadeEmission,
	}
	if len(c.Keys) == 0 {
		t.Preset = c.Preset.String()
	}
	return t
}

func applyTuning(c *scripts.ColorCycler, t settings.Tuning) {
	for prop, value := range t.Props() {
		if !engine.ApplyScriptProperty(c, prop, value) {
			fmt.Printf("Exhibit: '%s' rejected saved %s=%v\n", cyclerName(c), prop, value)
		}
	}
}

// restoreTunings applies saved tunings to every cycler in the scene and
// returns how many were restored.
func restoreTunings(scene *engine.Scene, store *settings.Store) int {
	restored := 0
	for _, c := range engine.FindComponents[*scripts.ColorCycler](scene) {
		t, ok, err := store.Load(cyclerName(c))
		if err != nil {
			fmt.Printf("Exhibit: %v\n", err)
			continue
		}
		if ok {
			applyTuning(c, t)
			restored++
		}
	}
	return restored
}

func saveTunings(scene *engine.Scene, store *settings.Store) error {
	for _, c := range engine.FindComponents[*scripts.ColorCycler](scene) {
		if err := store.Save(cyclerName(c), tuningOf(c)); err != nil {
			return err
		}
	}
	return nil
}
