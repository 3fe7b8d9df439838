package scripts

import (
	"testing"

	"exhibit3d/internal/components"
	"exhibit3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const labProps = `{
	"labs": [
		{"name": "Robotics", "color": "#ff0000"},
		{"name": "Biotech", "color": "#00ff00"},
		{"name": "Optics", "color": "#0000ff"}
	],
	"interval": 1
}`

func TestLabCyclerCyclesNamesAndColors(t *testing.T) {
	g := engine.NewGameObject("LabCube")
	renderer := components.NewModelRenderer("cube", nil, rl.White)
	label := components.NewLabel("")
	g.AddComponent(renderer)
	g.AddComponent(label)
	g.AddComponent(engine.CreateScript("LabCycler", sceneJSON(t, labProps)))
	g.Start()

	if label.Text != "Robotics" || renderer.Color != rl.NewColor(255, 0, 0, 255) {
		t.Fatalf("initial lab = %q %v, want Robotics red", label.Text, renderer.Color)
	}

	want := []string{"Biotech", "Optics", "Robotics", "Biotech"}
	for _, name := range want {
		step(g, 1)
		if label.Text != name {
			t.Fatalf("label = %q, want %q", label.Text, name)
		}
	}
	if renderer.Color != rl.NewColor(0, 255, 0, 255) {
		t.Errorf("color = %v, want green", renderer.Color)
	}
}

func TestLabCyclerReferencedLabel(t *testing.T) {
	scene := engine.NewScene("Exhibit")
	sign := engine.NewGameObject("Sign")
	label := components.NewLabel("")
	sign.AddComponent(label)
	scene.AddGameObject(sign)

	cube := engine.NewGameObject("LabCube")
	props := sceneJSON(t, labProps)
	props["label"] = float64(sign.UID)
	lc := engine.CreateScript("LabCycler", props).(*LabCycler)
	cube.AddComponent(lc)
	scene.AddGameObject(cube)
	scene.Start()

	if label.Text != "Robotics" {
		t.Errorf("referenced label = %q, want Robotics", label.Text)
	}

	step(cube, 1)
	if cur, ok := lc.Current(); !ok || cur.Name != "Biotech" {
		t.Errorf("current lab = %q, want Biotech", cur.Name)
	}
	if label.Text != "Biotech" {
		t.Errorf("referenced label = %q, want Biotech", label.Text)
	}

	_, saved, ok := engine.SerializeScript(lc)
	if !ok || saved["label"] != sign.UID {
		t.Errorf("label reference not serialized: %v", saved)
	}
}

func TestLabCyclerEmptyAndApplier(t *testing.T) {
	lc := engine.CreateScript("LabCycler", map[string]any{}).(*LabCycler)
	g := engine.NewGameObject("Empty")
	g.AddComponent(lc)
	g.Start()
	step(g, 3)

	if _, ok := lc.Current(); ok {
		t.Error("empty lab list should have no current lab")
	}

	if !engine.ApplyScriptProperty(lc, "interval", float64(4)) || lc.Interval != 4 {
		t.Error("interval applier failed")
	}
}
