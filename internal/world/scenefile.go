package world

import (
	"encoding/json"
	"fmt"
	"os"

	"exhibit3d/internal/components"
	"exhibit3d/internal/engine"
	"exhibit3d/internal/palette"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Name    string      `json:"name,omitempty"`
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	UID        uint64            `json:"uid,omitempty"`
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Active     *bool             `json:"active,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type modelRendererDef struct {
	Type     string    `json:"type"`
	Mesh     string    `json:"mesh,omitempty"`
	MeshSize []float32 `json:"meshSize,omitempty"`
	Color    string    `json:"color"`
	Emission string    `json:"emission,omitempty"`
}

type labelDef struct {
	Type     string      `json:"type"`
	Text     string      `json:"text"`
	FontSize int32       `json:"fontSize,omitempty"`
	Color    string      `json:"color,omitempty"`
	Align    string      `json:"align,omitempty"`
	Offset   *[3]float32 `json:"offset,omitempty"`
}

type scriptDef struct {
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

var alignByName = map[string]components.TextAlignment{
	"left":   components.TextAlignLeft,
	"center": components.TextAlignCenter,
	"right":  components.TextAlignRight,
}

func alignName(a components.TextAlignment) string {
	for name, v := range alignByName {
		if v == a {
			return name
		}
	}
	return "center"
}

func vec(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func arr(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// --- Loading ---

// ParseScene decodes a scene file and builds its game objects. Nothing
// here touches the graphics context; meshes are created on first draw.
func ParseScene(data []byte) (*engine.Scene, error) {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	name := sf.Name
	if name == "" {
		name = "Main"
	}
	scene := engine.NewScene(name)

	// Reserve file UIDs first so objects created below can't take them
	for _, objDef := range sf.Objects {
		engine.EnsureUIDAbove(objDef.UID)
	}

	for _, objDef := range sf.Objects {
		g := engine.NewGameObject(objDef.Name)
		if objDef.UID != 0 {
			if scene.FindByUID(objDef.UID) != nil {
				return nil, fmt.Errorf("parse scene: duplicate uid %d (%s)", objDef.UID, objDef.Name)
			}
			g.UID = objDef.UID
		}
		g.Tags = objDef.Tags
		if objDef.Active != nil {
			g.Active = *objDef.Active
		}
		g.Transform.Position = vec(objDef.Position)
		g.Transform.Rotation = vec(objDef.Rotation)

		// Default scale to 1 if zero
		if objDef.Scale != [3]float32{} {
			g.Transform.Scale = vec(objDef.Scale)
		}

		for i, raw := range objDef.Components {
			var header componentHeader
			if err := json.Unmarshal(raw, &header); err != nil {
				fmt.Printf("Scene: %s component %d: %v\n", objDef.Name, i, err)
				continue
			}

			switch header.Type {
			case "ModelRenderer":
				loadModelRenderer(g, raw)
			case "Label":
				loadLabel(g, raw)
			case "Script":
				loadScript(g, raw)
			default:
				fmt.Printf("Scene: %s: unknown component type %q\n", objDef.Name, header.Type)
			}
		}

		scene.AddGameObject(g)
	}

	return scene, nil
}

func parseColorOr(owner, field, s string, fallback rl.Color) rl.Color {
	if s == "" {
		return fallback
	}
	c, err := palette.ParseRL(s)
	if err != nil {
		fmt.Printf("Scene: %s %s: %v\n", owner, field, err)
		return fallback
	}
	return c
}

func loadModelRenderer(g *engine.GameObject, raw json.RawMessage) {
	var def modelRendererDef
	if err := json.Unmarshal(raw, &def); err != nil {
		fmt.Printf("Scene: %s ModelRenderer: %v\n", g.Name, err)
		return
	}

	mesh := def.Mesh
	if mesh == "" {
		mesh = "cube"
	}
	renderer := components.NewModelRenderer(mesh, def.MeshSize, parseColorOr(g.Name, "color", def.Color, rl.White))
	renderer.Emission = parseColorOr(g.Name, "emission", def.Emission, rl.Black)
	g.AddComponent(renderer)
}

func loadLabel(g *engine.GameObject, raw json.RawMessage) {
	var def labelDef
	if err := json.Unmarshal(raw, &def); err != nil {
		fmt.Printf("Scene: %s Label: %v\n", g.Name, err)
		return
	}

	label := components.NewLabel(def.Text)
	if def.FontSize > 0 {
		label.FontSize = def.FontSize
	}
	label.Color = parseColorOr(g.Name, "label color", def.Color, label.Color)
	if a, ok := alignByName[def.Align]; ok {
		label.Alignment = a
	}
	if def.Offset != nil {
		label.Offset = vec(*def.Offset)
	}
	g.AddComponent(label)
}

func loadScript(g *engine.GameObject, raw json.RawMessage) {
	var def scriptDef
	if err := json.Unmarshal(raw, &def); err != nil {
		fmt.Printf("Scene: %s Script: %v\n", g.Name, err)
		return
	}
	if comp := engine.CreateScript(def.Name, def.Props); comp != nil {
		g.AddComponent(comp)
	} else {
		fmt.Printf("Scene: %s: unknown script %q\n", g.Name, def.Name)
	}
}

// --- Saving ---

// MarshalScene encodes the scene back to the file format.
func MarshalScene(scene *engine.Scene) ([]byte, error) {
	sf := SceneFile{Name: scene.Name}

	for _, g := range scene.GameObjects {
		objDef := ObjectDef{
			UID:      g.UID,
			Name:     g.Name,
			Tags:     g.Tags,
			Position: arr(g.Transform.Position),
			Rotation: arr(g.Transform.Rotation),
			Scale:    arr(g.Transform.Scale),
		}
		if !g.Active {
			inactive := false
			objDef.Active = &inactive
		}

		for _, c := range g.Components() {
			if raw := serializeComponent(c); raw != nil {
				objDef.Components = append(objDef.Components, raw)
			}
		}

		sf.Objects = append(sf.Objects, objDef)
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal scene: %w", err)
	}
	return data, nil
}

func serializeComponent(c engine.Component) json.RawMessage {
	var def any

	switch comp := c.(type) {
	case *components.ModelRenderer:
		d := modelRendererDef{
			Type:     "ModelRenderer",
			Mesh:     comp.Mesh,
			MeshSize: comp.MeshSize,
			Color:    palette.FormatRL(comp.Color),
		}
		if comp.Emission != rl.Black {
			d.Emission = palette.FormatRL(comp.Emission)
		}
		def = d

	case *components.Label:
		offset := arr(comp.Offset)
		def = labelDef{
			Type:     "Label",
			Text:     comp.Text,
			FontSize: comp.FontSize,
			Color:    palette.FormatRL(comp.Color),
			Align:    alignName(comp.Alignment),
			Offset:   &offset,
		}

	default:
		// Try script registry
		if name, props, ok := engine.SerializeScript(c); ok {
			def = scriptDef{Type: "Script", Name: name, Props: props}
		} else {
			return nil
		}
	}

	data, err := json.Marshal(def)
	if err != nil {
		return nil
	}
	return data
}

// LoadScene reads a scene file from disk.
func LoadScene(path string) (*engine.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return ParseScene(data)
}

// SaveScene writes the scene to path.
func SaveScene(scene *engine.Scene, path string) error {
	data, err := MarshalScene(scene)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}
