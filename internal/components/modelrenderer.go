package components

import (
	"exhibit3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelRenderer draws a generated primitive mesh with a single owned
// material color. Cyclers write Color and Emission every frame; the mesh
// is created lazily on first draw so the component can exist without a
// graphics context.
type ModelRenderer struct {
	engine.BaseComponent
	Mesh     string    // "cube", "sphere", "plane" or "cylinder"
	MeshSize []float32 // per-mesh dimensions, see genMesh
	Color    rl.Color
	Emission rl.Color

	model  rl.Model
	loaded bool
}

func NewModelRenderer(mesh string, size []float32, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Mesh:     mesh,
		MeshSize: size,
		Color:    color,
		Emission: rl.Black,
	}
}

func (m *ModelRenderer) SetColor(c rl.Color) {
	m.Color = c
}

func (m *ModelRenderer) SetEmission(c rl.Color) {
	m.Emission = c
}

// DisplayColor is the base color with emission added on top, which is
// what the default shader can show of an emissive material.
func (m *ModelRenderer) DisplayColor() rl.Color {
	return rl.NewColor(
		addSat(m.Color.R, m.Emission.R),
		addSat(m.Color.G, m.Emission.G),
		addSat(m.Color.B, m.Emission.B),
		m.Color.A,
	)
}

func addSat(a, b uint8) uint8 {
	if s := int(a) + int(b); s < 255 {
		return uint8(s)
	}
	return 255
}

func (m *ModelRenderer) size(i int, fallback float32) float32 {
	if i < len(m.MeshSize) && m.MeshSize[i] > 0 {
		return m.MeshSize[i]
	}
	return fallback
}

func (m *ModelRenderer) genMesh() (rl.Mesh, bool) {
	switch m.Mesh {
	case "cube", "":
		return rl.GenMeshCube(m.size(0, 1), m.size(1, 1), m.size(2, 1)), true
	case "sphere":
		return rl.GenMeshSphere(m.size(0, 0.5), 24, 24), true
	case "plane":
		return rl.GenMeshPlane(m.size(0, 1), m.size(1, 1), 1, 1), true
	case "cylinder":
		return rl.GenMeshCylinder(m.size(0, 0.5), m.size(1, 1), 24), true
	}
	return rl.Mesh{}, false
}

func (m *ModelRenderer) ensureModel() bool {
	if m.loaded {
		return true
	}
	mesh, ok := m.genMesh()
	if !ok {
		return false
	}
	m.model = rl.LoadModelFromMesh(mesh)
	m.loaded = true
	return true
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active || !m.ensureModel() {
		return
	}

	m.model.Materials.Maps.Color = m.DisplayColor()
	if emission := m.model.Materials.GetMap(rl.MapEmission); emission != nil {
		emission.Color = m.Emission
	}

	scale := g.WorldScale()
	scaleMatrix := rl.MatrixScale(scale.X, scale.Y, scale.Z)

	rot := g.WorldRotation()
	rotX := rl.MatrixRotateX(rot.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(rot.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(rot.Z * rl.Deg2rad)
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	pos := g.WorldPosition()
	transMatrix := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)

	// scale -> rotate -> translate
	m.model.Transform = rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, rotMatrix), transMatrix)

	rl.DrawModel(m.model, rl.Vector3Zero(), 1.0, rl.White)
}

// Stop releases the GPU model.
func (m *ModelRenderer) Stop() {
	if m.loaded {
		rl.UnloadModel(m.model)
		m.loaded = false
	}
}
