package engine

// GameObjectRef is a serializable reference to a GameObject by UID.
// Scene files store it as a plain number; zero means "none".
type GameObjectRef struct {
	UID uint64
}

// Get resolves the reference. Returns nil if the reference is empty or the
// object is not in the scene.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// Resolve returns the referenced object, or fallback when the reference is
// empty or broken.
func (r GameObjectRef) Resolve(scene *Scene, fallback *GameObject) *GameObject {
	if g := r.Get(scene); g != nil {
		return g
	}
	return fallback
}

// IsValid reports whether the reference points at something. It does not
// check that the object still exists.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

// Set points the reference at g. Pass nil to clear it.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}
