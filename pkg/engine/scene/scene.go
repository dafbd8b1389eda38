// Package scene is the visual-entity registry shared by the game logic and
// the rendering hosts. Game code spawns, moves and despawns visuals through
// opaque handles; hosts read the registry to draw a frame.
package scene

import (
	"image/color"
	"sort"
)

// Handle identifies a spawned visual. The zero handle is never issued.
type Handle uint64

// Kind describes how a host should present a visual.
type Kind int

const (
	KindSprite Kind = iota
	KindText
	KindTile
)

// Visual is a drawable element.
type Visual struct {
	Kind    Kind
	Tag     string // Role of the visual: "player", "textbox", "portrait", ...
	Texture string // Asset name, informational for hosts that draw sprites

	X, Y, Z float64
	W, H    float64
	FlipX   bool

	Color color.Color
	Text  string

	Anim *Animator
}

// Registry holds every live visual.
type Registry struct {
	next    Handle
	visuals map[Handle]*Visual
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{visuals: make(map[Handle]*Visual)}
}

// Spawn adds a visual and returns its handle.
func (r *Registry) Spawn(v Visual) Handle {
	r.next++
	vv := v
	r.visuals[r.next] = &vv
	return r.next
}

// Despawn removes a visual. Unknown handles are ignored.
func (r *Registry) Despawn(h Handle) {
	delete(r.visuals, h)
}

// Get returns the visual for a handle, or nil.
func (r *Registry) Get(h Handle) *Visual {
	return r.visuals[h]
}

// Move repositions a visual.
func (r *Registry) Move(h Handle, x, y float64, flipX bool) {
	if v := r.visuals[h]; v != nil {
		v.X, v.Y, v.FlipX = x, y, flipX
	}
}

// SetText replaces the text of a visual.
func (r *Registry) SetText(h Handle, s string) {
	if v := r.visuals[h]; v != nil {
		v.Text = s
	}
}

// Len returns the number of live visuals.
func (r *Registry) Len() int {
	return len(r.visuals)
}

// FindByTag returns the first visual (lowest handle) carrying the tag.
func (r *Registry) FindByTag(tag string) *Visual {
	var best Handle
	for h, v := range r.visuals {
		if v.Tag == tag && (best == 0 || h < best) {
			best = h
		}
	}
	if best == 0 {
		return nil
	}
	return r.visuals[best]
}

// CountByTag returns how many live visuals carry the tag.
func (r *Registry) CountByTag(tag string) int {
	n := 0
	for _, v := range r.visuals {
		if v.Tag == tag {
			n++
		}
	}
	return n
}

// Ordered returns the visuals sorted by depth, then by spawn order, the
// order a host draws them in.
func (r *Registry) Ordered() []*Visual {
	handles := make([]Handle, 0, len(r.visuals))
	for h := range r.visuals {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool {
		a, b := r.visuals[handles[i]], r.visuals[handles[j]]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return handles[i] < handles[j]
	})
	out := make([]*Visual, len(handles))
	for i, h := range handles {
		out[i] = r.visuals[h]
	}
	return out
}

// Animate advances every animation timer by one tick.
func (r *Registry) Animate() {
	for _, v := range r.visuals {
		if v.Anim != nil {
			v.Anim.Tick()
		}
	}
}
