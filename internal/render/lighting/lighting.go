// Package lighting is the per-frame light pass: it owns the scene's lights
// and hulls, decides which hulls each light can shadow, rebuilds shadow
// meshes only for lights whose tracked attributes changed, and packs the
// shader uniforms.
package lighting

import (
	"github.com/google/uuid"

	"chosenoffset.com/lumen/internal/config"
	"chosenoffset.com/lumen/internal/core/hull"
	"chosenoffset.com/lumen/internal/core/light"
	"chosenoffset.com/lumen/internal/core/occluder"
	"chosenoffset.com/lumen/internal/core/shadows"
	"chosenoffset.com/lumen/internal/logging"
	"chosenoffset.com/lumen/internal/render"
)

// meshFlags are the light changes that invalidate its occluder list and mesh.
// Radius only affects the shader.
const meshFlags = light.DirtyPosition | light.DirtyRange | light.DirtyEnabled | light.DirtyCastsShadows

type entry struct {
	id    string
	light *light.Light

	built      bool
	shadowType light.ShadowType // untracked by the light, so compared here
	occluders  []occluder.Hull
	inside     bool
	mesh       shadows.Mesh
}

func (e *entry) reset() {
	e.built = false
	e.occluders = nil
	e.inside = false
	e.mesh = shadows.Mesh{}
}

// Manager handles all light sources and occluders in the scene
type Manager struct {
	cfg     config.LightingConfig
	log     logging.Logger
	metrics *Metrics

	entries []*entry
	byID    map[string]*entry

	hulls        []*hull.Hull
	hullsChanged bool

	ambientLight float64 // Global ambient light level (0.0 = pitch black, 1.0 = fully lit)
}

// NewManager creates a new lighting manager. metrics may be nil.
func NewManager(cfg config.LightingConfig, log logging.Logger, metrics *Metrics) *Manager {
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &Manager{
		cfg:          cfg,
		log:          log,
		metrics:      metrics,
		byID:         make(map[string]*entry),
		ambientLight: cfg.AmbientLight,
	}
}

// SetAmbientLight sets the global ambient light level
func (m *Manager) SetAmbientLight(level float64) {
	m.ambientLight = level
}

// AmbientLight returns the current ambient light level
func (m *Manager) AmbientLight() float64 {
	return m.ambientLight
}

// NewLight creates a light with the configured defaults. It is not added
// to the manager.
func (m *Manager) NewLight(texture render.Image) (*light.Light, error) {
	l := light.New(texture)
	// Range first: radius is checked against it.
	if err := l.SetRange(m.cfg.DefaultRange); err != nil {
		return nil, err
	}
	if err := l.SetRadius(m.cfg.DefaultRadius); err != nil {
		return nil, err
	}
	l.SetIntensity(m.cfg.DefaultIntensity)
	l.SetShadowType(m.cfg.Shadow())
	if c, err := m.cfg.Color(); err == nil {
		l.SetColor(c)
	}
	return l, nil
}

// AddLight registers l and returns its id.
func (m *Manager) AddLight(l *light.Light) string {
	e := &entry{id: uuid.NewString(), light: l}
	m.entries = append(m.entries, e)
	m.byID[e.id] = e
	m.log.Debugf("added light %s at (%.1f, %.1f) range=%.1f", e.id, l.Position()[0], l.Position()[1], l.Range())
	return e.id
}

// Light returns the light registered under id.
func (m *Manager) Light(id string) (*light.Light, bool) {
	e, ok := m.byID[id]
	if !ok {
		return nil, false
	}
	return e.light, true
}

// RemoveLight drops a light. Its texture is left alone.
func (m *Manager) RemoveLight(id string) bool {
	e, ok := m.byID[id]
	if !ok {
		return false
	}
	delete(m.byID, id)
	for i, other := range m.entries {
		if other == e {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			break
		}
	}
	return true
}

// Lights returns every registered light in insertion order.
func (m *Manager) Lights() []*light.Light {
	lights := make([]*light.Light, len(m.entries))
	for i, e := range m.entries {
		lights[i] = e.light
	}
	return lights
}

// IDs returns every light id in insertion order.
func (m *Manager) IDs() []string {
	ids := make([]string, len(m.entries))
	for i, e := range m.entries {
		ids[i] = e.id
	}
	return ids
}

// AddHull adds an occluder to the scene.
func (m *Manager) AddHull(h *hull.Hull) {
	m.hulls = append(m.hulls, h)
	m.hullsChanged = true
}

// RemoveHull removes an occluder from the scene.
func (m *Manager) RemoveHull(h *hull.Hull) bool {
	for i, other := range m.hulls {
		if other == h {
			m.hulls = append(m.hulls[:i], m.hulls[i+1:]...)
			m.hullsChanged = true
			return true
		}
	}
	return false
}

// Hulls returns the scene's occluders.
func (m *Manager) Hulls() []*hull.Hull {
	return m.hulls
}

// Update runs the culling pass. Call it once per frame after lights and
// hulls have been moved. It consumes and clears every light's and hull's
// dirty flags.
func (m *Manager) Update() {
	hullsChanged := m.hullsChanged
	for _, h := range m.hulls {
		if h.AnyDirty(hull.DirtyAll) {
			hullsChanged = true
		}
	}

	active := 0
	for _, e := range m.entries {
		l := e.light
		if !l.Enabled() {
			if e.built {
				e.reset()
			}
			l.ClearDirty(light.DirtyAll)
			continue
		}
		active++

		if !e.built || hullsChanged || l.AnyDirty(meshFlags) || e.shadowType != l.ShadowType() {
			m.rebuild(e)
		}
		l.ClearDirty(light.DirtyAll)
	}

	for _, h := range m.hulls {
		h.ClearDirty(hull.DirtyAll)
	}
	m.hullsChanged = false
	m.metrics.LightsActive.Set(float64(active))
}

// rebuild selects the hulls that can shadow e's light and regenerates its mesh.
func (m *Manager) rebuild(e *entry) {
	l := e.light
	bounds := l.BoundingRectangle()

	wasInside := e.inside
	e.occluders = nil
	e.inside = false

	for _, h := range m.hulls {
		if !h.Enabled() || !bounds.Overlaps(h.Bounds()) {
			continue
		}
		if l.IsInside(h) {
			e.inside = true
		}
		for _, part := range h.Parts() {
			m.metrics.OccluderTests.Inc()
			if part.Enabled() && l.Intersects(part) {
				e.occluders = append(e.occluders, h)
				m.metrics.OccludersSelected.Inc()
				break
			}
		}
	}

	if e.inside != wasInside {
		m.log.Debugf("light %s inside hull: %v", e.id, e.inside)
	}

	e.mesh = shadows.MeshFor(l, e.occluders)
	e.shadowType = l.ShadowType()
	e.built = true
	m.metrics.MeshRebuilds.Inc()
}

// Occluders returns the hulls selected for a light in the last Update.
func (m *Manager) Occluders(id string) []occluder.Hull {
	if e, ok := m.byID[id]; ok {
		return e.occluders
	}
	return nil
}

// Inside reports whether the light sat inside a hull at the last Update.
func (m *Manager) Inside(id string) bool {
	if e, ok := m.byID[id]; ok {
		return e.inside
	}
	return false
}

// Mesh returns the lit area computed for a light in the last Update.
func (m *Manager) Mesh(id string) (shadows.Mesh, bool) {
	e, ok := m.byID[id]
	if !ok || !e.built {
		return shadows.Mesh{}, false
	}
	return e.mesh, true
}

// Uniforms packs the enabled lights for the lighting shader. Positions are
// in screen space. Intensity and color are not dirty-tracked, so they are
// read fresh every call.
func (m *Manager) Uniforms(cameraX, cameraY float64) map[string]interface{} {
	var lightPositions [config.MaxShaderLights * 2]float32
	var lightProperties [config.MaxShaderLights * 4]float32
	var lightColors [config.MaxShaderLights * 4]float32

	maxLights := min(m.cfg.MaxLights, config.MaxShaderLights)

	n := 0
	for _, e := range m.entries {
		l := e.light
		if !l.Enabled() {
			continue
		}
		if n == maxLights {
			m.log.Debugf("more than %d enabled lights, dropping the rest from the shader", maxLights)
			break
		}

		pos := l.Position()
		lightPositions[n*2] = float32(pos[0] - cameraX)
		lightPositions[n*2+1] = float32(pos[1] - cameraY)

		lightProperties[n*4] = float32(l.Range())
		lightProperties[n*4+1] = float32(l.Radius())
		lightProperties[n*4+2] = float32(l.IntensityFactor())
		if l.CastsShadows() {
			lightProperties[n*4+3] = 1
		}

		c := l.Color()
		lightColors[n*4] = c.R
		lightColors[n*4+1] = c.G
		lightColors[n*4+2] = c.B
		lightColors[n*4+3] = c.A
		n++
	}

	return map[string]interface{}{
		"NumLights":       float32(n),
		"AmbientLight":    float32(m.ambientLight),
		"LightPositions":  lightPositions[:],
		"LightProperties": lightProperties[:],
		"LightColors":     lightColors[:],
	}
}
