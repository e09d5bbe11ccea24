package game

import (
	"fmt"
	"math"
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/spacehole-rogue/starmap/internal/geom"
	"github.com/spacehole-rogue/starmap/internal/indicator"
	"github.com/spacehole-rogue/starmap/internal/log"
	"github.com/spacehole-rogue/starmap/internal/world"
)

const (
	cameraFOV     = 60
	navLogSize    = 40
	navLogWidth   = 48
	defaultIcon   = "star"
	pickRadius    = 18
	panelFraction = 0.6
)

// StarMap is the star-map scene: the catalog's stars as ECS entities, the
// camera rig flying among them, and one indicator controller per tracked
// star.
type StarMap struct {
	ECS      *ecs.World
	Catalog  *world.Catalog
	Rig      *CameraRig
	Viewport *indicator.ScreenViewport
	Panel    *world.Panel
	Log      *NavLog
	Ticks    uint64

	// Settings and Prefab configure new indicators.
	Settings indicator.Settings
	Prefab   indicator.Prefab

	lg       *log.Logger
	stars    map[string]ecs.Entity
	bodies   *ecs.Map[StarBody]
	infos    *ecs.Map[StarInfo]
	filter   *ecs.Filter2[StarBody, StarInfo]
	tracked  map[string]*indicator.Controller
	unit     indicator.DistanceUnit
	usePanel bool
}

// NewStarMap builds the scene for a w x h screen. The camera starts at
// the origin looking along +Z.
func NewStarMap(cat *world.Catalog, settings indicator.Settings, prefab indicator.Prefab, w, h float64, lg *log.Logger) *StarMap {
	ecsWorld := ecs.NewWorld(256)
	mapper := ecs.NewMap2[StarBody, StarInfo](ecsWorld)

	stars := make(map[string]ecs.Entity, len(cat.Stars))
	for _, s := range cat.Stars {
		stars[s.Name] = mapper.NewEntity(
			&StarBody{Pos: s.Position()},
			&StarInfo{Name: s.Name, Class: s.Class, Magnitude: s.Magnitude},
		)
	}

	m := &StarMap{
		ECS:      ecsWorld,
		Catalog:  cat,
		Rig:      NewCameraRig(world.NewCamera(geom.Vec3{}, cameraFOV, w, h)),
		Viewport: indicator.SharedViewport(),
		Panel:    &world.Panel{},
		Log:      NewNavLog(navLogSize, navLogWidth),
		Settings: settings,
		Prefab:   prefab,
		lg:       lg,
		stars:    stars,
		bodies:   ecs.NewMap[StarBody](ecsWorld),
		infos:    ecs.NewMap[StarInfo](ecsWorld),
		filter:   ecs.NewFilter2[StarBody, StarInfo](ecsWorld),
		tracked:  make(map[string]*indicator.Controller),
		unit:     settings.Unit(),
	}
	m.Resize(w, h)

	m.Log.Add(0, fmt.Sprintf("Nav computer online. %d stars in %s.", len(stars), cat.Name), NavInfo)
	m.Log.Add(0, "Click a star to track it.", NavInfo)
	lg.Info("star map ready", "catalog", cat.Name, "stars", len(stars))
	return m
}

// Resize follows the window layout: camera, viewport and the scope panel.
func (m *StarMap) Resize(w, h float64) {
	m.Rig.Cam.Resize(w, h)
	m.Viewport.Resize(w, h)
	pw, ph := w*panelFraction, h*panelFraction
	*m.Panel = world.Panel{X: (w - pw) / 2, Y: (h - ph) / 2, W: pw, H: ph}
}

// starTarget is the indicator target for a star entity. It reports
// destroyed once the entity has been removed from the world.
type starTarget struct {
	m *StarMap
	e ecs.Entity
}

func (t starTarget) Position() geom.Vec3 {
	if !t.m.ECS.Alive(t.e) {
		return geom.Vec3{}
	}
	return t.m.bodies.Get(t.e).Pos
}

func (t starTarget) Destroyed() bool { return !t.m.ECS.Alive(t.e) }

// Track attaches an indicator to the named star.
func (m *StarMap) Track(name string) error {
	e, ok := m.stars[name]
	if !ok {
		return fmt.Errorf("%s: no such star", name)
	}
	if c, ok := m.tracked[name]; ok {
		if c.State() == indicator.StateActive {
			return nil
		}
		// Still fading out from an earlier untrack.
		c.Destroy()
		delete(m.tracked, name)
	}

	c := indicator.NewController(m.Rig, m.lg.With("star", name))
	m.Settings.Apply(c)
	c.Camera = m.Rig.Cam
	c.Viewport = m.Viewport
	c.Prefab = m.Prefab
	c.DistanceUnit = m.unit
	if c.Icon == "" {
		c.Icon = defaultIcon
	}
	c.SetTarget(starTarget{m: m, e: e})
	if m.usePanel {
		c.SetRectBoundary(m.Panel)
	}
	c.Enable()
	if c.State() != indicator.StateActive {
		c.Destroy()
		return fmt.Errorf("%s: indicator did not start (%s)", name, c.State())
	}

	m.tracked[name] = c
	m.Log.Add(m.Ticks, fmt.Sprintf("Tracking %s.", name), NavAcquired)
	m.lg.Debug("tracking", "star", name)
	return nil
}

// Untrack fades the named star's indicator out. One that has not been
// drawn yet is released at once. It reports whether the star was being
// tracked.
func (m *StarMap) Untrack(name string) bool {
	c, ok := m.tracked[name]
	if !ok || c.State() != indicator.StateActive {
		return false
	}
	if c.View().Active() {
		c.Disable()
	} else {
		c.Destroy()
		delete(m.tracked, name)
	}
	m.Log.Add(m.Ticks, fmt.Sprintf("Released %s.", name), NavLost)
	return true
}

// ToggleTrack tracks an untracked star and untracks a tracked one.
func (m *StarMap) ToggleTrack(name string) error {
	if m.IsTracked(name) {
		m.Untrack(name)
		return nil
	}
	return m.Track(name)
}

// IsTracked reports whether the star has an active indicator.
func (m *StarMap) IsTracked(name string) bool {
	c, ok := m.tracked[name]
	return ok && c.State() == indicator.StateActive
}

// Controller returns the indicator controller for a star, if any.
func (m *StarMap) Controller(name string) *indicator.Controller {
	return m.tracked[name]
}

// Tracked returns the names of stars with a controller, sorted.
func (m *StarMap) Tracked() []string {
	names := make([]string, 0, len(m.tracked))
	for n := range m.tracked {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// RemoveStar deletes a star from the scene. Its indicator, if any, fades
// out.
func (m *StarMap) RemoveStar(name string) bool {
	e, ok := m.stars[name]
	if !ok {
		return false
	}
	m.Untrack(name)
	m.ECS.RemoveEntity(e)
	delete(m.stars, name)
	m.Log.Add(m.Ticks, fmt.Sprintf("Lost contact with %s.", name), NavWarning)
	return true
}

// TogglePanelBoundary switches every indicator between the full screen
// and the scope panel as its boundary. It returns the new mode.
func (m *StarMap) TogglePanelBoundary() bool {
	m.usePanel = !m.usePanel
	for _, c := range m.tracked {
		if m.usePanel {
			c.SetRectBoundary(m.Panel)
		} else {
			c.SetRectBoundary(nil)
		}
	}
	return m.usePanel
}

// PanelBoundary reports whether indicators are confined to the panel.
func (m *StarMap) PanelBoundary() bool { return m.usePanel }

// CycleUnit steps the distance unit of every indicator through metric,
// imperial and none.
func (m *StarMap) CycleUnit() indicator.DistanceUnit {
	switch m.unit {
	case indicator.UnitMetric:
		m.unit = indicator.UnitImperial
	case indicator.UnitImperial:
		m.unit = indicator.UnitNone
	default:
		m.unit = indicator.UnitMetric
	}
	for _, c := range m.tracked {
		c.SetDistanceUnit(m.unit)
	}
	m.Log.Add(m.Ticks, fmt.Sprintf("Range display: %s.", m.unit), NavInfo)
	return m.unit
}

func (m *StarMap) Unit() indicator.DistanceUnit { return m.unit }

// Tick advances the scene by one frame of dt seconds. Controllers that
// finished fading out are destroyed.
func (m *StarMap) Tick(dt float64) {
	m.Ticks++
	m.Rig.Tick()
	for name, c := range m.tracked {
		c.Update(dt)
		if c.State() == indicator.StateInactive {
			c.Destroy()
			delete(m.tracked, name)
			m.lg.Debug("indicator released", "star", name)
		}
	}
}

// ProjectedStar is a star as seen from the camera this frame.
type ProjectedStar struct {
	Name      string
	Class     world.SpectralClass
	Magnitude float64
	Screen    geom.Vec2
	Depth     float64 // negative behind the camera
	Distance  float64 // meters from the camera
	Tracked   bool
}

// Project returns every star projected through the camera.
func (m *StarMap) Project() []ProjectedStar {
	cam := m.Rig.Cam
	out := make([]ProjectedStar, 0, len(m.stars))
	q := m.filter.Query()
	for q.Next() {
		body, info := q.Get()
		p := cam.WorldToScreen(body.Pos)
		out = append(out, ProjectedStar{
			Name:      info.Name,
			Class:     info.Class,
			Magnitude: info.Magnitude,
			Screen:    p.XY(),
			Depth:     p.Z,
			Distance:  body.Pos.Sub(cam.Pos).Length(),
			Tracked:   m.IsTracked(info.Name),
		})
	}
	return out
}

// StarAt returns the star nearest to screen point (x, y) within the pick
// radius, ignoring stars behind the camera.
func (m *StarMap) StarAt(x, y float64) (string, bool) {
	best, bestD := "", math.Inf(1)
	at := geom.V2(x, y)
	for _, s := range m.Project() {
		if s.Depth <= 0 {
			continue
		}
		if d := s.Screen.Sub(at).Length(); d <= pickRadius && d < bestD {
			best, bestD = s.Name, d
		}
	}
	return best, best != ""
}

// Info returns the catalog data of a star.
func (m *StarMap) Info(name string) (StarInfo, bool) {
	e, ok := m.stars[name]
	if !ok {
		return StarInfo{}, false
	}
	return *m.infos.Get(e), true
}
