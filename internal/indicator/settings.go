package indicator

import (
	"encoding/json"
	"fmt"
)

// Settings is the serializable part of a Controller's configuration.
// Scene references (target, camera, viewport, boundary, distance source)
// are wired in code.
type Settings struct {
	TrackAsUIElement    bool    `json:"track_as_ui_element"`
	HideWhenOnScreen    bool    `json:"hide_when_on_screen"`
	CheckDistance       float64 `json:"check_distance"`
	BorderOffset        float64 `json:"border_offset"`
	FadeDuration        float64 `json:"fade_duration"`
	TransitionEase      float64 `json:"transition_ease"`
	DistanceUnit        string  `json:"distance_unit"`
	DistanceFormat      string  `json:"distance_format"`
	DistanceFadeEnabled bool    `json:"distance_fade_enabled"`
	FadeStartDistance   float64 `json:"fade_start_distance"`
	FadeEndDistance     float64 `json:"fade_end_distance"`
	Icon                string  `json:"icon"`
	Scale               float64 `json:"scale"`

	unit DistanceUnit
}

// DefaultSettings are used by NewController.
func DefaultSettings() Settings {
	return Settings{
		CheckDistance:     10000,
		BorderOffset:      16,
		FadeDuration:      0.25,
		TransitionEase:    0.08,
		DistanceUnit:      "metric",
		DistanceFormat:    DefaultDistanceFormat,
		FadeStartDistance: 50,
		FadeEndDistance:   10,
		Scale:             1,
		unit:              UnitMetric,
	}
}

// LoadSettings parses indicator settings from JSON. Fields missing from
// the JSON keep their default values.
func LoadSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse indicator settings: %w", err)
	}
	unit, err := ParseDistanceUnit(s.DistanceUnit)
	if err != nil {
		return Settings{}, fmt.Errorf("parse indicator settings: %w", err)
	}
	s.unit = unit
	if s.CheckDistance <= 0 {
		return Settings{}, fmt.Errorf("check_distance (%g) must be positive", s.CheckDistance)
	}
	return s, nil
}

// Apply copies s into c.
func (s Settings) Apply(c *Controller) {
	c.TrackAsUIElement = s.TrackAsUIElement
	c.HideWhenOnScreen = s.HideWhenOnScreen
	c.CheckDistance = s.CheckDistance
	c.BorderOffset = s.BorderOffset
	c.FadeDuration = s.FadeDuration
	c.TransitionEase = s.TransitionEase
	c.DistanceUnit = s.unit
	c.DistanceFormat = s.DistanceFormat
	c.DistanceFadeEnabled = s.DistanceFadeEnabled
	c.FadeStartDistance = s.FadeStartDistance
	c.FadeEndDistance = s.FadeEndDistance
	c.Icon = s.Icon
	c.Scale = s.Scale
}

// Unit returns the parsed distance unit.
func (s Settings) Unit() DistanceUnit { return s.unit }
