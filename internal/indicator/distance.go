package indicator

import (
	"fmt"
	"strings"
)

// DistanceUnit selects how the distance label is written.
type DistanceUnit uint8

const (
	UnitNone DistanceUnit = iota
	UnitMetric
	UnitImperial
)

const (
	feetPerMeter = 3.28084
	feetPerMile  = 5280
	metersPerKm  = 1000

	// DefaultDistanceFormat writes e.g. "120m".
	DefaultDistanceFormat = "{value}{unit}"
)

func (u DistanceUnit) String() string {
	switch u {
	case UnitNone:
		return "none"
	case UnitMetric:
		return "metric"
	case UnitImperial:
		return "imperial"
	default:
		return "unknown"
	}
}

// ParseDistanceUnit accepts the names returned by String.
func ParseDistanceUnit(s string) (DistanceUnit, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return UnitNone, nil
	case "metric":
		return UnitMetric, nil
	case "imperial":
		return UnitImperial, nil
	default:
		return UnitNone, fmt.Errorf("%q: unknown distance unit", s)
	}
}

// FormatDistance writes meters in the given unit into format, replacing
// {value} and {unit}. Metric switches from m to km at 1000 m and imperial
// from ft to mi at 5280 ft; the larger unit gets one decimal. UnitNone
// gives the empty string.
func FormatDistance(meters float64, unit DistanceUnit, format string) string {
	var value, suffix string
	switch unit {
	case UnitMetric:
		if meters < metersPerKm {
			value, suffix = fmt.Sprintf("%.0f", meters), "m"
		} else {
			value, suffix = fmt.Sprintf("%.1f", meters/metersPerKm), "km"
		}
	case UnitImperial:
		feet := meters * feetPerMeter
		if feet < feetPerMile {
			value, suffix = fmt.Sprintf("%.0f", feet), "ft"
		} else {
			value, suffix = fmt.Sprintf("%.1f", feet/feetPerMile), "mi"
		}
	default:
		return ""
	}

	if format == "" {
		format = DefaultDistanceFormat
	}
	return strings.NewReplacer("{value}", value, "{unit}", suffix).Replace(format)
}

// distanceAlpha ramps linearly from 0 at fadeEnd to 1 at fadeStart.
func distanceAlpha(d, fadeStart, fadeEnd float64) float64 {
	if d <= fadeEnd {
		return 0
	}
	if d >= fadeStart {
		return 1
	}
	return (d - fadeEnd) / (fadeStart - fadeEnd)
}
