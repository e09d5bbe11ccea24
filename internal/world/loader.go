package world

import (
	"encoding/json"
	"fmt"

	"github.com/spacehole-rogue/starmap/internal/geom"
)

// Catalog is the JSON-serializable definition of a star field.
type Catalog struct {
	Name  string    `json:"name"`
	Stars []StarDef `json:"stars"`
}

// StarDef is one star in a catalog. Positions are in meters.
type StarDef struct {
	Name      string        `json:"name"`
	Class     SpectralClass `json:"class"`
	Pos       [3]float64    `json:"pos"`
	Magnitude float64       `json:"magnitude"`
}

// LoadCatalog parses a Catalog from JSON bytes.
func LoadCatalog(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse star catalog: %w", err)
	}
	if len(cat.Stars) == 0 {
		return nil, fmt.Errorf("star catalog %q has no stars", cat.Name)
	}
	seen := make(map[string]bool, len(cat.Stars))
	for i, s := range cat.Stars {
		if s.Name == "" {
			return nil, fmt.Errorf("star %d: missing name", i)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("%s: duplicate star name", s.Name)
		}
		seen[s.Name] = true
		if !s.Class.Valid() {
			return nil, fmt.Errorf("%s: unknown spectral class %q", s.Name, s.Class)
		}
	}
	return &cat, nil
}

// Position returns the star position as a vector.
func (s StarDef) Position() geom.Vec3 {
	return geom.V3(s.Pos[0], s.Pos[1], s.Pos[2])
}

// SpectralClass is the Morgan-Keenan class letter of a star.
type SpectralClass string

const (
	ClassO SpectralClass = "O"
	ClassB SpectralClass = "B"
	ClassA SpectralClass = "A"
	ClassF SpectralClass = "F"
	ClassG SpectralClass = "G"
	ClassK SpectralClass = "K"
	ClassM SpectralClass = "M"
)

func (c SpectralClass) Valid() bool {
	switch c {
	case ClassO, ClassB, ClassA, ClassF, ClassG, ClassK, ClassM:
		return true
	default:
		return false
	}
}

// Describe returns a short human-readable description of the class.
func (c SpectralClass) Describe() string {
	switch c {
	case ClassO:
		return "Blue giant"
	case ClassB:
		return "Blue-white star"
	case ClassA:
		return "White star"
	case ClassF:
		return "Yellow-white star"
	case ClassG:
		return "Yellow dwarf"
	case ClassK:
		return "Orange dwarf"
	case ClassM:
		return "Red dwarf"
	default:
		return "Unknown"
	}
}
