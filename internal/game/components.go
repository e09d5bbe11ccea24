package game

import (
	"github.com/spacehole-rogue/starmap/internal/geom"
	"github.com/spacehole-rogue/starmap/internal/world"
)

// StarBody is the world-space position of a star, in meters.
type StarBody struct {
	Pos geom.Vec3
}

// StarInfo is the catalog data shown for a star.
type StarInfo struct {
	Name      string
	Class     world.SpectralClass
	Magnitude float64
}
