package indicator

// placement says where the indicator goes this frame.
type placement uint8

const (
	// Follow the on-screen projection with the arrow hidden.
	placeOnScreen placement = iota
	// Clamp to the boundary edge with the arrow shown.
	placeEdge
	// Keep the previous position and arrow state.
	placeKeep
)

type visibility struct {
	place       placement
	targetAlpha float64
}

// classify decides placement and the visibility alpha target from the
// on-screen test and the distance to the target.
func classify(onScreen, hideWhenOnScreen bool, dist, checkDist float64) visibility {
	switch {
	case dist > checkDist:
		if onScreen && !hideWhenOnScreen {
			return visibility{place: placeOnScreen, targetAlpha: 0}
		}
		return visibility{place: placeKeep, targetAlpha: 0}
	case onScreen:
		if hideWhenOnScreen {
			return visibility{place: placeOnScreen, targetAlpha: 0}
		}
		return visibility{place: placeOnScreen, targetAlpha: 1}
	default:
		return visibility{place: placeEdge, targetAlpha: 1}
	}
}
