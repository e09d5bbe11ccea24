package geom

import "math"

// minSmoothTime keeps SmoothDamp away from a division by zero.
const minSmoothTime = 1e-4

// SmoothDamp moves cur toward target along a critically damped spring with
// the given smoothing time constant. vel carries the spring velocity
// between calls and is updated in place.
func SmoothDamp(cur, target Vec2, vel *Vec2, smoothTime, dt float64) Vec2 {
	if dt <= 0 {
		return cur
	}
	smoothTime = math.Max(minSmoothTime, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	// exp(-x), third-order
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := cur.Sub(target)
	temp := vel.Add(change.Scale(omega)).Scale(dt)
	*vel = vel.Sub(temp.Scale(omega)).Scale(decay)
	out := target.Add(change.Add(temp).Scale(decay))

	// Never overshoot the target.
	if target.Sub(cur).Dot(out.Sub(target)) > 0 {
		out = target
		*vel = Vec2{}
	}
	return out
}
