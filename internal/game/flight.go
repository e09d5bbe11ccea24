package game

import (
	"math"

	"github.com/spacehole-rogue/starmap/internal/geom"
	"github.com/spacehole-rogue/starmap/internal/world"
)

// Rig physics constants, per tick at 60 TPS. Full speed is ~720 m/s,
// reached in about a second; the rig coasts to a stop in a few seconds.
const (
	RigAccel     = 0.4   // m per tick, per tick of thrust
	RigMaxSpeed  = 12.0  // m per tick
	RigDrag      = 0.985 // velocity multiplier per tick
	RigTurnRate  = 0.025 // radians per tick
	rigStopSpeed = 0.001
)

// CameraRig flies the camera through the star field with Newtonian-ish
// movement. It is also the host entity of every indicator.
type CameraRig struct {
	Cam *world.Camera
	Vel geom.Vec3 // meters per tick

	Accel    float64
	MaxSpeed float64
	Drag     float64 // 1.0 = no drag
}

// NewCameraRig wraps cam with the default flight constants.
func NewCameraRig(cam *world.Camera) *CameraRig {
	return &CameraRig{Cam: cam, Accel: RigAccel, MaxSpeed: RigMaxSpeed, Drag: RigDrag}
}

func (r *CameraRig) Position() geom.Vec3 { return r.Cam.Pos }

func (r *CameraRig) Speed() float64 { return r.Vel.Length() }

// SpeedPct returns speed as a percentage of max speed (0-100).
func (r *CameraRig) SpeedPct() int {
	if r.MaxSpeed <= 0 {
		return 0
	}
	return min(int(math.Round(r.Speed()/r.MaxSpeed*100)), 100)
}

// Thrust accelerates along the camera's own axes. Each argument is -1, 0
// or 1; combined thrust is normalized so diagonals are not faster.
func (r *CameraRig) Thrust(forward, strafe, lift int) {
	if forward == 0 && strafe == 0 && lift == 0 {
		return
	}
	right, up, fwd := r.Cam.Basis()
	dir := fwd.Scale(float64(forward)).
		Add(right.Scale(float64(strafe))).
		Add(up.Scale(float64(lift))).
		Normalize()
	r.Vel = r.Vel.Add(dir.Scale(r.Accel))
}

// Turn yaws and pitches the camera by whole turn steps.
func (r *CameraRig) Turn(yaw, pitch int) {
	if yaw == 0 && pitch == 0 {
		return
	}
	r.Cam.Turn(float64(yaw)*RigTurnRate, float64(pitch)*RigTurnRate)
}

// Tick advances one step: drag, speed cap, move.
func (r *CameraRig) Tick() {
	r.Vel = r.Vel.Scale(r.Drag)

	if s := r.Speed(); s > r.MaxSpeed {
		r.Vel = r.Vel.Scale(r.MaxSpeed / s)
	}

	r.Cam.Pos = r.Cam.Pos.Add(r.Vel)

	if math.Abs(r.Vel.X) < rigStopSpeed {
		r.Vel.X = 0
	}
	if math.Abs(r.Vel.Y) < rigStopSpeed {
		r.Vel.Y = 0
	}
	if math.Abs(r.Vel.Z) < rigStopSpeed {
		r.Vel.Z = 0
	}
}

// Stop kills all velocity.
func (r *CameraRig) Stop() { r.Vel = geom.Vec3{} }
