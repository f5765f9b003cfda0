package flight

import "github.com/go-gl/mathgl/mgl64"

// Tracker turns path tangents into orientations and eases toward them.
type Tracker struct {
	Forward mgl64.Vec3
	Rate    float64 // slerp fraction applied per step
}

func NewTracker(forward mgl64.Vec3, rate float64) Tracker {
	if forward.Len() == 0 {
		forward = DefaultForward
	}
	if rate <= 0 {
		rate = DefaultTurnRate
	}
	return Tracker{Forward: forward.Normalize(), Rate: rate}
}

// Target rotates Forward onto next-current. ok is false when the two
// points coincide and the direction is undefined.
func (tr Tracker) Target(current, next mgl64.Vec3) (q mgl64.Quat, ok bool) {
	dir := next.Sub(current)
	if dir.Len() == 0 {
		return mgl64.QuatIdent(), false
	}
	return mgl64.QuatBetweenVectors(tr.Forward, dir.Normalize()), true
}

// Step moves orientation a Rate fraction of the way toward the target for
// current->next, taking the short arc. A zero-length tangent leaves it as is.
func (tr Tracker) Step(orientation mgl64.Quat, current, next mgl64.Vec3) mgl64.Quat {
	target, ok := tr.Target(current, next)
	if !ok {
		return orientation
	}
	if orientation.Dot(target) < 0 {
		target = target.Scale(-1)
	}
	return mgl64.QuatSlerp(orientation, target, tr.Rate).Normalize()
}

// Snap assigns the target orientation outright; used once before animation.
func (tr Tracker) Snap(orientation mgl64.Quat, current, next mgl64.Vec3) mgl64.Quat {
	target, ok := tr.Target(current, next)
	if !ok {
		return orientation
	}
	return target
}
