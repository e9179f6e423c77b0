package controller

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/navpatrol/locomotion"
)

// Rig is a camera attached to a body by a fixed local offset.
type Rig struct {
	Position     mgl64.Vec3
	Rotation     mgl64.Quat
	Offset       mgl64.Vec3
	FollowFactor float64
}

func NewRig(offset mgl64.Vec3, follow float64, target locomotion.Body) *Rig {
	r := &Rig{Offset: offset, FollowFactor: follow}
	r.Position, r.Rotation = r.base(target)
	return r
}

// base is where the rig sits when it is not being free-looked.
func (r *Rig) base(target locomotion.Body) (mgl64.Vec3, mgl64.Quat) {
	rot := target.Rotation
	if rot.Len() == 0 {
		rot = mgl64.QuatIdent()
	}
	return target.Position.Add(rot.Rotate(r.Offset)), rot
}

// Update eases the rig toward its base pose, or rotates it in place while the intent carries
// look input.
func (r *Rig) Update(dt float64, in Intent, target locomotion.Body) {
	if in.Looking() {
		yaw := mgl64.QuatRotate(in.LookRight*dt, worldUp)
		pitch := mgl64.QuatRotate(in.LookUp*dt, mgl64.Vec3{1, 0, 0})
		r.Rotation = yaw.Mul(r.Rotation).Mul(pitch).Normalize()
		return
	}

	pos, rot := r.base(target)
	r.Position = r.Position.Add(pos.Sub(r.Position).Mul(r.FollowFactor))
	if r.Rotation.Dot(rot) < 0 {
		rot = rot.Scale(-1)
	}
	r.Rotation = mgl64.QuatSlerp(r.Rotation, rot, r.FollowFactor).Normalize()
}

// Forward is the direction the camera looks.
func (r *Rig) Forward() mgl64.Vec3 {
	return r.Rotation.Rotate(localForward)
}
