package car

import "github.com/ByteArena/box2d"

// SurfaceTile is the read-only contract a road region must satisfy to
// affect wheel grip. Which tiles a wheel overlaps is maintained by the
// physics world's collision callbacks, not by this package.
type SurfaceTile interface {
	RoadFriction() float64
}

// Wheel couples a physics body to the dynamics state the model owns.
// Body and Joint are non-owning handles into the physics world; everything
// else lives here.
type Wheel struct {
	Body   *box2d.B2Body
	Joint  *box2d.B2RevoluteJoint
	Radius float64

	Gas   float64 // applied throttle [0..1], rear wheels only
	Brake float64 // brake level, >= 0.9 locks the wheel
	Steer float64 // steering target [-1..1], front wheels only

	Phase float64 // roll angle, radians
	Omega float64 // spin angular velocity, rad/s

	tiles map[SurfaceTile]struct{}

	skidStart    *box2d.B2Vec2
	skidParticle uint64 // ID into Car.Particles, 0 = none
}

// AddTile and RemoveTile are called by the collision glue when the wheel
// begins or stops overlapping a road tile.
func (w *Wheel) AddTile(t SurfaceTile)    { w.tiles[t] = struct{}{} }
func (w *Wheel) RemoveTile(t SurfaceTile) { delete(w.tiles, t) }

// OnRoad reports whether any road tile is currently under the wheel.
func (w *Wheel) OnRoad() bool { return len(w.tiles) > 0 }
