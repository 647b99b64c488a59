// Package track provides the ground the dynamics model drives on: static
// friction tiles and the contact listener that keeps each wheel's tile set
// current from the physics world's begin/end collision events.
package track

import (
	"github.com/ByteArena/box2d"

	"topdowncar/internal/car"
)

var _ car.SurfaceTile = (*Tile)(nil)

// Tile is one static road region. Wheels overlapping it grip with its
// friction coefficient instead of the grass default.
type Tile struct {
	Body     *box2d.B2Body
	Friction float64
}

func (t *Tile) RoadFriction() float64 { return t.Friction }

// NewTile creates a static sensor region covering the axis-aligned box
// (minX,minY)-(maxX,maxY). Sensors never push the car around; they only
// report overlap.
func NewTile(world *box2d.B2World, minX, minY, maxX, maxY, friction float64) *Tile {
	t := &Tile{Friction: friction}

	bd := box2d.MakeB2BodyDef()
	bd.Position.Set((minX+maxX)/2, (minY+maxY)/2)
	body := world.CreateBody(&bd)

	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox((maxX-minX)/2, (maxY-minY)/2)
	fd := box2d.MakeB2FixtureDef()
	fd.Shape = &shape
	fd.IsSensor = true
	body.CreateFixtureFromDef(&fd)

	body.SetUserData(t)
	t.Body = body
	return t
}
