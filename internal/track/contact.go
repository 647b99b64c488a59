package track

import (
	"github.com/ByteArena/box2d"

	"topdowncar/internal/car"
)

// FrictionDetector routes wheel/tile begin and end contacts into the
// wheels' contact-tile sets. Install with world.SetContactListener before
// creating cars.
type FrictionDetector struct{}

func (FrictionDetector) BeginContact(contact box2d.B2ContactInterface) {
	if w, t := wheelTile(contact); w != nil {
		w.AddTile(t)
	}
}

func (FrictionDetector) EndContact(contact box2d.B2ContactInterface) {
	if w, t := wheelTile(contact); w != nil {
		w.RemoveTile(t)
	}
}

func (FrictionDetector) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) {}

func (FrictionDetector) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) {
}

func wheelTile(contact box2d.B2ContactInterface) (*car.Wheel, *Tile) {
	ua := contact.GetFixtureA().GetBody().GetUserData()
	ub := contact.GetFixtureB().GetBody().GetUserData()
	if w, ok := ua.(*car.Wheel); ok {
		if t, ok := ub.(*Tile); ok {
			return w, t
		}
	}
	if w, ok := ub.(*car.Wheel); ok {
		if t, ok := ua.(*Tile); ok {
			return w, t
		}
	}
	return nil, nil
}
