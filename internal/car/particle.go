package car

import "github.com/ByteArena/box2d"

type SkidClass uint8

const (
	SkidTire SkidClass = iota // rubber laid on road
	SkidMud                   // turf torn up off-road
)

func (c SkidClass) Color() RGB {
	if c == SkidMud {
		return MudColor
	}
	return WheelColor
}

// SkidParticle is one skid trail: a short polyline of wheel positions laid
// down while slip force exceeded twice the friction limit. Wheels refer to
// their active trail by ID, never by pointer, because the car's bounded
// list may evict it at any time.
type SkidParticle struct {
	ID     uint64
	Class  SkidClass
	Points []box2d.B2Vec2
	TTL    float64
}

// addParticle opens a new trail spanning from the recorded skid start to
// the current position. Oldest trails are evicted once the car carries
// more than MaxSkidParticles.
func (c *Car) addParticle(from, to box2d.B2Vec2, class SkidClass) uint64 {
	c.particleSeq++
	p := SkidParticle{
		ID:     c.particleSeq,
		Class:  class,
		TTL:    1,
		Points: make([]box2d.B2Vec2, 0, MaxSkidPoints),
	}
	p.Points = append(p.Points, from, to)
	c.Particles = append(c.Particles, p)
	for len(c.Particles) > MaxSkidParticles {
		n := copy(c.Particles, c.Particles[1:])
		c.Particles = c.Particles[:n]
	}
	return p.ID
}

// particleByID returns the live trail with the given ID, or nil if it was
// evicted (or id is zero).
func (c *Car) particleByID(id uint64) *SkidParticle {
	if id == 0 {
		return nil
	}
	for i := range c.Particles {
		if c.Particles[i].ID == id {
			return &c.Particles[i]
		}
	}
	return nil
}
