package car

import (
	"math"

	"github.com/ByteArena/box2d"
)

type RGB struct{ R, G, B uint8 }

var (
	HullColor  = RGB{204, 0, 0}
	WheelColor = RGB{0, 0, 0}
	WheelWhite = RGB{77, 77, 77}
	MudColor   = RGB{102, 102, 0}
)

// DrawPoly is one world-space convex polygon with a fill color.
type DrawPoly struct {
	Points []box2d.B2Vec2
	Col    RGB
}

// SkidTrail is one skid polyline in world space.
type SkidTrail struct {
	Points []box2d.B2Vec2
	Col    RGB
}

// DrawList returns the car's render geometry in world space: hull
// fixtures, wheel fixtures and the rotating tread marker on each wheel.
// Pure read, no mutation.
func (c *Car) DrawList() []DrawPoly {
	out := make([]DrawPoly, 0, len(c.hullPolys)+2*len(c.Wheels))
	xf := c.Hull.GetTransform()
	for _, poly := range c.hullPolys {
		out = append(out, DrawPoly{Points: transformPoly(xf, poly), Col: HullColor})
	}
	for _, w := range c.Wheels {
		wxf := w.Body.GetTransform()
		out = append(out, DrawPoly{Points: transformPoly(wxf, c.wheelPoly), Col: WheelColor})
		if marker, ok := wheelMarker(w.Phase); ok {
			out = append(out, DrawPoly{Points: transformPoly(wxf, marker), Col: WheelWhite})
		}
	}
	return out
}

// SkidTrails returns the active skid polylines, oldest first. Pure read.
func (c *Car) SkidTrails() []SkidTrail {
	out := make([]SkidTrail, 0, len(c.Particles))
	for i := range c.Particles {
		p := &c.Particles[i]
		out = append(out, SkidTrail{Points: p.Points, Col: p.Class.Color()})
	}
	return out
}

// wheelMarker builds the white tread stripe for a wheel at the given roll
// phase, in wheel-local space. The stripe is only visible while some part
// of it faces the top of the wheel.
func wheelMarker(phase float64) ([]box2d.B2Vec2, bool) {
	a1 := phase
	a2 := phase + 1.2
	s1, c1 := math.Sin(a1), math.Cos(a1)
	s2, c2 := math.Sin(a2), math.Cos(a2)
	if s1 > 0 && s2 > 0 {
		return nil, false
	}
	if s1 > 0 {
		c1 = signF(c1)
	}
	if s2 > 0 {
		c2 = signF(c2)
	}
	const (
		hw = wheelWidthPx * Size
		r  = wheelRadiusPx * Size
	)
	return []box2d.B2Vec2{
		{X: -hw, Y: r * c1}, {X: +hw, Y: r * c1},
		{X: +hw, Y: r * c2}, {X: -hw, Y: r * c2},
	}, true
}

func transformPoly(xf box2d.B2Transform, poly []box2d.B2Vec2) []box2d.B2Vec2 {
	out := make([]box2d.B2Vec2, len(poly))
	for i, p := range poly {
		out[i] = box2d.B2TransformVec2Mul(xf, p)
	}
	return out
}
