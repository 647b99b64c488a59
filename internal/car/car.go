// Package car implements a per-tick top-down dynamics model for a
// four-wheeled car over variable-friction ground, built on Box2D bodies
// and motorized revolute joints. The model converts driver inputs into
// per-wheel spin, resolves slip forces against a wear- and
// surface-dependent friction budget, and feeds reaction torque back into
// wheel spin. Some ideas follow the iforce2d top-down car tutorial, with
// wheel rotation, tire wear and skid trails added.
package car

import (
	"math"

	"github.com/ByteArena/box2d"
)

// Car aggregates a hull body and four wheels hinged to it. Wheels 0-1 are
// the steerable fronts, 2-3 the powered rears. The car owns odometry, the
// shared tire-wear scalar and the bounded skid trail list; the bodies are
// owned by the physics world.
type Car struct {
	world  *box2d.B2World
	Hull   *box2d.B2Body
	Wheels [4]*Wheel

	Particles   []SkidParticle
	particleSeq uint64

	TotalDistance float64 // average wheel travel, not hull travel
	TireWear      float64 // shared by all four wheels within a tick
	FuelSpent     float64

	profile TireProfile

	// Local-space fixture outlines kept for the draw list.
	hullPolys [][]box2d.B2Vec2
	wheelPoly []box2d.B2Vec2
}

// New creates a car at the given pose. The wheels use collision filtering
// so they never collide with each other, and each wheel body carries its
// *Wheel as user data for the contact glue.
func New(world *box2d.B2World, angle, x, y float64, profile TireProfile) *Car {
	c := &Car{world: world, profile: profile}

	bd := box2d.MakeB2BodyDef()
	bd.Type = box2d.B2BodyType.B2_dynamicBody
	bd.Position.Set(x, y)
	bd.Angle = angle
	c.Hull = world.CreateBody(&bd)
	for _, poly := range hullShapes {
		verts := scalePoly(poly)
		shape := box2d.MakeB2PolygonShape()
		shape.Set(verts, len(verts))
		c.Hull.CreateFixture(&shape, hullDensity)
		c.hullPolys = append(c.hullPolys, verts)
	}

	c.wheelPoly = scalePoly([][2]float64{
		{-wheelWidthPx, +wheelRadiusPx}, {+wheelWidthPx, +wheelRadiusPx},
		{+wheelWidthPx, -wheelRadiusPx}, {-wheelWidthPx, -wheelRadiusPx},
	})
	for i, wp := range wheelPositions {
		wbd := box2d.MakeB2BodyDef()
		wbd.Type = box2d.B2BodyType.B2_dynamicBody
		wbd.Position.Set(x+wp[0]*Size, y+wp[1]*Size)
		wbd.Angle = angle
		body := world.CreateBody(&wbd)

		shape := box2d.MakeB2PolygonShape()
		shape.Set(c.wheelPoly, len(c.wheelPoly))
		fd := box2d.MakeB2FixtureDef()
		fd.Shape = &shape
		fd.Density = wheelDensity
		fd.Restitution = 0
		fd.Filter.CategoryBits = wheelCategoryBits
		fd.Filter.MaskBits = wheelMaskBits
		body.CreateFixtureFromDef(&fd)

		jd := box2d.MakeB2RevoluteJointDef()
		jd.BodyA = c.Hull
		jd.BodyB = body
		jd.LocalAnchorA.Set(wp[0]*Size, wp[1]*Size)
		jd.LocalAnchorB.Set(0, 0)
		jd.EnableMotor = true
		jd.EnableLimit = true
		jd.MaxMotorTorque = jointMaxTorque
		jd.MotorSpeed = 0
		jd.LowerAngle = jointLowerAngle
		jd.UpperAngle = jointUpperAngle
		joint := world.CreateJoint(&jd).(*box2d.B2RevoluteJoint)

		w := &Wheel{
			Body:   body,
			Joint:  joint,
			Radius: wheelRadiusPx * Size,
			tiles:  make(map[SurfaceTile]struct{}),
		}
		body.SetUserData(w)
		c.Wheels[i] = w
	}

	c.TireWear = profile.Wear(0)
	return c
}

func scalePoly(poly [][2]float64) []box2d.B2Vec2 {
	out := make([]box2d.B2Vec2, len(poly))
	for i, p := range poly {
		out[i] = box2d.MakeB2Vec2(p[0]*Size, p[1]*Size)
	}
	return out
}

// Profile returns the tire configuration the car was built with.
func (c *Car) Profile() TireProfile { return c.profile }

// SetGas applies throttle to the rear wheels. The applied value climbs by
// at most 0.1 per call so power builds gradually, but lifting off cuts it
// instantly. Values clamp to [0,1].
func (c *Car) SetGas(gas float64) {
	gas = clampF(gas, 0, 1)
	for _, w := range c.Wheels[2:] {
		diff := gas - w.Gas
		if diff > 0.1 {
			diff = 0.1
		}
		w.Gas += diff
	}
}

// SetBrake sets the brake level on all four wheels. Levels at or above 0.9
// lock the wheels to zero rotation during Step.
func (c *Car) SetBrake(b float64) {
	for _, w := range c.Wheels {
		w.Brake = b
	}
}

// SetSteer sets the front wheels' steering target in [-1,1]. The joint
// motors servo toward it over the following ticks; nothing moves
// instantly.
func (c *Car) SetSteer(s float64) {
	c.Wheels[0].Steer = s
	c.Wheels[1].Steer = s
}

// Step advances the dynamics model by dt seconds: tire wear first (all
// wheels must see the same value this tick), then per wheel the steering
// servo, the friction budget, slip forces, skid bookkeeping, force
// clipping and spin feedback. The caller still owns the world step.
func (c *Car) Step(dt float64) {
	c.TireWear = c.profile.Wear(c.TotalDistance)
	for _, w := range c.Wheels {
		c.stepWheel(w, dt)
	}
}

// servoSpeed converts steering error into a joint motor rate: proportional
// when far from target, capped at steerRateCap close in.
func servoSpeed(target, current float64) float64 {
	diff := target - current
	return signF(diff) * math.Min(steerGain*math.Abs(diff), steerRateCap)
}

// frictionLimit returns the maximum force the wheel may exert this tick
// and whether it is running on grass. The highest-friction overlapped tile
// wins; without any tile the grass base applies. The floor keeps a worn
// tire on ice-like ground from going fully frictionless.
func (c *Car) frictionLimit(w *Wheel) (float64, bool) {
	limit := c.profile.FrictionLimit * grassFriction * c.TireWear * c.profile.BaseFriction
	grass := true
	for t := range w.tiles {
		limit = math.Max(limit, c.profile.FrictionLimit*t.RoadFriction()) * c.TireWear * c.profile.BaseFriction
		grass = false
	}
	return math.Max(limit, frictionFloor), grass
}

// accelOmega converts throttle into a new spin rate. Engine power falls
// off steeply as speed approaches MaxSpeed.
func accelOmega(gas, radius, speed, dt float64) float64 {
	scaled := speed * 10 / MaxSpeed
	coef := 1 / (1e-5*math.Pow(scaled, 7) + 1)
	return (speed + gas*MaxAccel*coef*dt) / radius
}

// decelOmega converts brake level into a new spin rate using a quartic
// brake-fade polynomial fitted against the same speed normalization.
func decelOmega(brake, radius, speed, dt float64) float64 {
	s := speed * 27 / MaxSpeed
	const (
		qa = -3.36765e-5
		qb = 1.83713e-3
		qc = -3.65703e-2
		qd = 0.313523
	)
	coef := qa*s*s*s*s + qb*s*s*s + qc*s*s + qd*s
	return (speed - brake*MaxDecel*coef*dt) / radius
}

// clipForce rescales both slip components so the magnitude equals the
// friction limit, preserving direction. Callers only invoke it when
// force > limit, so force is never zero here.
func clipForce(f, s, force, limit float64) (float64, float64) {
	k := limit / force
	return f * k, s * k
}

func (c *Car) stepWheel(w *Wheel, dt float64) {
	w.Joint.SetMotorSpeed(servoSpeed(w.Steer, w.Joint.GetJointAngle()))

	limit, grass := c.frictionLimit(w)

	forw := w.Body.GetWorldVector(box2d.MakeB2Vec2(0, 1))
	side := w.Body.GetWorldVector(box2d.MakeB2Vec2(1, 0))
	v := w.Body.GetLinearVelocity()
	vf := forw.X*v.X + forw.Y*v.Y
	vs := side.X*v.X + side.Y*v.Y
	speed := v.Length()

	c.FuelSpent += dt * EnginePower * w.Gas

	switch {
	case w.Brake >= lockThreshold:
		w.Omega = 0
	case w.Brake > 0:
		w.Omega = decelOmega(w.Brake, w.Radius, speed, dt)
	default:
		w.Omega = accelOmega(w.Gas, w.Radius, speed, dt)
	}
	w.Phase += w.Omega * dt

	// Slip force points along the mismatch between rim speed and ground
	// speed. Physically correct would be to always apply the full friction
	// limit until speeds equalize, but with finite dt that oscillates near
	// zero, hence the proportional form.
	vr := w.Omega * w.Radius
	fForce := (vr - vf) * slipForceScale
	sForce := -vs * slipForceScale
	force := math.Sqrt(fForce*fForce + sForce*sForce)

	if force > skidThreshold*limit {
		class := SkidTire
		if grass {
			class = SkidMud
		}
		pos := w.Body.GetPosition()
		if p := c.particleByID(w.skidParticle); p != nil && p.Class == class && len(p.Points) < MaxSkidPoints {
			p.Points = append(p.Points, pos)
		} else if w.skidStart == nil {
			w.skidStart = &pos
		} else {
			w.skidParticle = c.addParticle(*w.skidStart, pos, class)
			w.skidStart = nil
		}
	} else {
		w.skidStart = nil
		w.skidParticle = 0
	}

	if force > limit {
		fForce, sForce = clipForce(fForce, sForce, force, limit)
	}

	// Longitudinal slip reacts back on the wheel's own spin.
	w.Omega -= dt * fForce * w.Radius / WheelMomentOfInertia

	w.Body.ApplyForce(box2d.MakeB2Vec2(
		sForce*side.X+fForce*forw.X,
		sForce*side.Y+fForce*forw.Y,
	), w.Body.GetWorldCenter(), true)

	c.TotalDistance += dt * speed / 4
}

// Destroy releases the hull and wheel bodies back to the world. The car
// must not be stepped or drawn afterwards.
func (c *Car) Destroy() {
	c.world.DestroyBody(c.Hull)
	c.Hull = nil
	for i, w := range c.Wheels {
		c.world.DestroyBody(w.Body)
		c.Wheels[i] = nil
	}
}
