package car

import (
	"math"
	"testing"

	"github.com/ByteArena/box2d"
	"github.com/stretchr/testify/require"
)

const testDt = 1.0 / 50

func newTestCar() (*box2d.B2World, *Car) {
	world := box2d.MakeB2World(box2d.MakeB2Vec2(0, 0))
	return &world, New(&world, 0, 0, 0, Compounds[2])
}

func TestGasRampAsymmetry(t *testing.T) {
	_, c := newTestCar()

	// Throttle builds by at most 0.1 per call.
	c.SetGas(1)
	require.InDelta(t, 0.1, c.Wheels[2].Gas, 1e-12)
	require.InDelta(t, 0.1, c.Wheels[3].Gas, 1e-12)
	c.SetGas(1)
	require.InDelta(t, 0.2, c.Wheels[2].Gas, 1e-12)

	// Rear wheel drive: fronts never receive throttle.
	require.Zero(t, c.Wheels[0].Gas)
	require.Zero(t, c.Wheels[1].Gas)

	// Lifting off cuts instantly, no ramp down. Intentional asymmetry.
	c.SetGas(0)
	require.Zero(t, c.Wheels[2].Gas)

	// Input clamps to [0,1].
	for i := 0; i < 20; i++ {
		c.SetGas(5)
	}
	require.InDelta(t, 1.0, c.Wheels[3].Gas, 1e-12)
}

func TestBrakeLockForcesZeroOmega(t *testing.T) {
	_, c := newTestCar()
	for _, w := range c.Wheels {
		w.Omega = 12
	}
	c.SetBrake(0.9)
	c.Step(testDt)
	for _, w := range c.Wheels {
		require.Zero(t, w.Omega)
	}
}

func TestPartialBrakeUsesFadeCurve(t *testing.T) {
	r := wheelRadiusPx * Size
	free := 10.0 / r
	slowed := decelOmega(0.5, r, 10, testDt)
	require.Less(t, slowed, free)
	require.Greater(t, slowed, 0.0)

	// Harder braking sheds more speed.
	require.Less(t, decelOmega(0.8, r, 10, testDt), slowed)
}

func TestThrottleCurveFallsOffWithSpeed(t *testing.T) {
	r := wheelRadiusPx * Size
	gainLow := accelOmega(1, r, 0, testDt)*r - 0
	gainHigh := accelOmega(1, r, 95, testDt)*r - 95
	require.Greater(t, gainLow, gainHigh)
	require.Greater(t, gainHigh, 0.0)

	// No throttle: rim speed just tracks ground speed.
	require.InDelta(t, 5.0/r, accelOmega(0, r, 5, testDt), 1e-12)
}

type stubTile struct{ f float64 }

func (s *stubTile) RoadFriction() float64 { return s.f }

func TestFrictionLimitMaxTileWins(t *testing.T) {
	_, c := newTestCar()
	c.TireWear = 1
	w := c.Wheels[0]

	limit, grass := c.frictionLimit(w)
	require.True(t, grass)
	require.InDelta(t, c.profile.FrictionLimit*grassFriction, limit, 1e-9)

	// Two overlapping tiles: the higher friction wins, not the average.
	w.AddTile(&stubTile{f: 0.3})
	w.AddTile(&stubTile{f: 0.8})
	limit, grass = c.frictionLimit(w)
	require.False(t, grass)
	require.InDelta(t, c.profile.FrictionLimit*0.8, limit, 1e-9)
}

func TestFrictionLimitFloor(t *testing.T) {
	world := box2d.MakeB2World(box2d.MakeB2Vec2(0, 0))
	ice := TireProfile{Name: "ice", WearCoeff: 0.0004, WearShape: 1, FrictionLimit: 1, BaseFriction: 1}
	c := New(&world, 0, 0, 0, ice)
	c.TireWear = 1
	limit, _ := c.frictionLimit(c.Wheels[0])
	require.Equal(t, frictionFloor, limit)
}

func TestClipForcePreservesDirection(t *testing.T) {
	f, s := clipForce(300, 400, 500, 100)
	require.InDelta(t, 100.0, math.Hypot(f, s), 1e-9)
	require.InDelta(t, 300.0/500, f/100, 1e-9)
	require.InDelta(t, 400.0/500, s/100, 1e-9)
}

func TestServoSpeedCap(t *testing.T) {
	require.InDelta(t, steerRateCap, servoSpeed(0.4, 0), 1e-12)
	require.InDelta(t, -steerRateCap, servoSpeed(-0.4, 0), 1e-12)
	require.InDelta(t, 0.5, servoSpeed(0.01, 0), 1e-12)
	require.Zero(t, servoSpeed(0.2, 0.2))
}

func TestRearWheelDriveFromStandstill(t *testing.T) {
	world, c := newTestCar()
	for i := 0; i < 10; i++ {
		c.SetGas(1)
	}

	c.Step(testDt)
	require.Greater(t, c.Wheels[2].Omega, 0.0)
	require.Greater(t, c.Wheels[3].Omega, 0.0)
	require.Zero(t, c.Wheels[0].Omega)
	require.Zero(t, c.Wheels[1].Omega)
	require.Greater(t, c.FuelSpent, 0.0)

	for i := 0; i < 10; i++ {
		world.Step(testDt, 6, 2)
		c.Step(testDt)
	}
	require.Greater(t, c.TotalDistance, 0.0)
	require.Greater(t, c.Hull.GetLinearVelocity().Y, 0.0)
	require.Less(t, c.TireWear, c.profile.Wear(0))
}

func TestSteeringServoConvergence(t *testing.T) {
	world, c := newTestCar()
	c.SetSteer(0.4)
	prev := 0.0
	for i := 0; i < 200; i++ {
		c.Step(testDt)
		world.Step(testDt, 6, 2)
		angle := c.Wheels[0].Joint.GetJointAngle()
		require.LessOrEqual(t, angle, jointUpperAngle+1e-3)
		require.GreaterOrEqual(t, angle, prev-1e-3)
		prev = angle
	}
	require.InDelta(t, 0.4, prev, 0.05)
}

func TestDrawListGeometry(t *testing.T) {
	_, c := newTestCar()
	// 4 hull polys, 4 wheels, and at phase 0 each wheel shows its tread
	// marker.
	list := c.DrawList()
	require.Len(t, list, 12)
	for _, p := range list[:4] {
		require.Equal(t, HullColor, p.Col)
	}
}

func TestDestroyReleasesBodies(t *testing.T) {
	world, c := newTestCar()
	require.Equal(t, 5, world.GetBodyCount())
	c.Destroy()
	require.Zero(t, world.GetBodyCount())
	require.Nil(t, c.Hull)
}
