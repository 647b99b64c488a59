package car

import (
	"testing"

	"github.com/ByteArena/box2d"
	"github.com/stretchr/testify/require"
)

func TestSkidParticleFIFOBound(t *testing.T) {
	_, c := newTestCar()
	for i := 0; i < 40; i++ {
		c.addParticle(box2d.MakeB2Vec2(float64(i), 0), box2d.MakeB2Vec2(float64(i), 1), SkidTire)
	}
	require.Len(t, c.Particles, MaxSkidParticles)

	// Oldest evicted first; the most recent trails survive.
	require.Equal(t, uint64(11), c.Particles[0].ID)
	require.Equal(t, uint64(40), c.Particles[len(c.Particles)-1].ID)
	require.Nil(t, c.particleByID(10))
	require.NotNil(t, c.particleByID(11))
}

func TestSkidLifecycle(t *testing.T) {
	world := box2d.MakeB2World(box2d.MakeB2Vec2(0, 0))
	// Near-zero friction budget: the floor dominates and spin-up slip
	// exceeds the skid threshold while the car stays put.
	glass := TireProfile{Name: "glass", WearCoeff: 0.0004, WearShape: 1, FrictionLimit: 1, BaseFriction: 1}
	c := New(&world, 0, 0, 0, glass)
	for i := 0; i < 10; i++ {
		c.SetGas(1)
	}
	w := c.Wheels[2]

	// Onset: the start position is recorded, no trail yet.
	c.Step(testDt)
	require.NotNil(t, w.skidStart)
	require.Empty(t, c.Particles)

	// Second sample: a trail spans onset to current position. Both rear
	// wheels skid, so two trails appear.
	c.Step(testDt)
	require.Nil(t, w.skidStart)
	require.NotZero(t, w.skidParticle)
	require.Len(t, c.Particles, 2)
	require.Equal(t, SkidMud, c.Particles[0].Class) // off-road skid
	require.Len(t, c.Particles[0].Points, 2)
	require.Equal(t, 1.0, c.Particles[0].TTL)

	// While the skid holds, the trail extends in place.
	c.Step(testDt)
	require.Len(t, c.Particles[0].Points, 3)

	// Below threshold: wheel skid state clears, trails stay for drawing.
	c.SetGas(0)
	c.Step(testDt)
	require.Nil(t, w.skidStart)
	require.Zero(t, w.skidParticle)
	require.Len(t, c.Particles, 2)
}
