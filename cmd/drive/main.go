// Command drive runs a headless scripted driving session: full throttle
// down a straight tiled road with a weaving steer, then a hard stop.
// Telemetry is logged at a fixed interval.
package main

import (
	"flag"
	"math"
	"os"

	"github.com/ByteArena/box2d"
	"go.uber.org/zap"

	"topdowncar/internal/car"
	"topdowncar/internal/track"
)

func main() {
	var (
		compound    = flag.String("compound", "C3", "tire compound C1..C5, hard to soft")
		profilePath = flag.String("profile", "", "YAML tire profile file (overrides -compound)")
		seconds     = flag.Float64("seconds", 20, "simulated session length")
		dt          = flag.Float64("dt", 1.0/50, "fixed timestep")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	profile, ok := car.CompoundByName(*compound)
	if !ok {
		logger.Fatal("unknown compound", zap.String("compound", *compound))
	}
	if *profilePath != "" {
		f, err := os.Open(*profilePath)
		if err != nil {
			logger.Fatal("open profile", zap.Error(err))
		}
		profile, err = car.LoadProfile(f)
		f.Close()
		if err != nil {
			logger.Fatal("load profile", zap.Error(err))
		}
	}

	world := box2d.MakeB2World(box2d.MakeB2Vec2(0, 0))
	world.SetContactListener(track.FrictionDetector{})

	// A straight road heading +y, grass on both sides.
	for i := 0; i < 40; i++ {
		track.NewTile(&world, -5, float64(i)*10, 5, float64(i+1)*10, 1.0)
	}

	c := car.New(&world, 0, 0, 0, profile)
	defer c.Destroy()

	logger.Info("session start",
		zap.String("tire", profile.Name),
		zap.Float64("dt", *dt),
		zap.Float64("seconds", *seconds),
	)

	steps := int(*seconds / *dt)
	logEvery := int(0.5 / *dt)
	if logEvery < 1 {
		logEvery = 1
	}
	for i := 0; i < steps; i++ {
		now := float64(i) * *dt
		if now > *seconds-3 {
			c.SetGas(0)
			c.SetBrake(0.95)
		} else {
			c.SetGas(1)
			c.SetBrake(0)
			c.SetSteer(0.3 * math.Sin(now))
		}
		c.Step(*dt)
		world.Step(*dt, 6, 2)

		if i%logEvery == 0 {
			v := c.Hull.GetLinearVelocity()
			logger.Info("telemetry",
				zap.Float64("t", now),
				zap.Float64("speed", v.Length()),
				zap.Float64("tire_wear", c.TireWear),
				zap.Float64("distance", c.TotalDistance),
				zap.Float64("fuel", c.FuelSpent),
				zap.Int("skid_trails", len(c.Particles)),
			)
		}
	}

	logger.Info("session end",
		zap.Float64("distance", c.TotalDistance),
		zap.Float64("tire_wear", c.TireWear),
		zap.Float64("fuel", c.FuelSpent),
	)
}
