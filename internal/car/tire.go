package car

import "math"

// TireProfile is the immutable tire configuration a Car is built with.
// WearCoeff sets how fast the tire degrades with distance, WearShape moves
// the knee of the degradation curve, FrictionLimit is the peak force budget
// of a fresh tire on full-friction road.
type TireProfile struct {
	Name          string
	WearCoeff     float64
	WearShape     float64
	FrictionLimit float64
	BaseFriction  float64
}

// Compounds, hard to soft. Softer compounds grip harder and wear faster;
// C1 should survive about two laps of a typical track, C5 barely one.
var Compounds = [5]TireProfile{
	{Name: "C1", WearCoeff: 0.0004, WearShape: 0.0004*5000 - 1, FrictionLimit: 1.0e6 * Size * Size, BaseFriction: 1},
	{Name: "C2", WearCoeff: 0.0006, WearShape: 0.0006*5000 - 1, FrictionLimit: 1.2e6 * Size * Size, BaseFriction: 1},
	{Name: "C3", WearCoeff: 0.0007, WearShape: 0.0007*5000 - 1, FrictionLimit: 1.4e6 * Size * Size, BaseFriction: 1},
	{Name: "C4", WearCoeff: 0.0009, WearShape: 0.0009*5000 - 1, FrictionLimit: 1.6e6 * Size * Size, BaseFriction: 1},
	{Name: "C5", WearCoeff: 0.0010, WearShape: 0.0010*5000 - 1, FrictionLimit: 1.8e6 * Size * Size, BaseFriction: 1},
}

// CompoundByName looks up one of the built-in compounds (C1..C5).
func CompoundByName(name string) (TireProfile, bool) {
	for _, p := range Compounds {
		if p.Name == name {
			return p, true
		}
	}
	return TireProfile{}, false
}

// The raw wear curve bottoms out at exactly zero once WearCoeff*distance
// passes WearShape+1; keep a positive floor so a worn-out tire still has
// some rubber on it.
const minWear = 1e-3

// Wear maps cumulative distance to the tire wear scalar in (0,1].
// Fresh tires start near 1 and degrade along a sigmoid-like curve whose
// inflection sits at WearShape; the curve never increases.
func (p TireProfile) Wear(distance float64) float64 {
	top := p.WearCoeff*distance - p.WearShape
	bot := 1 + math.Abs(p.WearCoeff*distance-(p.WearShape+1))
	return clampF(1-0.5*(top/bot+1), minWear, 1)
}
