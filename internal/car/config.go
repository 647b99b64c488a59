package car

// Size converts design-pixel geometry to world meters. Mass scales with
// Size^2 through fixture density, so force-like constants carry Size*Size.
const Size = 0.02

// Powertrain.
const (
	EnginePower          = 1e8 * Size * Size
	WheelMomentOfInertia = 4000 * Size * Size
	MaxSpeed             = 100.0
	MaxAccel             = 40.0
	MaxDecel             = 50.0
)

// Slip and friction.
const (
	// Cuts slip oscillation near zero speed difference in a few steps;
	// has no effect on the friction limit itself.
	slipForceScale = 205000 * Size * Size

	frictionFloor = 20.0 // never let a wheel go fully frictionless
	grassFriction = 0.6  // base multiplier when no road tile is under the wheel
	lockThreshold = 0.9  // brake level at and above which the wheel locks
	skidThreshold = 2.0  // skid marks start at this multiple of the friction limit
)

// Steering servo.
const (
	steerGain    = 50.0
	steerRateCap = 3.0 // rad/s
)

// Geometry (design pixels, front wheels have positive y).
const (
	wheelRadiusPx = 27
	wheelWidthPx  = 14
)

var wheelPositions = [4][2]float64{
	{-55, +80}, {+55, +80},
	{-55, -82}, {+55, -82},
}

var hullShapes = [4][][2]float64{
	{
		{-60, +130}, {+60, +130},
		{+60, +110}, {-60, +110},
	},
	{
		{-15, +120}, {+15, +120},
		{+20, +20}, {-20, +20},
	},
	{
		{+25, +20},
		{+50, -10},
		{+50, -40},
		{+20, -90},
		{-20, -90},
		{-50, -40},
		{-50, -10},
		{-25, +20},
	},
	{
		{-50, -120}, {+50, -120},
		{+50, -90}, {-50, -90},
	},
}

// Wheel hinge joints.
const (
	jointMaxTorque  = 180 * 900 * Size * Size
	jointLowerAngle = -0.4
	jointUpperAngle = +0.4
)

// Collision filtering: wheels collide with the default category only,
// never with each other.
const (
	wheelCategoryBits = 0x0020
	wheelMaskBits     = 0x0001
)

// Densities.
const (
	hullDensity  = 1.0
	wheelDensity = 0.1
)

// Skid trail bounds.
const (
	MaxSkidParticles = 30 // per car, FIFO eviction
	MaxSkidPoints    = 30 // per trail polyline
)
