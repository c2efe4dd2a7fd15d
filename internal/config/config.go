package config

import "math"

const (
	WindowWidth  = 800
	WindowHeight = 600

	TPS        = 60
	RunSeconds = 10

	// Pendulum parameters
	PivotX       = 400
	PivotY       = 100
	ArmLength    = 150
	Gravity      = 0.5  // pixels/frame²
	Damping      = 0.96 // fraction of angular velocity kept per frame
	InitialAngle = math.Pi / 4

	// Hexagon parameters
	HexRadius        = 20
	HexRotationSpeed = 3 * math.Pi / 180 // 3° per frame

	// Neon trail parameters
	TrailLength = 8
	TrailWidth  = 3

	// Light beam parameters
	BeamThreshold = 5.0 // bob speed (pixels/frame) below which no beams show
	BeamSpread    = 30 * math.Pi / 180
	BeamCount     = 6
	BeamLength    = 100
	BeamMaxCount  = 12
	BeamMaxLength = 200

	// Grid parameters
	GridSpacing    = 15
	GridWarpRadius = 150 // radius around the bob where grid points snap to rings

	// Vortex parameters
	VortexCount      = 100
	VortexSpeed      = 0.02 // rad/frame
	VortexCenterX    = WindowWidth / 2
	VortexCenterY    = WindowHeight / 2
	VortexRadiusMin  = 90
	VortexRadiusMax  = 110
	VortexWobbleAmp  = 6    // pixels of radius oscillation
	VortexWobbleRate = 0.05 // rad/frame of the oscillation phase
)
