// Package cloud evaluates the procedural cloud volume: value noise, fractal
// sums, the density field and the raymarch that integrates it along camera
// rays. Every function here is pure, so pixels can be evaluated in any order
// and on any number of goroutines.
package cloud

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/zzkarna/optimized-cloud-generator/internal/core"
)

const (
	// MaxNoiseOctaves is the largest number of noise layers FBM sums.
	// Requests above it are silently capped.
	MaxNoiseOctaves = 8
	// MaxMarchSteps is the largest number of samples taken along one ray.
	MaxMarchSteps = 100
	// MinTransmittance ends a march once the remaining light is negligible.
	MinTransmittance = 0.01
	// FalloffScale relates CloudHeight to the radius of the cloud sphere.
	FalloffScale = 1.5
	// NoiseWeight scales the fbm term added to the radial falloff.
	NoiseWeight = 0.5
	// ShadowScale multiplies the optical depth of the single shadow sample.
	ShadowScale = 2.0
	// SunMix is the weight of direct sun light against ambient sky light.
	SunMix = 0.5
)

// Params holds the user adjustable inputs of the evaluator.
type Params struct {
	StepSize        float64
	MaxSteps        int
	LightSampleDist float64
	SunIntensity    float64

	NoiseScale   float64
	NoiseOctaves int

	CloudDensity float64
	CloudHeight  float64
	WindSpeed    float64

	// SunDirection points toward the light. It is used as given.
	SunDirection mgl64.Vec3
	SunColor     mgl64.Vec3
	SkyColor     mgl64.Vec3
}

// DefaultParams returns the values the viewer starts with.
func DefaultParams() Params {
	return Params{
		StepSize:        0.05,
		MaxSteps:        100,
		LightSampleDist: 0.3,
		SunIntensity:    0.8,
		NoiseScale:      2.0,
		NoiseOctaves:    5,
		CloudDensity:    1.0,
		CloudHeight:     1.5,
		WindSpeed:       0.5,
		SunDirection:    mgl64.Vec3{-0.8, 0.6, 0.3},
		SunColor:        RGB8(0xff, 0xa9, 0x4d),
		SkyColor:        RGB8(0x99, 0xbd, 0xff),
	}
}

// Octaves returns NoiseOctaves limited to [0, MaxNoiseOctaves].
func (p Params) Octaves() int {
	return core.Clamp(p.NoiseOctaves, 0, MaxNoiseOctaves)
}

// Steps returns MaxSteps limited to [0, MaxMarchSteps].
func (p Params) Steps() int {
	return core.Clamp(p.MaxSteps, 0, MaxMarchSteps)
}

// RGB8 converts 8-bit channel values to a normalized color.
func RGB8(r, g, b uint8) mgl64.Vec3 {
	return mgl64.Vec3{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}
