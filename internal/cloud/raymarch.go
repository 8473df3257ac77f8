package cloud

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Sample is the state of a march after one step.
type Sample struct {
	Index         int
	T             float64
	Position      mgl64.Vec3
	Density       float64
	Transmittance float64
}

// Result is the outcome of marching one ray.
type Result struct {
	Color         mgl64.Vec3
	Transmittance float64
	Steps         int
}

// Raymarch integrates the cloud along the ray origin + t*dir and returns the
// color seen through it.
func Raymarch(origin, dir mgl64.Vec3, time float64, p Params) Result {
	return Trace(origin, dir, time, p, nil)
}

// Trace is Raymarch reporting every sample to visit, which may be nil.
//
// The march advances by StepSize whether or not the sample was empty and stops
// after Steps() samples or once transmittance drops below MinTransmittance.
// Occupied samples are lit by a blend of sky light and sun light attenuated by
// a single density sample LightSampleDist toward the sun. A non-positive
// StepSize takes no samples.
func Trace(origin, dir mgl64.Vec3, time float64, p Params, visit func(Sample)) Result {
	var color mgl64.Vec3
	transmittance := 1.0
	steps := p.Steps()
	if p.StepSize <= 0 {
		steps = 0
	}
	sun := p.SunColor.Mul(p.SunIntensity)
	toLight := p.SunDirection.Mul(p.LightSampleDist)

	t := 0.0
	taken := 0
	for i := 0; i < steps; i++ {
		pos := origin.Add(dir.Mul(t))
		density := Density(pos, time, p)
		taken++

		stop := false
		if density > 0 {
			lightDensity := Density(pos.Add(toLight), time, p)
			shadow := math.Exp(-lightDensity * p.LightSampleDist * ShadowScale)

			illumination := mix3(p.SkyColor, sun.Mul(shadow), SunMix)
			color = color.Add(illumination.Mul(transmittance * density * p.StepSize))
			transmittance *= math.Exp(-density * p.StepSize)
			stop = transmittance < MinTransmittance
		}

		if visit != nil {
			visit(Sample{Index: i, T: t, Position: pos, Density: density, Transmittance: transmittance})
		}
		if stop {
			break
		}
		t += p.StepSize
	}

	return Result{
		Color:         color.Add(p.SkyColor.Mul(transmittance)),
		Transmittance: transmittance,
		Steps:         taken,
	}
}
