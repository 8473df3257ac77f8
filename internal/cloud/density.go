package cloud

import "github.com/go-gl/mathgl/mgl64"

// Radius returns the radius of the sphere outside which the density is zero.
func (p Params) Radius() float64 { return FalloffScale * p.CloudHeight }

// Density samples the cloud at point pos and time seconds. The noise domain
// drifts along +X at WindSpeed. The result is never negative and is exactly
// zero outside the falloff sphere or when CloudHeight or CloudDensity is not
// positive.
func Density(pos mgl64.Vec3, time float64, p Params) float64 {
	radius := p.Radius()
	if radius <= 0 || p.CloudDensity <= 0 {
		return 0
	}
	dist := pos.Len()
	if dist >= radius {
		return 0
	}
	base := 1 - dist/radius
	wind := mgl64.Vec3{p.WindSpeed * time, 0, 0}
	n := FBM(pos.Add(wind), p.NoiseScale, p.Octaves())
	v := base + NoiseWeight*n
	if v <= 0 {
		return 0
	}
	return v * p.CloudDensity
}
