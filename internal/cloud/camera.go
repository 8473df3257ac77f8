package cloud

import "github.com/go-gl/mathgl/mgl64"

const (
	// ReferenceWidth and ReferenceHeight are the fixed resolution fragment
	// coordinates are divided by, regardless of the canvas size.
	ReferenceWidth  = 800
	ReferenceHeight = 600
)

// Camera is the fixed eye of the scene.
type Camera struct {
	Origin mgl64.Vec3
	// Reference is the resolution mapped onto [-1, 1] in both axes.
	Reference mgl64.Vec2
}

// DefaultCamera sits three units behind the volume looking down +Z.
func DefaultCamera() Camera {
	return Camera{
		Origin:    mgl64.Vec3{0, 0, -3},
		Reference: mgl64.Vec2{ReferenceWidth, ReferenceHeight},
	}
}

// UV maps a fragment coordinate (origin bottom-left, pixel centers at +0.5) to
// normalized device coordinates.
func (c Camera) UV(fragX, fragY float64) mgl64.Vec2 {
	return mgl64.Vec2{
		fragX/c.Reference[0]*2 - 1,
		fragY/c.Reference[1]*2 - 1,
	}
}

// Ray returns the normalized direction through the fragment at unit depth.
func (c Camera) Ray(fragX, fragY float64) mgl64.Vec3 {
	uv := c.UV(fragX, fragY)
	return mgl64.Vec3{uv[0], uv[1], 1}.Normalize()
}

// Shade evaluates the color of one fragment.
func (c Camera) Shade(fragX, fragY, time float64, p Params) mgl64.Vec3 {
	return Raymarch(c.Origin, c.Ray(fragX, fragY), time, p).Color
}
