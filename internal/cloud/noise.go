package cloud

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// HashPeriod is the lattice period of Hash. Each intermediate of the
// permutation below stays under 2^24, so the arithmetic is exact in float32
// and the Kage shader reproduces it bit for bit.
const HashPeriod = 289

// Hash maps the lattice cell containing p to a repeatable pseudo-random value
// in [0, 1). Coordinates are reduced modulo HashPeriod and mixed by the
// polynomial permutation (34x+1)x.
func Hash(p mgl64.Vec3) float64 {
	q := floor3(p)
	h := permute(permute(permute(mod289(q[0]))+mod289(q[1])) + mod289(q[2]))
	return h / HashPeriod
}

// mod289 reduces an integral x into [0, HashPeriod). The corrections absorb
// an off-by-one floor when the division rounds across an integer.
func mod289(x float64) float64 {
	m := x - HashPeriod*math.Floor(x/HashPeriod)
	if m >= HashPeriod {
		m -= HashPeriod
	}
	if m < 0 {
		m += HashPeriod
	}
	return m
}

func permute(x float64) float64 { return mod289((34*x + 1) * x) }

// Noise is value noise in [-1, 1]: the lattice hashes around p blended with
// smoothstep weights so the field has no creases along cell boundaries.
func Noise(p mgl64.Vec3) float64 {
	i := floor3(p)
	f := p.Sub(i)
	for k := range f {
		f[k] = f[k] * f[k] * (3 - 2*f[k])
	}

	corner := func(x, y, z float64) float64 {
		return Hash(i.Add(mgl64.Vec3{x, y, z}))
	}

	n := lerp(
		lerp(lerp(corner(0, 0, 0), corner(1, 0, 0), f[0]),
			lerp(corner(0, 1, 0), corner(1, 1, 0), f[0]),
			f[1]),
		lerp(lerp(corner(0, 0, 1), corner(1, 0, 1), f[0]),
			lerp(corner(0, 1, 1), corner(1, 1, 1), f[0]),
			f[1]),
		f[2],
	)
	return n*2 - 1
}

// FBM sums octaves layers of Noise starting at frequency scale and amplitude
// 0.5, doubling frequency and halving amplitude per layer. At most
// MaxNoiseOctaves layers are summed; octaves <= 0 yields 0. The sum is not
// normalized by the total amplitude.
func FBM(p mgl64.Vec3, scale float64, octaves int) float64 {
	sum := 0.0
	amplitude := 0.5
	frequency := scale
	for i := 0; i < MaxNoiseOctaves; i++ {
		if i >= octaves {
			break
		}
		sum += amplitude * Noise(p.Mul(frequency))
		frequency *= 2
		amplitude *= 0.5
	}
	return sum
}

func floor3(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Floor(v[0]), math.Floor(v[1]), math.Floor(v[2])}
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func mix3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}
