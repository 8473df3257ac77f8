package cloud

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func samplePoints() []mgl64.Vec3 {
	var pts []mgl64.Vec3
	for x := -3.0; x <= 3.0; x += 0.37 {
		for y := -2.5; y <= 2.5; y += 0.41 {
			for z := -3.0; z <= 3.0; z += 0.53 {
				pts = append(pts, mgl64.Vec3{x, y, z})
			}
		}
	}
	return pts
}

func TestHashDeterministicAndInRange(t *testing.T) {
	for _, p := range samplePoints() {
		h := Hash(p)
		if h < 0 || h >= 1 {
			t.Fatalf("Hash(%v) = %v, want [0,1)", p, h)
		}
		if again := Hash(p); again != h {
			t.Fatalf("Hash(%v) not repeatable: %v vs %v", p, h, again)
		}
	}
}

// mod289f32 and hash32 run the lattice hash in float32, the precision the
// Kage shader evaluates it in.
func mod289f32(x float32) float32 {
	m := x - 289*float32(math.Floor(float64(x/289)))
	if m >= 289 {
		m -= 289
	}
	if m < 0 {
		m += 289
	}
	return m
}

func hash32(p [3]float32) float32 {
	permute := func(x float32) float32 { return mod289f32((34*x + 1) * x) }
	var q [3]float32
	for k := range p {
		q[k] = float32(math.Floor(float64(p[k])))
	}
	h := permute(permute(permute(mod289f32(q[0]))+mod289f32(q[1])) + mod289f32(q[2]))
	return h / 289
}

func noise32(p [3]float32) float32 {
	var i, f [3]float32
	for k := range p {
		i[k] = float32(math.Floor(float64(p[k])))
		f[k] = p[k] - i[k]
		f[k] = f[k] * f[k] * (3 - 2*f[k])
	}
	corner := func(x, y, z float32) float32 {
		return hash32([3]float32{i[0] + x, i[1] + y, i[2] + z})
	}
	mix := func(a, b, t float32) float32 { return a + (b-a)*t }
	n := mix(
		mix(mix(corner(0, 0, 0), corner(1, 0, 0), f[0]),
			mix(corner(0, 1, 0), corner(1, 1, 0), f[0]),
			f[1]),
		mix(mix(corner(0, 0, 1), corner(1, 0, 1), f[0]),
			mix(corner(0, 1, 1), corner(1, 1, 1), f[0]),
			f[1]),
		f[2],
	)
	return n*2 - 1
}

func vec32(p mgl64.Vec3) [3]float32 {
	return [3]float32{float32(p[0]), float32(p[1]), float32(p[2])}
}

func TestHashExactInSinglePrecision(t *testing.T) {
	var lattice []mgl64.Vec3
	for _, base := range []float64{0, -300, 1000, -52_000, 131_072} {
		for x := -6.0; x <= 6; x++ {
			for y := -6.0; y <= 6; y++ {
				for z := -3.0; z <= 3; z++ {
					lattice = append(lattice, mgl64.Vec3{base + x, y - base/2, z + base/3})
				}
			}
		}
	}
	for _, q := range lattice {
		q = floor3(q)
		got := Hash(q)
		want := float64(hash32(vec32(q)))
		// The permuted integers agree exactly; only the final division rounds.
		if math.Round(got*HashPeriod) != math.Round(want*HashPeriod) || math.Abs(got-want) > 1e-6 {
			t.Fatalf("Hash(%v) = %v, float32 gives %v", q, got, want)
		}
	}
}

func TestHashDistinctAlongRow(t *testing.T) {
	// (34x+1)x is a permutation modulo 289, so one row of cells never repeats
	// within a period.
	for _, row := range []mgl64.Vec3{{0, 0, 0}, {0, 7, -3}, {-140, 2, 11}} {
		seen := map[float64]bool{}
		for x := 0.0; x < HashPeriod; x++ {
			h := Hash(row.Add(mgl64.Vec3{x, 0, 0}))
			if seen[h] {
				t.Fatalf("Hash repeats %v along row %v at x+%v", h, row, x)
			}
			seen[h] = true
		}
	}
}

func TestNoiseStableInSinglePrecision(t *testing.T) {
	worst := 0.0
	for _, p := range samplePoints() {
		p = p.Mul(2.3)
		d := math.Abs(Noise(p) - float64(noise32(vec32(p))))
		worst = math.Max(worst, d)
	}
	if worst > 1e-4 {
		t.Fatalf("float32 noise differs by up to %v", worst)
	}
}

func TestNoiseRange(t *testing.T) {
	for _, p := range samplePoints() {
		n := Noise(p.Mul(2.3))
		if n < -1 || n > 1 {
			t.Fatalf("Noise(%v) = %v, want [-1,1]", p, n)
		}
	}
}

func TestNoiseMatchesHashOnLattice(t *testing.T) {
	for x := -2.0; x <= 2; x++ {
		for z := -2.0; z <= 2; z++ {
			p := mgl64.Vec3{x, 1, z}
			if got, want := Noise(p), Hash(p)*2-1; got != want {
				t.Fatalf("Noise(%v) = %v, want %v", p, got, want)
			}
		}
	}
}

func TestFBMZeroOctavesIsFlat(t *testing.T) {
	for _, p := range samplePoints() {
		if v := FBM(p, 2, 0); v != 0 {
			t.Fatalf("FBM(%v, 2, 0) = %v, want 0", p, v)
		}
		if v := FBM(p, 3.5, -4); v != 0 {
			t.Fatalf("FBM(%v, 3.5, -4) = %v, want 0", p, v)
		}
	}
}

func TestFBMSingleOctave(t *testing.T) {
	p := mgl64.Vec3{0.3, -0.7, 1.1}
	if got, want := FBM(p, 2, 1), 0.5*Noise(p.Mul(2)); got != want {
		t.Fatalf("FBM single octave = %v, want %v", got, want)
	}
}

func TestFBMOctavesAreCapped(t *testing.T) {
	for _, p := range samplePoints()[:200] {
		capped := FBM(p, 2, MaxNoiseOctaves)
		if over := FBM(p, 2, MaxNoiseOctaves+12); over != capped {
			t.Fatalf("FBM beyond cap changed value at %v: %v vs %v", p, over, capped)
		}
	}
}

func TestDensityZeroOutsideSphere(t *testing.T) {
	for _, height := range []float64{0.5, 1, 1.5, 3} {
		p := DefaultParams()
		p.CloudHeight = height
		radius := 1.5 * height
		for _, pos := range samplePoints() {
			if pos.Len() < radius {
				continue
			}
			for _, tm := range []float64{0, 1.7, 42} {
				if d := Density(pos, tm, p); d != 0 {
					t.Fatalf("height %v: Density(%v, %v) = %v outside radius %v", height, pos, tm, d, radius)
				}
			}
		}
	}
}

func TestDensityNonNegative(t *testing.T) {
	p := DefaultParams()
	for _, pos := range samplePoints() {
		if d := Density(pos, 3, p); d < 0 {
			t.Fatalf("Density(%v) = %v, want >= 0", pos, d)
		}
	}
}

func TestDensityZeroWithoutCloudDensity(t *testing.T) {
	p := DefaultParams()
	p.CloudDensity = 0
	for _, pos := range samplePoints() {
		if d := Density(pos, 0, p); d != 0 {
			t.Fatalf("Density(%v) = %v with CloudDensity 0", pos, d)
		}
	}
}

func TestDensityDegenerateHeightIsEmpty(t *testing.T) {
	for _, h := range []float64{0, -1} {
		p := DefaultParams()
		p.CloudHeight = h
		for _, pos := range samplePoints() {
			if d := Density(pos, 0, p); d != 0 {
				t.Fatalf("CloudHeight %v: Density(%v) = %v", h, pos, d)
			}
		}
	}
}

func TestDensityRespondsToOctaves(t *testing.T) {
	one := DefaultParams()
	one.NoiseOctaves = 1
	five := DefaultParams()
	five.NoiseOctaves = 5

	origin := mgl64.Vec3{}
	d1 := Density(origin, 0, one)
	d5 := Density(origin, 0, five)
	if d1 <= 0 || d5 <= 0 {
		t.Fatalf("expected occupied sample at the origin, got %v and %v", d1, d5)
	}
	if d1 == d5 {
		t.Fatalf("density did not change with octaves: %v", d1)
	}
}

func TestDensityWindAdvectsAlongX(t *testing.T) {
	p := DefaultParams()
	p.WindSpeed = 0.5
	pos := mgl64.Vec3{0.2, 0.1, -0.3}

	// After two seconds the noise has drifted one unit along X while the
	// falloff stays centered on the origin.
	base := 1 - pos.Len()/p.Radius()
	noise := FBM(pos.Add(mgl64.Vec3{1, 0, 0}), p.NoiseScale, p.NoiseOctaves)
	want := math.Max(0, base+0.5*noise) * p.CloudDensity
	if got := Density(pos, 2, p); math.Abs(got-want) > 1e-12 {
		t.Fatalf("Density with wind = %v, want %v", got, want)
	}
}

func TestRaymarchZeroStepsReturnsSky(t *testing.T) {
	p := DefaultParams()
	p.MaxSteps = 0
	cam := DefaultCamera()
	res := Raymarch(cam.Origin, mgl64.Vec3{0, 0, 1}, 0, p)
	if res.Color != p.SkyColor {
		t.Fatalf("color = %v, want sky %v", res.Color, p.SkyColor)
	}
	if res.Transmittance != 1 || res.Steps != 0 {
		t.Fatalf("transmittance %v steps %d, want 1 and 0", res.Transmittance, res.Steps)
	}
}

func TestRaymarchNonPositiveStepReturnsSky(t *testing.T) {
	p := DefaultParams()
	p.StepSize = -0.05
	res := Raymarch(mgl64.Vec3{0, 0, -3}, mgl64.Vec3{0, 0, 1}, 0, p)
	if res.Color != p.SkyColor || res.Transmittance != 1 {
		t.Fatalf("negative step: got %v / %v, want sky and full transmittance", res.Color, res.Transmittance)
	}
}

func TestRaymarchStepsAreCapped(t *testing.T) {
	p := DefaultParams()
	p.StepSize = 0.01 // too short to reach opacity within the cap
	capped := Raymarch(mgl64.Vec3{0, 0, -3}, mgl64.Vec3{0, 0, 1}, 0, p)
	p.MaxSteps = 5000
	over := Raymarch(mgl64.Vec3{0, 0, -3}, mgl64.Vec3{0, 0, 1}, 0, p)
	if capped != over {
		t.Fatalf("MaxSteps beyond cap changed result: %+v vs %+v", capped, over)
	}
	if over.Steps > MaxMarchSteps {
		t.Fatalf("took %d steps, cap is %d", over.Steps, MaxMarchSteps)
	}
}

func TestTransmittanceMonotonic(t *testing.T) {
	p := DefaultParams()
	cam := DefaultCamera()
	for _, frag := range [][2]float64{{400, 300}, {300, 250}, {520, 410}, {10, 590}} {
		prev := 1.0
		n := 0
		Trace(cam.Origin, cam.Ray(frag[0], frag[1]), 0.75, p, func(s Sample) {
			n++
			if s.Transmittance > prev {
				t.Fatalf("frag %v step %d: transmittance rose %v -> %v", frag, s.Index, prev, s.Transmittance)
			}
			if s.Transmittance < 0 || s.Transmittance > 1 {
				t.Fatalf("frag %v step %d: transmittance %v out of [0,1]", frag, s.Index, s.Transmittance)
			}
			prev = s.Transmittance
		})
		if n == 0 {
			t.Fatalf("frag %v: no samples reported", frag)
		}
	}
}

func TestSunColorDoesNotAffectTransmittance(t *testing.T) {
	warm := DefaultParams()
	cold := warm
	cold.SunColor = mgl64.Vec3{0.1, 0.2, 1}

	cam := DefaultCamera()
	dir := cam.Ray(410, 290)
	var a, b []float64
	Trace(cam.Origin, dir, 0, warm, func(s Sample) { a = append(a, s.Transmittance) })
	Trace(cam.Origin, dir, 0, cold, func(s Sample) { b = append(b, s.Transmittance) })

	if len(a) != len(b) {
		t.Fatalf("sample count differs: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d transmittance %v vs %v", i, a[i], b[i])
		}
	}
}

func TestRaymarchDeterministic(t *testing.T) {
	p := DefaultParams()
	cam := DefaultCamera()
	dir := cam.Ray(380, 320)
	first := Raymarch(cam.Origin, dir, 1.25, p)
	second := Raymarch(cam.Origin, dir, 1.25, p)
	if first != second {
		t.Fatalf("raymarch not deterministic: %+v vs %+v", first, second)
	}
}

func TestDefaultSceneCenterAndGrazingRays(t *testing.T) {
	p := DefaultParams()
	cam := DefaultCamera()

	center := Raymarch(cam.Origin, mgl64.Vec3{0, 0, 1}, 0, p)
	if center.Transmittance >= 0.9 {
		t.Fatalf("center ray barely attenuated: transmittance %v", center.Transmittance)
	}
	if center.Color == p.SkyColor {
		t.Fatal("center ray shows plain sky")
	}

	// The corner ray passes the center at ~2.45 units, outside the 2.25 radius.
	miss := Raymarch(cam.Origin, cam.Ray(0.5, 0.5), 0, p)
	if miss.Transmittance != 1 {
		t.Fatalf("grazing ray transmittance = %v, want 1", miss.Transmittance)
	}
	if miss.Color != p.SkyColor {
		t.Fatalf("grazing ray color = %v, want sky %v", miss.Color, p.SkyColor)
	}
}

func TestCameraMapsReferenceResolution(t *testing.T) {
	cam := DefaultCamera()
	if uv := cam.UV(400, 300); uv != (mgl64.Vec2{0, 0}) {
		t.Fatalf("center uv = %v", uv)
	}
	if uv := cam.UV(0, 0); uv != (mgl64.Vec2{-1, -1}) {
		t.Fatalf("corner uv = %v", uv)
	}
	if uv := cam.UV(800, 600); uv != (mgl64.Vec2{1, 1}) {
		t.Fatalf("far corner uv = %v", uv)
	}
	dir := cam.Ray(400, 300)
	if dir != (mgl64.Vec3{0, 0, 1}) {
		t.Fatalf("center ray = %v", dir)
	}
	if l := cam.Ray(13, 577).Len(); math.Abs(l-1) > 1e-12 {
		t.Fatalf("ray not normalized: %v", l)
	}
}

func TestParamsCaps(t *testing.T) {
	p := DefaultParams()
	p.NoiseOctaves = 40
	p.MaxSteps = 200
	if p.Octaves() != MaxNoiseOctaves || p.Steps() != MaxMarchSteps {
		t.Fatalf("caps not applied: %d %d", p.Octaves(), p.Steps())
	}
	p.NoiseOctaves = -2
	p.MaxSteps = -1
	if p.Octaves() != 0 || p.Steps() != 0 {
		t.Fatalf("negative values not floored: %d %d", p.Octaves(), p.Steps())
	}
}
