package shader

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/zzkarna/optimized-cloud-generator/internal/cloud"
	"github.com/zzkarna/optimized-cloud-generator/internal/core"
)

func TestExportMatchesCompiledSource(t *testing.T) {
	if !bytes.Equal(Source(), Export()) {
		t.Fatal("exported shader differs from compiled source")
	}
	if !bytes.HasSuffix(Source(), body) {
		t.Fatal("source does not end with the evaluator body")
	}
}

func TestSourceDeclaresEveryUniform(t *testing.T) {
	src := string(Source())
	for _, decl := range []string{
		"var Time float\n",
		"var Frame float\n",
		"var Resolution vec2\n",
		"var StepSize float\n",
		"var MaxSteps float\n",
		"var LightSampleDist float\n",
		"var SunIntensity float\n",
		"var NoiseScale float\n",
		"var NoiseOctaves float\n",
		"var CloudDensity float\n",
		"var CloudHeight float\n",
		"var WindSpeed float\n",
		"var SunDirection vec3\n",
		"var SunColor vec3\n",
		"var SkyColor vec3\n",
	} {
		if !strings.Contains(src, decl) {
			t.Fatalf("source missing declaration %q", decl)
		}
	}
	unit := strings.Index(src, "//kage:unit pixels")
	pkg := strings.Index(src, "package main")
	if unit < 0 || pkg < 0 || unit > pkg {
		t.Fatal("unit directive must precede the package clause")
	}
	if !strings.Contains(src, "func Fragment(") {
		t.Fatal("source missing Fragment entry point")
	}
}

func TestSourceReturnsCopy(t *testing.T) {
	a := Source()
	a[0] = 'X'
	if Source()[0] == 'X' {
		t.Fatal("Source exposes shared buffer")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloud.kage")
	if err := WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, Source()) {
		t.Fatal("written file differs from compiled source")
	}
}

func TestFromParamsCapsLoops(t *testing.T) {
	p := cloud.DefaultParams()
	p.NoiseOctaves = 20
	p.MaxSteps = 180
	u := FromParams(p, core.Frame{Time: 1.5, Index: 90}, mgl64.Vec2{800, 600})
	if u.NoiseOctaves != cloud.MaxNoiseOctaves || u.MaxSteps != cloud.MaxMarchSteps {
		t.Fatalf("loop bounds not capped: octaves %v steps %v", u.NoiseOctaves, u.MaxSteps)
	}
	if u.Time != 1.5 || u.Frame != 90 {
		t.Fatalf("frame not copied: %v %v", u.Time, u.Frame)
	}
	if u.Resolution != [2]float32{800, 600} {
		t.Fatalf("resolution = %v", u.Resolution)
	}
}

func TestUniformMap(t *testing.T) {
	p := cloud.DefaultParams()
	m := FromParams(p, core.Frame{}, mgl64.Vec2{800, 600}).Map()
	if len(m) != 15 {
		t.Fatalf("map has %d entries, want 15", len(m))
	}
	step, ok := m["StepSize"].(float32)
	if !ok || step != float32(p.StepSize) {
		t.Fatalf("StepSize = %#v", m["StepSize"])
	}
	sky, ok := m["SkyColor"].([]float32)
	if !ok || len(sky) != 3 || sky[2] != 1 {
		t.Fatalf("SkyColor = %#v", m["SkyColor"])
	}
	res, ok := m["Resolution"].([]float32)
	if !ok || len(res) != 2 || res[0] != 800 {
		t.Fatalf("Resolution = %#v", m["Resolution"])
	}
}

func TestHashPeriodMatchesEvaluator(t *testing.T) {
	period := strconv.Itoa(cloud.HashPeriod) + ".0"
	src := string(Source())
	for _, want := range []string{
		"x - " + period + "*floor(x/" + period + ")",
		"return h / " + period,
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("shader hash does not use period %s: missing %q", period, want)
		}
	}
}
