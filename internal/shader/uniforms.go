package shader

import (
	"reflect"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/zzkarna/optimized-cloud-generator/internal/cloud"
	"github.com/zzkarna/optimized-cloud-generator/internal/core"
)

// Uniforms mirrors the uniform block of the shader. Integer parameters are
// carried as floats and compared against the loop index in the shader.
type Uniforms struct {
	Time       float32    `uniform:"Time"`
	Frame      float32    `uniform:"Frame"`
	Resolution [2]float32 `uniform:"Resolution"`

	StepSize        float32 `uniform:"StepSize"`
	MaxSteps        float32 `uniform:"MaxSteps"`
	LightSampleDist float32 `uniform:"LightSampleDist"`
	SunIntensity    float32 `uniform:"SunIntensity"`
	NoiseScale      float32 `uniform:"NoiseScale"`
	NoiseOctaves    float32 `uniform:"NoiseOctaves"`
	CloudDensity    float32 `uniform:"CloudDensity"`
	CloudHeight     float32 `uniform:"CloudHeight"`
	WindSpeed       float32 `uniform:"WindSpeed"`

	SunDirection [3]float32 `uniform:"SunDirection"`
	SunColor     [3]float32 `uniform:"SunColor"`
	SkyColor     [3]float32 `uniform:"SkyColor"`
}

// FromParams fills the uniform block for one frame. resolution is the size
// fragment coordinates are divided by.
func FromParams(p cloud.Params, frame core.Frame, resolution mgl64.Vec2) Uniforms {
	return Uniforms{
		Time:       float32(frame.Time),
		Frame:      float32(frame.Index),
		Resolution: [2]float32{float32(resolution[0]), float32(resolution[1])},

		StepSize:        float32(p.StepSize),
		MaxSteps:        float32(p.Steps()),
		LightSampleDist: float32(p.LightSampleDist),
		SunIntensity:    float32(p.SunIntensity),
		NoiseScale:      float32(p.NoiseScale),
		NoiseOctaves:    float32(p.Octaves()),
		CloudDensity:    float32(p.CloudDensity),
		CloudHeight:     float32(p.CloudHeight),
		WindSpeed:       float32(p.WindSpeed),

		SunDirection: vec3f(p.SunDirection),
		SunColor:     vec3f(p.SunColor),
		SkyColor:     vec3f(p.SkyColor),
	}
}

// Map returns the uniforms keyed by their shader names, in the form accepted
// by ebiten.DrawRectShaderOptions.
func (u Uniforms) Map() map[string]any {
	v := reflect.ValueOf(u)
	m := make(map[string]any, v.NumField())
	for _, d := range uniformDecls() {
		f := v.Field(d.field)
		switch f.Kind() {
		case reflect.Array:
			s := make([]float32, f.Len())
			for i := range s {
				s[i] = float32(f.Index(i).Float())
			}
			m[d.name] = s
		case reflect.Float32, reflect.Float64:
			m[d.name] = float32(f.Float())
		default:
			m[d.name] = f.Interface()
		}
	}
	return m
}

func vec3f(v mgl64.Vec3) [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}
