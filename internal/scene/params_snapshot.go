package scene

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/zzkarna/optimized-cloud-generator/internal/core"
)

// Parameter keys shared by FromMap, the HUD and the -set flag.
const (
	KeyStepSize        = "step_size"
	KeyMaxSteps        = "max_steps"
	KeyLightSampleDist = "light_sample_dist"
	KeySunIntensity    = "sun_intensity"
	KeyNoiseScale      = "noise_scale"
	KeyNoiseOctaves    = "noise_octaves"
	KeyCloudDensity    = "cloud_density"
	KeyCloudHeight     = "cloud_height"
	KeyWindSpeed       = "wind_speed"
	KeySunX            = "sun_x"
	KeySunY            = "sun_y"
	KeySunZ            = "sun_z"
	KeySunColor        = "sun_color"
	KeySkyColor        = "sky_color"
)

// Parameters groups the current values the way the control panel shows them.
func (s *Scene) Parameters() core.ParameterSnapshot {
	params := s.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Rendering",
			Params: []core.Parameter{
				floatParam(KeyStepSize, "Step Size", params.StepSize),
				intParam(KeyMaxSteps, "Max Steps", params.MaxSteps),
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				boolParam("fit", "Fit canvas", s.cfg.Fit),
			},
		},
		{
			Name: "Lighting",
			Params: []core.Parameter{
				floatParam(KeyLightSampleDist, "Light Sample Dist", params.LightSampleDist),
				floatParam(KeySunIntensity, "Sun Intensity", params.SunIntensity),
			},
		},
		{
			Name: "Noise",
			Params: []core.Parameter{
				floatParam(KeyNoiseScale, "Noise Scale", params.NoiseScale),
				intParam(KeyNoiseOctaves, "Noise Octaves", params.NoiseOctaves),
			},
		},
		{
			Name: "Cloud Shape",
			Params: []core.Parameter{
				floatParam(KeyCloudDensity, "Cloud Density", params.CloudDensity),
				floatParam(KeyCloudHeight, "Cloud Height", params.CloudHeight),
			},
		},
		{
			Name: "Animation",
			Params: []core.Parameter{
				floatParam(KeyWindSpeed, "Wind Speed", params.WindSpeed),
				boolParam("paused", "Paused", s.paused),
			},
		},
		{
			Name: "Sun Direction",
			Params: []core.Parameter{
				floatParam(KeySunX, "X", params.SunDirection[0]),
				floatParam(KeySunY, "Y", params.SunDirection[1]),
				floatParam(KeySunZ, "Z", params.SunDirection[2]),
			},
		},
		{
			Name: "Colors",
			Params: []core.Parameter{
				colorParam(KeySunColor, "Sun Color", params.SunColor),
				colorParam(KeySkyColor, "Sky Color", params.SkyColor),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func colorParam(key, label string, value mgl64.Vec3) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeColor,
		Value: FormatColor(value),
	}
}
