package scene

import (
	"github.com/zzkarna/optimized-cloud-generator/internal/core"
)

// ParameterControls lists the sliders of the control panel with the ranges
// users may drag them across.
func (s *Scene) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		floatControl(KeyStepSize, "Step Size", 0.001, 0.01, 0.2),
		intControl(KeyMaxSteps, "Max Steps", 1, 50, 200),
		floatControl(KeyLightSampleDist, "Light Sample Dist", 0.01, 0.05, 1),
		floatControl(KeySunIntensity, "Sun Intensity", 0.05, 0, 2),
		floatControl(KeyNoiseScale, "Noise Scale", 0.1, 0.5, 5),
		intControl(KeyNoiseOctaves, "Noise Octaves", 1, 1, 8),
		floatControl(KeyCloudDensity, "Cloud Density", 0.01, 0.1, 2),
		floatControl(KeyCloudHeight, "Cloud Height", 0.1, 0.5, 3),
		floatControl(KeyWindSpeed, "Wind Speed", 0.01, 0, 2),
		floatControl(KeySunX, "Sun X", 0.01, -1, 1),
		floatControl(KeySunY, "Sun Y", 0.01, -1, 1),
		floatControl(KeySunZ, "Sun Z", 0.01, -1, 1),
		{Key: KeySunColor, Label: "Sun Color", Type: core.ParamTypeColor},
		{Key: KeySkyColor, Label: "Sky Color", Type: core.ParamTypeColor},
	}
}

// SetIntParameter updates an integer parameter. It reports whether key names
// an integer parameter and value was accepted.
func (s *Scene) SetIntParameter(key string, value int) bool {
	ctrl := s.control(key)
	if ctrl == nil || ctrl.Type != core.ParamTypeInt || !inRange(ctrl, float64(value)) {
		return false
	}
	switch key {
	case KeyMaxSteps:
		s.cfg.Params.MaxSteps = value
	case KeyNoiseOctaves:
		s.cfg.Params.NoiseOctaves = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point parameter.
func (s *Scene) SetFloatParameter(key string, value float64) bool {
	ctrl := s.control(key)
	if ctrl == nil || ctrl.Type != core.ParamTypeFloat || !inRange(ctrl, value) {
		return false
	}
	field := floatField(&s.cfg.Params, key)
	if field == nil {
		return false
	}
	*field = value
	return true
}

// SetColorParameter replaces a color from any CSS color string.
func (s *Scene) SetColorParameter(key string, value string) error {
	switch key {
	case KeySunColor, KeySkyColor:
	default:
		return errUnknownColor(key)
	}
	return s.cfg.Set(key, value)
}

func (s *Scene) control(key string) *core.ParameterControl {
	for _, ctrl := range s.ParameterControls() {
		if ctrl.Key == key {
			return &ctrl
		}
	}
	return nil
}

func inRange(ctrl *core.ParameterControl, v float64) bool {
	if ctrl == nil {
		return false
	}
	if ctrl.HasMin && v < ctrl.Min-1e-9 {
		return false
	}
	if ctrl.HasMax && v > ctrl.Max+1e-9 {
		return false
	}
	return true
}

func intControl(key, label string, step, lo, hi float64) core.ParameterControl {
	return core.ParameterControl{
		Key: key, Label: label, Type: core.ParamTypeInt,
		Step: step, Min: lo, Max: hi, HasMin: true, HasMax: true,
	}
}

func floatControl(key, label string, step, lo, hi float64) core.ParameterControl {
	return core.ParameterControl{
		Key: key, Label: label, Type: core.ParamTypeFloat,
		Step: step, Min: lo, Max: hi, HasMin: true, HasMax: true,
	}
}
