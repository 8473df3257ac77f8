package scene

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	css "github.com/mazznoer/csscolorparser"

	"github.com/zzkarna/optimized-cloud-generator/internal/cloud"
)

// Config controls the canvas and the initial cloud parameters.
type Config struct {
	Width  int
	Height int

	// Fit divides fragment coordinates by the canvas size instead of the
	// fixed reference resolution.
	Fit bool

	Params cloud.Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  cloud.ReferenceWidth,
		Height: cloud.ReferenceHeight,
		Params: cloud.DefaultParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse leave the default in place.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["fit"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Fit = parsed
		}
	}
	for key, v := range cfg {
		switch key {
		case "w", "h", "fit":
			continue
		}
		_ = c.Set(key, v)
	}
	return c
}

// Set parses value and assigns it to the cloud parameter named key.
func (c *Config) Set(key, value string) error {
	p := &c.Params
	switch key {
	case KeyMaxSteps, KeyNoiseOctaves:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("parse %s: %w", key, err)
		}
		if parsed < 0 {
			return fmt.Errorf("%s must not be negative, got %d", key, parsed)
		}
		if key == KeyMaxSteps {
			p.MaxSteps = parsed
		} else {
			p.NoiseOctaves = parsed
		}
		return nil
	case KeySunColor, KeySkyColor:
		col, err := ParseColor(value)
		if err != nil {
			return err
		}
		if key == KeySunColor {
			p.SunColor = col
		} else {
			p.SkyColor = col
		}
		return nil
	}

	field := floatField(p, key)
	if field == nil {
		return fmt.Errorf("unknown parameter %q", key)
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return fmt.Errorf("%s must be finite, got %v", key, parsed)
	}
	*field = parsed
	return nil
}

// floatField returns a pointer to the float parameter named key, or nil.
func floatField(p *cloud.Params, key string) *float64 {
	switch key {
	case KeyStepSize:
		return &p.StepSize
	case KeyLightSampleDist:
		return &p.LightSampleDist
	case KeySunIntensity:
		return &p.SunIntensity
	case KeyNoiseScale:
		return &p.NoiseScale
	case KeyCloudDensity:
		return &p.CloudDensity
	case KeyCloudHeight:
		return &p.CloudHeight
	case KeyWindSpeed:
		return &p.WindSpeed
	case KeySunX:
		return &p.SunDirection[0]
	case KeySunY:
		return &p.SunDirection[1]
	case KeySunZ:
		return &p.SunDirection[2]
	}
	return nil
}

// ParseColor decodes any CSS color (for example "#ffa94d" or "skyblue") into
// normalized RGB. Alpha is discarded.
func ParseColor(s string) (mgl64.Vec3, error) {
	c, err := css.Parse(s)
	if err != nil {
		return mgl64.Vec3{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return mgl64.Vec3{c.R, c.G, c.B}, nil
}

// FormatColor encodes a normalized RGB color as "#rrggbb".
func FormatColor(c mgl64.Vec3) string {
	return fmt.Sprintf("#%02x%02x%02x", channel8(c[0]), channel8(c[1]), channel8(c[2]))
}

func channel8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
