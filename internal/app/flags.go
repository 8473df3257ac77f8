package app

import (
	"flag"
	"runtime"

	"github.com/zzkarna/optimized-cloud-generator/internal/scene"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Backend   string
	Width     int
	Height    int
	Scale     int
	TPS       int
	Workers   int
	Fit       bool
	ShaderOut string
	Params    string
	Overrides scene.Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Backend:   "shader",
		Scale:     4,
		TPS:       60,
		Workers:   runtime.NumCPU(),
		ShaderOut: "cloud_shader.kage",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Backend, "backend", c.Backend, "evaluation backend: shader or software")
	fs.IntVar(&c.Width, "w", c.Width, "canvas width in pixels (0 keeps 800 or the -params value)")
	fs.IntVar(&c.Height, "h", c.Height, "canvas height in pixels (0 keeps 600 or the -params value)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "software backend downscale factor")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Workers, "workers", c.Workers, "software backend worker goroutines")
	fs.BoolVar(&c.Fit, "fit", c.Fit, "map fragment coordinates by canvas size instead of 800x600")
	fs.StringVar(&c.ShaderOut, "shader-out", c.ShaderOut, "file the shader source is exported to")
	fs.StringVar(&c.Params, "params", c.Params, "file of key=value parameter lines")
	fs.Var(&c.Overrides, "set", "parameter override in key=value form (repeatable)")
}

// SceneConfig layers the canvas flags and overrides over the -params file.
func (c *Config) SceneConfig() (scene.Config, error) {
	return scene.Resolve(c.Params, c.Width, c.Height, c.Fit, c.Overrides)
}
