package core

import "fmt"

// Size describes the dimensions of a canvas or frame buffer in pixels.
type Size struct {
	W int
	H int
}

// Frame identifies one display refresh: seconds since the clock started and
// the number of frames produced before it.
type Frame struct {
	Time  float64
	Index uint64
}

// Backend selects where per-pixel evaluation runs.
type Backend int

const (
	// BackendShader evaluates the cloud in a Kage fragment shader.
	BackendShader Backend = iota
	// BackendSoftware evaluates the cloud on the CPU worker pool.
	BackendSoftware
)

// String returns the flag spelling of the backend.
func (b Backend) String() string {
	switch b {
	case BackendShader:
		return "shader"
	case BackendSoftware:
		return "software"
	default:
		return fmt.Sprintf("backend(%d)", int(b))
	}
}

// ParseBackend maps a flag value to a Backend.
func ParseBackend(name string) (Backend, error) {
	switch name {
	case "shader", "gpu":
		return BackendShader, nil
	case "software", "cpu":
		return BackendSoftware, nil
	}
	return BackendShader, fmt.Errorf("unknown backend %q", name)
}
