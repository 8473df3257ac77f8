//go:build ebiten

package shader

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestSourceCompiles(t *testing.T) {
	if _, err := ebiten.NewShader(Source()); err != nil {
		t.Fatalf("compile shader: %v", err)
	}
}

func TestBrokenSourceIsRejected(t *testing.T) {
	src := append(Source(), []byte("\nfunc broken( vec3 {\n")...)
	if _, err := ebiten.NewShader(src); err == nil {
		t.Fatal("expected a compile error for malformed source")
	}
}
