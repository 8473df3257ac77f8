// Package shader holds the Kage rendition of the cloud evaluator and the
// uniform block that feeds it. The bytes compiled by the viewer and the bytes
// offered for export are produced by the same function.
package shader

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"reflect"
	"sync"
)

//go:embed cloud.kage
var body []byte

const header = `// Volumetric cloud shader (Kage).
// Uniforms are set once per frame by the cloud viewer.

//kage:unit pixels

package main

`

var source = sync.OnceValue(build)

// Source returns the complete Kage program compiled by the viewer.
func Source() []byte {
	return bytes.Clone(source())
}

// Export returns the shader source offered for download. It is identical to
// Source.
func Export() []byte {
	return Source()
}

// WriteFile saves the exported shader source to path.
func WriteFile(path string) error {
	if err := os.WriteFile(path, Export(), 0o644); err != nil {
		return fmt.Errorf("write shader source: %w", err)
	}
	return nil
}

func build() []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString("// Uniform variables.\n")
	for _, u := range uniformDecls() {
		fmt.Fprintf(&buf, "var %s %s\n", u.name, u.kind)
	}
	buf.WriteString("\n")
	buf.Write(body)
	return buf.Bytes()
}

type declaration struct {
	name  string
	kind  string
	field int
}

var uniformDecls = sync.OnceValue(func() []declaration {
	t := reflect.TypeOf(Uniforms{})
	decls := make([]declaration, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, ok := f.Tag.Lookup("uniform")
		if !ok {
			continue
		}
		decls = append(decls, declaration{name: name, kind: kageType(f.Type), field: i})
	}
	return decls
})

func kageType(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.Int, reflect.Int32:
		return "int"
	case reflect.Array:
		if t.Elem().Kind() == reflect.Float32 || t.Elem().Kind() == reflect.Float64 {
			switch t.Len() {
			case 2:
				return "vec2"
			case 3:
				return "vec3"
			case 4:
				return "vec4"
			}
		}
	}
	panic(fmt.Sprintf("shader: no Kage type for %s", t))
}
