package gpucore

import (
	"encoding/binary"
	"math"
	"testing"
)

func readFloat(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}

func TestViewBytesLayout(t *testing.T) {
	v := View{
		Projection: Identity,
		Model:      Identity,
		Color:      Color{R: 0.25, G: 0.5, B: 0.75, A: 1},
		LeftBottom: [2]float32{-1, -2},
		RightTop:   [2]float32{3, 4},
		Min:        [2]float32{-1, -2},
		Max:        [2]float32{3, 4},
		Size:       [2]float32{4, 6},
	}
	b := v.Bytes()
	if len(b) != ViewSize {
		t.Fatalf("len(Bytes()) = %d, want %d", len(b), ViewSize)
	}

	tests := []struct {
		name string
		off  int
		want float32
	}{
		{"projection[0]", 0, 1},
		{"projection[15]", 60, 1},
		{"model[5]", 84, 1},
		{"color.r", 128, 0.25},
		{"color.a", 140, 1},
		{"leftBottom.y", 148, -2},
		{"rightTop.x", 152, 3},
		{"min.x", 160, -1},
		{"max.y", 172, 4},
		{"size.x", 176, 4},
		{"size.y", 180, 6},
		{"padding", 184, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readFloat(b, tt.off); got != tt.want {
				t.Errorf("offset %d = %v, want %v", tt.off, got, tt.want)
			}
		})
	}
}

func TestViewTransform(t *testing.T) {
	v := View{Projection: Identity, Model: Identity}
	// Translate by (2, 3) in the model matrix (column-major).
	v.Model[12] = 2
	v.Model[13] = 3
	x, y := v.Transform(1, 1)
	if x != 3 || y != 4 {
		t.Errorf("Transform(1, 1) = (%v, %v), want (3, 4)", x, y)
	}
}

func TestEncodeVertices(t *testing.T) {
	b := EncodeVertices([]Vertex{{X: 1, Y: 2, U: 3, V: 4}, {X: 5}})
	if len(b) != 2*VertexStride {
		t.Fatalf("len = %d, want %d", len(b), 2*VertexStride)
	}
	for i, want := range []float32{1, 2, 3, 4, 5, 0, 0, 0} {
		if got := readFloat(b, i*4); got != want {
			t.Errorf("float %d = %v, want %v", i, got, want)
		}
	}
}

func TestProgramKindString(t *testing.T) {
	tests := []struct {
		kind ProgramKind
		want string
	}{
		{ProgramTextured, "textured"},
		{ProgramSolid, "solid"},
		{ProgramCoordinate, "coordinate"},
		{ProgramKind(0), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ProgramKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
