package gpucore

import (
	"encoding/binary"
	"math"
)

// View is the fixed uniform block bound at group 0, binding 0.
//
// WGSL layout (offsets in bytes):
//
//	struct View {
//	    projection: mat4x4<f32>,  // 0
//	    model: mat4x4<f32>,       // 64
//	    color: vec4<f32>,         // 128
//	    leftBottom: vec2<f32>,    // 144
//	    rightTop: vec2<f32>,      // 152
//	    min: vec2<f32>,           // 160
//	    max: vec2<f32>,           // 168
//	    size: vec2<f32>,          // 176
//	}                             // 192 after struct alignment
//
// Matrices are column-major.
type View struct {
	Projection [16]float32
	Model      [16]float32
	Color      Color
	LeftBottom [2]float32
	RightTop   [2]float32
	Min        [2]float32
	Max        [2]float32
	Size       [2]float32
}

// ViewSize is the byte size of the packed [View] block.
const ViewSize = 192

// Identity is the 4x4 identity matrix.
var Identity = [16]float32{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Bytes packs the view into its uniform buffer layout.
func (v *View) Bytes() []byte {
	out := make([]byte, ViewSize)
	put := func(off int, f float32) {
		binary.LittleEndian.PutUint32(out[off:], math.Float32bits(f))
	}
	for i, f := range v.Projection {
		put(i*4, f)
	}
	for i, f := range v.Model {
		put(64+i*4, f)
	}
	put(128, v.Color.R)
	put(132, v.Color.G)
	put(136, v.Color.B)
	put(140, v.Color.A)
	pairs := [...][2]float32{v.LeftBottom, v.RightTop, v.Min, v.Max, v.Size}
	for i, p := range pairs {
		put(144+i*8, p[0])
		put(148+i*8, p[1])
	}
	return out
}

// Transform applies projection*model to (x, y, 0, 1) and returns clip x, y.
func (v *View) Transform(x, y float32) (float32, float32) {
	mx, my, mw := apply(&v.Model, x, y)
	if mw != 0 && mw != 1 {
		mx, my = mx/mw, my/mw
	}
	cx, cy, cw := apply(&v.Projection, mx, my)
	if cw != 0 && cw != 1 {
		cx, cy = cx/cw, cy/cw
	}
	return cx, cy
}

func apply(m *[16]float32, x, y float32) (float32, float32, float32) {
	return m[0]*x + m[4]*y + m[12],
		m[1]*x + m[5]*y + m[13],
		m[3]*x + m[7]*y + m[15]
}
