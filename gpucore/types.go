package gpucore

import (
	"encoding/binary"
	"errors"
	"math"
)

// Resource IDs
//
// These opaque IDs represent device resources. Each device maintains a
// mapping between IDs and the actual backend resources.

// TextureID is an opaque handle to a texture or render target.
type TextureID uint64

// MeshID is an opaque handle to a persistent vertex buffer.
type MeshID uint64

// ProgramID is an opaque handle to a compiled render program.
type ProgramID uint64

// InvalidID is the zero value, representing an invalid/null resource.
const InvalidID = 0

// Device errors.
var (
	// ErrUnknownResource is returned when an ID does not name a live resource.
	ErrUnknownResource = errors.New("gpucore: unknown resource")

	// ErrMeshSize is returned when a mesh rewrite changes the vertex count.
	ErrMeshSize = errors.New("gpucore: mesh vertex count mismatch")

	// ErrUnsupportedProgram is returned by devices that cannot run caller code.
	ErrUnsupportedProgram = errors.New("gpucore: program not supported by device")

	// ErrInvalidTexture is returned for zero sizes or short pixel data.
	ErrInvalidTexture = errors.New("gpucore: invalid texture")
)

// Vertex is a 2D position with a texture coordinate.
// Layout matches the vertex buffer: location 0 = position, location 1 = uv.
type Vertex struct {
	X, Y float32
	U, V float32
}

// VertexStride is the byte size of one [Vertex] in a vertex buffer.
const VertexStride = 16

// EncodeVertices packs vertices into little-endian float32 bytes.
func EncodeVertices(vertices []Vertex) []byte {
	out := make([]byte, len(vertices)*VertexStride)
	for i, v := range vertices {
		o := i * VertexStride
		binary.LittleEndian.PutUint32(out[o:], math.Float32bits(v.X))
		binary.LittleEndian.PutUint32(out[o+4:], math.Float32bits(v.Y))
		binary.LittleEndian.PutUint32(out[o+8:], math.Float32bits(v.U))
		binary.LittleEndian.PutUint32(out[o+12:], math.Float32bits(v.V))
	}
	return out
}

// TextureDesc describes a texture to create. Pixel data is always RGBA8,
// row-major, top row first.
type TextureDesc struct {
	Label  string
	Width  int
	Height int

	// RenderTarget marks the texture as a draw destination that can be
	// cleared, drawn into and read back.
	RenderTarget bool
}

// ProgramKind identifies the fixed shape a program was composed from.
type ProgramKind uint8

// Program kinds.
const (
	// ProgramTextured samples texture0 and lets caller code post-process it.
	ProgramTextured ProgramKind = iota + 1

	// ProgramSolid writes view.color.
	ProgramSolid

	// ProgramCoordinate runs caller code over logical x/y coordinates.
	ProgramCoordinate
)

// String returns the kind name.
func (k ProgramKind) String() string {
	switch k {
	case ProgramTextured:
		return "textured"
	case ProgramSolid:
		return "solid"
	case ProgramCoordinate:
		return "coordinate"
	default:
		return "unknown"
	}
}

// UniformSlot describes one caller constant bound in group 1.
type UniformSlot struct {
	Name       string
	Binding    uint32
	Components int
}

// ProgramDesc describes a render program.
type ProgramDesc struct {
	Label string
	Kind  ProgramKind

	// WGSL is the complete module with vs_main and fs_main entry points.
	WGSL string

	// SPIRV optionally carries precompiled words for WGSL.
	SPIRV []uint32

	// Slots lists group 1 bindings in binding order.
	Slots []UniformSlot

	// Custom reports that the source contains caller-supplied code.
	Custom bool
}

// Color is a straight-alpha color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// DrawCall is a single triangle-list draw into a render target.
type DrawCall struct {
	Label   string
	Target  TextureID
	Program ProgramID

	// Mesh selects a persistent mesh. When it is InvalidID, Vertices are
	// uploaded for this call only.
	Mesh     MeshID
	Vertices []Vertex

	// Texture is bound as texture0. InvalidID binds a 1x1 white texel.
	Texture TextureID

	View View

	// Constants holds one packed payload per program slot, in slot order.
	Constants [][]byte
}

// Device is the draw backend a window configures and drives.
type Device interface {
	// Name returns the device identifier (e.g. "software", "native").
	Name() string

	// CreateTexture creates a texture. rgba may be nil for render targets;
	// otherwise it must hold Width*Height*4 bytes.
	CreateTexture(desc TextureDesc, rgba []byte) (TextureID, error)

	// DestroyTexture releases a texture. Unknown IDs are ignored.
	DestroyTexture(id TextureID)

	// CreateMesh creates a persistent vertex buffer.
	CreateMesh(label string, vertices []Vertex) (MeshID, error)

	// WriteMesh replaces mesh contents in place. The vertex count must not change.
	WriteMesh(id MeshID, vertices []Vertex) error

	// DestroyMesh releases a mesh. Unknown IDs are ignored.
	DestroyMesh(id MeshID)

	// CreateProgram builds a render program.
	CreateProgram(desc *ProgramDesc) (ProgramID, error)

	// DestroyProgram releases a program. Unknown IDs are ignored.
	DestroyProgram(id ProgramID)

	// Clear fills a render target with c.
	Clear(target TextureID, c Color) error

	// Draw executes a draw call and waits for it to complete.
	Draw(call *DrawCall) error

	// ReadPixels returns the render target as RGBA8, top row first.
	ReadPixels(target TextureID) ([]byte, error)

	// Destroy releases every resource owned by the device.
	Destroy()
}

// SPIRVConsumer is implemented by devices that accept precompiled SPIR-V in
// [ProgramDesc]. Callers compile programs carrying caller code before
// CreateProgram when AcceptsSPIRV reports true.
type SPIRVConsumer interface {
	AcceptsSPIRV() bool
}
