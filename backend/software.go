package backend

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"github.com/gogpu/plot/gpucore"
)

// init registers the software device on package import.
func init() {
	Register(Software, func() (gpucore.Device, error) {
		return NewSoftwareDevice(), nil
	})
}

// SoftwareDevice is a CPU draw device.
//
// Solid triangles are scan converted with golang.org/x/image/vector and
// textured quads are resampled with golang.org/x/image/draw. A textured
// mesh is treated as one parallelogram spanning the whole texture, which
// is the only textured shape a plot window emits. Programs carrying
// caller WGSL are rejected with [gpucore.ErrUnsupportedProgram].
type SoftwareDevice struct {
	mu       sync.Mutex
	next     uint64
	textures map[gpucore.TextureID]draw.Image
	meshes   map[gpucore.MeshID][]gpucore.Vertex
	programs map[gpucore.ProgramID]gpucore.ProgramKind
	white    *image.NRGBA
	raster   *vector.Rasterizer
}

// NewSoftwareDevice creates a new software device.
func NewSoftwareDevice() *SoftwareDevice {
	white := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	white.Pix[0], white.Pix[1], white.Pix[2], white.Pix[3] = 0xFF, 0xFF, 0xFF, 0xFF
	return &SoftwareDevice{
		textures: make(map[gpucore.TextureID]draw.Image),
		meshes:   make(map[gpucore.MeshID][]gpucore.Vertex),
		programs: make(map[gpucore.ProgramID]gpucore.ProgramKind),
		white:    white,
		raster:   vector.NewRasterizer(0, 0),
	}
}

// Name returns the device identifier.
func (d *SoftwareDevice) Name() string {
	return Software
}

func (d *SoftwareDevice) id() uint64 {
	d.next++
	return d.next
}

// CreateTexture creates a sampled texture or a render target.
// Sampled textures keep straight alpha; render targets are premultiplied.
func (d *SoftwareDevice) CreateTexture(desc gpucore.TextureDesc, rgba []byte) (gpucore.TextureID, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return gpucore.InvalidID, fmt.Errorf("%w: %q is %dx%d", gpucore.ErrInvalidTexture, desc.Label, desc.Width, desc.Height)
	}
	n := desc.Width * desc.Height * 4
	if rgba != nil && len(rgba) < n {
		return gpucore.InvalidID, fmt.Errorf("%w: %q has %d bytes, want %d", gpucore.ErrInvalidTexture, desc.Label, len(rgba), n)
	}

	r := image.Rect(0, 0, desc.Width, desc.Height)
	var img draw.Image
	if desc.RenderTarget {
		dst := image.NewRGBA(r)
		if rgba != nil {
			draw.Draw(dst, r, &image.NRGBA{Pix: rgba[:n], Stride: desc.Width * 4, Rect: r}, image.Point{}, draw.Src)
		}
		img = dst
	} else {
		src := image.NewNRGBA(r)
		if rgba != nil {
			copy(src.Pix, rgba[:n])
		}
		img = src
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	id := gpucore.TextureID(d.id())
	d.textures[id] = img
	return id, nil
}

// DestroyTexture releases a texture.
func (d *SoftwareDevice) DestroyTexture(id gpucore.TextureID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.textures, id)
}

// CreateMesh stores a copy of the vertices.
func (d *SoftwareDevice) CreateMesh(_ string, vertices []gpucore.Vertex) (gpucore.MeshID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := gpucore.MeshID(d.id())
	d.meshes[id] = append([]gpucore.Vertex(nil), vertices...)
	return id, nil
}

// WriteMesh replaces mesh contents in place.
func (d *SoftwareDevice) WriteMesh(id gpucore.MeshID, vertices []gpucore.Vertex) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	m, ok := d.meshes[id]
	if !ok {
		return fmt.Errorf("%w: mesh %d", gpucore.ErrUnknownResource, id)
	}
	if len(m) != len(vertices) {
		return fmt.Errorf("%w: have %d, got %d", gpucore.ErrMeshSize, len(m), len(vertices))
	}
	copy(m, vertices)
	return nil
}

// DestroyMesh releases a mesh.
func (d *SoftwareDevice) DestroyMesh(id gpucore.MeshID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.meshes, id)
}

// CreateProgram records the program kind. Custom programs are rejected.
func (d *SoftwareDevice) CreateProgram(desc *gpucore.ProgramDesc) (gpucore.ProgramID, error) {
	if desc.Custom {
		return gpucore.InvalidID, fmt.Errorf("%w: %q (software device runs no shader code)", gpucore.ErrUnsupportedProgram, desc.Label)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	id := gpucore.ProgramID(d.id())
	d.programs[id] = desc.Kind
	return id, nil
}

// DestroyProgram releases a program.
func (d *SoftwareDevice) DestroyProgram(id gpucore.ProgramID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.programs, id)
}

func (d *SoftwareDevice) target(id gpucore.TextureID) (*image.RGBA, error) {
	img, ok := d.textures[id]
	if !ok {
		return nil, fmt.Errorf("%w: texture %d", gpucore.ErrUnknownResource, id)
	}
	dst, ok := img.(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("%w: texture %d is not a render target", gpucore.ErrInvalidTexture, id)
	}
	return dst, nil
}

// Clear fills a render target with c.
func (d *SoftwareDevice) Clear(target gpucore.TextureID, c gpucore.Color) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	dst, err := d.target(target)
	if err != nil {
		return err
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(toNRGBA(c)), image.Point{}, draw.Src)
	return nil
}

// Draw executes a draw call.
func (d *SoftwareDevice) Draw(call *gpucore.DrawCall) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	dst, err := d.target(call.Target)
	if err != nil {
		return err
	}
	kind, ok := d.programs[call.Program]
	if !ok {
		return fmt.Errorf("%w: program %d", gpucore.ErrUnknownResource, call.Program)
	}
	verts := call.Vertices
	if call.Mesh != gpucore.InvalidID {
		if verts, ok = d.meshes[call.Mesh]; !ok {
			return fmt.Errorf("%w: mesh %d", gpucore.ErrUnknownResource, call.Mesh)
		}
	}
	if len(verts) < 3 {
		return nil
	}

	switch kind {
	case gpucore.ProgramSolid:
		d.fill(dst, verts, &call.View)
	case gpucore.ProgramTextured:
		var src image.Image = d.white
		if call.Texture != gpucore.InvalidID {
			img, ok := d.textures[call.Texture]
			if !ok {
				return fmt.Errorf("%w: texture %d", gpucore.ErrUnknownResource, call.Texture)
			}
			src = img
		}
		blit(dst, src, verts, &call.View)
	case gpucore.ProgramCoordinate:
		// A coordinate program without caller code writes transparent black.
	}
	return nil
}

// fill scan converts the triangle list in view.Color.
func (d *SoftwareDevice) fill(dst *image.RGBA, verts []gpucore.Vertex, view *gpucore.View) {
	b := dst.Bounds()
	d.raster.Reset(b.Dx(), b.Dy())
	for i := 0; i+2 < len(verts); i += 3 {
		ax, ay := toPixel(view, verts[i], b)
		bx, by := toPixel(view, verts[i+1], b)
		cx, cy := toPixel(view, verts[i+2], b)
		// Uniform winding so overlapping triangles accumulate instead of cancel.
		if (bx-ax)*(cy-ay)-(by-ay)*(cx-ax) < 0 {
			bx, by, cx, cy = cx, cy, bx, by
		}
		d.raster.MoveTo(ax, ay)
		d.raster.LineTo(bx, by)
		d.raster.LineTo(cx, cy)
		d.raster.ClosePath()
	}
	d.raster.DrawOp = draw.Over
	d.raster.Draw(dst, b, image.NewUniform(toNRGBA(view.Color)), image.Point{})
}

// blit maps the texture onto the parallelogram spanned by the first triangle.
func blit(dst *image.RGBA, src image.Image, verts []gpucore.Vertex, view *gpucore.View) {
	b := dst.Bounds()
	sb := src.Bounds()
	sw, sh := float64(sb.Dx()), float64(sb.Dy())

	var s, p [3][2]float64
	for i := range 3 {
		x, y := toPixel(view, verts[i], b)
		p[i] = [2]float64{float64(x), float64(y)}
		s[i] = [2]float64{float64(verts[i].U) * sw, float64(verts[i].V) * sh}
	}

	// Solve M * [sx sy 1]^T = [px py]^T from the three correspondences.
	det := s[0][0]*(s[1][1]-s[2][1]) - s[0][1]*(s[1][0]-s[2][0]) + (s[1][0]*s[2][1] - s[2][0]*s[1][1])
	if det == 0 {
		return
	}
	inv := [3][3]float64{
		{(s[1][1] - s[2][1]) / det, (s[2][1] - s[0][1]) / det, (s[0][1] - s[1][1]) / det},
		{(s[2][0] - s[1][0]) / det, (s[0][0] - s[2][0]) / det, (s[1][0] - s[0][0]) / det},
		{(s[1][0]*s[2][1] - s[2][0]*s[1][1]) / det, (s[2][0]*s[0][1] - s[0][0]*s[2][1]) / det, (s[0][0]*s[1][1] - s[1][0]*s[0][1]) / det},
	}
	var m f64.Aff3
	for row := range 2 {
		for col := range 3 {
			m[row*3+col] = p[0][row]*inv[col][0] + p[1][row]*inv[col][1] + p[2][row]*inv[col][2]
		}
	}
	// Transform maps source pixel space, so shift by the source origin.
	m[2] -= m[0]*float64(sb.Min.X) + m[1]*float64(sb.Min.Y)
	m[5] -= m[3]*float64(sb.Min.X) + m[4]*float64(sb.Min.Y)

	draw.NearestNeighbor.Transform(dst, m, src, sb, draw.Over, nil)
}

// ReadPixels returns the target contents top row first.
func (d *SoftwareDevice) ReadPixels(target gpucore.TextureID) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	dst, err := d.target(target)
	if err != nil {
		return nil, err
	}
	b := dst.Bounds()
	out := make([]byte, b.Dx()*b.Dy()*4)
	for y := 0; y < b.Dy(); y++ {
		copy(out[y*b.Dx()*4:(y+1)*b.Dx()*4], dst.Pix[y*dst.Stride:])
	}
	return out, nil
}

// Destroy releases every resource.
func (d *SoftwareDevice) Destroy() {
	d.mu.Lock()
	defer d.mu.Unlock()
	clear(d.textures)
	clear(d.meshes)
	clear(d.programs)
}

// toPixel converts a vertex to pixel coordinates of b, y down.
func toPixel(view *gpucore.View, v gpucore.Vertex, b image.Rectangle) (float32, float32) {
	cx, cy := view.Transform(v.X, v.Y)
	return (cx + 1) / 2 * float32(b.Dx()), (1 - cy) / 2 * float32(b.Dy())
}

func toNRGBA(c gpucore.Color) color.NRGBA {
	return color.NRGBA{R: unit8(c.R), G: unit8(c.G), B: unit8(c.B), A: unit8(c.A)}
}

func unit8(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 0xFF
	default:
		return uint8(f*255 + 0.5)
	}
}
