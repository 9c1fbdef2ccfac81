//go:build !nogpu

package native

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/plot/gpucore"
)

// renderFormat is the only color format the device creates.
const renderFormat = gputypes.TextureFormatRGBA8Unorm

type texture struct {
	tex    hal.Texture
	view   hal.TextureView
	width  uint32
	height uint32
	target bool
}

type mesh struct {
	buf   hal.Buffer
	count int
}

// CreateTexture creates a sampled texture or a render target.
func (d *Device) CreateTexture(desc gpucore.TextureDesc, rgba []byte) (gpucore.TextureID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return gpucore.InvalidID, ErrDestroyed
	}
	t, err := d.newTexture(desc, rgba)
	if err != nil {
		return gpucore.InvalidID, err
	}
	id := gpucore.TextureID(d.id())
	d.textures[id] = t
	return id, nil
}

func (d *Device) newTexture(desc gpucore.TextureDesc, rgba []byte) (*texture, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("%w: %q is %dx%d", gpucore.ErrInvalidTexture, desc.Label, desc.Width, desc.Height)
	}
	w, h := uint32(desc.Width), uint32(desc.Height) //nolint:gosec // checked positive above
	n := int(w * h * 4)
	if rgba != nil && len(rgba) < n {
		return nil, fmt.Errorf("%w: %q has %d bytes, want %d", gpucore.ErrInvalidTexture, desc.Label, len(rgba), n)
	}

	usage := gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst
	if desc.RenderTarget {
		usage |= gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc
	}
	size := hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1}
	tex, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label:         desc.Label,
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        renderFormat,
		Usage:         usage,
	})
	if err != nil {
		return nil, fmt.Errorf("native: create texture %q: %w", desc.Label, err)
	}
	view, err := d.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         desc.Label + "_view",
		Format:        renderFormat,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		d.device.DestroyTexture(tex)
		return nil, fmt.Errorf("native: create texture view %q: %w", desc.Label, err)
	}

	if rgba != nil {
		err := d.queue.WriteTexture(
			&hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
			rgba[:n],
			&hal.ImageDataLayout{Offset: 0, BytesPerRow: w * 4, RowsPerImage: h},
			&size,
		)
		if err != nil {
			d.device.DestroyTextureView(view)
			d.device.DestroyTexture(tex)
			return nil, fmt.Errorf("native: write texture %q: %w", desc.Label, err)
		}
	}
	return &texture{tex: tex, view: view, width: w, height: h, target: desc.RenderTarget}, nil
}

func (d *Device) destroyTexture(t *texture) {
	if t.view != nil {
		d.device.DestroyTextureView(t.view)
	}
	if t.tex != nil {
		d.device.DestroyTexture(t.tex)
	}
}

// DestroyTexture releases a texture.
func (d *Device) DestroyTexture(id gpucore.TextureID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t, ok := d.textures[id]; ok {
		d.destroyTexture(t)
		delete(d.textures, id)
	}
}

// CreateMesh creates a persistent vertex buffer.
func (d *Device) CreateMesh(label string, vertices []gpucore.Vertex) (gpucore.MeshID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return gpucore.InvalidID, ErrDestroyed
	}
	buf, err := d.uploadVertices(label, vertices)
	if err != nil {
		return gpucore.InvalidID, err
	}
	id := gpucore.MeshID(d.id())
	d.meshes[id] = &mesh{buf: buf, count: len(vertices)}
	return id, nil
}

// WriteMesh replaces mesh contents in place.
func (d *Device) WriteMesh(id gpucore.MeshID, vertices []gpucore.Vertex) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	m, ok := d.meshes[id]
	if !ok {
		return fmt.Errorf("%w: mesh %d", gpucore.ErrUnknownResource, id)
	}
	if m.count != len(vertices) {
		return fmt.Errorf("%w: have %d, got %d", gpucore.ErrMeshSize, m.count, len(vertices))
	}
	if m.count == 0 {
		return nil
	}
	if err := d.queue.WriteBuffer(m.buf, 0, gpucore.EncodeVertices(vertices)); err != nil {
		return fmt.Errorf("native: write mesh %d: %w", id, err)
	}
	return nil
}

// DestroyMesh releases a mesh.
func (d *Device) DestroyMesh(id gpucore.MeshID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if m, ok := d.meshes[id]; ok {
		d.device.DestroyBuffer(m.buf)
		delete(d.meshes, id)
	}
}

func (d *Device) uploadVertices(label string, vertices []gpucore.Vertex) (hal.Buffer, error) {
	data := gpucore.EncodeVertices(vertices)
	size := uint64(len(data))
	if size == 0 {
		size = gpucore.VertexStride
	}
	buf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("native: create vertex buffer %q: %w", label, err)
	}
	if len(data) > 0 {
		if err := d.queue.WriteBuffer(buf, 0, data); err != nil {
			d.device.DestroyBuffer(buf)
			return nil, fmt.Errorf("native: write vertex buffer %q: %w", label, err)
		}
	}
	return buf, nil
}

func (d *Device) uploadUniform(label string, data []byte) (hal.Buffer, error) {
	buf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("native: create uniform buffer %q: %w", label, err)
	}
	if err := d.queue.WriteBuffer(buf, 0, data); err != nil {
		d.device.DestroyBuffer(buf)
		return nil, fmt.Errorf("native: write uniform buffer %q: %w", label, err)
	}
	return buf, nil
}
