//go:build !nogpu

package native

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/plot/gpucore"
)

// copyPitchAlignment is the WebGPU BytesPerRow alignment for texture copies.
const copyPitchAlignment = 256

// drawResources are the transient objects of one draw call.
type drawResources struct {
	buffers    []hal.Buffer
	bindGroups []hal.BindGroup
}

func (d *Device) release(r *drawResources) {
	for _, bg := range r.bindGroups {
		if bg != nil {
			d.device.DestroyBindGroup(bg)
		}
	}
	for _, b := range r.buffers {
		if b != nil {
			d.device.DestroyBuffer(b)
		}
	}
}

func (d *Device) renderTarget(id gpucore.TextureID) (*texture, error) {
	t, ok := d.textures[id]
	if !ok {
		return nil, fmt.Errorf("%w: texture %d", gpucore.ErrUnknownResource, id)
	}
	if !t.target {
		return nil, fmt.Errorf("%w: texture %d is not a render target", gpucore.ErrInvalidTexture, id)
	}
	return t, nil
}

// Clear fills a render target with c.
func (d *Device) Clear(target gpucore.TextureID, c gpucore.Color) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return ErrDestroyed
	}
	t, err := d.renderTarget(target)
	if err != nil {
		return err
	}

	encoder, err := d.beginEncoder("plot_clear")
	if err != nil {
		return err
	}
	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "plot_clear_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       t.view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)},
		}},
	})
	rp.End()
	return d.submit(encoder)
}

// Draw executes a draw call and waits for it to complete.
func (d *Device) Draw(call *gpucore.DrawCall) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return ErrDestroyed
	}

	t, err := d.renderTarget(call.Target)
	if err != nil {
		return err
	}
	p, ok := d.programs[call.Program]
	if !ok {
		return fmt.Errorf("%w: program %d", gpucore.ErrUnknownResource, call.Program)
	}
	if len(call.Constants) != len(p.slots) {
		return fmt.Errorf("native: %q expects %d constants, got %d", p.label, len(p.slots), len(call.Constants))
	}
	sampled := d.white
	if call.Texture != gpucore.InvalidID {
		if sampled, ok = d.textures[call.Texture]; !ok {
			return fmt.Errorf("%w: texture %d", gpucore.ErrUnknownResource, call.Texture)
		}
	}

	var res drawResources
	defer d.release(&res)

	var vertBuf hal.Buffer
	var count int
	if call.Mesh != gpucore.InvalidID {
		m, ok := d.meshes[call.Mesh]
		if !ok {
			return fmt.Errorf("%w: mesh %d", gpucore.ErrUnknownResource, call.Mesh)
		}
		vertBuf, count = m.buf, m.count
	} else {
		if len(call.Vertices) == 0 {
			return nil
		}
		vertBuf, err = d.uploadVertices("plot_draw_verts", call.Vertices)
		if err != nil {
			return err
		}
		res.buffers = append(res.buffers, vertBuf)
		count = len(call.Vertices)
	}
	if count == 0 {
		return nil
	}

	viewGroup, err := d.viewBindGroup(&res, &call.View, sampled)
	if err != nil {
		return err
	}
	constGroup, err := d.constantsBindGroup(&res, p, call.Constants)
	if err != nil {
		return err
	}

	label := call.Label
	if label == "" {
		label = p.label
	}
	encoder, err := d.beginEncoder(label)
	if err != nil {
		return err
	}
	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: label + "_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:    t.view,
			LoadOp:  gputypes.LoadOpLoad,
			StoreOp: gputypes.StoreOpStore,
		}},
	})
	rp.SetPipeline(p.pipeline)
	rp.SetBindGroup(0, viewGroup, nil)
	if constGroup != nil {
		rp.SetBindGroup(1, constGroup, nil)
	}
	rp.SetVertexBuffer(0, vertBuf, 0)
	rp.Draw(uint32(count), 1, 0, 0) //nolint:gosec // vertex counts fit uint32
	rp.End()
	return d.submit(encoder)
}

func (d *Device) viewBindGroup(res *drawResources, view *gpucore.View, sampled *texture) (hal.BindGroup, error) {
	buf, err := d.uploadUniform("plot_view", view.Bytes())
	if err != nil {
		return nil, err
	}
	res.buffers = append(res.buffers, buf)

	bg, err := d.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "plot_view_bind",
		Layout: d.viewLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: buf.NativeHandle(), Offset: 0, Size: gpucore.ViewSize,
			}},
			{Binding: 1, Resource: gputypes.TextureViewBinding{
				TextureView: sampled.view.NativeHandle(),
			}},
			{Binding: 2, Resource: gputypes.SamplerBinding{
				Sampler: d.sampler.NativeHandle(),
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("native: create view bind group: %w", err)
	}
	res.bindGroups = append(res.bindGroups, bg)
	return bg, nil
}

func (d *Device) constantsBindGroup(res *drawResources, p *program, payloads [][]byte) (hal.BindGroup, error) {
	if p.constLayout == nil {
		return nil, nil //nolint:nilnil // programs without constants bind no group 1
	}
	entries := make([]gputypes.BindGroupEntry, len(p.slots))
	for i, s := range p.slots {
		buf, err := d.uploadUniform("plot_constant_"+s.Name, payloads[i])
		if err != nil {
			return nil, err
		}
		res.buffers = append(res.buffers, buf)
		entries[i] = gputypes.BindGroupEntry{Binding: s.Binding, Resource: gputypes.BufferBinding{
			Buffer: buf.NativeHandle(), Offset: 0, Size: uint64(len(payloads[i])),
		}}
	}
	bg, err := d.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:   p.label + "_constants_bind",
		Layout:  p.constLayout,
		Entries: entries,
	})
	if err != nil {
		return nil, fmt.Errorf("native: create %q constants bind group: %w", p.label, err)
	}
	res.bindGroups = append(res.bindGroups, bg)
	return bg, nil
}

// ReadPixels copies a render target to a staging buffer and returns it
// as tightly packed RGBA8, top row first.
func (d *Device) ReadPixels(target gpucore.TextureID) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return nil, ErrDestroyed
	}
	t, err := d.renderTarget(target)
	if err != nil {
		return nil, err
	}

	w, h := t.width, t.height
	bytesPerRow := w * 4
	alignedBytesPerRow := (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
	stagingSize := uint64(alignedBytesPerRow) * uint64(h)

	staging, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "plot_staging",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("native: create staging buffer: %w", err)
	}
	defer d.device.DestroyBuffer(staging)

	encoder, err := d.beginEncoder("plot_readback")
	if err != nil {
		return nil, err
	}
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: t.tex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})
	encoder.CopyTextureToBuffer(t.tex, staging, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: t.tex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: t.tex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})
	if err := d.submit(encoder); err != nil {
		return nil, err
	}

	mapping, err := d.device.MapBuffer(staging, 0, stagingSize)
	if err != nil {
		return nil, fmt.Errorf("native: map staging buffer: %w", err)
	}
	defer func() { _ = d.device.UnmapBuffer(staging) }()
	if mapping.Ptr == nil {
		return nil, fmt.Errorf("native: map staging buffer: %w", hal.ErrInvalidMapRange)
	}
	readback := unsafe.Slice((*byte)(mapping.Ptr), stagingSize)

	out := make([]byte, uint64(bytesPerRow)*uint64(h))
	if alignedBytesPerRow == bytesPerRow {
		copy(out, readback)
		return out, nil
	}
	for row := uint32(0); row < h; row++ {
		src := int(row) * int(alignedBytesPerRow)
		dst := int(row) * int(bytesPerRow)
		copy(out[dst:dst+int(bytesPerRow)], readback[src:src+int(bytesPerRow)])
	}
	return out, nil
}

func (d *Device) beginEncoder(label string) (hal.CommandEncoder, error) {
	encoder, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: label + "_encoder"})
	if err != nil {
		return nil, fmt.Errorf("native: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding(label); err != nil {
		return nil, fmt.Errorf("native: begin encoding: %w", err)
	}
	return encoder, nil
}

// submit ends encoding, submits, and waits for the GPU.
func (d *Device) submit(encoder hal.CommandEncoder) error {
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("native: end encoding: %w", err)
	}
	defer d.device.FreeCommandBuffer(cmdBuf)

	if _, err := d.queue.Submit([]hal.CommandBuffer{cmdBuf}); err != nil {
		return fmt.Errorf("native: submit: %w", err)
	}
	if err := d.device.WaitIdle(); err != nil {
		return fmt.Errorf("native: wait for GPU: %w", err)
	}
	return nil
}
