//go:build !nogpu

package native

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/plot/gpucore"
)

// program holds the pipeline objects for one composed WGSL module.
type program struct {
	label       string
	kind        gpucore.ProgramKind
	slots       []gpucore.UniformSlot
	module      hal.ShaderModule
	constLayout hal.BindGroupLayout
	pipeLayout  hal.PipelineLayout
	pipeline    hal.RenderPipeline
}

// vertexLayout matches gpucore.Vertex: position at location 0, uv at location 1.
func vertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: gpucore.VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
			},
		},
	}
}

// straightAlpha is classic SrcAlpha/OneMinusSrcAlpha blending.
func straightAlpha() gputypes.BlendState {
	return gputypes.BlendState{
		Color: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorSrcAlpha,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
	}
}

// CreateProgram compiles the program and builds its render pipeline.
// Precompiled SPIR-V is preferred over WGSL when both are present.
func (d *Device) CreateProgram(desc *gpucore.ProgramDesc) (gpucore.ProgramID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return gpucore.InvalidID, ErrDestroyed
	}

	p := &program{label: desc.Label, kind: desc.Kind, slots: desc.Slots}
	if err := d.createPipeline(p, desc); err != nil {
		d.destroyProgram(p)
		return gpucore.InvalidID, err
	}
	id := gpucore.ProgramID(d.id())
	d.programs[id] = p
	slogger().Debug("native: program created",
		"label", desc.Label, "kind", desc.Kind.String(), "constants", len(desc.Slots))
	return id, nil
}

func (d *Device) createPipeline(p *program, desc *gpucore.ProgramDesc) error { //nolint:funlen // GPU pipeline descriptors are inherently verbose
	source := hal.ShaderSource{WGSL: desc.WGSL}
	if len(desc.SPIRV) > 0 {
		source = hal.ShaderSource{SPIRV: desc.SPIRV}
	}
	module, err := d.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  desc.Label + "_shader",
		Source: source,
	})
	if err != nil {
		return fmt.Errorf("native: compile %q shader: %w", desc.Label, err)
	}
	p.module = module

	layouts := []hal.BindGroupLayout{d.viewLayout}
	if len(desc.Slots) > 0 {
		entries := make([]gputypes.BindGroupLayoutEntry, len(desc.Slots))
		for i, s := range desc.Slots {
			entries[i] = gputypes.BindGroupLayoutEntry{
				Binding:    s.Binding,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			}
		}
		constLayout, err := d.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
			Label:   desc.Label + "_constants_layout",
			Entries: entries,
		})
		if err != nil {
			return fmt.Errorf("native: create %q constants layout: %w", desc.Label, err)
		}
		p.constLayout = constLayout
		layouts = append(layouts, constLayout)
	}

	pipeLayout, err := d.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            desc.Label + "_pipe_layout",
		BindGroupLayouts: layouts,
	})
	if err != nil {
		return fmt.Errorf("native: create %q pipeline layout: %w", desc.Label, err)
	}
	p.pipeLayout = pipeLayout

	blend := straightAlpha()
	pipeline, err := d.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  desc.Label + "_pipeline",
		Layout: pipeLayout,
		Vertex: hal.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers:    vertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    renderFormat,
					Blend:     &blend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("native: create %q render pipeline: %w", desc.Label, err)
	}
	p.pipeline = pipeline
	return nil
}

func (d *Device) destroyProgram(p *program) {
	if p.pipeline != nil {
		d.device.DestroyRenderPipeline(p.pipeline)
	}
	if p.pipeLayout != nil {
		d.device.DestroyPipelineLayout(p.pipeLayout)
	}
	if p.constLayout != nil {
		d.device.DestroyBindGroupLayout(p.constLayout)
	}
	if p.module != nil {
		d.device.DestroyShaderModule(p.module)
	}
}

// DestroyProgram releases a program.
func (d *Device) DestroyProgram(id gpucore.ProgramID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if p, ok := d.programs[id]; ok {
		d.destroyProgram(p)
		delete(d.programs, id)
	}
}
