// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"strings"

	"github.com/gogpu/plot/gpucore"
)

// ConstantGroup is the bind group holding caller constants.
const ConstantGroup = 1

var viewFields = []string{
	"projection: mat4x4<f32>",
	"model: mat4x4<f32>",
	"color: vec4<f32>",
	"leftBottom: vec2<f32>",
	"rightTop: vec2<f32>",
	"min: vec2<f32>",
	"max: vec2<f32>",
	"size: vec2<f32>",
}

var outputFields = []string{
	"@builtin(position) position: vec4<f32>",
	"@location(0) tex_coord: vec2<f32>",
	"@location(1) coord: vec4<f32>",
}

const vertexHeader = "@vertex\nfn vs_main(@location(0) position: vec2<f32>, @location(1) tex_coord: vec2<f32>) -> VertexOutput"

const fragmentHeader = "@fragment\nfn fs_main(in: VertexOutput) -> @location(0) vec4<f32>"

const transformVertex = `var out: VertexOutput;
let p = view.projection * view.model * vec4<f32>(position, 0.0, 1.0);
out.position = p;
out.tex_coord = tex_coord;
out.coord = vec4<f32>(position, p.z, p.w);
return out;`

// Logical coordinates come from the view rectangle; texture v grows downward.
const shadeVertex = `var out: VertexOutput;
let p = view.projection * view.model * vec4<f32>(position, 0.0, 1.0);
out.position = p;
out.tex_coord = tex_coord;
out.coord = vec4<f32>(
    mix(view.leftBottom.x, view.rightTop.x, tex_coord.x),
    mix(view.leftBottom.y, view.rightTop.y, 1.0 - tex_coord.y),
    p.z,
    p.w
);
return out;`

// Program is a composed render program ready for a device.
type Program struct {
	Label     string
	Kind      gpucore.ProgramKind
	Source    string
	Constants []Constant

	// Custom reports that caller code or constants are part of Source.
	Custom bool
}

// Composite returns a textured pass-through program. body post-processes
// the sampled color; globals is emitted at module scope.
func Composite(label, body, globals string, constants []Constant) (*Program, error) {
	if err := ValidateConstants(constants); err != nil {
		return nil, err
	}
	b := preamble(label, constants, globals)
	b.Function(vertexHeader, transformVertex)
	b.Function(fragmentHeader,
		"let texCoord = in.tex_coord;\nvar color = textureSample(texture0, sampler0, texCoord);",
		body,
		"return color;",
	)
	return newProgram(label, gpucore.ProgramTextured, b, constants, body, globals), nil
}

// Shade returns a coordinate-domain program. body reads x, y, z, w and
// writes color.
func Shade(label, body, globals string, constants []Constant) (*Program, error) {
	if err := ValidateConstants(constants); err != nil {
		return nil, err
	}
	b := preamble(label, constants, globals)
	b.Function(vertexHeader, shadeVertex)
	b.Function(fragmentHeader,
		"let texCoord = in.tex_coord;\nlet x = in.coord.x;\nlet y = in.coord.y;\nlet z = in.coord.z;\nlet w = in.coord.w;\nvar color = vec4<f32>(0.0, 0.0, 0.0, 0.0);",
		body,
		"return color;",
	)
	return newProgram(label, gpucore.ProgramCoordinate, b, constants, body, globals), nil
}

// Solid returns the flat color program used for lines, points and circles.
func Solid() *Program {
	b := preamble("solid", nil, "")
	b.Function(vertexHeader, transformVertex)
	b.Function(fragmentHeader, "return view.color;")
	return newProgram("solid", gpucore.ProgramSolid, b, nil, "", "")
}

// Blit returns the composite program without caller code.
func Blit() *Program {
	p, _ := Composite("blit", "", "", nil) // no constants, cannot fail
	return p
}

func preamble(label string, constants []Constant, globals string) *Builder {
	b := NewBuilder(label).
		Struct("View", viewFields...).
		Struct("VertexOutput", outputFields...).
		Uniform(0, 0, "view", "View").
		Handle(0, 1, "texture0", "texture_2d<f32>").
		Handle(0, 2, "sampler0", "sampler")
	for i, c := range constants {
		typ, _ := c.Type() // validated by caller
		b.Uniform(ConstantGroup, i, c.Name, typ)
	}
	return b.Global(globals)
}

func newProgram(label string, kind gpucore.ProgramKind, b *Builder, constants []Constant, body, globals string) *Program {
	return &Program{
		Label:     label,
		Kind:      kind,
		Source:    b.Source(),
		Constants: constants,
		Custom:    len(constants) > 0 || strings.TrimSpace(body) != "" || strings.TrimSpace(globals) != "",
	}
}

// Desc returns the device description of the program.
func (p *Program) Desc() *gpucore.ProgramDesc {
	slots := make([]gpucore.UniformSlot, len(p.Constants))
	for i, c := range p.Constants {
		slots[i] = gpucore.UniformSlot{Name: c.Name, Binding: uint32(i), Components: len(c.Value)} //nolint:gosec // constant count is small
	}
	return &gpucore.ProgramDesc{
		Label:  p.Label,
		Kind:   p.Kind,
		WGSL:   p.Source,
		Slots:  slots,
		Custom: p.Custom,
	}
}

// Payloads returns the packed constant values in slot order.
func (p *Program) Payloads() [][]byte {
	if len(p.Constants) == 0 {
		return nil
	}
	out := make([][]byte, len(p.Constants))
	for i, c := range p.Constants {
		out[i] = Pack(c)
	}
	return out
}
