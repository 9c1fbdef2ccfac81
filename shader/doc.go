// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package shader composes WGSL render programs for plot windows.
//
// Programs are assembled by a [Builder] from an ordered list of declarations
// (structs, resource bindings, caller globals, entry points). Source
// generation is deterministic and needs no GPU, so composed programs can be
// inspected and tested directly.
//
// # Program shapes
//
// [Composite] samples texture0 and hands the sampled color to caller code:
//
//	@fragment
//	fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
//	    let texCoord = in.tex_coord;
//	    var color = textureSample(texture0, sampler0, texCoord);
//	    // caller body
//	    return color;
//	}
//
// [Shade] runs caller code over logical coordinates. The body sees x, y, z, w
// and writes color. The view rectangle is available as view.leftBottom,
// view.rightTop, view.min, view.max and view.size.
//
// [Solid] writes view.color and takes no caller code.
//
// # Constants
//
// Each [Constant] becomes a uniform in group 1 whose WGSL type follows the
// value length: f32, vec2<f32>, vec3<f32> or vec4<f32>. Constants are checked
// before any source reaches a compiler.
package shader
