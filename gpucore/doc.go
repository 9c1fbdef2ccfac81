// Package gpucore defines the draw device contract used by plot windows.
//
// A [Device] owns GPU (or CPU) resources addressed by opaque IDs. Windows
// create two kinds of textures through it: sampled textures holding image
// data, and render targets that draw calls write into. All geometry arrives
// as triangle lists of [Vertex]; lines and points are tessellated before they
// reach the device.
//
// Every program shares the same fixed bind group layout:
//
//	@group(0) @binding(0) var<uniform> view: View;
//	@group(0) @binding(1) var texture0: texture_2d<f32>;
//	@group(0) @binding(2) var sampler0: sampler;
//
// Caller constants live in group 1, one uniform binding per constant, as
// described by [ProgramDesc.Slots].
//
// # Implementations
//
//   - backend: pure Go software device (always available)
//   - backend/native: gogpu/wgpu HAL device (Vulkan)
//
// Devices are not safe for concurrent use.
package gpucore
