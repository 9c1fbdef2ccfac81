// Package native provides the GPU draw device for plot windows using
// gogpu/wgpu HAL.
//
// The device opens its own Vulkan adapter, or shares a HAL device and queue
// with a host application through [NewShared]. Every operation is submitted
// and waited on before returning, so draws, clears and readbacks are
// strictly ordered.
//
// # Registration
//
// Importing the package registers the device with [backend] under
// [backend.Native]:
//
//	import _ "github.com/gogpu/plot/backend/native"
//
// # Binding Layout
//
// Every program shares bind group 0 (view uniform, texture0, sampler0).
// Caller constants live in bind group 1, one uniform buffer per slot.
// Render targets and sampled textures are RGBA8Unorm. Blending is straight
// alpha (SrcAlpha, OneMinusSrcAlpha).
//
// Build with -tags nogpu to exclude this package's device.
package native
