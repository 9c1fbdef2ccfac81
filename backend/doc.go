// Package backend selects the draw device a plot window renders with.
//
// Devices are registered via init() functions and selected at runtime.
// The software device is registered on import of this package; the GPU
// device registers itself when its package is imported:
//
//	import _ "github.com/gogpu/plot/backend/native"
//
// # Device Selection
//
// Use Default to open the best available device, or Open to request one
// by name:
//
//	dev, err := backend.Default()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer dev.Destroy()
//
//	dev, err = backend.Open(backend.Software)
//
// # Available Devices
//
//   - "native": Pure Go GPU device on gogpu/wgpu HAL (Vulkan)
//   - "software": CPU rasterizer on golang.org/x/image (always available,
//     no caller shader code)
package backend
