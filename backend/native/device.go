//go:build !nogpu

package native

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	_ "github.com/gogpu/wgpu/hal/vulkan" // register Vulkan HAL backend

	"github.com/gogpu/plot/backend"
	"github.com/gogpu/plot/gpucore"
)

// Device errors.
var (
	// ErrNoAdapter is returned when no GPU adapter is found.
	ErrNoAdapter = errors.New("native: no GPU adapters found")

	// ErrBackendUnavailable is returned when the Vulkan HAL backend is missing.
	ErrBackendUnavailable = errors.New("native: vulkan backend not available")

	// ErrProvider is returned when a shared device provider does not expose HAL types.
	ErrProvider = errors.New("native: provider does not expose HAL device and queue")

	// ErrDestroyed is returned for operations on a destroyed device.
	ErrDestroyed = errors.New("native: device destroyed")
)

// init registers the native device on package import.
func init() {
	backend.Register(backend.Native, func() (gpucore.Device, error) {
		return Open()
	})
}

// Device is a [gpucore.Device] backed by a wgpu HAL device.
type Device struct {
	mu sync.Mutex

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	// externalDevice is set when the HAL device is shared from a provider
	// and must not be destroyed by this device.
	externalDevice bool

	next     uint64
	textures map[gpucore.TextureID]*texture
	meshes   map[gpucore.MeshID]*mesh
	programs map[gpucore.ProgramID]*program

	viewLayout hal.BindGroupLayout
	sampler    hal.Sampler
	white      *texture

	destroyed bool
}

// Open creates a device on the first discrete or integrated Vulkan adapter.
func Open() (*Device, error) {
	halBackend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, ErrBackendUnavailable
	}
	instance, err := halBackend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("native: create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, ErrNoAdapter
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("native: open device: %w", err)
	}

	d := newDevice(openDev.Device, openDev.Queue)
	d.instance = instance
	if err := d.init(); err != nil {
		d.Destroy()
		return nil, err
	}
	slogger().Info("native: device opened", slog.String("adapter", selected.Info.Name))
	return d, nil
}

// NewShared creates a device on a HAL device owned by a host application.
// The provider must implement HalDevice() any and HalQueue() any returning
// hal.Device and hal.Queue. Destroy releases plot resources only.
func NewShared(provider any) (*Device, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrProvider)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrProvider)
	}

	d := newDevice(device, queue)
	d.externalDevice = true
	if err := d.init(); err != nil {
		d.Destroy()
		return nil, err
	}
	slogger().Debug("native: sharing provider device")
	return d, nil
}

func newDevice(device hal.Device, queue hal.Queue) *Device {
	return &Device{
		device:   device,
		queue:    queue,
		textures: make(map[gpucore.TextureID]*texture),
		meshes:   make(map[gpucore.MeshID]*mesh),
		programs: make(map[gpucore.ProgramID]*program),
	}
}

// init creates the resources shared by every program.
func (d *Device) init() error {
	viewLayout, err := d.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "plot_view_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("native: create view bind group layout: %w", err)
	}
	d.viewLayout = viewLayout

	// Nearest filtering keeps palette grids crisp.
	sampler, err := d.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "plot_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeNearest,
		MinFilter:    gputypes.FilterModeNearest,
		MipmapFilter: gputypes.FilterModeNearest,
	})
	if err != nil {
		return fmt.Errorf("native: create sampler: %w", err)
	}
	d.sampler = sampler

	white, err := d.newTexture(gpucore.TextureDesc{Label: "plot_white", Width: 1, Height: 1}, []byte{0xFF, 0xFF, 0xFF, 0xFF})
	if err != nil {
		return err
	}
	d.white = white
	return nil
}

// Name returns the device identifier.
func (d *Device) Name() string {
	return backend.Native
}

// AcceptsSPIRV reports that programs may carry precompiled SPIR-V.
func (d *Device) AcceptsSPIRV() bool {
	return true
}

// SetLogger sets the logger for the native device package.
func (d *Device) SetLogger(l *slog.Logger) {
	setLogger(l)
}

func (d *Device) id() uint64 {
	d.next++
	return d.next
}

// Destroy releases every resource owned by the device. Shared HAL devices
// are left alive.
func (d *Device) Destroy() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed || d.device == nil {
		return
	}
	d.destroyed = true

	for id, p := range d.programs {
		d.destroyProgram(p)
		delete(d.programs, id)
	}
	for id, m := range d.meshes {
		d.device.DestroyBuffer(m.buf)
		delete(d.meshes, id)
	}
	for id, t := range d.textures {
		d.destroyTexture(t)
		delete(d.textures, id)
	}
	if d.white != nil {
		d.destroyTexture(d.white)
		d.white = nil
	}
	if d.sampler != nil {
		d.device.DestroySampler(d.sampler)
		d.sampler = nil
	}
	if d.viewLayout != nil {
		d.device.DestroyBindGroupLayout(d.viewLayout)
		d.viewLayout = nil
	}

	if !d.externalDevice {
		d.device.Destroy()
		if d.instance != nil {
			d.instance.Destroy()
		}
	}
	d.device = nil
	d.queue = nil
	d.instance = nil
}
