package backend

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/plot/gpucore"
)

// Device name constants.
const (
	// Software is the name of the CPU device.
	Software = "software"
	// Native is the name of the Pure Go GPU device (gogpu/wgpu).
	Native = "native"
)

// Registry errors.
var (
	// ErrNotAvailable is returned when no device of the requested name is registered
	// or none of the registered devices could be opened.
	ErrNotAvailable = errors.New("backend: not available")
)

// Factory opens a new device instance.
type Factory func() (gpucore.Device, error)

// registry holds registered devices.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
	// Priority order for device selection (first that opens wins).
	priority = []string{Native, Software}
)

// Register registers a device factory with the given name.
// This is typically called from init() functions in device packages.
// If a device with the same name is already registered, it will be replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// Unregister removes a device from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the registered device names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a device with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// Open opens the device registered under name.
func Open(name string) (gpucore.Device, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotAvailable, name)
	}
	dev, err := factory()
	if err != nil {
		return nil, fmt.Errorf("backend: open %q: %w", name, err)
	}
	return dev, nil
}

// Default opens the best available device based on priority.
// Devices that fail to open are skipped; the returned error joins every
// failure when none succeeds.
func Default() (gpucore.Device, error) {
	registryMu.RLock()
	order := make([]string, 0, len(factories))
	seen := make(map[string]bool, len(factories))
	for _, name := range priority {
		if _, ok := factories[name]; ok {
			order = append(order, name)
			seen[name] = true
		}
	}
	rest := make([]string, 0, len(factories))
	for name := range factories {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	registryMu.RUnlock()
	sort.Strings(rest)
	order = append(order, rest...)

	errs := []error{ErrNotAvailable}
	for _, name := range order {
		dev, err := Open(name)
		if err == nil {
			slogger().Debug("backend: opened device", "name", name)
			return dev, nil
		}
		slogger().Debug("backend: device unavailable", "name", name, "err", err)
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// MustDefault returns the default device or panics.
func MustDefault() gpucore.Device {
	dev, err := Default()
	if err != nil {
		panic(err)
	}
	return dev
}
