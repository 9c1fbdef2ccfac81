package backend

import (
	"errors"
	"testing"

	"github.com/gogpu/plot/gpucore"
)

func TestSoftwareRegistered(t *testing.T) {
	if !IsRegistered(Software) {
		t.Fatal("software device should be registered on import")
	}
	dev, err := Open(Software)
	if err != nil {
		t.Fatalf("Open(%q) error = %v", Software, err)
	}
	defer dev.Destroy()
	if dev.Name() != Software {
		t.Errorf("Name() = %q, want %q", dev.Name(), Software)
	}
}

func TestOpenUnknown(t *testing.T) {
	if _, err := Open("nonexistent"); !errors.Is(err, ErrNotAvailable) {
		t.Errorf("Open(nonexistent) error = %v, want %v", err, ErrNotAvailable)
	}
}

func TestDefaultSkipsFailingDevice(t *testing.T) {
	errBroken := errors.New("broken")
	Register(Native, func() (gpucore.Device, error) { return nil, errBroken })
	defer Unregister(Native)

	dev, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	defer dev.Destroy()
	if dev.Name() != Software {
		t.Errorf("Default().Name() = %q, want %q", dev.Name(), Software)
	}
}

func TestDefaultNoneAvailable(t *testing.T) {
	errBroken := errors.New("broken")
	registryMu.Lock()
	old := factories
	factories = map[string]Factory{
		"a": func() (gpucore.Device, error) { return nil, errBroken },
	}
	registryMu.Unlock()
	defer func() {
		registryMu.Lock()
		factories = old
		registryMu.Unlock()
	}()

	_, err := Default()
	if !errors.Is(err, ErrNotAvailable) || !errors.Is(err, errBroken) {
		t.Errorf("Default() error = %v, want both %v and %v", err, ErrNotAvailable, errBroken)
	}
}

func TestAvailableSorted(t *testing.T) {
	Register("zzz", func() (gpucore.Device, error) { return NewSoftwareDevice(), nil })
	Register("aaa", func() (gpucore.Device, error) { return NewSoftwareDevice(), nil })
	defer Unregister("zzz")
	defer Unregister("aaa")

	names := Available()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("Available() = %v, not sorted", names)
		}
	}
	if names[0] != "aaa" {
		t.Errorf("Available()[0] = %q, want %q", names[0], "aaa")
	}
}

func TestMustDefaultPanics(t *testing.T) {
	registryMu.Lock()
	old := factories
	factories = map[string]Factory{}
	registryMu.Unlock()
	defer func() {
		registryMu.Lock()
		factories = old
		registryMu.Unlock()
	}()

	defer func() {
		if recover() == nil {
			t.Error("MustDefault() did not panic")
		}
	}()
	MustDefault()
}
