package plot

import (
	"sync"
	"testing"

	"github.com/gogpu/plot/backend"
	"github.com/gogpu/plot/gpucore"
)

// recordingDevice is a software device that records what the window asks of it.
// Programs carrying caller code are recorded and then run as their plain
// shape so drawing still produces pixels.
type recordingDevice struct {
	*backend.SoftwareDevice

	mu       sync.Mutex
	textures []gpucore.TextureDesc
	uploads  [][]byte
	writes   int
	programs []*gpucore.ProgramDesc
	draws    []gpucore.DrawCall
	clears   int
}

func newRecordingDevice() *recordingDevice {
	return &recordingDevice{SoftwareDevice: backend.NewSoftwareDevice()}
}

func (d *recordingDevice) CreateTexture(desc gpucore.TextureDesc, rgba []byte) (gpucore.TextureID, error) {
	d.mu.Lock()
	d.textures = append(d.textures, desc)
	d.uploads = append(d.uploads, append([]byte(nil), rgba...))
	d.mu.Unlock()
	return d.SoftwareDevice.CreateTexture(desc, rgba)
}

func (d *recordingDevice) WriteMesh(id gpucore.MeshID, vertices []gpucore.Vertex) error {
	d.mu.Lock()
	d.writes++
	d.mu.Unlock()
	return d.SoftwareDevice.WriteMesh(id, vertices)
}

func (d *recordingDevice) CreateProgram(desc *gpucore.ProgramDesc) (gpucore.ProgramID, error) {
	d.mu.Lock()
	d.programs = append(d.programs, desc)
	d.mu.Unlock()
	plain := *desc
	plain.Custom = false
	return d.SoftwareDevice.CreateProgram(&plain)
}

func (d *recordingDevice) Draw(call *gpucore.DrawCall) error {
	d.mu.Lock()
	d.draws = append(d.draws, *call)
	d.mu.Unlock()
	return d.SoftwareDevice.Draw(call)
}

func (d *recordingDevice) Clear(target gpucore.TextureID, c gpucore.Color) error {
	d.mu.Lock()
	d.clears++
	d.mu.Unlock()
	return d.SoftwareDevice.Clear(target, c)
}

// lastDraw returns the most recent draw call with the given label.
func (d *recordingDevice) lastDraw(t *testing.T, label string) gpucore.DrawCall {
	t.Helper()
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := len(d.draws) - 1; i >= 0; i-- {
		if d.draws[i].Label == label {
			return d.draws[i]
		}
	}
	t.Fatalf("no draw labeled %q", label)
	return gpucore.DrawCall{}
}

// fakeAudio records played files.
type fakeAudio struct {
	mu     sync.Mutex
	played []string
	closed int
	err    error
}

func (a *fakeAudio) Play(filename string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err != nil {
		return a.err
	}
	a.played = append(a.played, filename)
	return nil
}

func (a *fakeAudio) Close() error {
	a.mu.Lock()
	a.closed++
	a.mu.Unlock()
	return nil
}

// useFakeAudio replaces the shared audio engine for the test.
func useFakeAudio(t *testing.T) *fakeAudio {
	t.Helper()
	a := &fakeAudio{}
	orig := newAudio
	newAudio = func() (Audio, error) { return a, nil }
	t.Cleanup(func() { newAudio = orig })
	return a
}

var testPalette = Palette{Black, White, Red, Green, Blue}

// newTestWindow opens a headless window on a recording device.
func newTestWindow(t *testing.T, width, height int, opts ...Option) (*Window, *recordingDevice, *HeadlessHost) {
	t.Helper()
	useFakeAudio(t)
	dev := newRecordingDevice()
	host := NewHeadlessHost(width, height)
	opts = append([]Option{WithDevice(dev), WithHost(host)}, opts...)
	w, err := NewWindow(width, height, "test", testPalette, 0, opts...)
	if err != nil {
		t.Fatalf("NewWindow() error = %v", err)
	}
	t.Cleanup(func() {
		_ = w.Close()
		dev.Destroy()
	})
	return w, dev, host
}
