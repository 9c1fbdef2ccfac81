package plot

import (
	"testing"

	"github.com/gogpu/plot/backend"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.host != nil || o.device != nil || o.audio != nil {
		t.Error("default options should not carry collaborators")
	}
	if !o.escapeClose {
		t.Error("escape should close by default")
	}
	if o.paletteWrap {
		t.Error("palette wrap should be opt-in")
	}
	if o.functionStride != 4 {
		t.Errorf("functionStride = %d, want 4", o.functionStride)
	}
	if o.pointSegments != 12 {
		t.Errorf("pointSegments = %d, want 12", o.pointSegments)
	}
}

func TestOptionsApply(t *testing.T) {
	host := NewHeadlessHost(1, 1)
	dev := newRecordingDevice()
	a := &fakeAudio{}
	o := defaultOptions()
	for _, opt := range []Option{
		WithHost(host),
		WithDevice(dev),
		WithBackend(backend.Software),
		WithAudio(a),
		WithPaletteWrap(),
		WithEscapeClose(false),
		WithFunctionStride(2),
		WithPointSegments(24),
	} {
		opt(&o)
	}
	if o.host != host || o.device != dev || o.audio != a {
		t.Error("collaborator options not applied")
	}
	if o.backend != backend.Software || !o.paletteWrap || o.escapeClose {
		t.Errorf("flags = backend %q wrap %v escape %v", o.backend, o.paletteWrap, o.escapeClose)
	}
	if o.functionStride != 2 || o.pointSegments != 24 {
		t.Errorf("stride = %d, segments = %d", o.functionStride, o.pointSegments)
	}
}

func TestOptionsIgnoreInvalid(t *testing.T) {
	o := defaultOptions()
	WithFunctionStride(0)(&o)
	WithPointSegments(2)(&o)
	if o.functionStride != 4 || o.pointSegments != 12 {
		t.Errorf("invalid values applied: stride = %d, segments = %d", o.functionStride, o.pointSegments)
	}
}
