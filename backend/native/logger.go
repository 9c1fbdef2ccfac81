//go:build !nogpu

package native

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/plot/backend"
)

// deviceLog receives adapter selection, provider sharing and pipeline
// builds. It stays silent until plot.SetLogger reaches Device.SetLogger.
var deviceLog atomic.Pointer[slog.Logger]

func init() {
	deviceLog.Store(slog.New(slog.DiscardHandler))
}

func slogger() *slog.Logger { return deviceLog.Load() }

// setLogger attaches l to every native device, tagging records with the
// backend name. A nil l silences the package again.
func setLogger(l *slog.Logger) {
	if l == nil {
		deviceLog.Store(slog.New(slog.DiscardHandler))
		return
	}
	deviceLog.Store(l.With(slog.String("backend", backend.Native)))
}
