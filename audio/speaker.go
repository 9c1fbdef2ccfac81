// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package audio plays sound files through the system speaker.
//
// Playback is fire-and-forget: Play decodes the file, queues it on the
// shared mixer and returns. The output device is opened on the first Play,
// so creating a Speaker never touches audio hardware.
//
// Supported formats are WAV and MP3, chosen by file extension.
package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// Errors returned by Speaker.
var (
	// ErrUnsupportedFormat is returned for files that are neither WAV nor MP3.
	ErrUnsupportedFormat = errors.New("audio: unsupported format")

	// ErrInit is returned when the output device cannot be opened.
	ErrInit = errors.New("audio: speaker init failed")

	// ErrClosed is returned by Play after Close.
	ErrClosed = errors.New("audio: speaker closed")

	// ErrOption is returned by NewSpeaker for invalid options.
	ErrOption = errors.New("audio: invalid option")
)

// Option configures a Speaker.
type Option func(*options)

type options struct {
	sampleRate beep.SampleRate
	buffer     time.Duration
	quality    int
}

func defaultOptions() options {
	return options{
		sampleRate: 44100,
		buffer:     time.Second / 10,
		quality:    4,
	}
}

// WithSampleRate sets the output sample rate in Hz. Files at other rates
// are resampled.
func WithSampleRate(hz int) Option {
	return func(o *options) {
		o.sampleRate = beep.SampleRate(hz)
	}
}

// WithBuffer sets the output buffer duration. Larger buffers trade latency
// for fewer underruns.
func WithBuffer(d time.Duration) Option {
	return func(o *options) {
		o.buffer = d
	}
}

// WithQuality sets the resampling quality, 1 (fast) to 64 (best).
func WithQuality(q int) Option {
	return func(o *options) {
		o.quality = q
	}
}

// Speaker plays sound files on the default output device.
//
// The underlying mixer is process-wide; use one Speaker per process.
type Speaker struct {
	mu          sync.Mutex
	opts        options
	initialized bool
	closed      bool
	logger      atomic.Pointer[slog.Logger]
}

// NewSpeaker creates a speaker. The output device is opened lazily.
func NewSpeaker(opts ...Option) (*Speaker, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case o.sampleRate <= 0:
		return nil, fmt.Errorf("%w: sample rate %d", ErrOption, o.sampleRate)
	case o.buffer <= 0:
		return nil, fmt.Errorf("%w: buffer %v", ErrOption, o.buffer)
	case o.quality < 1 || o.quality > 64:
		return nil, fmt.Errorf("%w: quality %d", ErrOption, o.quality)
	}
	s := &Speaker{opts: o}
	s.logger.Store(slog.New(nopHandler{}))
	return s, nil
}

// SetLogger sets the logger for playback diagnostics. Pass nil to disable.
func (s *Speaker) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	s.logger.Store(l)
}

// SampleRate returns the output sample rate.
func (s *Speaker) SampleRate() beep.SampleRate {
	return s.opts.sampleRate
}

// Play decodes filename and starts playing it. It returns once playback
// is queued.
func (s *Speaker) Play(filename string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	f, err := os.Open(filename) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("audio: open %q: %w", filename, err)
	}
	streamer, format, err := Decode(f, filename)
	if err != nil {
		_ = f.Close()
		return err
	}

	if !s.initialized {
		if err := speaker.Init(s.opts.sampleRate, s.opts.sampleRate.N(s.opts.buffer)); err != nil {
			_ = streamer.Close()
			return fmt.Errorf("%w: %w", ErrInit, err)
		}
		s.initialized = true
		s.logger.Load().Info("audio: speaker initialized",
			"sample_rate", int(s.opts.sampleRate), "buffer", s.opts.buffer)
	}

	var src beep.Streamer = streamer
	if format.SampleRate != s.opts.sampleRate {
		src = beep.Resample(s.opts.quality, format.SampleRate, s.opts.sampleRate, streamer)
	}

	speaker.Play(beep.Seq(src, beep.Callback(func() {
		_ = streamer.Close()
	})))
	s.logger.Load().Debug("audio: playing", "file", filename,
		"sample_rate", int(format.SampleRate), "channels", format.NumChannels)
	return nil
}

// Close stops playback and releases the output device.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.initialized {
		speaker.Clear()
		speaker.Close()
	}
	return nil
}

// Decode picks a decoder from the file extension of name.
func Decode(r io.ReadCloser, name string) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		s      beep.StreamSeekCloser
		format beep.Format
		err    error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".wav":
		s, format, err = wav.Decode(r)
	case ".mp3":
		s, format, err = mp3.Decode(r)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("audio: decode %q: %w", name, err)
	}
	return s, format, nil
}

// nopHandler silently discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }
