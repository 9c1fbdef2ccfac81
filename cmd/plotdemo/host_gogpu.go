//go:build !nogpu

package main

import (
	_ "github.com/gogpu/plot/backend/native"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/host/gogpuhost"
)

func runGogpu(cfg config) error {
	return gogpuhost.Run(gogpuhost.Config{Title: cfg.title, Width: cfg.width, Height: cfg.height},
		func(h plot.Host) error { return run(cfg, h) })
}
