//go:build nogpu

package main

import "errors"

func runGogpu(config) error {
	return errors.New("gogpu host not built (nogpu tag)")
}
