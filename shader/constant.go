// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Constant errors.
var (
	// ErrConstantSize is returned when a constant does not hold 1 to 4 values.
	ErrConstantSize = errors.New("shader: constant must have 1 to 4 components")

	// ErrConstantName is returned for names that are not usable WGSL identifiers.
	ErrConstantName = errors.New("shader: invalid constant name")
)

// Constant is a named scalar or vector passed to caller code as a uniform.
type Constant struct {
	Name  string
	Value []float32
}

// Float returns a scalar constant.
func Float(name string, v float32) Constant {
	return Constant{Name: name, Value: []float32{v}}
}

// Vec2 returns a two-component constant.
func Vec2(name string, x, y float32) Constant {
	return Constant{Name: name, Value: []float32{x, y}}
}

// Vec3 returns a three-component constant.
func Vec3(name string, x, y, z float32) Constant {
	return Constant{Name: name, Value: []float32{x, y, z}}
}

// Vec4 returns a four-component constant.
func Vec4(name string, x, y, z, w float32) Constant {
	return Constant{Name: name, Value: []float32{x, y, z, w}}
}

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// reserved holds WGSL keywords and types plus the names composed programs
// declare themselves.
var reserved = map[string]struct{}{
	"alias": {}, "break": {}, "case": {}, "const": {}, "const_assert": {},
	"continue": {}, "continuing": {}, "default": {}, "diagnostic": {},
	"discard": {}, "else": {}, "enable": {}, "false": {}, "fn": {}, "for": {},
	"if": {}, "let": {}, "loop": {}, "override": {}, "requires": {},
	"return": {}, "struct": {}, "switch": {}, "true": {}, "var": {},
	"while": {},
	"bool": {}, "f16": {}, "f32": {}, "i32": {}, "u32": {},
	"vec2": {}, "vec3": {}, "vec4": {},
	"mat2x2": {}, "mat3x3": {}, "mat4x4": {},
	"array": {}, "atomic": {}, "ptr": {}, "sampler": {}, "texture_2d": {},
	"view": {}, "texture0": {}, "sampler0": {}, "color": {}, "texCoord": {},
	"x": {}, "y": {}, "z": {}, "w": {}, "in": {}, "out": {}, "p": {},
	"position": {}, "tex_coord": {},
	"vs_main": {}, "fs_main": {}, "View": {}, "VertexOutput": {},
}

// Type returns the WGSL type for the constant's length.
func (c Constant) Type() (string, error) {
	switch len(c.Value) {
	case 1:
		return "f32", nil
	case 2:
		return "vec2<f32>", nil
	case 3:
		return "vec3<f32>", nil
	case 4:
		return "vec4<f32>", nil
	default:
		return "", fmt.Errorf("%w: %q has %d", ErrConstantSize, c.Name, len(c.Value))
	}
}

// Validate checks the constant's name and length.
func (c Constant) Validate() error {
	if !identPattern.MatchString(c.Name) || strings.HasPrefix(c.Name, "__") {
		return fmt.Errorf("%w: %q", ErrConstantName, c.Name)
	}
	if _, ok := reserved[c.Name]; ok {
		return fmt.Errorf("%w: %q is reserved", ErrConstantName, c.Name)
	}
	_, err := c.Type()
	return err
}

// ValidateConstants checks every constant and rejects duplicate names.
func ValidateConstants(constants []Constant) error {
	seen := make(map[string]struct{}, len(constants))
	for _, c := range constants {
		if err := c.Validate(); err != nil {
			return err
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("%w: %q declared twice", ErrConstantName, c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}

// Pack returns the uniform payload for the constant, padded to 16 bytes.
func Pack(c Constant) []byte {
	out := make([]byte, 16)
	for i, v := range c.Value {
		if i == 4 {
			break
		}
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}
