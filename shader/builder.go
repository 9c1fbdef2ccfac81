// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"fmt"
	"strings"
)

type declKind uint8

const (
	declStruct declKind = iota
	declBinding
	declGlobal
	declFunction
)

type decl struct {
	kind   declKind
	header string
	lines  []string
}

// Builder assembles a WGSL module from an ordered list of declarations.
// Declarations are emitted in the order they were added.
//
// Builder methods return the receiver so calls can be chained:
//
//	src := shader.NewBuilder("blit").
//	    Struct("View", viewFields...).
//	    Uniform(0, 0, "view", "View").
//	    Function("@fragment\nfn fs_main() -> @location(0) vec4<f32>", "return vec4<f32>(1.0);").
//	    Source()
type Builder struct {
	label string
	decls []decl
}

// NewBuilder returns an empty builder. The label is written as a leading
// comment and is used in diagnostics.
func NewBuilder(label string) *Builder {
	return &Builder{label: label}
}

// Struct declares a struct with one field per entry.
func (b *Builder) Struct(name string, fields ...string) *Builder {
	b.decls = append(b.decls, decl{kind: declStruct, header: "struct " + name, lines: fields})
	return b
}

// Uniform declares a uniform buffer binding.
func (b *Builder) Uniform(group, binding int, name, typ string) *Builder {
	b.decls = append(b.decls, decl{
		kind:   declBinding,
		header: fmt.Sprintf("@group(%d) @binding(%d) var<uniform> %s: %s;", group, binding, name, typ),
	})
	return b
}

// Handle declares a texture or sampler binding.
func (b *Builder) Handle(group, binding int, name, typ string) *Builder {
	b.decls = append(b.decls, decl{
		kind:   declBinding,
		header: fmt.Sprintf("@group(%d) @binding(%d) var %s: %s;", group, binding, name, typ),
	})
	return b
}

// Global appends verbatim module-scope source such as helper functions.
// Empty or whitespace-only source is skipped.
func (b *Builder) Global(src string) *Builder {
	if strings.TrimSpace(src) == "" {
		return b
	}
	b.decls = append(b.decls, decl{kind: declGlobal, header: strings.TrimRight(src, "\n")})
	return b
}

// Function declares a function. header is everything before the opening
// brace; body fragments are emitted in order, one per line group.
func (b *Builder) Function(header string, body ...string) *Builder {
	b.decls = append(b.decls, decl{kind: declFunction, header: header, lines: body})
	return b
}

// Label returns the builder label.
func (b *Builder) Label() string { return b.label }

// Source renders the module.
func (b *Builder) Source() string {
	var sb strings.Builder
	if b.label != "" {
		fmt.Fprintf(&sb, "// %s\n", b.label)
	}
	prev := declKind(255)
	for i, d := range b.decls {
		// Blank line between groups and around every struct, global and function.
		if i > 0 && (d.kind != declBinding || prev != declBinding) {
			sb.WriteByte('\n')
		}
		switch d.kind {
		case declStruct:
			sb.WriteString(d.header)
			sb.WriteString(" {\n")
			for _, f := range d.lines {
				sb.WriteString("    ")
				sb.WriteString(f)
				sb.WriteString(",\n")
			}
			sb.WriteString("}\n")
		case declBinding:
			sb.WriteString(d.header)
			sb.WriteByte('\n')
		case declGlobal:
			sb.WriteString(d.header)
			sb.WriteByte('\n')
		case declFunction:
			sb.WriteString(d.header)
			sb.WriteString(" {\n")
			for _, frag := range d.lines {
				writeIndented(&sb, frag)
			}
			sb.WriteString("}\n")
		}
		prev = d.kind
	}
	return sb.String()
}

func writeIndented(sb *strings.Builder, frag string) {
	frag = strings.TrimRight(frag, "\n")
	if strings.TrimSpace(frag) == "" {
		return
	}
	for _, line := range strings.Split(frag, "\n") {
		if strings.TrimSpace(line) == "" {
			sb.WriteByte('\n')
			continue
		}
		sb.WriteString("    ")
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
}
