// Copyright 2024 The Gofem-MPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import "github.com/cpmech/gosl/chk"

// Scheme is one particle<->node transfer scheme. Only "flip" is
// implemented; alternative transfer schemes (APIC/MLS-MPM) are out of
// scope for now. The factory below exists anyway, mirroring
// fem/solver.go's Solver interface + allocators map, so that a future
// scheme has an established place to register itself without touching
// Solve.
type Scheme interface {
	Step(o *Manager, dt float64) error
}

// schemeAllocators holds all available transfer schemes; name ->
// allocator.
var schemeAllocators = map[string]func() Scheme{
	"flip": func() Scheme { return flipScheme{} },
}

// NewScheme returns a new transfer scheme by name.
func NewScheme(name string) (Scheme, error) {
	allocator, ok := schemeAllocators[name]
	if !ok {
		return nil, chk.Err("transfer scheme %q is not available; only %q is implemented", name, "flip")
	}
	return allocator(), nil
}

// flipScheme implements the FLIP-style particle-in-cell update.
type flipScheme struct{}

func (flipScheme) Step(o *Manager, dt float64) error {
	return o.step(dt)
}
