// Copyright 2024 The Gofem-MPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mat implements the StressModel contract: given a particle's
// deformation gradient and prior state, compute its new Cauchy stress.
// The interface and factory mirror mdl/solid.Model / mdl/solid.Large
// and their name -> allocator database (mdl/solid/model.go).
package mat

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gofem-mpm/particle"
)

// StressModel updates a particle's stress (and strain) from its
// current deformation gradient. Implementations own whatever internal
// history they need (e.g. hardening variables) as struct fields.
type StressModel interface {
	Init(prms dbf.Params) error       // initialises model from parameters
	GetPrms() dbf.Params              // returns (an example of) its parameters
	CalculateStress(p *particle.Particle) error // reads p.F, writes p.Stress (and p.Strain)
}

// New returns a new stress model by name, or an error if unknown.
func New(name string) (StressModel, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("material model %q is not available in 'mat' database", name)
	}
	return allocator(), nil
}

// allocators holds all available material models; modelname -> allocator.
var allocators = map[string]func() StressModel{}
