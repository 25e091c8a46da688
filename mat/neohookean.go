// Copyright 2024 The Gofem-MPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gofem-mpm/particle"
	"github.com/cpmech/gofem-mpm/ten"
)

// add model to factory
func init() {
	allocators["neo-hookean"] = func() StressModel { return new(NeoHookean) }
}

// NeoHookean implements a compressible Neo-Hookean hyperelastic law
// operating directly on the deformation gradient, the natural
// large-deformation counterpart to LinearElastic. Grounded on
// mdl/solid.Large's interface shape (Update reads F, writes Cauchy
// stress) rather than any one concrete model, since the fork's own
// hyperelastic model (msolid/hyperelast1.go) is a critical-state soil
// law, not a finite-strain elasticity law.
//
//	σ = (μ/J)(B - I) + (λ/J) ln(J) I,   B = F Fᵀ, J = det(F)
type NeoHookean struct {
	E, Nu float64 // Young's modulus and Poisson ratio
	L, Mu float64 // Lame parameters
}

// Init sets the Lame parameters from {E,nu}.
func (o *NeoHookean) Init(prms dbf.Params) (err error) {
	var hasE, hasNu bool
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E, hasE = p.V, true
		case "nu":
			o.Nu, hasNu = p.V, true
		}
	}
	if !hasE || !hasNu {
		return chk.Err("neo-hookean model requires parameters {E, nu}")
	}
	o.L = Calc_l_from_Enu(o.E, o.Nu)
	o.Mu = Calc_G_from_Enu(o.E, o.Nu)
	return nil
}

// GetPrms gets (an example) of parameters.
func (o NeoHookean) GetPrms() dbf.Params {
	return []*dbf.P{
		{N: "E", V: o.E},
		{N: "nu", V: o.Nu},
	}
}

// CalculateStress computes the compressible Neo-Hookean Cauchy stress
// from p.F.
func (o NeoHookean) CalculateStress(p *particle.Particle) error {
	J := ten.Det3(p.F)
	if J <= 0 {
		return chk.Err("neo-hookean: degenerate deformation gradient, det(F)=%g", J)
	}
	B := ten.MatMul3(p.F, ten.Transpose3(p.F))
	I := ten.Identity3()
	p.Stress = ten.AddScaled3(ten.Scale3(o.L*math.Log(J)/J, I), o.Mu/J, ten.AddScaled3(B, -1, I))
	return nil
}
