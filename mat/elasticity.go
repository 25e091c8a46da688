// Copyright 2024 The Gofem-MPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gofem-mpm/particle"
	"github.com/cpmech/gofem-mpm/ten"
)

// add model to factory
func init() {
	allocators["lin-elast"] = func() StressModel { return new(LinearElastic) }
}

// LinearElastic implements small-strain Hookean elasticity: strain is
// taken as the symmetric part of F - I, which is exact for small
// deformations and is the standard MPM linear-elastic law. Grounded on
// mdl/solid/elasticity.go's SmallElasticity, adapted from the
// engineering-vector (Mandel) representation to dense 3x3 tensors.
type LinearElastic struct {
	E, Nu float64 // Young's modulus and Poisson ratio
	L, G  float64 // Lame parameters: L == lambda, G == mu
	K     float64 // bulk modulus
}

// Init sets the elastic constants from any complete combination of
// {E,nu}, {l,G}, {K,G}, {K,nu}, exactly as SmallElasticity.Init does.
func (o *LinearElastic) Init(prms dbf.Params) (err error) {
	var hasE, hasNu, hasL, hasG, hasK bool
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E, hasE = p.V, true
		case "nu":
			o.Nu, hasNu = p.V, true
		case "l":
			o.L, hasL = p.V, true
		case "G":
			o.G, hasG = p.V, true
		case "K":
			o.K, hasK = p.V, true
		}
	}
	switch {
	case hasE && hasNu:
		o.L = Calc_l_from_Enu(o.E, o.Nu)
		o.G = Calc_G_from_Enu(o.E, o.Nu)
		o.K = Calc_K_from_Enu(o.E, o.Nu)
	case hasL && hasG:
		o.E = Calc_E_from_lG(o.L, o.G)
		o.Nu = Calc_nu_from_lG(o.L, o.G)
		o.K = Calc_K_from_lG(o.L, o.G)
	case hasK && hasG:
		o.E = Calc_E_from_KG(o.K, o.G)
		o.Nu = Calc_nu_from_KG(o.K, o.G)
		o.L = Calc_l_from_KG(o.K, o.G)
	case hasK && hasNu:
		o.E = Calc_E_from_Knu(o.K, o.Nu)
		o.G = Calc_G_from_Knu(o.K, o.Nu)
		o.L = Calc_l_from_Knu(o.K, o.Nu)
	default:
		return chk.Err("combination of elastic constants is incorrect. options are {E,nu}, {l,G}, {K,G} and {K,nu}")
	}
	return nil
}

// GetPrms gets (an example) of parameters.
func (o LinearElastic) GetPrms() dbf.Params {
	return []*dbf.P{
		{N: "E", V: o.E},
		{N: "nu", V: o.Nu},
	}
}

// CalculateStress computes σ = L*tr(ε)*I + 2*G*ε where ε is the small
// strain tensor recovered from F.
func (o LinearElastic) CalculateStress(p *particle.Particle) error {
	I := ten.Identity3()
	FminusI := ten.AddScaled3(p.F, -1, I)
	eps := ten.Scale3(0.5, ten.Add3(FminusI, ten.Transpose3(FminusI)))
	p.Strain = eps
	tr := ten.Trace3(eps)
	p.Stress = ten.AddScaled3(ten.Scale3(o.L*tr, I), 2*o.G, eps)
	return nil
}

// elastic-constant conversions, grounded on msolid/elasticity.go's
// Calc_* helper family.

func Calc_l_from_Enu(E, nu float64) float64 { return E * nu / ((1 + nu) * (1 - 2*nu)) }
func Calc_G_from_Enu(E, nu float64) float64 { return E / (2 * (1 + nu)) }
func Calc_K_from_Enu(E, nu float64) float64 { return E / (3 * (1 - 2*nu)) }

func Calc_E_from_lG(l, G float64) float64  { return G * (3*l + 2*G) / (l + G) }
func Calc_nu_from_lG(l, G float64) float64 { return l / (2 * (l + G)) }
func Calc_K_from_lG(l, G float64) float64  { return l + 2*G/3 }

func Calc_E_from_KG(K, G float64) float64  { return 9 * K * G / (3*K + G) }
func Calc_nu_from_KG(K, G float64) float64 { return (3*K - 2*G) / (2 * (3*K + G)) }
func Calc_l_from_KG(K, G float64) float64  { return K - 2*G/3 }

func Calc_E_from_Knu(K, nu float64) float64 { return 3 * K * (1 - 2*nu) }
func Calc_G_from_Knu(K, nu float64) float64 { return 3 * K * (1 - 2*nu) / (2 * (1 + nu)) }
func Calc_l_from_Knu(K, nu float64) float64 { return 3 * K * nu / (1 + nu) }
