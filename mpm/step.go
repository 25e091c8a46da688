// Copyright 2024 The Gofem-MPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofem-mpm/bc"
	"github.com/cpmech/gofem-mpm/ten"
)

// step runs the nine-step particle<->node transfer pipeline, in order.
// The ordering is load-bearing and preserved literally: step 6
// (particle update) uses the pre-integration momentum from step 3 plus
// the impulse from step 5, and must precede step 7 (nodal velocity) so
// that the velocity gradient of step 8 reflects the momentum state at
// the beginning of the step, not after particle motion.
func (o *Manager) step(dt float64) error {

	// 1. locate: ask the mesh for each particle's cell, node ids,
	// reference coordinates and shape function values/gradients.
	for _, p := range o.Particles {
		_, nodeIDs, _, S, G, err := o.Mesh.Locate(p.R)
		if err != nil {
			return chk.Err("locate: %v", err)
		}
		copy(p.NodeIDs, nodeIDs)
		copy(p.BasisValues, S)
		copy(p.BasisGradients, G)
	}

	f := o.fields

	// 2. scatter mass
	f.ZeroMass()
	for _, p := range o.Particles {
		for k, n := range p.NodeIDs {
			f.M[n] += p.BasisValues[k] * p.M
		}
	}

	// 3. scatter momentum, then apply momentum boundary condition
	f.ZeroMomentum()
	for _, p := range o.Particles {
		for k, n := range p.NodeIDs {
			s := p.BasisValues[k]
			for d := 0; d < 3; d++ {
				f.P[n][d] += p.M * p.V[d] * s
			}
		}
	}
	for face := 0; face < 6; face++ {
		o.Bcs[face].EvaluateMomentumCondition(o.Mesh, face, f.M, f.P)
	}

	// 4. assemble internal forces: discrete divergence of Cauchy stress
	f.ZeroInternalForce()
	for _, p := range o.Particles {
		for k, n := range p.NodeIDs {
			g := p.BasisGradients[k]
			for i := 0; i < 3; i++ {
				var div float64
				for j := 0; j < 3; j++ {
					div += g[j] * p.Stress[j][i]
				}
				f.FInt[n][i] -= p.Volume * div
			}
		}
	}

	// 5. integrate impulse, apply gravity, apply impulse boundary
	// condition
	for n := range f.Imp {
		for d := 0; d < 3; d++ {
			f.Imp[n][d] = dt * f.FInt[n][d]
		}
		if o.HasGravity {
			f.Imp[n][2] -= dt * f.M[n] * o.Gravity
		}
	}
	for face := 0; face < 6; face++ {
		o.Bcs[face].EvaluateImpulseCondition(o.Mesh, face, f.M, f.Imp)
	}

	// 6. update particle position and velocity (FLIP), using the
	// pre-update nodal momentum (step 3, post-BC) and impulse (step 5).
	// Zero-mass nodes contribute nothing.
	for _, p := range o.Particles {
		for k, n := range p.NodeIDs {
			if f.M[n] <= 0 {
				continue
			}
			s := p.BasisValues[k]
			invM := s / f.M[n]
			for d := 0; d < 3; d++ {
				p.R[d] += dt * (f.P[n][d] + f.Imp[n][d]) * invM
				p.V[d] += f.Imp[n][d] * invM
			}
		}
	}

	// 7. compute nodal velocity: re-scatter m*v using the pre-update
	// (step 1) basis values, then apply the momentum boundary condition
	// to the velocity field via the shared alias.
	f.ZeroVelocity()
	for _, p := range o.Particles {
		for k, n := range p.NodeIDs {
			s := p.BasisValues[k]
			for d := 0; d < 3; d++ {
				f.V[n][d] += p.M * p.V[d] * s
			}
		}
	}
	for n := range f.V {
		if f.M[n] > 0 {
			for d := 0; d < 3; d++ {
				f.V[n][d] /= f.M[n]
			}
		} else {
			f.V[n] = [3]float64{}
		}
	}
	for face := 0; face < 6; face++ {
		bc.EvaluateVelocityCondition(o.Bcs[face], o.Mesh, face, f.M, f.V)
	}

	// 8. update gradients: velocity gradient from nodal velocity,
	// deformation gradient, and volume.
	for _, p := range o.Particles {
		var gradV ten.Mat3
		for k, n := range p.NodeIDs {
			g := p.BasisGradients[k]
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					gradV[i][j] += g[i] * f.V[n][j]
				}
			}
		}
		p.GradV = gradV
		w := ten.Scale3(dt, gradV)
		p.F = ten.AddScaled3(p.F, 1, ten.MatMul3(w, p.F))
		volRatio := ten.Det3(ten.AddScaled3(ten.Identity3(), 1, w))
		p.Volume *= volRatio
	}

	// 9. update stress: dispatch to the particle's material model,
	// which reads F and writes stress (and strain). matid is
	// guaranteed in range by Initialize/CheckInvariants.
	for _, p := range o.Particles {
		if p.MatID < 0 || p.MatID >= len(o.Materials) {
			chk.Panic("step: particle has invalid material index: matid=%d nmaterials=%d", p.MatID, len(o.Materials))
		}
		if err := o.Materials[p.MatID].CalculateStress(p); err != nil {
			return chk.Err("constitutive update: %v", err)
		}
	}

	return nil
}
