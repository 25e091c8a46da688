// Copyright 2024 The Gofem-MPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package particle implements the per-point state container carried by
// the MPM problem manager, and the per-step nodal scratch arrays the
// manager projects particle quantities onto. Ownership follows
// fem.Domain's convention: both are allocated once and reused in place
// for the lifetime of a solve (fem/domain.go's Sol.Y / Sol.Dydt arrays
// are the model for this).
package particle

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofem-mpm/ten"
)

// Particle holds the full state of one material point.
type Particle struct {
	R [3]float64 // position
	V [3]float64 // velocity

	M      float64 // mass; constant, > 0
	Volume float64 // current volume; > 0

	F     ten.Mat3 // deformation gradient; starts at identity
	GradV ten.Mat3 // velocity gradient; scratch, overwritten each step

	Stress ten.Mat3 // Cauchy stress
	Strain ten.Mat3 // strain tensor; owned by the material model

	MatID int // index into the material table

	// per-step scratch set by the locate kernel; valid until the next
	// locate call
	NodeIDs        []int        // global node ids of the owning cell
	BasisValues    []float64    // shape function values, one per node
	BasisGradients [][3]float64 // shape function gradients, one per node
}

// New allocates a particle with F = I and all other scratch fields
// sized for a cell with nodesPerCell adjacent nodes.
func New(nodesPerCell int) *Particle {
	return &Particle{
		F:              ten.Identity3(),
		NodeIDs:        make([]int, nodesPerCell),
		BasisValues:    make([]float64, nodesPerCell),
		BasisGradients: make([][3]float64, nodesPerCell),
	}
}

// CheckInvariants verifies the invariants of that the manager
// is responsible for (not the ones implied by the mesh contract, such
// as partition of unity).
func (p *Particle) CheckInvariants(nmaterials int) error {
	if p.M <= 0 {
		return chk.Err("particle mass must be positive; got m=%g", p.M)
	}
	if p.Volume <= 0 {
		return chk.Err("particle volume must be positive; got volume=%g", p.Volume)
	}
	if ten.Det3(p.F) <= 0 {
		return chk.Err("particle deformation gradient is degenerate: det(F)=%g", ten.Det3(p.F))
	}
	if p.MatID < 0 || p.MatID >= nmaterials {
		return chk.Err("particle has invalid material index: matid=%d nmaterials=%d", p.MatID, nmaterials)
	}
	return nil
}

// NodalFields holds the per-step scratch arrays of nodal mass, momentum,
// velocity, impulse and internal force. Allocated once at
// solve entry and reset in place every step; never reallocated.
type NodalFields struct {
	M    []float64    // nodal mass
	P    [][3]float64 // nodal momentum
	V    [][3]float64 // nodal velocity
	Imp  [][3]float64 // nodal impulse
	FInt [][3]float64 // nodal internal force
}

// NewNodalFields allocates a nodal field set sized for nnodes nodes.
func NewNodalFields(nnodes int) *NodalFields {
	return &NodalFields{
		M:    make([]float64, nnodes),
		P:    make([][3]float64, nnodes),
		V:    make([][3]float64, nnodes),
		Imp:  make([][3]float64, nnodes),
		FInt: make([][3]float64, nnodes),
	}
}

// ZeroMass zeroes node_m in place.
func (n *NodalFields) ZeroMass() {
	for i := range n.M {
		n.M[i] = 0
	}
}

// ZeroMomentum zeroes node_p in place.
func (n *NodalFields) ZeroMomentum() {
	for i := range n.P {
		n.P[i] = [3]float64{}
	}
}

// ZeroInternalForce zeroes node_f_int in place.
func (n *NodalFields) ZeroInternalForce() {
	for i := range n.FInt {
		n.FInt[i] = [3]float64{}
	}
}

// ZeroVelocity zeroes node_v in place.
func (n *NodalFields) ZeroVelocity() {
	for i := range n.V {
		n.V[i] = [3]float64{}
	}
}
