// Copyright 2024 The Gofem-MPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mpm implements the MPM problem-manager: the time-stepping
// engine and the particle<->node transfer algorithms. It owns the
// mutable coupling between the particle set and the nodal scratch
// fields for the lifetime of a solve.
//
// The Manager's Solve method is structured after fem/fem.go's FEM.Run:
// first output, then a time loop with periodic and final output, every
// step failure wrapped with chk.Err. A schemeAllocators factory mirrors
// fem/solver.go's Solver interface and allocators map, even though only
// the "flip" scheme is implemented.
package mpm

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofem-mpm/bc"
	"github.com/cpmech/gofem-mpm/geom"
	"github.com/cpmech/gofem-mpm/mat"
	"github.com/cpmech/gofem-mpm/mesh"
	"github.com/cpmech/gofem-mpm/particle"
)

// Manager owns the particle set and the nodal scratch arrays for the
// duration of a solve. The mesh, material table, and boundary-condition
// table are borrowed references with lifetime at least that of the
// Manager.
type Manager struct {
	Mesh      *mesh.Mesh
	Materials []mat.StressModel
	Bcs       bc.Table

	Particles []*particle.Particle
	fields    *particle.NodalFields

	HasGravity bool
	Gravity    float64 // magnitude, subtracted along -z
}

// NewManager builds a Manager borrowing the given mesh, material table
// and boundary-condition table. The particle set is populated
// separately by Initialize.
func NewManager(m *mesh.Mesh, materials []mat.StressModel, bcs bc.Table) *Manager {
	return &Manager{Mesh: m, Materials: materials, Bcs: bcs}
}

// Initialize populates the particle set by testing cell-seeded
// candidates against geometries in list order. A candidate
// is accepted by the first geometry in the list that contains it; a
// candidate outside every geometry is discarded. Particle ordering is
// deterministic: by cell index, then by candidate index within the
// cell.
func (o *Manager) Initialize(geoms []geom.Geometry, order int) error {
	if len(geoms) == 0 {
		return chk.Err("initialize: geometries list must not be empty")
	}
	o.Particles = o.Particles[:0]
	ncells := o.Mesh.TotalNumCells()
	nodesPerCell := o.Mesh.NodesPerCell()
	for linear := 0; linear < ncells; linear++ {
		cellID := o.Mesh.CellIndex(linear)
		candidates, err := o.Mesh.InitializeParticles(cellID, order)
		if err != nil {
			return chk.Err("initialize: cell %v: %v", cellID, err)
		}
		for _, cand := range candidates {
			for _, g := range geoms {
				if g.ParticleInGeometry(cand.R) {
					p := particle.New(nodesPerCell)
					p.R = cand.R
					g.InitializeParticle(p, cand.Volume)
					o.Particles = append(o.Particles, p)
					break
				}
			}
		}
	}
	for _, p := range o.Particles {
		if err := p.CheckInvariants(len(o.Materials)); err != nil {
			return chk.Err("initialize: %v", err)
		}
	}
	return nil
}
