// Copyright 2024 The Gofem-MPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bc implements the BoundaryCondition contract of six
// per-face callbacks that correct nodal momentum, nodal velocity, and
// nodal impulse. The same method services both momentum-like and
// velocity-like corrections. Grounded on
// ele/naturalbcs.go's NaturalBc (Key + face index) and
// fem/essenbcs.go's keyed/indexed table structuring (EbcArray).
package bc

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofem-mpm/mesh"
)

// Face indices, conventionally -x,+x,-y,+y,-z,+z.
const (
	FaceXMin = 0
	FaceXMax = 1
	FaceYMin = 2
	FaceYMax = 3
	FaceZMin = 4
	FaceZMax = 5
)

// faceNormal is the outward unit normal of each face.
var faceNormal = [6][3]float64{
	{-1, 0, 0}, {1, 0, 0},
	{0, -1, 0}, {0, 1, 0},
	{0, 0, -1}, {0, 0, 1},
}

// faceAxis is the axis each face is normal to.
var faceAxis = [6]int{0, 0, 1, 1, 2, 2}

// BoundaryCondition applies per-face corrections to nodal fields. The
// mesh is passed in so implementations can identify which nodes of
// nodalVectorField/nodeMass lie on the given face.
type BoundaryCondition interface {
	// EvaluateMomentumCondition may modify the nodal vector field
	// (used for both momentum and, via the shared alias below,
	// velocity).
	EvaluateMomentumCondition(m *mesh.Mesh, faceIndex int, nodeMass []float64, nodalVectorField [][3]float64)
	// EvaluateImpulseCondition may modify nodal impulse.
	EvaluateImpulseCondition(m *mesh.Mesh, faceIndex int, nodeMass []float64, nodeImp [][3]float64)
}

// EvaluateVelocityCondition is an alias for EvaluateMomentumCondition,
// naming the call the time-stepping driver makes at step 7 against the
// nodal velocity array.
func EvaluateVelocityCondition(bcnd BoundaryCondition, m *mesh.Mesh, faceIndex int, nodeMass []float64, nodeVel [][3]float64) {
	bcnd.EvaluateMomentumCondition(m, faceIndex, nodeMass, nodeVel)
}

// Table holds the six face boundary conditions, keyed by face index.
type Table [6]BoundaryCondition

// NewTable builds a Table with every face set to Free.
func NewTable() Table {
	var t Table
	for i := range t {
		t[i] = &Free{}
	}
	return t
}

// Set assigns the boundary condition for one face.
func (t *Table) Set(faceIndex int, bcnd BoundaryCondition) error {
	if faceIndex < 0 || faceIndex > 5 {
		return chk.Err("face index out of range: %d", faceIndex)
	}
	t[faceIndex] = bcnd
	return nil
}

// faceNodeIDs returns the global node ids that lie on faceIndex of a
// mesh with the given dimensions.
func faceNodeIDs(m *mesh.Mesh, faceIndex int) []int {
	nx1, ny1, nz1 := m.Nx+1, m.Ny+1, m.Nz+1
	nodeID := func(i, j, k int) int { return i*ny1*nz1 + j*nz1 + k }
	ids := make([]int, 0)
	switch faceIndex {
	case FaceXMin, FaceXMax:
		i := 0
		if faceIndex == FaceXMax {
			i = nx1 - 1
		}
		for j := 0; j < ny1; j++ {
			for k := 0; k < nz1; k++ {
				ids = append(ids, nodeID(i, j, k))
			}
		}
	case FaceYMin, FaceYMax:
		j := 0
		if faceIndex == FaceYMax {
			j = ny1 - 1
		}
		for i := 0; i < nx1; i++ {
			for k := 0; k < nz1; k++ {
				ids = append(ids, nodeID(i, j, k))
			}
		}
	case FaceZMin, FaceZMax:
		k := 0
		if faceIndex == FaceZMax {
			k = nz1 - 1
		}
		for i := 0; i < nx1; i++ {
			for j := 0; j < ny1; j++ {
				ids = append(ids, nodeID(i, j, k))
			}
		}
	}
	return ids
}
