// Copyright 2024 The Gofem-MPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bc

import (
	"math"

	"github.com/cpmech/gofem-mpm/mesh"
)

// Free applies no correction: a no-op boundary condition.
type Free struct{}

// EvaluateMomentumCondition does nothing.
func (o *Free) EvaluateMomentumCondition(m *mesh.Mesh, faceIndex int, nodeMass []float64, field [][3]float64) {
}

// EvaluateImpulseCondition does nothing.
func (o *Free) EvaluateImpulseCondition(m *mesh.Mesh, faceIndex int, nodeMass []float64, imp [][3]float64) {
}

// Fixed zeroes the face-normal component of the given vector field on
// every node of the face: a rigid, frictionless wall.
type Fixed struct{}

// EvaluateMomentumCondition zeroes the normal component of momentum
// (or velocity, via the shared alias) on the face.
func (o *Fixed) EvaluateMomentumCondition(m *mesh.Mesh, faceIndex int, nodeMass []float64, field [][3]float64) {
	axis := faceAxis[faceIndex]
	for _, n := range faceNodeIDs(m, faceIndex) {
		field[n][axis] = 0
	}
}

// EvaluateImpulseCondition zeroes the normal component of impulse on
// the face.
func (o *Fixed) EvaluateImpulseCondition(m *mesh.Mesh, faceIndex int, nodeMass []float64, imp [][3]float64) {
	axis := faceAxis[faceIndex]
	for _, n := range faceNodeIDs(m, faceIndex) {
		imp[n][axis] = 0
	}
}

// Friction is a Coulomb-limited frictional wall: the normal component
// of the field is zeroed (no penetration) and the tangential
// components are damped towards zero by at most Mu times the normal
// reaction magnitude available at the node. A standard MPM wall model,
// grounded on the per-face natural-bc convention of ele/naturalbcs.go.
type Friction struct {
	Mu float64 // friction coefficient, >= 0
}

// EvaluateMomentumCondition applies the Coulomb friction law to a
// momentum or velocity field.
func (o *Friction) EvaluateMomentumCondition(m *mesh.Mesh, faceIndex int, nodeMass []float64, field [][3]float64) {
	axis := faceAxis[faceIndex]
	for _, n := range faceNodeIDs(m, faceIndex) {
		// negative when the field points out through the face
		normal := -field[n][axis] * faceNormal[faceIndex][axis]
		if normal >= 0 {
			continue // wall only resists penetration, not separation
		}
		field[n][axis] = 0
		limit := o.Mu * math.Abs(normal)
		tangentialMag := 0.0
		for d := 0; d < 3; d++ {
			if d == axis {
				continue
			}
			tangentialMag += field[n][d] * field[n][d]
		}
		tangentialMag = math.Sqrt(tangentialMag)
		if tangentialMag <= limit || tangentialMag == 0 {
			for d := 0; d < 3; d++ {
				if d != axis {
					field[n][d] = 0
				}
			}
			continue
		}
		scale := (tangentialMag - limit) / tangentialMag
		for d := 0; d < 3; d++ {
			if d != axis {
				field[n][d] *= scale
			}
		}
	}
}

// EvaluateImpulseCondition applies the same Coulomb law to impulse.
func (o *Friction) EvaluateImpulseCondition(m *mesh.Mesh, faceIndex int, nodeMass []float64, imp [][3]float64) {
	o.EvaluateMomentumCondition(m, faceIndex, nodeMass, imp)
}
