// Copyright 2024 The Gofem-MPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom implements the Geometry contract: a point-membership
// test and per-particle initial-state stamping, consulted in list
// order by the initializer.
package geom

import (
	"math"

	"github.com/cpmech/gofem-mpm/particle"
	"github.com/cpmech/gofem-mpm/ten"
)

// Geometry tests particle membership and stamps initial per-particle
// state for particles it accepts.
type Geometry interface {
	ParticleInGeometry(r [3]float64) bool
	InitializeParticle(p *particle.Particle, volume float64)
}

// InitialState is the state a Geometry stamps onto every particle it
// accepts.
type InitialState struct {
	Density float64    // initial mass density; mass = density * volume
	V       [3]float64 // initial velocity
	MatID   int        // material table index
}

// stamp applies an InitialState to a particle given its candidate
// volume, setting F = I and stress/strain to zero.
func stamp(p *particle.Particle, volume float64, s InitialState) {
	p.Volume = volume
	p.M = s.Density * volume
	p.V = s.V
	p.MatID = s.MatID
	p.F = ten.Identity3()
	p.Stress = ten.Mat3{}
	p.Strain = ten.Mat3{}
}

// Sphere is a ball of given center and radius.
type Sphere struct {
	Center [3]float64
	Radius float64
	State  InitialState
}

// ParticleInGeometry tests Euclidean-distance membership.
func (g *Sphere) ParticleInGeometry(r [3]float64) bool {
	dx, dy, dz := r[0]-g.Center[0], r[1]-g.Center[1], r[2]-g.Center[2]
	return dx*dx+dy*dy+dz*dz <= g.Radius*g.Radius
}

// InitializeParticle stamps the sphere's initial state.
func (g *Sphere) InitializeParticle(p *particle.Particle, volume float64) {
	stamp(p, volume, g.State)
}

// Box is an axis-aligned box given by its min and max corners.
type Box struct {
	Min, Max [3]float64
	State    InitialState
}

// ParticleInGeometry tests axis-aligned containment.
func (g *Box) ParticleInGeometry(r [3]float64) bool {
	for d := 0; d < 3; d++ {
		if r[d] < g.Min[d] || r[d] > g.Max[d] {
			return false
		}
	}
	return true
}

// InitializeParticle stamps the box's initial state.
func (g *Box) InitializeParticle(p *particle.Particle, volume float64) {
	stamp(p, volume, g.State)
}

// HalfSpace is the set of points on the inward side of a plane defined
// by a point on the plane and an outward normal.
type HalfSpace struct {
	Point  [3]float64
	Normal [3]float64 // need not be pre-normalized
	State  InitialState
}

// ParticleInGeometry tests which side of the plane r falls on.
func (g *HalfSpace) ParticleInGeometry(r [3]float64) bool {
	n := g.Normal
	norm := math.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	if norm == 0 {
		return false
	}
	dx, dy, dz := r[0]-g.Point[0], r[1]-g.Point[1], r[2]-g.Point[2]
	d := (dx*n[0] + dy*n[1] + dz*n[2]) / norm
	return d <= 0
}

// InitializeParticle stamps the half-space's initial state.
func (g *HalfSpace) InitializeParticle(p *particle.Particle, volume float64) {
	stamp(p, volume, g.State)
}
