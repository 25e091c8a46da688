// Copyright 2024 The Gofem-MPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofem-mpm/particle"
	"github.com/cpmech/gofem-mpm/ten"
)

func Test_geom01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geom01: sphere membership")

	s := &Sphere{Center: [3]float64{1, 1, 1}, Radius: 0.5}
	if !s.ParticleInGeometry([3]float64{1, 1, 1}) {
		tst.Errorf("center must be inside\n")
	}
	if !s.ParticleInGeometry([3]float64{1.5, 1, 1}) {
		tst.Errorf("point on boundary must be inside\n")
	}
	if s.ParticleInGeometry([3]float64{2, 1, 1}) {
		tst.Errorf("point outside radius must be rejected\n")
	}
}

func Test_geom02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geom02: box membership")

	b := &Box{Min: [3]float64{0, 0, 0}, Max: [3]float64{1, 1, 1}}
	if !b.ParticleInGeometry([3]float64{0.5, 0.5, 0.5}) {
		tst.Errorf("interior point must be inside\n")
	}
	if !b.ParticleInGeometry([3]float64{0, 0, 0}) {
		tst.Errorf("corner must be inside\n")
	}
	if b.ParticleInGeometry([3]float64{1.1, 0.5, 0.5}) {
		tst.Errorf("point outside box must be rejected\n")
	}
}

func Test_geom03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geom03: half-space membership")

	h := &HalfSpace{Point: [3]float64{0, 0, 0}, Normal: [3]float64{0, 0, 1}}
	if h.ParticleInGeometry([3]float64{0, 0, 1}) {
		tst.Errorf("point on outward side must be rejected\n")
	}
	if !h.ParticleInGeometry([3]float64{0, 0, -1}) {
		tst.Errorf("point on inward side must be accepted\n")
	}
	if !h.ParticleInGeometry([3]float64{5, 5, 0}) {
		tst.Errorf("point on the plane must be accepted\n")
	}

	degenerate := &HalfSpace{Point: [3]float64{0, 0, 0}, Normal: [3]float64{0, 0, 0}}
	if degenerate.ParticleInGeometry([3]float64{0, 0, 0}) {
		tst.Errorf("zero normal must never accept\n")
	}
}

func Test_geom04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geom04: stamping sets F=I and zero stress/strain")

	s := &Sphere{Center: [3]float64{0, 0, 0}, Radius: 1, State: InitialState{Density: 2.0, V: [3]float64{1, 2, 3}, MatID: 1}}
	p := particle.New(8)
	p.Stress = [3][3]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}
	s.InitializeParticle(p, 0.5)

	chk.Scalar(tst, "mass", 1e-15, p.M, 1.0)
	chk.Scalar(tst, "volume", 1e-15, p.Volume, 0.5)
	chk.Scalar(tst, "matid", 1e-15, float64(p.MatID), 1)
	chk.Scalar(tst, "vx", 1e-15, p.V[0], 1)
	chk.Scalar(tst, "det(F)", 1e-15, ten.Det3(p.F), 1)
	chk.Scalar(tst, "stress zeroed", 1e-15, p.Stress[0][0], 0)
}
