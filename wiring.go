// Copyright 2024 The Gofem-MPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gofem-mpm/bc"
	"github.com/cpmech/gofem-mpm/geom"
	"github.com/cpmech/gofem-mpm/inp"
)

// paramsFromMap converts a JSON-decoded name->value map into dbf.Params,
// the representation the mat package's factory expects.
func paramsFromMap(m map[string]float64) dbf.Params {
	prms := make(dbf.Params, 0, len(m))
	for name, val := range m {
		prms = append(prms, &dbf.P{N: name, V: val})
	}
	return prms
}

// buildGeometry constructs a geom.Geometry from one GeometryConfig
// entry.
func buildGeometry(gc inp.GeometryConfig) (geom.Geometry, error) {
	state := geom.InitialState{Density: gc.Density, V: gc.V, MatID: gc.MatID}
	switch gc.Kind {
	case "sphere":
		return &geom.Sphere{Center: gc.Center, Radius: gc.Radius, State: state}, nil
	case "box":
		return &geom.Box{Min: gc.Min, Max: gc.Max, State: state}, nil
	case "halfspace":
		return &geom.HalfSpace{Point: gc.Point, Normal: gc.Normal, State: state}, nil
	}
	return nil, chk.Err("unknown geometry kind: %q", gc.Kind)
}

// buildBc constructs a bc.BoundaryCondition from one BcConfig entry.
func buildBc(bcc inp.BcConfig) (bc.BoundaryCondition, error) {
	switch bcc.Kind {
	case "free", "":
		return &bc.Free{}, nil
	case "fixed":
		return &bc.Fixed{}, nil
	case "friction":
		return &bc.Friction{Mu: bcc.Mu}, nil
	}
	return nil, chk.Err("unknown boundary condition kind: %q", bcc.Kind)
}
