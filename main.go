// Copyright 2024 The Gofem-MPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gofem-mpm/bc"
	"github.com/cpmech/gofem-mpm/geom"
	"github.com/cpmech/gofem-mpm/inp"
	"github.com/cpmech/gofem-mpm/mat"
	"github.com/cpmech/gofem-mpm/mesh"
	"github.com/cpmech/gofem-mpm/mpm"
	"github.com/cpmech/gofem-mpm/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// message
	io.PfWhite("\nGofem-MPM -- Material Point Method solver\n\n")
	io.Pf("Copyright 2024 The Gofem-MPM Authors. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	// configuration filenamepath
	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("Please, provide a configuration file. Ex.: drop.json\n")
	}
	cfgpath := flag.Arg(0)

	cfg, err := inp.Load(cfgpath)
	if err != nil {
		chk.Panic("cannot load configuration: %v\n", err)
	}

	if err := run(cfg); err != nil {
		chk.Panic("run failed: %v\n", err)
	}
}

// run wires the configuration into a mesh, material table, geometry
// list and boundary-condition table, then drives the solver. Kept
// separate from main so a top-level panic recovers cleanly against the
// recover-and-print block above.
func run(cfg *inp.Config) error {

	m, err := mesh.New(cfg.Mesh.NumCellsX, cfg.Mesh.NumCellsY, cfg.Mesh.NumCellsZ, cfg.Mesh.CellWidth)
	if err != nil {
		return err
	}
	if cfg.Mesh.Jitter {
		m.EnableJitter(cfg.Mesh.JitterSeed)
	}

	materials := make([]mat.StressModel, len(cfg.Materials))
	for i, mc := range cfg.Materials {
		model, err := mat.New(mc.Model)
		if err != nil {
			return err
		}
		prms := paramsFromMap(mc.Prms)
		if err := model.Init(prms); err != nil {
			return err
		}
		materials[i] = model
	}

	geoms := make([]geom.Geometry, len(cfg.Geometries))
	for i, gc := range cfg.Geometries {
		g, err := buildGeometry(gc)
		if err != nil {
			return err
		}
		geoms[i] = g
	}

	bcs := bc.NewTable()
	for _, bcc := range cfg.Bcs {
		bcnd, err := buildBc(bcc)
		if err != nil {
			return err
		}
		if err := bcs.Set(bcc.Face, bcnd); err != nil {
			return err
		}
	}

	manager := mpm.NewManager(m, materials, bcs)
	if err := manager.Initialize(geoms, cfg.QuadratureOrder); err != nil {
		return err
	}

	sink := &out.CSVSink{Prefix: cfg.OutputFile}
	io.Pf("mpm: %d particles initialized\n", len(manager.Particles))
	return manager.Solve(context.Background(), cfg.NumTimeSteps, cfg.TimeStepSize,
		cfg.HasGravity, cfg.Gravity, cfg.WriteFrequency, sink)
}
