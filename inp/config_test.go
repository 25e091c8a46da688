// Copyright 2024 The Gofem-MPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

const validJSON = `{
	"mesh": {"mesh_num_cells_x": 2, "mesh_num_cells_y": 2, "mesh_num_cells_z": 2, "mesh_cell_width": 1.0},
	"materials": [{"model": "lin-elast", "prms": {"E": 1000.0, "nu": 0.25}}],
	"geometries": [{"kind": "sphere", "center": [1,1,1], "radius": 0.8, "density": 1.0}],
	"bcs": [{"face": 4, "kind": "fixed"}],
	"has_gravity": true,
	"num_time_steps": 10,
	"time_step_size": 0.001,
	"output_file": "out/drop",
	"write_frequency": 5
}`

func writeTemp(tst *testing.T, content string) string {
	path := os.TempDir() + "/gofem-mpm-test-config.json"
	var buf bytes.Buffer
	io.Ff(&buf, "%s", content)
	io.WriteFileV(path, &buf)
	return path
}

func Test_inp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inp01: load and default-fill a valid configuration")

	path := writeTemp(tst, validJSON)
	defer os.Remove(path)

	cfg, err := Load(path)
	if err != nil {
		tst.Errorf("Load failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "gravity defaulted", 1e-15, cfg.Gravity, 9.81)
	chk.IntAssert(cfg.QuadratureOrder, 1)
	chk.IntAssert(cfg.Mesh.NumCellsX, 2)
	chk.IntAssert(len(cfg.Materials), 1)
	chk.IntAssert(len(cfg.Geometries), 1)
	chk.IntAssert(len(cfg.Bcs), 1)
}

func Test_inp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inp02: invalid configuration is rejected before solve")

	var c Config
	c.Mesh.NumCellsX, c.Mesh.NumCellsY, c.Mesh.NumCellsZ = 1, 1, 1
	c.Mesh.CellWidth = 1.0
	c.TimeStepSize = 0.001
	c.OutputFile = "x"
	c.WriteFrequency = 1
	c.Materials = []MaterialConfig{{Model: "lin-elast"}}

	if err := c.Validate(); err != nil {
		tst.Errorf("expected valid configuration, got: %v\n", err)
	}

	bad := c
	bad.Mesh.CellWidth = 0
	if err := bad.Validate(); err == nil {
		tst.Errorf("expected error for non-positive cell width\n")
	}

	bad2 := c
	bad2.Materials = nil
	if err := bad2.Validate(); err == nil {
		tst.Errorf("expected error for empty materials list\n")
	}

	bad3 := c
	bad3.Bcs = []BcConfig{{Face: 9, Kind: "fixed"}}
	if err := bad3.Validate(); err == nil {
		tst.Errorf("expected error for out-of-range bc face\n")
	}
}
