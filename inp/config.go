// Copyright 2024 The Gofem-MPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a JSON configuration
// file, mirroring inp/sim.go's
// JSON-tagged Data/SolverData structs, default-setting convention, and
// encoding/json-based decoding.
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// MeshConfig holds the uniform structured grid parameters.
type MeshConfig struct {
	NumCellsX int     `json:"mesh_num_cells_x"`
	NumCellsY int     `json:"mesh_num_cells_y"`
	NumCellsZ int     `json:"mesh_num_cells_z"`
	CellWidth float64 `json:"mesh_cell_width"`
	Jitter    bool    `json:"mesh_jitter"`    // seeded jitter of candidate seed points
	JitterSeed int    `json:"mesh_jitter_seed"`
}

// MaterialConfig holds one entry of the material table: a name (for
// the mat.New factory) and its fun/dbf-style parameters.
type MaterialConfig struct {
	Model string             `json:"model"` // e.g. "lin-elast", "neo-hookean"
	Prms  map[string]float64 `json:"prms"`  // parameter name -> value
}

// GeometryConfig holds one entry of the ordered geometry list consulted
// by the initializer: first match wins.
type GeometryConfig struct {
	Kind   string     `json:"kind"` // "sphere", "box", "halfspace"
	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius"`
	Min    [3]float64 `json:"min"`
	Max    [3]float64 `json:"max"`
	Point  [3]float64 `json:"point"`
	Normal [3]float64 `json:"normal"`

	Density float64    `json:"density"`
	V       [3]float64 `json:"v"`
	MatID   int        `json:"matid"`
}

// BcConfig holds one entry of the six-slot boundary-condition table.
type BcConfig struct {
	Face int     `json:"face"` // 0..5
	Kind string  `json:"kind"` // "free", "fixed", "friction"
	Mu   float64 `json:"mu"`   // friction coefficient, for kind == "friction"
}

// Config holds the full set of options recognized by the manager,
// plus the domain-stack extensions (materials, geometries, boundary
// conditions).
type Config struct {
	Mesh      MeshConfig       `json:"mesh"`
	Materials []MaterialConfig `json:"materials"`
	Geometries []GeometryConfig `json:"geometries"`
	Bcs       []BcConfig       `json:"bcs"`

	HasGravity    bool    `json:"has_gravity"`
	Gravity       float64 `json:"gravity"` // magnitude; defaults to 9.81 if zero
	NumTimeSteps  int     `json:"num_time_steps"`
	TimeStepSize  float64 `json:"time_step_size"`
	OutputFile    string  `json:"output_file"`
	WriteFrequency int    `json:"write_frequency"`
	QuadratureOrder int   `json:"quadrature_order"` // defaults to 1 if zero
}

// SetDefaults fills in zero-valued fields with their defaults, mirroring
// SolverData.SetDefault's sentinel-zero convention.
func (c *Config) SetDefaults() {
	if c.Gravity == 0 {
		c.Gravity = 9.81
	}
	if c.QuadratureOrder == 0 {
		c.QuadratureOrder = 1
	}
}

// Load reads and decodes a JSON configuration file, applies defaults,
// and validates it.
func Load(path string) (*Config, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read configuration file %q: %v", path, err)
	}
	var c Config
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, chk.Err("cannot parse configuration file %q: %v", path, err)
	}
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects a configuration with any invalid field.
func (c *Config) Validate() error {
	if c.Mesh.NumCellsX <= 0 || c.Mesh.NumCellsY <= 0 || c.Mesh.NumCellsZ <= 0 {
		return chk.Err("mesh_num_cells_x/y/z must be positive; got %d/%d/%d",
			c.Mesh.NumCellsX, c.Mesh.NumCellsY, c.Mesh.NumCellsZ)
	}
	if c.Mesh.CellWidth <= 0 {
		return chk.Err("mesh_cell_width must be positive; got %g", c.Mesh.CellWidth)
	}
	if c.NumTimeSteps < 0 {
		return chk.Err("num_time_steps must be non-negative; got %d", c.NumTimeSteps)
	}
	if c.TimeStepSize <= 0 {
		return chk.Err("time_step_size must be positive; got %g", c.TimeStepSize)
	}
	if c.OutputFile == "" {
		return chk.Err("output_file must be set")
	}
	if c.WriteFrequency <= 0 {
		return chk.Err("write_frequency must be positive; got %d", c.WriteFrequency)
	}
	if len(c.Materials) == 0 {
		return chk.Err("materials list must not be empty")
	}
	for i, b := range c.Bcs {
		if b.Face < 0 || b.Face > 5 {
			return chk.Err("bcs[%d].face out of range: %d", i, b.Face)
		}
	}
	return nil
}
