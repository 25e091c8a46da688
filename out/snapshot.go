// Copyright 2024 The Gofem-MPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out writes a time-indexed snapshot of particle positions and
// velocity magnitude. Grounded on tools/GenVtu.go's
// buffered-write-then-flush pattern (bytes.Buffer built with io.Ff,
// flushed with io.WriteFileV).
package out

import (
	"bytes"
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gofem-mpm/particle"
)

// Sink accepts a time-indexed snapshot of particle positions and
// velocity magnitudes.
type Sink interface {
	WriteSnapshot(index int, particles []*particle.Particle) error
}

// CSVSink writes one "<prefix>.csv.<index>" file per snapshot: fixed
// header, one row per particle in storage order, no trailing metadata.
type CSVSink struct {
	Prefix string
}

// WriteSnapshot writes the snapshot file for this index.
func (o *CSVSink) WriteSnapshot(index int, particles []*particle.Particle) error {
	var buf bytes.Buffer
	io.Ff(&buf, "x, y, z, velocity magnitude\n")
	for _, p := range particles {
		vmag := math.Sqrt(p.V[0]*p.V[0] + p.V[1]*p.V[1] + p.V[2]*p.V[2])
		io.Ff(&buf, "%v, %v, %v, %v\n", p.R[0], p.R[1], p.R[2], vmag)
	}
	path := io.Sf("%s.csv.%d", o.Prefix, index)
	io.WriteFileV(path, &buf)
	return nil
}

// NullSink discards the file write and keeps snapshots in memory
// instead. Used by tests that exercise the time-stepping driver
// without touching the filesystem.
type NullSink struct {
	Snapshots [][]*particle.Particle // retained for test assertions
}

// WriteSnapshot records the snapshot in memory instead of writing it.
func (o *NullSink) WriteSnapshot(index int, particles []*particle.Particle) error {
	cp := make([]*particle.Particle, len(particles))
	copy(cp, particles)
	o.Snapshots = append(o.Snapshots, cp)
	return nil
}
