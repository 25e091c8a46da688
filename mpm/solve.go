// Copyright 2024 The Gofem-MPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"context"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gofem-mpm/out"
	"github.com/cpmech/gofem-mpm/particle"
)

// Solve runs N steps of size Δt starting at time 0, emitting snapshots
// to sink: an initial snapshot at step 0, a snapshot after every step
// whose 1-based index is a multiple of writeFreq, and one additional
// snapshot after the final step.
//
// context is checked once per step boundary only.
func (o *Manager) Solve(ctx context.Context, n int, dt float64, hasGravity bool, gravity float64, writeFreq int, sink out.Sink) error {
	if n < 0 {
		return chk.Err("solve: num steps must be non-negative; got %d", n)
	}
	if dt <= 0 {
		return chk.Err("solve: time step size must be positive; got %g", dt)
	}
	if writeFreq <= 0 {
		return chk.Err("solve: write frequency must be positive; got %d", writeFreq)
	}
	if len(o.Particles) == 0 {
		return chk.Err("solve: particle set is empty; call Initialize first")
	}
	o.HasGravity = hasGravity
	o.Gravity = gravity

	scheme, err := NewScheme("flip")
	if err != nil {
		return err
	}

	nnodes := o.Mesh.TotalNumNodes()
	o.fields = particle.NewNodalFields(nnodes)

	seq := 0
	if err := sink.WriteSnapshot(seq, o.Particles); err != nil {
		return chk.Err("solve: cannot write initial snapshot: %v", err)
	}

	for step := 1; step <= n; step++ {
		if err := ctx.Err(); err != nil {
			return chk.Err("solve: cancelled at step %d: %v", step, err)
		}
		if err := scheme.Step(o, dt); err != nil {
			return chk.Err("solve: step %d failed: %v", step, err)
		}
		if step%writeFreq == 0 {
			seq++
			if err := sink.WriteSnapshot(seq, o.Particles); err != nil {
				return chk.Err("solve: cannot write snapshot %d: %v", seq, err)
			}
		}
	}

	// one additional snapshot after the final step, and
	// preserved literally even when it duplicates
	// the last periodic snapshot (N % writeFreq == 0).
	seq++
	if err := sink.WriteSnapshot(seq, o.Particles); err != nil {
		return chk.Err("solve: cannot write final snapshot: %v", err)
	}

	io.Pf("mpm: completed %d steps\n", n)
	return nil
}
