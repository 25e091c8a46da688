// Copyright 2024 The Gofem-MPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofem-mpm/particle"
)

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01: null sink retains snapshots in memory")

	sink := &NullSink{}
	p := particle.New(8)
	p.R = [3]float64{1, 2, 3}
	p.V = [3]float64{3, 4, 0}

	if err := sink.WriteSnapshot(0, []*particle.Particle{p}); err != nil {
		tst.Errorf("WriteSnapshot failed: %v\n", err)
		return
	}
	chk.IntAssert(len(sink.Snapshots), 1)
	chk.IntAssert(len(sink.Snapshots[0]), 1)
	chk.Scalar(tst, "retained x", 1e-15, sink.Snapshots[0][0].R[0], 1)
}

func Test_out02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out02: csv sink writes fixed header and one row per particle")

	prefix := os.TempDir() + "/gofem-mpm-test-snapshot"
	defer os.Remove(prefix + ".csv.0")

	sink := &CSVSink{Prefix: prefix}
	p1 := particle.New(8)
	p1.R = [3]float64{0, 0, 0}
	p1.V = [3]float64{3, 4, 0} // magnitude 5

	if err := sink.WriteSnapshot(0, []*particle.Particle{p1}); err != nil {
		tst.Errorf("WriteSnapshot failed: %v\n", err)
		return
	}

	data, err := os.ReadFile(prefix + ".csv.0")
	if err != nil {
		tst.Errorf("cannot read snapshot file: %v\n", err)
		return
	}
	expected := "x, y, z, velocity magnitude\n0, 0, 0, 5\n"
	if string(data) != expected {
		tst.Errorf("snapshot content mismatch:\ngot:  %q\nwant: %q\n", string(data), expected)
	}
}
