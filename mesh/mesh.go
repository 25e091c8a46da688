// Copyright 2024 The Gofem-MPM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mesh implements the fixed, uniform, structured-grid
// background mesh used by the MPM problem manager as a momentum-balance
// scratch space. It owns cell/node indexing,
// particle localization, and the trilinear hex-8 shape functions; it
// never owns particles or mutates them.
//
// The Shape type's surface (S, G, Nverts, Calc) mirrors the naming
// conventions of gofem's own shp package, reconstructed from its call
// sites across ele/diffusion, ele/porous and ele/thermomech
// (Shp.CalcAtIp, Shp.S[m], Shp.G[m][i], Shp.Nverts).
package mesh

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"
)

// nodesPerCell is fixed: this package implements only the trilinear
// hex-8 element.
const nodesPerCell = 8

// localCorner lists the 8 corner offsets of a unit cell in the local
// node order consistent with trilinear shape-function numbering.
var localCorner = [8][3]float64{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// Candidate is a seed position produced by InitializeParticles, before
// any geometry has accepted or rejected it.
type Candidate struct {
	R      [3]float64 // world position
	Volume float64    // volume this candidate represents if accepted
}

// Mesh is a uniform structured grid of axis-aligned hex-8 cells.
type Mesh struct {
	Nx, Ny, Nz int     // number of cells along each axis
	H          float64 // cell width (cubic cells)
	Jitter     bool     // if true, InitializeParticles perturbs seed points
	rng        *rnd.Dist
}

// New builds a uniform mesh of nx*ny*nz cells of width h, occupying
// [0, nx*h] x [0, ny*h] x [0, nz*h].
func New(nx, ny, nz int, h float64) (*Mesh, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, chk.Err("mesh dimensions must be positive; got nx=%d ny=%d nz=%d", nx, ny, nz)
	}
	if h <= 0 {
		return nil, chk.Err("mesh cell width must be positive; got h=%g", h)
	}
	return &Mesh{Nx: nx, Ny: ny, Nz: nz, H: h}, nil
}

// EnableJitter turns on seeded random perturbation of candidate seed
// points in InitializeParticles. Candidate ordering
// (by cell, then by index within cell) is unaffected.
func (m *Mesh) EnableJitter(seed int) {
	m.Jitter = true
	m.rng = &rnd.Dist{}
	m.rng.Init(rnd.D_Uniform, -0.5*m.H*0.1, 0.5*m.H*0.1)
	rnd.Init(seed)
}

// SpatialDimension returns 3: this mesh is always three-dimensional.
func (m *Mesh) SpatialDimension() int { return 3 }

// NodesPerCell returns the number of nodes of one cell (8 for hex-8).
func (m *Mesh) NodesPerCell() int { return nodesPerCell }

// TotalNumCells returns nx*ny*nz.
func (m *Mesh) TotalNumCells() int { return m.Nx * m.Ny * m.Nz }

// TotalNumNodes returns (nx+1)*(ny+1)*(nz+1).
func (m *Mesh) TotalNumNodes() int { return (m.Nx + 1) * (m.Ny + 1) * (m.Nz + 1) }

// nodeID maps a node index triple to a global, row-major node id.
func (m *Mesh) nodeID(i, j, k int) int {
	ny1 := m.Ny + 1
	nz1 := m.Nz + 1
	return i*ny1*nz1 + j*nz1 + k
}

// ParticlesPerCell returns the number of candidate positions a cell
// seeds for a given quadrature order: order^3, laid out on a uniform
// order x order x order subgrid. order must be >= 1.
func (m *Mesh) ParticlesPerCell(order int) (int, error) {
	if order < 1 {
		return 0, chk.Err("quadrature order must be >= 1; got %d", order)
	}
	return order * order * order, nil
}

// CellNodeIds writes the 8 global node ids of cellID, in the local
// order given by localCorner.
func (m *Mesh) CellNodeIds(cellID [3]int) ([]int, error) {
	if err := m.checkCellID(cellID); err != nil {
		return nil, err
	}
	ids := make([]int, nodesPerCell)
	i, j, k := cellID[0], cellID[1], cellID[2]
	for n, c := range localCorner {
		ids[n] = m.nodeID(i+int(c[0]), j+int(c[1]), k+int(c[2]))
	}
	return ids, nil
}

// checkCellID validates that cellID indexes an existing cell.
func (m *Mesh) checkCellID(cellID [3]int) error {
	if cellID[0] < 0 || cellID[0] >= m.Nx ||
		cellID[1] < 0 || cellID[1] >= m.Ny ||
		cellID[2] < 0 || cellID[2] >= m.Nz {
		return chk.Err("cell index out of range: %v (mesh is %dx%dx%d)", cellID, m.Nx, m.Ny, m.Nz)
	}
	return nil
}

// LocateParticle returns the cell index triple containing world
// position r. A particle outside the mesh bounds is a lost particle:
// this is reported as an error, never silently clamped.
func (m *Mesh) LocateParticle(r [3]float64) (cellID [3]int, err error) {
	dims := [3]int{m.Nx, m.Ny, m.Nz}
	for d := 0; d < 3; d++ {
		idx := int(r[d] / m.H)
		if r[d] < 0 || idx >= dims[d] {
			return cellID, chk.Err("particle has left the mesh: r=%v is outside [0,%v]", r, [3]float64{
				float64(m.Nx) * m.H, float64(m.Ny) * m.H, float64(m.Nz) * m.H,
			})
		}
		cellID[d] = idx
	}
	return cellID, nil
}

// MapPhysicalToReferenceFrame maps world position r, known to lie in
// cellID, to reference coordinates in [-1,1]^3.
func (m *Mesh) MapPhysicalToReferenceFrame(r [3]float64, cellID [3]int) [3]float64 {
	var ref [3]float64
	origin := [3]float64{float64(cellID[0]) * m.H, float64(cellID[1]) * m.H, float64(cellID[2]) * m.H}
	for d := 0; d < 3; d++ {
		local := (r[d] - origin[d]) / m.H // in [0,1]
		ref[d] = 2*local - 1
		ref[d] = clamp(ref[d], -1, 1)
	}
	return ref
}

func clamp(x, lo, hi float64) float64 {
	return min(max(x, lo), hi)
}

// min returns the smaller of a and b, carried over from gofem's
// shp/auxiliary.go, whose only remaining role here is the
// reference-frame clamp above.
func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// max returns the larger of a and b.
func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Shape holds trilinear hex-8 shape function values and world-space
// gradients evaluated at one reference point.
type Shape struct {
	Nverts int          // number of shape functions (8)
	S      []float64    // shape function values
	G      [][3]float64 // shape function gradients, world coordinates
}

// newShape allocates a Shape sized for hex-8.
func newShape() *Shape {
	return &Shape{Nverts: nodesPerCell, S: make([]float64, nodesPerCell), G: make([][3]float64, nodesPerCell)}
}

// Calc evaluates the shape functions (and, if derivs, their world-space
// gradients) at reference coordinates ref, for a cell of width h. Node
// n's natural coordinate is ri=2*c-1 in each axis, matching the ref
// position localCorner[n] maps to under MapPhysicalToReferenceFrame, so
// shape value n peaks at 1 exactly at its own node and is 0 at every
// other node of the cell.
func (s *Shape) Calc(ref [3]float64, h float64, derivs bool) {
	r, t, z := ref[0], ref[1], ref[2]
	for n, c := range localCorner {
		ri := 2*c[0] - 1
		ti := 2*c[1] - 1
		zi := 2*c[2] - 1
		sr := 1 + r*ri
		st := 1 + t*ti
		sz := 1 + z*zi
		s.S[n] = 0.125 * sr * st * sz
		if derivs {
			// d/dr, d/dt, d/dz in reference coordinates
			drefdr := 0.125 * ri * st * sz
			drefdt := 0.125 * sr * ti * sz
			drefdz := 0.125 * sr * st * zi
			// reference -> world: dx = (h/2) dref, so d/dx = (2/h) d/dref
			s.G[n] = [3]float64{drefdr * 2 / h, drefdt * 2 / h, drefdz * 2 / h}
		}
	}
}

// ShapeFunctionValue evaluates shape function values at reference
// coordinates ref.
func (m *Mesh) ShapeFunctionValue(ref [3]float64) []float64 {
	sh := newShape()
	sh.Calc(ref, m.H, false)
	return sh.S
}

// ShapeFunctionGradient evaluates shape function world-space gradients
// at reference coordinates ref.
func (m *Mesh) ShapeFunctionGradient(ref [3]float64) [][3]float64 {
	sh := newShape()
	sh.Calc(ref, m.H, true)
	return sh.G
}

// Locate performs the full step-1 "locate" operation in one call: cell
// id, node ids, reference coordinates, and shape values/gradients. This
// is the combined form the time-stepping driver uses; the granular
// methods above remain available to satisfy the Mesh contract directly
// and are exercised individually by tests.
func (m *Mesh) Locate(r [3]float64) (cellID [3]int, nodeIDs []int, ref [3]float64, S []float64, G [][3]float64, err error) {
	cellID, err = m.LocateParticle(r)
	if err != nil {
		return
	}
	nodeIDs, err = m.CellNodeIds(cellID)
	if err != nil {
		return
	}
	ref = m.MapPhysicalToReferenceFrame(r, cellID)
	sh := newShape()
	sh.Calc(ref, m.H, true)
	S, G = sh.S, sh.G
	return
}

// InitializeParticles writes ParticlesPerCell(order) candidate
// positions for cellID, laid out on a uniform order x order x order
// subgrid, ordered by (i,j,k) sub-index ascending.
func (m *Mesh) InitializeParticles(cellID [3]int, order int) ([]Candidate, error) {
	if err := m.checkCellID(cellID); err != nil {
		return nil, err
	}
	ppcell, err := m.ParticlesPerCell(order)
	if err != nil {
		return nil, err
	}
	origin := [3]float64{float64(cellID[0]) * m.H, float64(cellID[1]) * m.H, float64(cellID[2]) * m.H}
	sub := m.H / float64(order)
	vol := sub * sub * sub
	out := make([]Candidate, 0, ppcell)
	for i := 0; i < order; i++ {
		for j := 0; j < order; j++ {
			for k := 0; k < order; k++ {
				r := [3]float64{
					origin[0] + (float64(i)+0.5)*sub,
					origin[1] + (float64(j)+0.5)*sub,
					origin[2] + (float64(k)+0.5)*sub,
				}
				if m.Jitter && m.rng != nil {
					r[0] += m.rng.Sample()
					r[1] += m.rng.Sample()
					r[2] += m.rng.Sample()
				}
				out = append(out, Candidate{R: r, Volume: vol})
			}
		}
	}
	return out, nil
}

// CellIndex converts a linear cell index (0-based, row-major in x,y,z)
// to a cell index triple, for drivers that iterate cells linearly.
func (m *Mesh) CellIndex(linear int) [3]int {
	k := linear % m.Nz
	linear /= m.Nz
	j := linear % m.Ny
	i := linear / m.Ny
	return [3]int{i, j, k}
}
