// Package navmesh implements the navigation mesh query service: zone building from triangle
// geometry, reachability groups, closest-node lookup, shortest paths over the mesh and
// boundary clamping.
package navmesh

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrEmptyGeometry = errors.New("navmesh: geometry has no triangles")
	ErrBadIndex      = errors.New("navmesh: triangle index out of range")
)

// Geometry is raw triangle soup. Positions holds x,y,z triples; Indices holds vertex index
// triples. When Indices is empty every three consecutive vertices form a triangle.
type Geometry struct {
	Positions []float64 `json:"positions" jsonschema:"required,description=Flat x y z vertex positions"`
	Indices   []int     `json:"indices,omitempty" jsonschema:"description=Vertex index triples; omitted for non-indexed geometry"`
}

// ParseGeometryJSON decodes a geometry file written by navmeshconv.
func ParseGeometryJSON(data []byte) (*Geometry, error) {
	var g Geometry
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("decode geometry: %w", err)
	}
	if len(g.Positions)%3 != 0 {
		return nil, fmt.Errorf("decode geometry: %d position components is not a multiple of 3", len(g.Positions))
	}
	return &g, nil
}

func (g *Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

func (g *Geometry) Vertex(i int) mgl64.Vec3 {
	return mgl64.Vec3{g.Positions[i*3], g.Positions[i*3+1], g.Positions[i*3+2]}
}

// Triangles returns the vertex index triples of the geometry.
func (g *Geometry) Triangles() ([][3]int, error) {
	n := g.VertexCount()
	var tris [][3]int
	if len(g.Indices) == 0 {
		for i := 0; i+2 < n; i += 3 {
			tris = append(tris, [3]int{i, i + 1, i + 2})
		}
	} else {
		for i := 0; i+2 < len(g.Indices); i += 3 {
			t := [3]int{g.Indices[i], g.Indices[i+1], g.Indices[i+2]}
			for _, idx := range t {
				if idx < 0 || idx >= n {
					return nil, fmt.Errorf("%w: %d (vertex count %d)", ErrBadIndex, idx, n)
				}
			}
			tris = append(tris, t)
		}
	}
	if len(tris) == 0 {
		return nil, ErrEmptyGeometry
	}
	return tris, nil
}

// RotateX rotates every vertex about the X axis. Exported navmeshes are frequently authored
// Z-up and need a quarter turn before use.
func (g *Geometry) RotateX(radians float64) {
	m := mgl64.HomogRotate3DX(radians)
	for i := 0; i < g.VertexCount(); i++ {
		v := m.Mul4x1(g.Vertex(i).Vec4(1)).Vec3()
		g.Positions[i*3], g.Positions[i*3+1], g.Positions[i*3+2] = v[0], v[1], v[2]
	}
}

// Bounds returns the axis aligned bounds of all vertices.
func (g *Geometry) Bounds() (lo, hi mgl64.Vec3) {
	lo = mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i := 0; i < g.VertexCount(); i++ {
		v := g.Vertex(i)
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], v[k])
			hi[k] = math.Max(hi[k], v[k])
		}
	}
	return lo, hi
}
