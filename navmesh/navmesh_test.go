package navmesh

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// squares builds non-indexed unit squares on y=0, two triangles each.
func squares(cells ...[2]float64) *Geometry {
	g := &Geometry{}
	for _, c := range cells {
		x, z := c[0], c[1]
		g.Positions = append(g.Positions,
			x, 0, z, x+1, 0, z, x+1, 0, z+1,
			x, 0, z, x+1, 0, z+1, x, 0, z+1,
		)
	}
	return g
}

// lShape is a corridor running +X then turning +Z, plus a detached island.
func lShape(t *testing.T) *Pathfinding {
	t.Helper()
	g := squares(
		[2]float64{0, 0}, [2]float64{1, 0}, [2]float64{2, 0},
		[2]float64{2, 1}, [2]float64{2, 2},
		[2]float64{10, 10},
	)
	zone, err := CreateZone(g, 0.02)
	if err != nil {
		t.Fatalf("CreateZone: %v", err)
	}
	p := New()
	p.SetZoneData("level", zone)
	return p
}

func near(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-6
}

func TestCreateZoneGroups(t *testing.T) {
	p := lShape(t)
	z, err := p.Zone("level")
	if err != nil {
		t.Fatalf("Zone: %v", err)
	}
	if len(z.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(z.Groups))
	}
	if len(z.Groups[0]) != 10 || len(z.Groups[1]) != 2 {
		t.Fatalf("unexpected group sizes %d and %d", len(z.Groups[0]), len(z.Groups[1]))
	}

	for gi, group := range z.Groups {
		for _, n := range group {
			if n.Group != gi {
				t.Fatalf("node %d has group %d, want %d", n.ID, n.Group, gi)
			}
			if len(n.Portals) != len(n.Neighbours) {
				t.Fatalf("node %d has %d portals for %d neighbours", n.ID, len(n.Portals), len(n.Neighbours))
			}
			for _, nb := range n.Neighbours {
				if !containsInt(group[nb].Neighbours, n.ID) {
					t.Fatalf("neighbour link %d -> %d is not symmetric", n.ID, nb)
				}
			}
		}
	}
}

func TestCreateZoneMergesWithinTolerance(t *testing.T) {
	g := &Geometry{Positions: []float64{
		0, 0, 0, 1, 0, 0, 1, 0, 1,
		0.005, 0, 0, 1.004, 0, 1.003, 0, 0, 1,
	}}
	z, err := CreateZone(g, 0.02)
	if err != nil {
		t.Fatalf("CreateZone: %v", err)
	}
	if len(z.Vertices) != 4 {
		t.Fatalf("expected 4 welded vertices, got %d", len(z.Vertices))
	}
	if len(z.Groups) != 1 || len(z.Groups[0]) != 2 {
		t.Fatalf("expected one group of two nodes, got %v", z.Groups)
	}
}

func TestCreateZoneDropsDegenerate(t *testing.T) {
	g := &Geometry{Positions: []float64{
		0, 0, 0, 1, 0, 0, 1, 0, 1,
		0, 0, 0, 0.001, 0, 0, 0, 0, 1,
	}}
	z, err := CreateZone(g, 0.02)
	if err != nil {
		t.Fatalf("CreateZone: %v", err)
	}
	if len(z.allNodes()) != 1 {
		t.Fatalf("expected degenerate triangle to be dropped, got %d nodes", len(z.allNodes()))
	}

	_, err = CreateZone(&Geometry{Positions: []float64{0, 0, 0, 0, 0, 0, 1, 0, 1}}, 0.02)
	if !errors.Is(err, ErrEmptyGeometry) {
		t.Fatalf("expected ErrEmptyGeometry, got %v", err)
	}
	_, err = CreateZone(&Geometry{Positions: []float64{0, 0, 0}, Indices: []int{0, 1, 2}}, 0.02)
	if !errors.Is(err, ErrBadIndex) {
		t.Fatalf("expected ErrBadIndex, got %v", err)
	}
}

func TestGetGroup(t *testing.T) {
	p := lShape(t)

	if g, ok := p.GetGroup("level", mgl64.Vec3{0.5, 0, 0.5}); !ok || g != 0 {
		t.Fatalf("corridor point: got group %d ok=%v", g, ok)
	}
	if g, ok := p.GetGroup("level", mgl64.Vec3{10.5, 0, 10.5}); !ok || g != 1 {
		t.Fatalf("island point: got group %d ok=%v", g, ok)
	}
	if _, ok := p.GetGroup("level", mgl64.Vec3{500, 0, 500}); ok {
		t.Fatal("expected no group far from the mesh")
	}
	if _, ok := p.GetGroup("missing", mgl64.Vec3{}); ok {
		t.Fatal("expected no group for an unknown zone")
	}
}

func TestGetClosestNodeCheckPolygon(t *testing.T) {
	p := lShape(t)

	if n := p.GetClosestNode(mgl64.Vec3{0.3, 0, 0.6}, "level", 0, true); n == nil {
		t.Fatal("expected a node under a point on the mesh")
	}
	if n := p.GetClosestNode(mgl64.Vec3{0.3, 3, 0.6}, "level", 0, true); n != nil {
		t.Fatal("expected no node for a point far above the mesh")
	}
	if n := p.GetClosestNode(mgl64.Vec3{1.5, 0, 1.5}, "level", 0, true); n != nil {
		t.Fatal("expected no node for a point in the gap of the L")
	}
	if n := p.GetClosestNode(mgl64.Vec3{1.5, 0, 1.5}, "level", 0, false); n == nil {
		t.Fatal("expected closest node without polygon check")
	}
}

func TestFindPathStraight(t *testing.T) {
	p := lShape(t)
	end := mgl64.Vec3{2.6, 0, 0.3}

	path := p.FindPath(mgl64.Vec3{0.6, 0, 0.3}, end, "level", 0)
	if len(path) != 1 || !near(path[0], end) {
		t.Fatalf("expected direct path to %v, got %v", end, path)
	}
}

func TestFindPathAroundCorner(t *testing.T) {
	p := lShape(t)
	end := mgl64.Vec3{2.7, 0, 2.4}

	path := p.FindPath(mgl64.Vec3{0.6, 0, 0.3}, end, "level", 0)
	if len(path) != 2 {
		t.Fatalf("expected corner and goal, got %v", path)
	}
	if !near(path[0], mgl64.Vec3{2, 0, 1}) {
		t.Fatalf("expected path to bend at the inner corner, got %v", path[0])
	}
	if !near(path[1], end) {
		t.Fatalf("expected path to finish at %v, got %v", end, path[1])
	}
}

func TestFindPathSameNode(t *testing.T) {
	p := lShape(t)
	end := mgl64.Vec3{0.2, 0, 0.7}

	path := p.FindPath(mgl64.Vec3{0.3, 0, 0.8}, end, "level", 0)
	if len(path) != 1 || !near(path[0], end) {
		t.Fatalf("expected single waypoint, got %v", path)
	}
}

func TestFindPathUnreachable(t *testing.T) {
	p := lShape(t)

	if path := p.FindPath(mgl64.Vec3{0.5, 0, 0.5}, mgl64.Vec3{10.5, 0, 10.5}, "level", 0); path != nil {
		t.Fatalf("expected nil path to another group, got %v", path)
	}
	if path := p.FindPath(mgl64.Vec3{0.5, 0, 0.5}, mgl64.Vec3{-4, 0, 0.5}, "level", 0); path != nil {
		t.Fatalf("expected nil path to a point off the mesh, got %v", path)
	}
	if path := p.FindPath(mgl64.Vec3{0.6, 0, 0.3}, mgl64.Vec3{2.6, 0, 0.3}, "level", 7); path != nil {
		t.Fatalf("expected nil path for an unknown group, got %v", path)
	}
}

func TestClampStep(t *testing.T) {
	p := lShape(t)
	start := mgl64.Vec3{0.3, 0, 0.6}
	node := p.GetClosestNode(start, "level", 0, false)
	if node == nil {
		t.Fatal("no start node")
	}

	n, pt := p.ClampStep(start, mgl64.Vec3{-5, 0, 0.5}, node, "level", 0)
	if n == nil {
		t.Fatal("expected clamped node")
	}
	if !near(pt, mgl64.Vec3{0, 0, 0.5}) {
		t.Fatalf("expected clamp to the mesh edge, got %v", pt)
	}

	inside := mgl64.Vec3{0.4, 0, 0.9}
	if _, pt := p.ClampStep(start, inside.Add(mgl64.Vec3{0, 2, 0}), node, "level", 0); !near(pt, inside) {
		t.Fatalf("expected point above the mesh to project onto it, got %v", pt)
	}
}

func TestRaycastDown(t *testing.T) {
	p := lShape(t)

	hit, ok := p.RaycastDown("level", mgl64.Vec3{2.6, 5, 2.3})
	if !ok {
		t.Fatal("expected a hit over the corridor")
	}
	if math.Abs(hit.Distance-5) > 1e-9 || !near(hit.Point, mgl64.Vec3{2.6, 0, 2.3}) {
		t.Fatalf("unexpected hit %+v", hit)
	}
	if hit.Node == nil {
		t.Fatal("hit should carry the polygon")
	}

	if _, ok := p.RaycastDown("level", mgl64.Vec3{1.5, 5, 1.5}); ok {
		t.Fatal("expected miss over the gap")
	}
	if _, ok := p.RaycastDown("level", mgl64.Vec3{0.5, -1, 0.5}); ok {
		t.Fatal("expected miss below the mesh")
	}

	hit, ok = p.Raycast("level", mgl64.Vec3{0.5, 1, 0.3}, mgl64.Vec3{1, -1, 0})
	if !ok || !near(hit.Point, mgl64.Vec3{1.5, 0, 0.3}) {
		t.Fatalf("expected diagonal hit at (1.5, 0, 0.3), got %+v ok=%v", hit, ok)
	}
}

func TestRaycastDownMatchesEveryPolygon(t *testing.T) {
	p := lShape(t)
	z, _ := p.Zone("level")

	hits := 0
	for i := 0; i < 30; i++ {
		for j := 0; j < 30; j++ {
			origin := mgl64.Vec3{-0.5 + float64(i)*0.4, 3, -0.5 + float64(j)*0.4}
			want, wantOK := z.raycastNodes(z.allNodes(), origin, mgl64.Vec3{0, -1, 0})
			got, ok := p.RaycastDown("level", origin)
			if ok != wantOK {
				t.Fatalf("at %v: expected hit=%v, got %v", origin, wantOK, ok)
			}
			if ok {
				hits++
				if !near(got.Point, want.Point) {
					t.Fatalf("at %v: expected %v, got %v", origin, want.Point, got.Point)
				}
			}
		}
	}
	if hits == 0 {
		t.Fatal("grid never crossed the mesh")
	}
}

func TestFindPathHasNoZeroLengthLegs(t *testing.T) {
	p := lShape(t)
	tests := []struct {
		start, end mgl64.Vec3
	}{
		{mgl64.Vec3{0.6, 0, 0.3}, mgl64.Vec3{2.7, 0, 2.4}},
		{mgl64.Vec3{2.7, 0, 2.4}, mgl64.Vec3{0.6, 0, 0.3}},
		{mgl64.Vec3{0.2, 0, 0.9}, mgl64.Vec3{2.1, 0, 2.9}},
		{mgl64.Vec3{1.4, 0, 0.3}, mgl64.Vec3{2.5, 0, 2.6}},
	}
	for _, tt := range tests {
		path := p.FindPath(tt.start, tt.end, "level", 0)
		if len(path) == 0 {
			t.Fatalf("no path from %v to %v", tt.start, tt.end)
		}
		prev := tt.start
		for _, wp := range path {
			if near(prev, wp) {
				t.Fatalf("repeated waypoint %v in %v", wp, path)
			}
			prev = wp
		}
		if !near(path[len(path)-1], tt.end) {
			t.Fatalf("path %v does not end at %v", path, tt.end)
		}
	}
}

func TestZoneCodec(t *testing.T) {
	p := lShape(t)
	z, _ := p.Zone("level")

	data, err := EncodeZone(z)
	if err != nil {
		t.Fatalf("EncodeZone: %v", err)
	}
	decoded, err := DecodeZone(data)
	if err != nil {
		t.Fatalf("DecodeZone: %v", err)
	}

	baked := New()
	baked.SetZoneData("level", decoded)
	want := p.FindPath(mgl64.Vec3{0.6, 0, 0.3}, mgl64.Vec3{2.7, 0, 2.4}, "level", 0)
	got := baked.FindPath(mgl64.Vec3{0.6, 0, 0.3}, mgl64.Vec3{2.7, 0, 2.4}, "level", 0)
	if len(got) != len(want) {
		t.Fatalf("baked zone path %v differs from %v", got, want)
	}
	for i := range got {
		if !near(got[i], want[i]) {
			t.Fatalf("baked zone path %v differs from %v", got, want)
		}
	}

	if _, err := DecodeZone([]byte{0xc1}); err == nil {
		t.Fatal("expected error for garbage input")
	}
}

func TestParseOBJ(t *testing.T) {
	src := `# quad
o floor
v 0 0 0
v 1 0 0
v 1 0 1
v 0 0 1
vn 0 1 0
f 1//1 2//1 3//1 4//1
f -4 -2 -1
`
	g, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if g.VertexCount() != 4 {
		t.Fatalf("expected 4 vertices, got %d", g.VertexCount())
	}
	want := []int{0, 1, 2, 0, 2, 3, 0, 2, 3}
	if len(g.Indices) != len(want) {
		t.Fatalf("expected indices %v, got %v", want, g.Indices)
	}
	for i := range want {
		if g.Indices[i] != want[i] {
			t.Fatalf("expected indices %v, got %v", want, g.Indices)
		}
	}

	if _, err := ParseOBJ(strings.NewReader("v 1 2\n")); err == nil {
		t.Fatal("expected error for short vertex")
	}
}

func TestGeometryRotateX(t *testing.T) {
	g := &Geometry{Positions: []float64{0, 1, 0}}
	g.RotateX(math.Pi / 2)
	if !near(g.Vertex(0), mgl64.Vec3{0, 0, 1}) {
		t.Fatalf("expected +Y to rotate onto +Z, got %v", g.Vertex(0))
	}

	if _, err := ParseGeometryJSON([]byte(`{"positions":[0,0]}`)); err == nil {
		t.Fatal("expected error for truncated positions")
	}
}
