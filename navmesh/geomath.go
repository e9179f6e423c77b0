package navmesh

import "github.com/go-gl/mathgl/mgl64"

// triarea2 is twice the signed area of abc projected onto XZ.
func triarea2(a, b, c mgl64.Vec3) float64 {
	ax := b[0] - a[0]
	az := b[2] - a[2]
	bx := c[0] - a[0]
	bz := c[2] - a[2]
	return bx*az - ax*bz
}

func vequal(a, b mgl64.Vec3) bool {
	return a.Sub(b).LenSqr() < 0.00001
}

func distSq(a, b mgl64.Vec3) float64 {
	return a.Sub(b).LenSqr()
}

// pointInPolyXZ is a crossing number test on the XZ plane.
func pointInPolyXZ(poly []mgl64.Vec3, pt mgl64.Vec3) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if ((pi[2] <= pt[2] && pt[2] < pj[2]) || (pj[2] <= pt[2] && pt[2] < pi[2])) &&
			pt[0] < (pj[0]-pi[0])*(pt[2]-pi[2])/(pj[2]-pi[2])+pi[0] {
			inside = !inside
		}
	}
	return inside
}

// pointInNode reports whether pt lies over the polygon in XZ and within half a unit of its
// vertical extent.
func pointInNode(z *Zone, n *Node, pt mgl64.Vec3) bool {
	a, b, c := z.Triangle(n)
	lowest := min(a[1], b[1], c[1])
	highest := max(a[1], b[1], c[1])
	if pt[1] < lowest-0.5 || pt[1] > highest+0.5 {
		return false
	}
	return pointInPolyXZ([]mgl64.Vec3{a, b, c}, pt)
}

// projectOntoPlane drops p onto the plane through triangle abc.
func projectOntoPlane(p, a, b, c mgl64.Vec3) mgl64.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.LenSqr() == 0 {
		return p
	}
	n = n.Normalize()
	return p.Sub(n.Mul(n.Dot(p.Sub(a))))
}

// closestPointOnTriangle returns the point of triangle abc nearest to p.
func closestPointOnTriangle(p, a, b, c mgl64.Vec3) mgl64.Vec3 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ap := p.Sub(a)
	d1, d2 := ab.Dot(ap), ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	bp := p.Sub(b)
	d3, d4 := ab.Dot(bp), ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		return a.Add(ab.Mul(d1 / (d1 - d3)))
	}

	cp := p.Sub(c)
	d5, d6 := ab.Dot(cp), ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		return a.Add(ac.Mul(d2 / (d2 - d6)))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		return b.Add(c.Sub(b).Mul((d4 - d3) / ((d4 - d3) + (d5 - d6))))
	}

	denom := 1 / (va + vb + vc)
	return a.Add(ab.Mul(vb * denom)).Add(ac.Mul(vc * denom))
}

// intersectTriangle is Möller-Trumbore; it returns the ray parameter of the hit.
func intersectTriangle(origin, dir, a, b, c mgl64.Vec3) (float64, bool) {
	const eps = 1e-9
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	h := dir.Cross(e2)
	det := e1.Dot(h)
	if det > -eps && det < eps {
		return 0, false
	}
	inv := 1 / det
	s := origin.Sub(a)
	u := inv * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := inv * dir.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := inv * e2.Dot(q)
	if t < 0 {
		return 0, false
	}
	return t, true
}
