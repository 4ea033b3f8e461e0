package c2

import "math"

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Polygon construction
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

/// Create a convex polygon from an arbitrary point set. The points are welded,
/// reduced to their convex hull in CCW order and the edge normals computed.
/// The hull is capped at C2_polyMaxVerts vertices. Degenerate input does not
/// fail: collinear points give a Count of 2, fewer than two distinct points a
/// Count of 0. Check IsSolid before using the result as a collision operand.
func C2MakePoly(points []C2Vec2) C2Poly {
	var poly C2Poly
	poly.Verts, poly.Count = C2Hull(points)
	C2Norms(poly.Verts[:poly.Count], poly.Norms[:poly.Count])
	return poly
}

/// Convex hull of points in CCW order. The first count entries of the
/// returned array are used. Points closer than C2_weldDistance to an earlier
/// point are discarded first.
func C2Hull(points []C2Vec2) (hull [C2_polyMaxVerts]C2Vec2, count int) {
	// Perform welding and copy vertices into local buffer. Only large inputs
	// outgrow it.
	var buf [c2HullBufferSize]C2Vec2
	ps := buf[:0]
	for _, v := range points {
		if !v.IsValid() {
			continue
		}

		unique := true
		for _, p := range ps {
			if C2Vec2DistanceSquared(v, p) < C2_weldDistance*C2_weldDistance {
				unique = false
				break
			}
		}

		if unique {
			ps = append(ps, v)
		}
	}

	n := len(ps)
	if n < 2 {
		// Not enough distinct points to bound anything.
		return hull, 0
	}

	// Create the convex hull using the Gift wrapping algorithm
	// http://en.wikipedia.org/wiki/Gift_wrapping_algorithm

	// Find the right most point on the hull
	i0 := 0
	x0 := ps[0].X
	for i := 1; i < n; i++ {
		x := ps[i].X
		if x > x0 || (x == x0 && ps[i].Y < ps[i0].Y) {
			i0 = i
			x0 = x
		}
	}

	var indices [C2_polyMaxVerts]int
	m := 0
	ih := i0

	for m < C2_polyMaxVerts {
		indices[m] = ih

		ie := 0
		for j := 1; j < n; j++ {
			if ie == ih {
				ie = j
				continue
			}

			r := C2Vec2Sub(ps[ie], ps[indices[m]])
			v := C2Vec2Sub(ps[j], ps[indices[m]])
			c := C2Vec2Cross(r, v)
			if c < 0.0 {
				ie = j
			}

			// Collinearity check
			if c == 0.0 && v.LengthSquared() > r.LengthSquared() {
				ie = j
			}
		}

		m++
		ih = ie

		if ie == i0 {
			break
		}
	}

	for i := 0; i < m; i++ {
		hull[i] = ps[indices[i]]
	}

	return hull, m
}

const c2HullBufferSize = 64

/// Fill norms with the outward unit normals of the CCW loop verts. A zero
/// length edge gets a zero normal. norms must be at least as long as verts.
func C2Norms(verts []C2Vec2, norms []C2Vec2) {
	count := len(verts)
	for i := 0; i < count; i++ {
		i2 := 0
		if i+1 < count {
			i2 = i + 1
		}

		edge := C2Vec2Sub(verts[i2], verts[i])
		norms[i] = C2Vec2SafeNorm(C2Vec2CrossVectorScalar(edge, 1.0))
	}
}

/// Area weighted centroid of the polygon formed by points. Sets that enclose
/// no area fall back to the mean of the points; an empty set gives zero.
func C2Centroid(points []C2Vec2) C2Vec2 {
	count := len(points)
	if count == 0 {
		return C2Vec2_zero
	}

	// pRef is the reference point for forming triangles.
	// It's location doesn't change the result (except for rounding error).
	pRef := C2Vec2_zero
	for _, p := range points {
		pRef = C2Vec2Add(pRef, p)
	}
	pRef = C2Vec2MulScalar(1.0/float64(count), pRef)

	if count < 3 {
		return pRef
	}

	c := C2Vec2_zero
	area := 0.0
	inv3 := 1.0 / 3.0

	for i := 0; i < count; i++ {
		// Triangle vertices.
		p1 := pRef
		p2 := points[i]
		p3 := points[0]
		if i+1 < count {
			p3 = points[i+1]
		}

		e1 := C2Vec2Sub(p2, p1)
		e2 := C2Vec2Sub(p3, p1)

		triangleArea := 0.5 * C2Vec2Cross(e1, e2)
		area += triangleArea

		// Area weighted centroid
		c = C2Vec2Add(c, C2Vec2MulScalar(triangleArea*inv3, C2Vec2Add(C2Vec2Add(p1, p2), p3)))
	}

	if math.Abs(area) <= C2_epsilon {
		return pRef
	}

	return C2Vec2MulScalar(1.0/area, c)
}

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Inflate
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

/// Return a copy of shape grown by skin (shrunk when skin is negative). Radii
/// change by skin, box bounds move out by skin and polygon edges move along
/// their normals by skin. The argument is never modified.
///
/// Shrinking a polygon by more than its inradius turns it inside out; the
/// result is then no longer convex and collision results are meaningless.
func C2Inflate(shape C2Shape, skin float64) C2Shape {
	switch s := shape.(type) {
	case C2Circle:
		s.R += skin
		return s

	case C2Aabb:
		e := MakeC2Vec2(skin, skin)
		s.Min = C2Vec2Sub(s.Min, e)
		s.Max = C2Vec2Add(s.Max, e)
		return s

	case C2Capsule:
		s.R += skin
		return s

	case *C2Poly:
		if s == nil {
			return s
		}
		out := *s
		inflatePoly(&out, skin)
		return &out
	}

	return shape
}

// Each vertex moves along the mitre of its two edges so that both edges end
// up exactly skin further out.
func inflatePoly(p *C2Poly, skin float64) {
	n := p.count()
	if n < 3 {
		for i := 0; i < n; i++ {
			p.Verts[i] = C2Vec2Add(p.Verts[i], C2Vec2MulScalar(skin, p.Norms[i]))
		}
		return
	}

	var verts [C2_polyMaxVerts]C2Vec2
	for i := 0; i < n; i++ {
		prev := p.Norms[(i+n-1)%n]
		next := p.Norms[i]
		k := 1.0 + C2Vec2Dot(prev, next)
		if k < C2_epsilon {
			// Edges fold back on each other, there is no finite mitre.
			verts[i] = C2Vec2Add(p.Verts[i], C2Vec2MulScalar(skin, next))
			continue
		}
		verts[i] = C2Vec2Add(p.Verts[i], C2Vec2MulScalar(skin/k, C2Vec2Add(prev, next)))
	}
	p.Verts = verts
}
