package c2

import "math"

func C2CircleToCircle(A C2Circle, B C2Circle) bool {
	if !A.IsSolid() || !B.IsSolid() {
		return false
	}
	d := C2Vec2Sub(B.P, A.P)
	r := A.R + B.R
	return C2Vec2Dot(d, d) <= r*r
}

func C2CircleToAabb(A C2Circle, B C2Aabb) bool {
	if !A.IsSolid() {
		return false
	}
	L := B.ClampPoint(A.P)
	ab := C2Vec2Sub(A.P, L)
	return C2Vec2Dot(ab, ab) <= A.R*A.R
}

func C2CircleToCapsule(A C2Circle, B C2Capsule) bool {
	if !A.IsSolid() || !B.IsSolid() {
		return false
	}
	r := A.R + B.R
	return C2DistanceSqPointSegment(B.A, B.B, A.P) <= r*r
}

func C2CircleToPoly(A C2Circle, B *C2Poly, bx *C2Transform) bool {
	if !A.IsSolid() || !B.IsSolid() {
		return false
	}
	out := C2Gjk(A, nil, B, bx, false, nil)
	return out.Distance <= A.R+C2_touchTolerance
}

func C2CircleToCircleManifold(A C2Circle, B C2Circle) C2Manifold {
	if !A.IsSolid() || !B.IsSolid() {
		return C2Manifold{}
	}
	d := C2Vec2Sub(B.P, A.P)
	distSqr := C2Vec2Dot(d, d)
	r := A.R + B.R
	if distSqr > r*r {
		return C2Manifold{}
	}

	// Concentric circles have no preferred axis.
	n := MakeC2Vec2(0.0, 1.0)
	dist := math.Sqrt(distSqr)
	if dist != 0.0 {
		n = C2Vec2MulScalar(1.0/dist, d)
	}

	return makeC2Manifold1(n, C2Vec2Sub(B.P, C2Vec2MulScalar(B.R, n)), r-dist)
}

func C2CircleToAabbManifold(A C2Circle, B C2Aabb) C2Manifold {
	if !A.IsSolid() {
		return C2Manifold{}
	}
	L := B.ClampPoint(A.P)
	ab := C2Vec2Sub(L, A.P)
	d2 := C2Vec2Dot(ab, ab)
	if d2 > A.R*A.R {
		return C2Manifold{}
	}

	// Shallow: the centre is outside the box.
	if d2 != 0.0 {
		d := math.Sqrt(d2)
		n := C2Vec2MulScalar(1.0/d, ab)
		return makeC2Manifold1(n, L, A.R-d)
	}

	// Deep: push out through the closest face.
	mid := B.GetCenter()
	e := B.GetExtents()
	d := C2Vec2Sub(A.P, mid)
	abs := C2Vec2Abs(d)
	overlapX := e.X - abs.X
	overlapY := e.Y - abs.Y

	var n C2Vec2
	depth := 0.0
	if overlapX < overlapY {
		depth = overlapX
		n = MakeC2Vec2(1.0, 0.0)
		if d.X >= 0.0 {
			n = MakeC2Vec2(-1.0, 0.0)
		}
	} else {
		depth = overlapY
		n = MakeC2Vec2(0.0, 1.0)
		if d.Y >= 0.0 {
			n = MakeC2Vec2(0.0, -1.0)
		}
	}

	return makeC2Manifold1(n, C2Vec2Sub(A.P, C2Vec2MulScalar(depth, n)), A.R+depth)
}

func C2CircleToCapsuleManifold(A C2Circle, B C2Capsule) C2Manifold {
	if !A.IsSolid() || !B.IsSolid() {
		return C2Manifold{}
	}
	cp := C2ClosestPointSegment(B.A, B.B, A.P)
	d := C2Vec2Sub(cp, A.P)
	distSqr := C2Vec2Dot(d, d)
	r := A.R + B.R
	if distSqr > r*r {
		return C2Manifold{}
	}

	dist := math.Sqrt(distSqr)
	var n C2Vec2
	if dist > C2_epsilon {
		n = C2Vec2MulScalar(1.0/dist, d)
	} else {
		// Centre on the core segment; use the segment's side.
		n = c2SegmentNormal(B.A, B.B)
	}

	return makeC2Manifold1(n, C2Vec2Sub(cp, C2Vec2MulScalar(B.R, n)), r-dist)
}

// Unit normal to the left of a->b, or +y for a point.
func c2SegmentNormal(a, b C2Vec2) C2Vec2 {
	n := C2Vec2SafeNorm(C2Vec2Sub(b, a).Skew())
	if n.LengthSquared() == 0.0 {
		return MakeC2Vec2(0.0, 1.0)
	}
	return n
}

/// Circle against a polygon, using the Voronoi regions of the polygon's
/// features. The contact point lies on the polygon surface.
func C2CircleToPolyManifold(A C2Circle, B *C2Poly, bx *C2Transform) C2Manifold {
	if !A.IsSolid() || !B.IsSolid() {
		return C2Manifold{}
	}

	xf := c2TransformOrIdentity(bx)

	// Compute circle position in the frame of the polygon.
	cLocal := C2TransformVec2MulT(xf, A.P)

	// Find the min separating edge.
	normalIndex := 0
	separation := -C2_maxFloat
	radius := A.R
	vertexCount := B.count()
	vertices := &B.Verts
	normals := &B.Norms

	for i := 0; i < vertexCount; i++ {
		s := C2Vec2Dot(normals[i], C2Vec2Sub(cLocal, vertices[i]))

		if s > radius {
			// Early out.
			return C2Manifold{}
		}

		if s > separation {
			separation = s
			normalIndex = i
		}
	}

	// Vertices that subtend the incident face.
	vertIndex1 := normalIndex
	vertIndex2 := 0
	if vertIndex1+1 < vertexCount {
		vertIndex2 = vertIndex1 + 1
	}

	v1 := vertices[vertIndex1]
	v2 := vertices[vertIndex2]

	// Results are built in the polygon frame with the normal pointing from
	// the polygon to the circle.
	var localNormal, localPoint C2Vec2
	depth := 0.0

	// Compute barycentric coordinates
	u1 := C2Vec2Dot(C2Vec2Sub(cLocal, v1), C2Vec2Sub(v2, v1))
	u2 := C2Vec2Dot(C2Vec2Sub(cLocal, v2), C2Vec2Sub(v1, v2))

	switch {
	case separation < C2_epsilon:
		// The center is inside the polygon.
		localNormal = normals[normalIndex]
		localPoint = C2Vec2Sub(cLocal, C2Vec2MulScalar(separation, localNormal))
		depth = radius - separation

	case u1 <= 0.0:
		distSqr := C2Vec2DistanceSquared(cLocal, v1)
		if distSqr > radius*radius {
			return C2Manifold{}
		}
		dist := math.Sqrt(distSqr)
		localNormal = C2Vec2MulScalar(1.0/dist, C2Vec2Sub(cLocal, v1))
		localPoint = v1
		depth = radius - dist

	case u2 <= 0.0:
		distSqr := C2Vec2DistanceSquared(cLocal, v2)
		if distSqr > radius*radius {
			return C2Manifold{}
		}
		dist := math.Sqrt(distSqr)
		localNormal = C2Vec2MulScalar(1.0/dist, C2Vec2Sub(cLocal, v2))
		localPoint = v2
		depth = radius - dist

	default:
		faceCenter := C2Vec2MulScalar(0.5, C2Vec2Add(v1, v2))
		s := C2Vec2Dot(C2Vec2Sub(cLocal, faceCenter), normals[vertIndex1])
		if s > radius {
			return C2Manifold{}
		}
		localNormal = normals[vertIndex1]
		localPoint = C2Vec2Sub(cLocal, C2Vec2MulScalar(s, localNormal))
		depth = radius - s
	}

	n := C2SinCosVec2Mul(xf.R, localNormal).OperatorNegate()
	return makeC2Manifold1(n, C2TransformVec2Mul(xf, localPoint), depth)
}
