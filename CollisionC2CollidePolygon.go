package c2

import "math"

func C2AabbToAabb(A C2Aabb, B C2Aabb) bool {
	return C2TestOverlap(A, B)
}

func C2AabbToCapsule(A C2Aabb, B C2Capsule) bool {
	if !B.IsSolid() {
		return false
	}
	out := C2Gjk(A, nil, B, nil, false, nil)
	return out.Distance <= B.R+C2_touchTolerance
}

func C2CapsuleToCapsule(A C2Capsule, B C2Capsule) bool {
	if !A.IsSolid() || !B.IsSolid() {
		return false
	}
	out := C2Gjk(A, nil, B, nil, false, nil)
	return out.Distance <= A.R+B.R+C2_touchTolerance
}

func C2AabbToPoly(A C2Aabb, B *C2Poly, bx *C2Transform) bool {
	if !B.IsSolid() {
		return false
	}
	out := C2Gjk(A, nil, B, bx, false, nil)
	return out.Distance <= C2_touchTolerance
}

func C2CapsuleToPoly(A C2Capsule, B *C2Poly, bx *C2Transform) bool {
	if !A.IsSolid() || !B.IsSolid() {
		return false
	}
	out := C2Gjk(A, nil, B, bx, false, nil)
	return out.Distance <= A.R+C2_touchTolerance
}

func C2PolyToPoly(A *C2Poly, ax *C2Transform, B *C2Poly, bx *C2Transform) bool {
	if !A.IsSolid() || !B.IsSolid() {
		return false
	}
	out := C2Gjk(A, ax, B, bx, false, nil)
	return out.Distance <= C2_touchTolerance
}

/// Boxes resolve along the axis of least overlap. The contact point sits on
/// the face of A that B is pushed out of.
func C2AabbToAabbManifold(A C2Aabb, B C2Aabb) C2Manifold {
	midA := A.GetCenter()
	midB := B.GetCenter()
	eA := A.GetExtents()
	eB := B.GetExtents()
	d := C2Vec2Sub(midB, midA)

	// calc overlap on x and y axes
	dx := eA.X + eB.X - math.Abs(d.X)
	if dx < 0.0 {
		return C2Manifold{}
	}
	dy := eA.Y + eB.Y - math.Abs(d.Y)
	if dy < 0.0 {
		return C2Manifold{}
	}

	var n, p C2Vec2
	depth := 0.0

	if dx < dy {
		// x axis overlap is smaller
		depth = dx
		if d.X < 0.0 {
			n = MakeC2Vec2(-1.0, 0.0)
			p = C2Vec2Sub(midA, MakeC2Vec2(eA.X, 0.0))
		} else {
			n = MakeC2Vec2(1.0, 0.0)
			p = C2Vec2Add(midA, MakeC2Vec2(eA.X, 0.0))
		}
	} else {
		// y axis overlap is smaller
		depth = dy
		if d.Y < 0.0 {
			n = MakeC2Vec2(0.0, -1.0)
			p = C2Vec2Sub(midA, MakeC2Vec2(0.0, eA.Y))
		} else {
			n = MakeC2Vec2(0.0, 1.0)
			p = C2Vec2Add(midA, MakeC2Vec2(0.0, eA.Y))
		}
	}

	return makeC2Manifold1(n, p, depth)
}

func C2AabbToCapsuleManifold(A C2Aabb, B C2Capsule) C2Manifold {
	box := A.ToPoly()
	return C2CapsuleToPolyManifold(B, &box, nil).Flip()
}

func C2CapsuleToCapsuleManifold(A C2Capsule, B C2Capsule) C2Manifold {
	if !A.IsSolid() || !B.IsSolid() {
		return C2Manifold{}
	}
	out := C2Gjk(A, nil, B, nil, false, nil)
	r := A.R + B.R
	if out.Distance > r+C2_touchTolerance {
		return C2Manifold{}
	}

	if out.Distance > C2_epsilon {
		n := C2Vec2MulScalar(1.0/out.Distance, C2Vec2Sub(out.PointB, out.PointA))
		return makeC2Manifold1(n, C2Vec2Sub(out.PointB, C2Vec2MulScalar(B.R, n)), r-out.Distance)
	}

	// The core segments cross. Clip one against the other.
	segA := makeC2PolytopeFromSegment(A.A, A.B, A.R)
	segB := makeC2PolytopeFromSegment(B.A, B.B, B.R)
	if m := c2CollidePolytopes(&segA, &segB); m.Count > 0 {
		return m
	}

	n := c2SegmentNormal(A.A, A.B)
	return makeC2Manifold1(n, C2Vec2Sub(out.PointB, C2Vec2MulScalar(B.R, n)), r)
}

/// Capsule against a polygon. GJK on the capsule's core segment decides
/// whether they touch. A capsule lying along a face gets two contact points
/// from clipping; otherwise the single contact point lies on the polygon.
func C2CapsuleToPolyManifold(A C2Capsule, B *C2Poly, bx *C2Transform) C2Manifold {
	if !A.IsSolid() || !B.IsSolid() {
		return C2Manifold{}
	}

	if C2Vec2DistanceSquared(A.A, A.B) < C2_epsilon*C2_epsilon {
		return C2CircleToPolyManifold(MakeC2Circle(A.A, A.R), B, bx)
	}

	out := C2Gjk(A, nil, B, bx, false, nil)
	if out.Distance > A.R+C2_touchTolerance {
		return C2Manifold{}
	}

	seg := makeC2PolytopeFromSegment(A.A, A.B, A.R)
	poly := makeC2PolytopeFromPoly(B, c2TransformOrIdentity(bx))
	m := c2CollidePolytopes(&seg, &poly)

	if out.Distance > C2_coreContactTolerance {
		n := C2Vec2MulScalar(1.0/out.Distance, C2Vec2Sub(out.PointB, out.PointA))
		if m.Count > 0 && C2Vec2Dot(m.N, n) >= 1.0-C2_linearSlop {
			return m
		}
		return makeC2Manifold1(n, out.PointB, A.R-out.Distance)
	}

	// Deep: the core segment is inside the polygon.
	if m.Count > 0 {
		return m
	}

	n := c2SegmentNormal(A.A, A.B)
	return makeC2Manifold1(n, out.PointB, A.R)
}

func C2AabbToPolyManifold(A C2Aabb, B *C2Poly, bx *C2Transform) C2Manifold {
	if !B.IsSolid() {
		return C2Manifold{}
	}
	box := A.ToPoly()
	polyA := makeC2PolytopeFromPoly(&box, MakeC2Transform())
	polyB := makeC2PolytopeFromPoly(B, c2TransformOrIdentity(bx))
	return c2CollidePolytopes(&polyA, &polyB)
}

/// Polygon against polygon by the separating axis test. The reference face is
/// the one of least separation, preferring A on near ties, and the incident
/// edge is clipped against its side planes.
func C2PolyToPolyManifold(A *C2Poly, ax *C2Transform, B *C2Poly, bx *C2Transform) C2Manifold {
	if !A.IsSolid() || !B.IsSolid() {
		return C2Manifold{}
	}
	polyA := makeC2PolytopeFromPoly(A, c2TransformOrIdentity(ax))
	polyB := makeC2PolytopeFromPoly(B, c2TransformOrIdentity(bx))
	return c2CollidePolytopes(&polyA, &polyB)
}
