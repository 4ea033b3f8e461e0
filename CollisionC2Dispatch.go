package c2

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Generic entry points
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
//
// These select the pair routine from the dynamic shape types. Transforms are
// only applied to polygons; circles, boxes and capsules are taken to be in
// world space already. Pairs are resolved by the routine for the canonical
// order (circle, aabb, capsule, poly) and the normal is flipped when the
// arguments came the other way around.

/// Reports whether A and B overlap or touch.
func C2Collided(A C2Shape, ax *C2Transform, B C2Shape, bx *C2Transform) bool {
	switch a := A.(type) {
	case C2Circle:
		switch b := B.(type) {
		case C2Circle:
			return C2CircleToCircle(a, b)
		case C2Aabb:
			return C2CircleToAabb(a, b)
		case C2Capsule:
			return C2CircleToCapsule(a, b)
		case *C2Poly:
			return C2CircleToPoly(a, b, bx)
		}

	case C2Aabb:
		switch b := B.(type) {
		case C2Circle:
			return C2CircleToAabb(b, a)
		case C2Aabb:
			return C2AabbToAabb(a, b)
		case C2Capsule:
			return C2AabbToCapsule(a, b)
		case *C2Poly:
			return C2AabbToPoly(a, b, bx)
		}

	case C2Capsule:
		switch b := B.(type) {
		case C2Circle:
			return C2CircleToCapsule(b, a)
		case C2Aabb:
			return C2AabbToCapsule(b, a)
		case C2Capsule:
			return C2CapsuleToCapsule(a, b)
		case *C2Poly:
			return C2CapsuleToPoly(a, b, bx)
		}

	case *C2Poly:
		switch b := B.(type) {
		case C2Circle:
			return C2CircleToPoly(b, a, ax)
		case C2Aabb:
			return C2AabbToPoly(b, a, ax)
		case C2Capsule:
			return C2CapsuleToPoly(b, a, ax)
		case *C2Poly:
			return C2PolyToPoly(a, ax, b, bx)
		}
	}

	return false
}

/// Computes the contact manifold of A and B. The normal points from A to B.
func C2Collide(A C2Shape, ax *C2Transform, B C2Shape, bx *C2Transform) C2Manifold {
	switch a := A.(type) {
	case C2Circle:
		switch b := B.(type) {
		case C2Circle:
			return C2CircleToCircleManifold(a, b)
		case C2Aabb:
			return C2CircleToAabbManifold(a, b)
		case C2Capsule:
			return C2CircleToCapsuleManifold(a, b)
		case *C2Poly:
			return C2CircleToPolyManifold(a, b, bx)
		}

	case C2Aabb:
		switch b := B.(type) {
		case C2Circle:
			return C2CircleToAabbManifold(b, a).Flip()
		case C2Aabb:
			return C2AabbToAabbManifold(a, b)
		case C2Capsule:
			return C2AabbToCapsuleManifold(a, b)
		case *C2Poly:
			return C2AabbToPolyManifold(a, b, bx)
		}

	case C2Capsule:
		switch b := B.(type) {
		case C2Circle:
			return C2CircleToCapsuleManifold(b, a).Flip()
		case C2Aabb:
			return C2AabbToCapsuleManifold(b, a).Flip()
		case C2Capsule:
			return C2CapsuleToCapsuleManifold(a, b)
		case *C2Poly:
			return C2CapsuleToPolyManifold(a, b, bx)
		}

	case *C2Poly:
		switch b := B.(type) {
		case C2Circle:
			return C2CircleToPolyManifold(b, a, ax).Flip()
		case C2Aabb:
			return C2AabbToPolyManifold(b, a, ax).Flip()
		case C2Capsule:
			return C2CapsuleToPolyManifold(b, a, ax).Flip()
		case *C2Poly:
			return C2PolyToPolyManifold(a, ax, b, bx)
		}
	}

	return C2Manifold{}
}

/// Casts ray A against shape B. bx places B when it is a polygon.
func C2CastRay(A C2Ray, B C2Shape, bx *C2Transform) (C2Raycast, bool) {
	switch b := B.(type) {
	case C2Circle:
		return C2RayToCircle(A, b)
	case C2Aabb:
		return C2RayToAabb(A, b)
	case C2Capsule:
		return C2RayToCapsule(A, b)
	case *C2Poly:
		return C2RayToPoly(A, b, bx)
	}

	return C2Raycast{}, false
}
