package c2

var C2ToiResult_State = struct {
	E_unknown    uint8
	E_failed     uint8
	E_overlapped uint8
	E_touching   uint8
	E_separated  uint8
}{
	E_unknown:    0,
	E_failed:     1,
	E_overlapped: 2,
	E_touching:   3,
	E_separated:  4,
}

/// Output of C2Toi. When Hit is set the shapes touch at time Toi in [0, 1],
/// N is the unit axis from A to B and P the point on A at that time. Otherwise
/// Toi is 1.
///
/// State refines Hit: E_overlapped means the shapes already touched at time 0,
/// E_failed that the iteration cap was reached while the shapes were still
/// closing. A failed result keeps Hit false since the last distance measured
/// was still above C2_toiTolerance; Toi is then the last safe time reached
/// and Iterations equals C2_toiMaxIters.
type C2ToiResult struct {
	Hit        bool
	Toi        float64
	N          C2Vec2
	P          C2Vec2
	Iterations int
	State      uint8
}

/// Conservative advancement. Shapes A and B start at ax and bx (nil for
/// identity) and translate with constant velocities vA and vB over the unit
/// interval. Each step measures the distance with GJK, projects the relative
/// velocity on the separating axis and advances time by the distance over
/// that closing speed, which can never step past first contact.
///
/// useRadius selects whether the rounding of circles and capsules is part of
/// the shape.
func C2Toi(A C2Shape, ax *C2Transform, vA C2Vec2, B C2Shape, bx *C2Transform, vB C2Vec2, useRadius bool) C2ToiResult {
	return c2Toi(A, ax, vA, B, bx, vB, useRadius, C2_toiMaxIters)
}

func c2Toi(A C2Shape, ax *C2Transform, vA C2Vec2, B C2Shape, bx *C2Transform, vB C2Vec2, useRadius bool, maxIters int) C2ToiResult {
	var result C2ToiResult

	proxyA := MakeC2DistanceProxy(A)
	proxyB := MakeC2DistanceProxy(B)
	if c2IsDegenerate(A) || c2IsDegenerate(B) || proxyA.GetVertexCount() == 0 || proxyB.GetVertexCount() == 0 {
		return c2ToiMiss(0)
	}

	xfA0 := c2TransformOrIdentity(ax)
	xfB0 := c2TransformOrIdentity(bx)
	xfA := xfA0
	xfB := xfB0

	v := C2Vec2Sub(vB, vA)
	t := 0.0
	var n C2Vec2

	var cache C2GjkCache
	out := C2Distance(&proxyA, xfA, &proxyB, xfB, useRadius, &cache)

	iter := 0
	for out.Distance >= C2_toiTolerance {
		if iter >= maxIters {
			return C2ToiResult{
				Toi:        t,
				N:          C2Vec2SafeNorm(C2Vec2Sub(out.PointB, out.PointA)),
				P:          out.PointA,
				Iterations: iter,
				State:      C2ToiResult_State.E_failed,
			}
		}

		n = C2Vec2SafeNorm(C2Vec2Sub(out.PointB, out.PointA))

		closing := -C2Vec2Dot(n, v)
		if closing <= 0.0 {
			// Moving apart or sliding.
			return c2ToiMiss(iter)
		}

		t += out.Distance / closing
		if t > 1.0 {
			return c2ToiMiss(iter)
		}

		xfA.P = C2Vec2Add(xfA0.P, C2Vec2MulScalar(t, vA))
		xfB.P = C2Vec2Add(xfB0.P, C2Vec2MulScalar(t, vB))
		out = C2Distance(&proxyA, xfA, &proxyB, xfB, useRadius, &cache)
		iter++
	}

	result.State = C2ToiResult_State.E_touching
	if iter == 0 {
		result.State = C2ToiResult_State.E_overlapped
	}

	if n.LengthSquared() == 0.0 {
		n = c2ToiFallbackAxis(&proxyA, xfA, &proxyB, xfB, v)
	}

	result.Hit = true
	result.Toi = t
	result.N = n
	result.P = out.PointA
	result.Iterations = iter
	return result
}

func c2ToiMiss(iter int) C2ToiResult {
	return C2ToiResult{
		Toi:        1.0,
		Iterations: iter,
		State:      C2ToiResult_State.E_separated,
	}
}

// Axis for shapes that touch before any step was taken. The core shapes
// usually still have distinct witnesses; failing that the relative motion,
// failing that +y.
func c2ToiFallbackAxis(proxyA *C2DistanceProxy, xfA C2Transform, proxyB *C2DistanceProxy, xfB C2Transform, v C2Vec2) C2Vec2 {
	core := C2Distance(proxyA, xfA, proxyB, xfB, false, nil)
	if n := C2Vec2SafeNorm(C2Vec2Sub(core.PointB, core.PointA)); n.LengthSquared() > 0.0 {
		return n
	}
	if n := C2Vec2SafeNorm(v.OperatorNegate()); n.LengthSquared() > 0.0 {
		return n
	}
	return MakeC2Vec2(0.0, 1.0)
}
