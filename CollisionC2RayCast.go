package c2

import "math"

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Ray casts
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
//
// Every routine reports the first point where the ray enters the shape with
// 0 <= T <= ray.T. A ray that starts inside a shape does not hit it.

// Collision Detection in Interactive 3D Environments by Gino van den Bergen
// From Section 3.1.2
// x = s + a * r
// norm(x) = radius
func C2RayToCircle(A C2Ray, B C2Circle) (C2Raycast, bool) {
	var out C2Raycast
	if !B.IsSolid() {
		return out, false
	}

	s := C2Vec2Sub(A.P, B.P)
	b := C2Vec2Dot(s, s) - B.R*B.R

	// Solve quadratic equation.
	r := A.D
	c := C2Vec2Dot(s, r)
	rr := C2Vec2Dot(r, r)
	sigma := c*c - rr*b

	// Check for negative discriminant and short segment.
	if sigma < 0.0 || rr < C2_epsilon {
		return out, false
	}

	// Find the point of intersection of the line with the circle.
	a := -(c + math.Sqrt(sigma))

	// Is the intersection point on the segment?
	if 0.0 <= a && a <= A.T*rr {
		a /= rr
		out.T = a
		out.N = C2Vec2SafeNorm(C2Vec2Add(s, C2Vec2MulScalar(a, r)))
		return out, true
	}

	return out, false
}

// From Real-time Collision Detection, p179.
func C2RayToAabb(A C2Ray, B C2Aabb) (C2Raycast, bool) {
	var out C2Raycast

	tmin := -C2_maxFloat
	tmax := C2_maxFloat

	p := [2]float64{A.P.X, A.P.Y}
	d := [2]float64{A.D.X, A.D.Y}
	lower := [2]float64{B.Min.X, B.Min.Y}
	upper := [2]float64{B.Max.X, B.Max.Y}

	var normal [2]float64

	for i := 0; i < 2; i++ {
		if math.Abs(d[i]) < C2_epsilon {
			// Parallel.
			if p[i] < lower[i] || upper[i] < p[i] {
				return out, false
			}
		} else {
			inv_d := 1.0 / d[i]
			t1 := (lower[i] - p[i]) * inv_d
			t2 := (upper[i] - p[i]) * inv_d

			// Sign of the normal vector.
			s := -1.0

			if t1 > t2 {
				t1, t2 = t2, t1
				s = 1.0
			}

			// Push the min up
			if t1 > tmin {
				normal = [2]float64{}
				normal[i] = s
				tmin = t1
			}

			// Pull the max down
			tmax = math.Min(tmax, t2)

			if tmin > tmax {
				return out, false
			}
		}
	}

	// Does the ray start inside the box?
	// Does the ray intersect beyond the max fraction?
	if tmin < 0.0 || A.T < tmin {
		return out, false
	}

	// Intersection.
	out.T = tmin
	out.N = MakeC2Vec2(normal[0], normal[1])
	return out, true
}

/// The capsule is the union of its two end circles and the two faces offset
/// from its core segment; the earliest entry over those wins.
func C2RayToCapsule(A C2Ray, B C2Capsule) (C2Raycast, bool) {
	var out C2Raycast
	if !B.IsSolid() {
		return out, false
	}

	ab := C2Vec2Sub(B.B, B.A)
	length := ab.Length()
	if length < C2_epsilon {
		return C2RayToCircle(A, MakeC2Circle(B.A, B.R))
	}

	if C2DistanceSqPointSegment(B.A, B.B, A.P) < B.R*B.R {
		return out, false
	}

	tangent := C2Vec2MulScalar(1.0/length, ab)
	side := tangent.Skew()

	hit := false
	best := A.T

	consider := func(c C2Raycast, ok bool) {
		if ok && (!hit || c.T < best) {
			out = c
			best = c.T
			hit = true
		}
	}

	consider(C2RayToCircle(A, MakeC2Circle(B.A, B.R)))
	consider(C2RayToCircle(A, MakeC2Circle(B.B, B.R)))

	for _, n := range [2]C2Vec2{side, side.OperatorNegate()} {
		h := MakeC2HalfspaceFromPoint(n, C2Vec2Add(B.A, C2Vec2MulScalar(B.R, n)))

		// Only faces the ray enters.
		denominator := C2Vec2Dot(n, A.D)
		if denominator >= 0.0 {
			continue
		}

		t := -h.Distance(A.P) / denominator
		if t < 0.0 || t > A.T {
			continue
		}

		along := C2Vec2Dot(C2Vec2Sub(A.P, B.A), tangent) + t*C2Vec2Dot(A.D, tangent)
		if along < 0.0 || along > length {
			continue
		}

		consider(C2Raycast{T: t, N: n}, true)
	}

	return out, hit
}

/// Ray against a polygon placed by bx (nil for identity). The ray is moved
/// into the polygon's frame and clipped by each edge's half-space.
func C2RayToPoly(A C2Ray, B *C2Poly, bx *C2Transform) (C2Raycast, bool) {
	var out C2Raycast
	if !B.IsSolid() {
		return out, false
	}

	xf := c2TransformOrIdentity(bx)

	// Put the ray into the polygon's frame of reference.
	p1 := C2TransformVec2MulT(xf, A.P)
	d := C2SinCosVec2MulT(xf.R, A.D)

	lower := 0.0
	upper := A.T

	index := -1

	for i := 0; i < B.count(); i++ {
		// p = p1 + a * d
		// dot(normal, p - v) = 0
		// dot(normal, p1 - v) + a * dot(normal, d) = 0
		numerator := C2Vec2Dot(B.Norms[i], C2Vec2Sub(B.Verts[i], p1))
		denominator := C2Vec2Dot(B.Norms[i], d)

		if denominator == 0.0 {
			if numerator < 0.0 {
				return out, false
			}
		} else {
			// Note: we want this predicate without division:
			// lower < numerator / denominator, where denominator < 0
			// Since denominator < 0, we have to flip the inequality:
			// lower < numerator / denominator <==> denominator * lower > numerator.
			if denominator < 0.0 && numerator < lower*denominator {
				// Increase lower.
				// The segment enters this half-space.
				lower = numerator / denominator
				index = i
			} else if denominator > 0.0 && numerator < upper*denominator {
				// Decrease upper.
				// The segment exits this half-space.
				upper = numerator / denominator
			}
		}

		if upper < lower {
			return out, false
		}
	}

	if index >= 0 {
		out.T = lower
		out.N = C2SinCosVec2Mul(xf.R, B.Norms[index])
		return out, true
	}

	return out, false
}

/// Ray against the plane of a half-space. Hits from either side; the normal
/// faces the side the ray starts on.
func C2RayToHalfspace(A C2Ray, B C2Halfspace) (C2Raycast, bool) {
	var out C2Raycast

	da := B.Distance(A.P)
	db := B.Distance(A.Endpoint())
	if da*db > 0.0 || da == db {
		return out, false
	}

	sign := 1.0
	if da < 0.0 {
		sign = -1.0
	}

	out.T = C2Intersect(da, db) * A.T
	out.N = C2Vec2MulScalar(sign, B.N)
	return out, true
}
