package c2

import (
	"math"

	"golang.org/x/exp/constraints"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Scalar helpers
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

/// This function is used to ensure that a floating point number is not a NaN or infinity.
func C2IsValid(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func C2Clamp[T constraints.Float](a, lo, hi T) T {
	return max(lo, min(a, hi))
}

func C2Clamp01[T constraints.Float](a T) T {
	return C2Clamp(a, 0, 1)
}

/// Returns -1 for negative values and 1 otherwise (zero included).
func C2Sign[T constraints.Float](a T) T {
	if a < 0 {
		return -1
	}
	return 1
}

/// Parameter along a segment where the signed distances da and db cross zero.
func C2Intersect[T constraints.Float](da, db T) T {
	return da / (da - db)
}

func C2SafeInvert[T constraints.Float](a T) T {
	if a != 0 {
		return 1 / a
	}
	return 0
}

func C2Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

func C2Remap[T constraints.Float](t, lo, hi T) T {
	if hi-lo != 0 {
		return (t - lo) / (hi - lo)
	}
	return 0
}

///////////////////////////////////////////////////////////////////////////////
/// A 2D column vector.
///////////////////////////////////////////////////////////////////////////////
type C2Vec2 struct {
	X, Y float64
}

func MakeC2Vec2(xIn, yIn float64) C2Vec2 {
	return C2Vec2{
		X: xIn,
		Y: yIn,
	}
}

var C2Vec2_zero = MakeC2Vec2(0, 0)

/// Get the length of this vector (the norm).
func (v C2Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

/// Get the length squared.
func (v C2Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

/// Convert this vector into a unit vector. Returns the length. A vector
/// shorter than C2_epsilon is left untouched and 0 is returned.
func (v *C2Vec2) Normalize() float64 {
	length := v.Length()
	if length < C2_epsilon {
		return 0.0
	}

	invLength := 1.0 / length
	v.X *= invLength
	v.Y *= invLength

	return length
}

/// Does this vector contain finite coordinates?
func (v C2Vec2) IsValid() bool {
	return C2IsValid(v.X) && C2IsValid(v.Y)
}

/// Get the skew vector such that dot(skew_vec, other) == cross(vec, other).
/// This is the counter-clockwise perpendicular.
func (v C2Vec2) Skew() C2Vec2 {
	return MakeC2Vec2(-v.Y, v.X)
}

/// Clockwise perpendicular.
func (v C2Vec2) CW90() C2Vec2 {
	return MakeC2Vec2(v.Y, -v.X)
}

func (v C2Vec2) OperatorNegate() C2Vec2 {
	return MakeC2Vec2(-v.X, -v.Y)
}

func C2Vec2Add(a, b C2Vec2) C2Vec2 {
	return MakeC2Vec2(a.X+b.X, a.Y+b.Y)
}

func C2Vec2Sub(a, b C2Vec2) C2Vec2 {
	return MakeC2Vec2(a.X-b.X, a.Y-b.Y)
}

func C2Vec2MulScalar(s float64, a C2Vec2) C2Vec2 {
	return MakeC2Vec2(s*a.X, s*a.Y)
}

/// Component-wise product.
func C2Vec2Mul(a, b C2Vec2) C2Vec2 {
	return MakeC2Vec2(a.X*b.X, a.Y*b.Y)
}

/// Perform the dot product on two vectors.
func C2Vec2Dot(a, b C2Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

/// Perform the cross product on two vectors. In 2D this produces a scalar.
func C2Vec2Cross(a, b C2Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

/// Perform the cross product on a vector and a scalar. In 2D this produces
/// a vector.
func C2Vec2CrossVectorScalar(a C2Vec2, s float64) C2Vec2 {
	return MakeC2Vec2(s*a.Y, -s*a.X)
}

/// Perform the cross product on a scalar and a vector. In 2D this produces
/// a vector.
func C2Vec2CrossScalarVector(s float64, a C2Vec2) C2Vec2 {
	return MakeC2Vec2(-s*a.Y, s*a.X)
}

func C2Vec2Distance(a, b C2Vec2) float64 {
	return C2Vec2Sub(a, b).Length()
}

func C2Vec2DistanceSquared(a, b C2Vec2) float64 {
	return C2Vec2Sub(a, b).LengthSquared()
}

/// Unit vector in the direction of a. The zero vector produces NaNs, use
/// C2Vec2SafeNorm when a may be degenerate.
func C2Vec2Norm(a C2Vec2) C2Vec2 {
	return C2Vec2MulScalar(1.0/a.Length(), a)
}

/// Unit vector in the direction of a, or the zero vector when a has no length.
func C2Vec2SafeNorm(a C2Vec2) C2Vec2 {
	sq := a.LengthSquared()
	if sq == 0 {
		return C2Vec2_zero
	}
	return C2Vec2MulScalar(1.0/math.Sqrt(sq), a)
}

func C2Vec2Lerp(a, b C2Vec2, t float64) C2Vec2 {
	return C2Vec2Add(a, C2Vec2MulScalar(t, C2Vec2Sub(b, a)))
}

func C2Vec2Abs(a C2Vec2) C2Vec2 {
	return MakeC2Vec2(math.Abs(a.X), math.Abs(a.Y))
}

func C2Vec2Min(a, b C2Vec2) C2Vec2 {
	return MakeC2Vec2(math.Min(a.X, b.X), math.Min(a.Y, b.Y))
}

func C2Vec2Max(a, b C2Vec2) C2Vec2 {
	return MakeC2Vec2(math.Max(a.X, b.X), math.Max(a.Y, b.Y))
}

func C2Vec2Clamp(a, low, high C2Vec2) C2Vec2 {
	return C2Vec2Max(low, C2Vec2Min(a, high))
}

/// Smallest component.
func (v C2Vec2) HMin() float64 {
	return math.Min(v.X, v.Y)
}

/// Largest component.
func (v C2Vec2) HMax() float64 {
	return math.Max(v.X, v.Y)
}

/// Reports whether a and b point along the same line, after scaling b to the
/// length of a. tol is an absolute per-component tolerance.
func C2Vec2Parallel(a, b C2Vec2, tol float64) bool {
	lb := b.Length()
	if lb == 0 {
		return false
	}
	b = C2Vec2MulScalar(a.Length()/lb, b)
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol
}

///////////////////////////////////////////////////////////////////////////////
/// Rotation stored as a sine/cosine pair.
///////////////////////////////////////////////////////////////////////////////
type C2SinCos struct {
	S, C float64
}

/// Initialize from an angle in radians.
func MakeC2SinCos(anglerad float64) C2SinCos {
	return C2SinCos{
		S: math.Sin(anglerad),
		C: math.Cos(anglerad),
	}
}

/// The identity rotation.
func MakeC2SinCosIdentity() C2SinCos {
	return C2SinCos{S: 0.0, C: 1.0}
}

/// Get the angle in radians, in [-pi, pi].
func (r C2SinCos) GetAngle() float64 {
	return math.Atan2(r.S, r.C)
}

/// Get the x-axis.
func (r C2SinCos) GetXAxis() C2Vec2 {
	return MakeC2Vec2(r.C, r.S)
}

/// Get the y-axis.
func (r C2SinCos) GetYAxis() C2Vec2 {
	return MakeC2Vec2(-r.S, r.C)
}

/// Rescale to unit length. Long composition chains drift; a zero rotation
/// becomes the identity.
func (r *C2SinCos) Normalize() {
	l := math.Sqrt(r.S*r.S + r.C*r.C)
	if l < C2_epsilon {
		*r = MakeC2SinCosIdentity()
		return
	}
	r.S /= l
	r.C /= l
}

/// Multiply two rotations: q * r
func C2SinCosMul(q, r C2SinCos) C2SinCos {
	return C2SinCos{
		S: q.S*r.C + q.C*r.S,
		C: q.C*r.C - q.S*r.S,
	}
}

/// Transpose multiply two rotations: qT * r
func C2SinCosMulT(q, r C2SinCos) C2SinCos {
	return C2SinCos{
		S: q.C*r.S - q.S*r.C,
		C: q.C*r.C + q.S*r.S,
	}
}

/// Rotate a vector
func C2SinCosVec2Mul(q C2SinCos, v C2Vec2) C2Vec2 {
	return MakeC2Vec2(q.C*v.X-q.S*v.Y, q.S*v.X+q.C*v.Y)
}

/// Inverse rotate a vector
func C2SinCosVec2MulT(q C2SinCos, v C2Vec2) C2Vec2 {
	return MakeC2Vec2(q.C*v.X+q.S*v.Y, -q.S*v.X+q.C*v.Y)
}

///////////////////////////////////////////////////////////////////////////////
/// A transform contains translation and rotation. It is used to represent
/// the position and orientation of rigid frames. There is no scale.
///////////////////////////////////////////////////////////////////////////////
type C2Transform struct {
	R C2SinCos
	P C2Vec2
}

/// The identity transform.
func MakeC2Transform() C2Transform {
	return C2Transform{
		R: MakeC2SinCosIdentity(),
		P: C2Vec2_zero,
	}
}

func MakeC2TransformFromAngle(position C2Vec2, anglerad float64) C2Transform {
	return C2Transform{
		R: MakeC2SinCos(anglerad),
		P: position,
	}
}

/// Resolves an optional transform argument; nil means identity.
func c2TransformOrIdentity(xf *C2Transform) C2Transform {
	if xf == nil {
		return MakeC2Transform()
	}
	return *xf
}

func C2TransformVec2Mul(T C2Transform, v C2Vec2) C2Vec2 {
	return C2Vec2Add(C2SinCosVec2Mul(T.R, v), T.P)
}

func C2TransformVec2MulT(T C2Transform, v C2Vec2) C2Vec2 {
	return C2SinCosVec2MulT(T.R, C2Vec2Sub(v, T.P))
}

// v2 = A.q.Rot(B.q.Rot(v1) + B.p) + A.p
//    = (A.q * B.q).Rot(v1) + A.q.Rot(B.p) + A.p
func C2TransformMul(A, B C2Transform) C2Transform {
	return C2Transform{
		R: C2SinCosMul(A.R, B.R),
		P: C2Vec2Add(C2SinCosVec2Mul(A.R, B.P), A.P),
	}
}

// v2 = A.q' * (B.q * v1 + B.p - A.p)
//    = A.q' * B.q * v1 + A.q' * (B.p - A.p)
func C2TransformMulT(A, B C2Transform) C2Transform {
	return C2Transform{
		R: C2SinCosMulT(A.R, B.R),
		P: C2SinCosVec2MulT(A.R, C2Vec2Sub(B.P, A.P)),
	}
}

///////////////////////////////////////////////////////////////////////////////
/// A 2D plane (a line), the set {p : dot(N, p) = D}. N is unit length and
/// points out of the half-space.
///////////////////////////////////////////////////////////////////////////////
type C2Halfspace struct {
	N C2Vec2
	D float64
}

func MakeC2Halfspace(n C2Vec2, d float64) C2Halfspace {
	return C2Halfspace{N: n, D: d}
}

/// Plane with normal n passing through p.
func MakeC2HalfspaceFromPoint(n C2Vec2, p C2Vec2) C2Halfspace {
	return C2Halfspace{N: n, D: C2Vec2Dot(n, p)}
}

/// The point of the plane closest to the origin.
func (h C2Halfspace) Origin() C2Vec2 {
	return C2Vec2MulScalar(h.D, h.N)
}

/// Signed distance from the plane; positive in front of it.
func (h C2Halfspace) Distance(p C2Vec2) float64 {
	return C2Vec2Dot(h.N, p) - h.D
}

/// Projection of p onto the plane.
func (h C2Halfspace) Project(p C2Vec2) C2Vec2 {
	return C2Vec2Sub(p, C2Vec2MulScalar(h.Distance(p), h.N))
}

/// Point where segment ab crosses the plane.
func (h C2Halfspace) Intersect(a, b C2Vec2) C2Vec2 {
	return C2IntersectHalfspace(a, b, h.Distance(a), h.Distance(b))
}

/// Point where segment ab crosses a plane, given the signed distances of its
/// endpoints. C2Intersect gives the matching parameter.
func C2IntersectHalfspace(a, b C2Vec2, da, db float64) C2Vec2 {
	return C2Vec2Add(a, C2Vec2MulScalar(C2Intersect(da, db), C2Vec2Sub(b, a)))
}

func C2TransformHalfspaceMul(T C2Transform, h C2Halfspace) C2Halfspace {
	n := C2SinCosVec2Mul(T.R, h.N)
	return C2Halfspace{
		N: n,
		D: C2Vec2Dot(C2TransformVec2Mul(T, h.Origin()), n),
	}
}

func C2TransformHalfspaceMulT(T C2Transform, h C2Halfspace) C2Halfspace {
	n := C2SinCosVec2MulT(T.R, h.N)
	return C2Halfspace{
		N: n,
		D: C2Vec2Dot(C2TransformVec2MulT(T, h.Origin()), n),
	}
}

// http://www.randygaul.net/2014/07/23/distance-point-to-line-segment/
func C2DistanceSqPointSegment(a, b, p C2Vec2) float64 {
	n := C2Vec2Sub(b, a)
	pa := C2Vec2Sub(a, p)
	nn := C2Vec2Dot(n, n)
	if nn == 0 {
		return C2Vec2Dot(pa, pa)
	}
	c := C2Vec2Dot(n, pa)

	// Closest point is a
	if c > 0.0 {
		return C2Vec2Dot(pa, pa)
	}

	// Closest point is b
	bp := C2Vec2Sub(p, b)
	if C2Vec2Dot(n, bp) > 0.0 {
		return C2Vec2Dot(bp, bp)
	}

	// Closest point is between a and b
	e := C2Vec2Sub(pa, C2Vec2MulScalar(c/nn, n))
	return C2Vec2Dot(e, e)
}

/// Closest point to p on segment ab.
func C2ClosestPointSegment(a, b, p C2Vec2) C2Vec2 {
	ab := C2Vec2Sub(b, a)
	denom := C2Vec2Dot(ab, ab)
	if denom < C2_epsilon*C2_epsilon {
		return a
	}
	t := C2Clamp01(C2Vec2Dot(C2Vec2Sub(p, a), ab) / denom)
	return C2Vec2Add(a, C2Vec2MulScalar(t, ab))
}
