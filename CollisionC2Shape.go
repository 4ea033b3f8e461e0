package c2

import "math"

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// C2Shape
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

type C2ShapeType uint8

var C2Shape_Type = struct {
	E_none    C2ShapeType
	E_circle  C2ShapeType
	E_aabb    C2ShapeType
	E_capsule C2ShapeType
	E_poly    C2ShapeType
}{
	E_none:    0,
	E_circle:  1,
	E_aabb:    2,
	E_capsule: 3,
	E_poly:    4,
}

func (t C2ShapeType) String() string {
	switch t {
	case C2Shape_Type.E_circle:
		return "circle"
	case C2Shape_Type.E_aabb:
		return "aabb"
	case C2Shape_Type.E_capsule:
		return "capsule"
	case C2Shape_Type.E_poly:
		return "poly"
	}
	return "none"
}

/// A shape is one of C2Circle, C2Aabb, C2Capsule or *C2Poly. The set is closed:
/// the unexported method keeps other packages from adding variants, so the
/// dispatch switches below are exhaustive.
type C2Shape interface {
	Type() C2ShapeType
	isC2Shape()
}

///////////////////////////////////////////////////////////////////////////////
/// A solid circle.
///////////////////////////////////////////////////////////////////////////////
type C2Circle struct {
	P C2Vec2
	R float64
}

func MakeC2Circle(p C2Vec2, r float64) C2Circle {
	return C2Circle{P: p, R: r}
}

func (C2Circle) Type() C2ShapeType { return C2Shape_Type.E_circle }
func (C2Circle) isC2Shape()        {}

// A negative or NaN radius describes no region.
func (c C2Circle) IsSolid() bool {
	return c.R >= 0.0
}

func (c C2Circle) Area() float64 {
	return C2_pi * c.R * c.R
}

func (c C2Circle) Perimeter() float64 {
	return 2.0 * C2_pi * c.R
}

/// Axis aligned bounds of the circle.
func (c C2Circle) ComputeAABB() C2Aabb {
	e := MakeC2Vec2(c.R, c.R)
	return C2Aabb{Min: C2Vec2Sub(c.P, e), Max: C2Vec2Add(c.P, e)}
}

/// The circle moved into the frame described by xf.
func C2TransformCircleMul(xf C2Transform, c C2Circle) C2Circle {
	return C2Circle{P: C2TransformVec2Mul(xf, c.P), R: c.R}
}

///////////////////////////////////////////////////////////////////////////////
/// An axis aligned bounding box.
///////////////////////////////////////////////////////////////////////////////
type C2Aabb struct {
	Min C2Vec2 ///< the lower vertex
	Max C2Vec2 ///< the upper vertex
}

func MakeC2Aabb(min, max C2Vec2) C2Aabb {
	return C2Aabb{Min: min, Max: max}
}

/// Box centred on center with the given half extents.
func MakeC2AabbFromCenter(center, halfExtents C2Vec2) C2Aabb {
	return C2Aabb{
		Min: C2Vec2Sub(center, halfExtents),
		Max: C2Vec2Add(center, halfExtents),
	}
}

/// Box with its lower vertex at pos.
func MakeC2AabbFromPosSize(pos, size C2Vec2) C2Aabb {
	return C2Aabb{Min: pos, Max: C2Vec2Add(pos, size)}
}

/// Smallest box containing every vertex. An empty list yields the zero box.
func MakeC2AabbFromVerts(verts []C2Vec2) C2Aabb {
	if len(verts) == 0 {
		return C2Aabb{}
	}
	bb := C2Aabb{Min: verts[0], Max: verts[0]}
	for _, v := range verts[1:] {
		bb.Min = C2Vec2Min(bb.Min, v)
		bb.Max = C2Vec2Max(bb.Max, v)
	}
	return bb
}

func (C2Aabb) Type() C2ShapeType { return C2Shape_Type.E_aabb }
func (C2Aabb) isC2Shape()        {}

/// Verify that the bounds are sorted.
func (bb C2Aabb) IsValid() bool {
	d := C2Vec2Sub(bb.Max, bb.Min)
	return d.X >= 0.0 && d.Y >= 0.0 && bb.Min.IsValid() && bb.Max.IsValid()
}

func (bb C2Aabb) Width() float64 {
	return bb.Max.X - bb.Min.X
}

func (bb C2Aabb) Height() float64 {
	return bb.Max.Y - bb.Min.Y
}

/// Get the center of the AABB.
func (bb C2Aabb) GetCenter() C2Vec2 {
	return C2Vec2MulScalar(0.5, C2Vec2Add(bb.Min, bb.Max))
}

/// Get the extents of the AABB (half-widths).
func (bb C2Aabb) GetExtents() C2Vec2 {
	return C2Vec2MulScalar(0.5, C2Vec2Sub(bb.Max, bb.Min))
}

func (bb C2Aabb) Area() float64 {
	return bb.Width() * bb.Height()
}

/// Get the perimeter length
func (bb C2Aabb) GetPerimeter() float64 {
	return 2.0 * (bb.Width() + bb.Height())
}

/// Combine two AABBs into one.
func C2AabbCombine(a, b C2Aabb) C2Aabb {
	return C2Aabb{Min: C2Vec2Min(a.Min, b.Min), Max: C2Vec2Max(a.Max, b.Max)}
}

/// Grow the box so it contains p.
func (bb C2Aabb) Expand(p C2Vec2) C2Aabb {
	return C2Aabb{Min: C2Vec2Min(bb.Min, p), Max: C2Vec2Max(bb.Max, p)}
}

/// Does this aabb contain the provided point? Points on the boundary count.
func (bb C2Aabb) ContainsPoint(p C2Vec2) bool {
	return bb.Min.X <= p.X && p.X <= bb.Max.X &&
		bb.Min.Y <= p.Y && p.Y <= bb.Max.Y
}

/// Does this aabb contain the provided AABB.
func (bb C2Aabb) Contains(other C2Aabb) bool {
	return bb.Min.X <= other.Min.X && bb.Min.Y <= other.Min.Y &&
		other.Max.X <= bb.Max.X && other.Max.Y <= bb.Max.Y
}

/// The point of the box closest to p.
func (bb C2Aabb) ClampPoint(p C2Vec2) C2Vec2 {
	return C2Vec2Clamp(p, bb.Min, bb.Max)
}

/// Corners in CCW order starting from Min.
func (bb C2Aabb) Corners() [4]C2Vec2 {
	return [4]C2Vec2{
		bb.Min,
		MakeC2Vec2(bb.Max.X, bb.Min.Y),
		bb.Max,
		MakeC2Vec2(bb.Min.X, bb.Max.Y),
	}
}

/// The box as a four sided polygon.
func (bb C2Aabb) ToPoly() C2Poly {
	var p C2Poly
	corners := bb.Corners()
	copy(p.Verts[:], corners[:])
	p.Count = 4
	p.Norms[0] = MakeC2Vec2(0.0, -1.0)
	p.Norms[1] = MakeC2Vec2(1.0, 0.0)
	p.Norms[2] = MakeC2Vec2(0.0, 1.0)
	p.Norms[3] = MakeC2Vec2(-1.0, 0.0)
	return p
}

/// Overlap test on closed intervals; boxes sharing an edge overlap.
func C2TestOverlap(a, b C2Aabb) bool {
	d1 := C2Vec2Sub(b.Min, a.Max)
	d2 := C2Vec2Sub(a.Min, b.Max)

	if d1.X > 0.0 || d1.Y > 0.0 {
		return false
	}

	if d2.X > 0.0 || d2.Y > 0.0 {
		return false
	}

	return true
}

///////////////////////////////////////////////////////////////////////////////
/// A segment AB swept by a circle of radius R.
///////////////////////////////////////////////////////////////////////////////
type C2Capsule struct {
	A, B C2Vec2
	R    float64
}

func MakeC2Capsule(a, b C2Vec2, r float64) C2Capsule {
	return C2Capsule{A: a, B: b, R: r}
}

func (C2Capsule) Type() C2ShapeType { return C2Shape_Type.E_capsule }
func (C2Capsule) isC2Shape()        {}

func (c C2Capsule) IsSolid() bool {
	return c.R >= 0.0
}

func (c C2Capsule) ComputeAABB() C2Aabb {
	e := MakeC2Vec2(c.R, c.R)
	return C2Aabb{
		Min: C2Vec2Sub(C2Vec2Min(c.A, c.B), e),
		Max: C2Vec2Add(C2Vec2Max(c.A, c.B), e),
	}
}

///////////////////////////////////////////////////////////////////////////////
/// A convex polygon of at most C2_polyMaxVerts vertices in CCW order.
/// Norms[i] is the outward unit normal of the edge Verts[i] -> Verts[i+1].
/// Build one with C2MakePoly.
///////////////////////////////////////////////////////////////////////////////
type C2Poly struct {
	Count int
	Verts [C2_polyMaxVerts]C2Vec2
	Norms [C2_polyMaxVerts]C2Vec2
}

func (*C2Poly) Type() C2ShapeType { return C2Shape_Type.E_poly }
func (*C2Poly) isC2Shape()        {}

func (p *C2Poly) Vertices() []C2Vec2 {
	return p.Verts[:p.count()]
}

func (p *C2Poly) Normals() []C2Vec2 {
	return p.Norms[:p.count()]
}

/// Count clamped to the buffer; a hand-filled poly may carry garbage.
func (p *C2Poly) count() int {
	if p.Count < 0 {
		return 0
	}
	if p.Count > C2_polyMaxVerts {
		return C2_polyMaxVerts
	}
	return p.Count
}

/// A poly is usable as a collision operand once it encloses an area.
func (p *C2Poly) IsSolid() bool {
	return p != nil && p.count() >= 3
}

// Polygons that enclose no area and round shapes with a negative radius
// never collide.
func c2IsDegenerate(shape C2Shape) bool {
	switch s := shape.(type) {
	case C2Circle:
		return !s.IsSolid()
	case C2Capsule:
		return !s.IsSolid()
	case *C2Poly:
		return !s.IsSolid()
	}
	return false
}

func (p *C2Poly) ComputeAABB(xf C2Transform) C2Aabb {
	n := p.count()
	if n == 0 {
		return C2Aabb{Min: xf.P, Max: xf.P}
	}
	lower := C2TransformVec2Mul(xf, p.Verts[0])
	upper := lower
	for i := 1; i < n; i++ {
		v := C2TransformVec2Mul(xf, p.Verts[i])
		lower = C2Vec2Min(lower, v)
		upper = C2Vec2Max(upper, v)
	}
	return C2Aabb{Min: lower, Max: upper}
}

/// The poly with its vertices and normals moved into the frame xf.
func C2TransformPolyMul(xf C2Transform, p *C2Poly) C2Poly {
	var out C2Poly
	n := p.count()
	out.Count = n
	for i := 0; i < n; i++ {
		out.Verts[i] = C2TransformVec2Mul(xf, p.Verts[i])
		out.Norms[i] = C2SinCosVec2Mul(xf.R, p.Norms[i])
	}
	return out
}

///////////////////////////////////////////////////////////////////////////////
/// Ray-cast input data. The ray extends from P to P + T * D. D must be unit
/// length.
///////////////////////////////////////////////////////////////////////////////
type C2Ray struct {
	P C2Vec2  ///< origin
	D C2Vec2  ///< direction, normalized
	T float64 ///< distance along D from P to the ray's end
}

func MakeC2Ray(p, d C2Vec2, t float64) C2Ray {
	return C2Ray{P: p, D: d, T: t}
}

/// Ray from a to b.
func MakeC2RayFromPoints(a, b C2Vec2) C2Ray {
	d := C2Vec2Sub(b, a)
	t := d.Length()
	return C2Ray{P: a, D: C2Vec2SafeNorm(d), T: t}
}

/// The last point the ray can reach.
func (r C2Ray) Endpoint() C2Vec2 {
	return C2Vec2Add(r.P, C2Vec2MulScalar(r.T, r.D))
}

/// Ray-cast output data. The hit point is P + T * D of the ray; N is the
/// surface normal there.
type C2Raycast struct {
	T float64 ///< time of impact
	N C2Vec2  ///< normal of surface at impact (unit length)
}

/// Point of impact along ray.
func (out C2Raycast) Impact(ray C2Ray) C2Vec2 {
	return C2Vec2Add(ray.P, C2Vec2MulScalar(out.T, ray.D))
}

///////////////////////////////////////////////////////////////////////////////
/// Contact information for a pair of shapes. N points from A to B and is unit
/// length whenever Count > 0. Depths[i] is the penetration at ContactPoints[i];
/// a touching pair reports a depth of zero.
///////////////////////////////////////////////////////////////////////////////
type C2Manifold struct {
	Count         int
	Depths        [C2_maxManifoldPoints]float64
	ContactPoints [C2_maxManifoldPoints]C2Vec2
	N             C2Vec2
}

/// The same contact seen from the other shape.
func (m C2Manifold) Flip() C2Manifold {
	m.N = m.N.OperatorNegate()
	return m
}

/// Deepest penetration over the contact points, zero when there are none.
func (m C2Manifold) MaxDepth() float64 {
	d := 0.0
	for i := 0; i < m.Count && i < C2_maxManifoldPoints; i++ {
		d = math.Max(d, m.Depths[i])
	}
	return d
}
