package c2

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// C2Distance.h
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

/// A distance proxy is used by the GJK algorithm.
/// It encapsulates any shape as a vertex cloud plus a rounding radius.
type C2DistanceProxy struct {
	M_vertices [C2_polyMaxVerts]C2Vec2
	M_count    int
	M_radius   float64
}

/// Used to warm start C2Gjk. The zero value is an empty cache.
/// A cache belongs to one pair of shapes and one caller at a time.
type C2GjkCache struct {
	Metric float64 ///< length or area
	Count  int
	IA     [3]int ///< vertices on shape A
	IB     [3]int ///< vertices on shape B
}

/// Output for C2Gjk.
type C2GjkOutput struct {
	Distance   float64
	PointA     C2Vec2 ///< closest point on shape A
	PointB     C2Vec2 ///< closest point on shape B
	Iterations int    ///< number of GJK iterations used
}

func MakeC2DistanceProxy(shape C2Shape) C2DistanceProxy {
	var p C2DistanceProxy
	p.Set(shape)
	return p
}

func (p C2DistanceProxy) GetVertexCount() int {
	return p.M_count
}

func (p C2DistanceProxy) GetVertex(index int) C2Vec2 {
	return p.M_vertices[index]
}

func (p C2DistanceProxy) GetSupport(d C2Vec2) int {
	bestIndex := 0
	bestValue := C2Vec2Dot(p.M_vertices[0], d)
	for i := 1; i < p.M_count; i++ {
		value := C2Vec2Dot(p.M_vertices[i], d)
		if value > bestValue {
			bestIndex = i
			bestValue = value
		}
	}

	return bestIndex
}

func (p C2DistanceProxy) GetSupportVertex(d C2Vec2) C2Vec2 {
	return p.M_vertices[p.GetSupport(d)]
}

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// C2Distance.cpp
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

// GJK using Voronoi regions (Christer Ericson) and Barycentric coordinates.

func (p *C2DistanceProxy) Set(shape C2Shape) {
	*p = C2DistanceProxy{}

	switch s := shape.(type) {
	case C2Circle:
		if !s.IsSolid() {
			return
		}
		p.M_vertices[0] = s.P
		p.M_count = 1
		p.M_radius = s.R

	case C2Aabb:
		corners := s.Corners()
		p.M_count = copy(p.M_vertices[:], corners[:])

	case C2Capsule:
		if !s.IsSolid() {
			return
		}
		p.M_vertices[0] = s.A
		p.M_vertices[1] = s.B
		p.M_count = 2
		p.M_radius = s.R

	case *C2Poly:
		if s != nil {
			p.M_count = copy(p.M_vertices[:], s.Vertices())
		}
	}
}

type C2SimplexVertex struct {
	WA     C2Vec2  // support point in proxyA
	WB     C2Vec2  // support point in proxyB
	W      C2Vec2  // wB - wA
	A      float64 // barycentric coordinate for closest point
	IndexA int     // wA index
	IndexB int     // wB index
}

type C2Simplex struct {
	M_vs    [3]C2SimplexVertex
	M_count int
}

func (simplex *C2Simplex) setVertex(v *C2SimplexVertex, proxyA *C2DistanceProxy, transformA C2Transform, proxyB *C2DistanceProxy, transformB C2Transform) {
	v.WA = C2TransformVec2Mul(transformA, proxyA.GetVertex(v.IndexA))
	v.WB = C2TransformVec2Mul(transformB, proxyB.GetVertex(v.IndexB))
	v.W = C2Vec2Sub(v.WB, v.WA)
}

func (simplex *C2Simplex) ReadCache(cache *C2GjkCache, proxyA *C2DistanceProxy, transformA C2Transform, proxyB *C2DistanceProxy, transformB C2Transform) {
	simplex.M_count = 0

	// Copy data from cache. Indices that do not fit the proxies mean the cache
	// was written for other shapes and is ignored.
	if cache != nil && cache.Count > 0 && cache.Count <= 3 {
		simplex.M_count = cache.Count
		for i := 0; i < simplex.M_count; i++ {
			ia, ib := cache.IA[i], cache.IB[i]
			if ia < 0 || ia >= proxyA.M_count || ib < 0 || ib >= proxyB.M_count {
				simplex.M_count = 0
				break
			}
			v := &simplex.M_vs[i]
			v.IndexA = ia
			v.IndexB = ib
			simplex.setVertex(v, proxyA, transformA, proxyB, transformB)
			v.A = 0.0
		}
	}

	// Compute the new simplex metric, if it is substantially different than
	// old metric then flush the simplex.
	if simplex.M_count > 1 {
		metric1 := cache.Metric
		metric2 := simplex.GetMetric()
		if metric2 < 0.5*metric1 || 2.0*metric1 < metric2 || metric2 < C2_epsilon {
			// Reset the simplex.
			simplex.M_count = 0
		}
	}

	// If the cache is empty or invalid ...
	if simplex.M_count == 0 {
		v := &simplex.M_vs[0]
		v.IndexA = 0
		v.IndexB = 0
		simplex.setVertex(v, proxyA, transformA, proxyB, transformB)
		v.A = 1.0
		simplex.M_count = 1
	}
}

func (simplex C2Simplex) WriteCache(cache *C2GjkCache) {
	if cache == nil {
		return
	}
	cache.Metric = simplex.GetMetric()
	cache.Count = simplex.M_count
	for i := 0; i < simplex.M_count; i++ {
		cache.IA[i] = simplex.M_vs[i].IndexA
		cache.IB[i] = simplex.M_vs[i].IndexB
	}
}

func (simplex C2Simplex) GetSearchDirection() C2Vec2 {
	switch simplex.M_count {
	case 1:
		return simplex.M_vs[0].W.OperatorNegate()

	case 2:
		e12 := C2Vec2Sub(simplex.M_vs[1].W, simplex.M_vs[0].W)
		sgn := C2Vec2Cross(e12, simplex.M_vs[0].W.OperatorNegate())
		if sgn > 0.0 {
			// Origin is left of e12.
			return C2Vec2CrossScalarVector(1.0, e12)
		}
		// Origin is right of e12.
		return C2Vec2CrossVectorScalar(e12, 1.0)
	}

	return C2Vec2_zero
}

func (simplex C2Simplex) GetClosestPoint() C2Vec2 {
	switch simplex.M_count {
	case 1:
		return simplex.M_vs[0].W
	case 2:
		return simplex.weighted(func(v *C2SimplexVertex) C2Vec2 { return v.W })
	}

	// The origin is enclosed.
	return C2Vec2_zero
}

func (simplex C2Simplex) GetWitnessPoints() (pA C2Vec2, pB C2Vec2) {
	if simplex.M_count == 1 {
		return simplex.M_vs[0].WA, simplex.M_vs[0].WB
	}

	pA = simplex.weighted(func(v *C2SimplexVertex) C2Vec2 { return v.WA })
	if simplex.M_count == 3 {
		// Overlap: both witnesses are the same point.
		return pA, pA
	}
	pB = simplex.weighted(func(v *C2SimplexVertex) C2Vec2 { return v.WB })
	return pA, pB
}

// Barycentric combination of a per-vertex point over the simplex.
func (simplex *C2Simplex) weighted(point func(v *C2SimplexVertex) C2Vec2) C2Vec2 {
	var sum C2Vec2
	for i := 0; i < simplex.M_count; i++ {
		v := &simplex.M_vs[i]
		sum = C2Vec2Add(sum, C2Vec2MulScalar(v.A, point(v)))
	}
	return sum
}

/// Size of the simplex used to validate a cache: the edge length for two
/// vertices, twice the signed area for three.
func (simplex C2Simplex) GetMetric() float64 {
	vs := &simplex.M_vs
	switch simplex.M_count {
	case 2:
		return C2Vec2Distance(vs[0].W, vs[1].W)
	case 3:
		return C2Vec2Cross(C2Vec2Sub(vs[1].W, vs[0].W), C2Vec2Sub(vs[2].W, vs[0].W))
	}
	return 0.0
}

////////////////////////////////////////////////////

// Unnormalized barycentric weights of the origin's projection on segment
// a-b: u weighs a and v weighs b. A weight <= 0 puts the projection beyond
// the other end.
func c2SegmentWeights(a, b C2Vec2) (u, v float64) {
	e := C2Vec2Sub(b, a)
	return C2Vec2Dot(b, e), -C2Vec2Dot(a, e)
}

func (simplex *C2Simplex) reduceToVertex(i int) {
	simplex.M_vs[0] = simplex.M_vs[i]
	simplex.M_vs[0].A = 1.0
	simplex.M_count = 1
}

func (simplex *C2Simplex) reduceToEdge(i, j int, u, v float64) {
	vi, vj := simplex.M_vs[i], simplex.M_vs[j]
	inv := 1.0 / (u + v)
	vi.A = u * inv
	vj.A = v * inv
	simplex.M_vs[0], simplex.M_vs[1] = vi, vj
	simplex.M_count = 2
}

// Reduce a segment simplex to the feature closest to the origin.
func (simplex *C2Simplex) Solve2() {
	u, v := c2SegmentWeights(simplex.M_vs[0].W, simplex.M_vs[1].W)
	switch {
	case v <= 0.0:
		simplex.reduceToVertex(0)
	case u <= 0.0:
		simplex.reduceToVertex(1)
	default:
		simplex.reduceToEdge(0, 1, u, v)
	}
}

// Reduce a triangle simplex to the vertex, edge or interior region holding
// the origin. Vertex 3 is the newest support point.
func (simplex *C2Simplex) Solve3() {
	w1, w2, w3 := simplex.M_vs[0].W, simplex.M_vs[1].W, simplex.M_vs[2].W

	u12, v12 := c2SegmentWeights(w1, w2)
	u13, v13 := c2SegmentWeights(w1, w3)
	u23, v23 := c2SegmentWeights(w2, w3)

	// Areas of the sub-triangles opposite each vertex, signed by the
	// winding of the simplex.
	area := C2Vec2Cross(C2Vec2Sub(w2, w1), C2Vec2Sub(w3, w1))
	t1 := area * C2Vec2Cross(w2, w3)
	t2 := area * C2Vec2Cross(w3, w1)
	t3 := area * C2Vec2Cross(w1, w2)

	switch {
	case v12 <= 0.0 && v13 <= 0.0:
		simplex.reduceToVertex(0)
	case u12 > 0.0 && v12 > 0.0 && t3 <= 0.0:
		simplex.reduceToEdge(0, 1, u12, v12)
	case u13 > 0.0 && v13 > 0.0 && t2 <= 0.0:
		simplex.reduceToEdge(0, 2, u13, v13)
	case u12 <= 0.0 && v23 <= 0.0:
		simplex.reduceToVertex(1)
	case u13 <= 0.0 && u23 <= 0.0:
		simplex.reduceToVertex(2)
	case u23 > 0.0 && v23 > 0.0 && t1 <= 0.0:
		simplex.reduceToEdge(1, 2, u23, v23)
	default:
		inv := 1.0 / (t1 + t2 + t3)
		simplex.M_vs[0].A = t1 * inv
		simplex.M_vs[1].A = t2 * inv
		simplex.M_vs[2].A = t3 * inv
		simplex.M_count = 3
	}
}

/// Compute the closest points between two shapes. Transforms may be nil for
/// identity and apply to every shape type. With useRadius the rounding of
/// circles and capsules is taken into account: the distance shrinks by both
/// radii and the witness points move to the surfaces; overlapping shapes
/// report a distance of 0. Without it the core segment and centre are used.
///
/// cache may be nil. When given, it seeds the search and is rewritten with
/// the final simplex; a cache that does not match the shapes is discarded.
func C2Gjk(a C2Shape, ax *C2Transform, b C2Shape, bx *C2Transform, useRadius bool, cache *C2GjkCache) C2GjkOutput {
	proxyA := MakeC2DistanceProxy(a)
	proxyB := MakeC2DistanceProxy(b)
	return C2Distance(&proxyA, c2TransformOrIdentity(ax), &proxyB, c2TransformOrIdentity(bx), useRadius, cache)
}

func C2Distance(proxyA *C2DistanceProxy, transformA C2Transform, proxyB *C2DistanceProxy, transformB C2Transform, useRadius bool, cache *C2GjkCache) C2GjkOutput {
	var output C2GjkOutput

	if proxyA.M_count == 0 || proxyB.M_count == 0 {
		// Nothing to measure against.
		output.Distance = C2_maxFloat
		if cache != nil {
			*cache = C2GjkCache{}
		}
		return output
	}

	// Initialize the simplex.
	var simplex C2Simplex
	simplex.ReadCache(cache, proxyA, transformA, proxyB, transformB)

	// Get simplex vertices as an array.
	vertices := &simplex.M_vs

	// These store the vertices of the last simplex so that we
	// can check for duplicates and prevent cycling.
	var saveA, saveB [3]int
	saveCount := 0

	distanceSqr0 := C2_maxFloat

	// Main iteration loop.
	iter := 0
	for iter < C2_gjkMaxIters {
		// Copy simplex so we can identify duplicates.
		saveCount = simplex.M_count
		for i := 0; i < saveCount; i++ {
			saveA[i] = vertices[i].IndexA
			saveB[i] = vertices[i].IndexB
		}

		switch simplex.M_count {
		case 2:
			simplex.Solve2()

		case 3:
			simplex.Solve3()
		}

		// If we have 3 points, then the origin is in the corresponding triangle.
		if simplex.M_count == 3 {
			break
		}

		// The new vertex must bring the simplex closer to the origin,
		// otherwise we have converged.
		distanceSqr1 := simplex.GetClosestPoint().LengthSquared()
		if iter > 0 && distanceSqr1 >= distanceSqr0*(1.0-C2_gjkRelTolerance) {
			break
		}
		distanceSqr0 = distanceSqr1

		// Get search direction.
		d := simplex.GetSearchDirection()

		// Ensure the search direction is numerically fit.
		if d.LengthSquared() < C2_epsilon*C2_epsilon {
			// The origin is probably contained by a line segment
			// or triangle. Thus the shapes are overlapped.

			// We can't return zero here even though there may be overlap.
			// In case the simplex is a point, segment, or triangle it is difficult
			// to determine if the origin is contained in the CSO or very close to it.
			break
		}

		// Compute a tentative new simplex vertex using support points.
		vertex := &vertices[simplex.M_count]
		vertex.IndexA = proxyA.GetSupport(C2SinCosVec2MulT(transformA.R, d.OperatorNegate()))
		vertex.IndexB = proxyB.GetSupport(C2SinCosVec2MulT(transformB.R, d))
		simplex.setVertex(vertex, proxyA, transformA, proxyB, transformB)

		// Iteration count is equated to the number of support point calls.
		iter++

		// Check for duplicate support points. This is the main termination criteria.
		duplicate := false
		for i := 0; i < saveCount; i++ {
			if vertex.IndexA == saveA[i] && vertex.IndexB == saveB[i] {
				duplicate = true
				break
			}
		}

		// If we found a duplicate support point we must exit to avoid cycling.
		if duplicate {
			break
		}

		// New vertex is ok and needed.
		simplex.M_count++
	}

	// Prepare output.
	output.PointA, output.PointB = simplex.GetWitnessPoints()
	output.Distance = C2Vec2Distance(output.PointA, output.PointB)
	output.Iterations = iter

	// Cache the simplex.
	simplex.WriteCache(cache)

	// Apply radii if requested.
	if useRadius {
		rA := proxyA.M_radius
		rB := proxyB.M_radius

		if output.Distance > rA+rB && output.Distance > C2_epsilon {
			// Shapes are still no overlapped.
			// Move the witness points to the outer surface.
			output.Distance -= rA + rB
			normal := C2Vec2Norm(C2Vec2Sub(output.PointB, output.PointA))
			output.PointA = C2Vec2Add(output.PointA, C2Vec2MulScalar(rA, normal))
			output.PointB = C2Vec2Sub(output.PointB, C2Vec2MulScalar(rB, normal))
		} else if output.Distance > C2_epsilon {
			// The rounded surfaces overlap but the cores are apart, so the
			// core axis still says where each surface is.
			normal := C2Vec2Norm(C2Vec2Sub(output.PointB, output.PointA))
			output.PointA = C2Vec2Add(output.PointA, C2Vec2MulScalar(rA, normal))
			output.PointB = C2Vec2Sub(output.PointB, C2Vec2MulScalar(rB, normal))
			output.Distance = 0.0
		} else {
			// Shapes are overlapped when radii are considered.
			// Move the witness points to the middle.
			p := C2Vec2MulScalar(0.5, C2Vec2Add(output.PointA, output.PointB))
			output.PointA = p
			output.PointB = p
			output.Distance = 0.0
		}
	}

	return output
}
