package c2

import "math"

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Polytope clipping
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

// A convex vertex loop in world space, rounded by radius. Polygons, boxes and
// the core segment of a capsule (two vertices, two opposite normals) all
// collide through this one representation.
type c2Polytope struct {
	verts  [C2_polyMaxVerts]C2Vec2
	norms  [C2_polyMaxVerts]C2Vec2
	count  int
	radius float64
}

func makeC2PolytopeFromPoly(poly *C2Poly, xf C2Transform) c2Polytope {
	var p c2Polytope
	n := poly.count()
	for i := 0; i < n; i++ {
		p.verts[i] = C2TransformVec2Mul(xf, poly.Verts[i])
		p.norms[i] = C2SinCosVec2Mul(xf.R, poly.Norms[i])
	}
	p.count = n
	return p
}

func makeC2PolytopeFromSegment(a, b C2Vec2, radius float64) c2Polytope {
	var p c2Polytope
	n := C2Vec2SafeNorm(C2Vec2CrossVectorScalar(C2Vec2Sub(b, a), 1.0))
	p.verts[0] = a
	p.verts[1] = b
	p.norms[0] = n
	p.norms[1] = n.OperatorNegate()
	p.count = 2
	p.radius = radius
	return p
}

// Find the max separation between poly1 and poly2 using edge normals from poly1.
func c2FindMaxSeparation(poly1 *c2Polytope, poly2 *c2Polytope) (int, float64) {
	bestIndex := 0
	maxSeparation := -C2_maxFloat
	for i := 0; i < poly1.count; i++ {
		n := poly1.norms[i]
		v1 := poly1.verts[i]

		// Find deepest point for normal i.
		si := C2_maxFloat
		for j := 0; j < poly2.count; j++ {
			sij := C2Vec2Dot(n, C2Vec2Sub(poly2.verts[j], v1))
			if sij < si {
				si = sij
			}
		}

		if si > maxSeparation {
			maxSeparation = si
			bestIndex = i
		}
	}

	return bestIndex, maxSeparation
}

// The edge of poly2 most anti-parallel to the reference normal.
func c2FindIncidentEdge(c *[2]C2Vec2, poly1 *c2Polytope, edge1 int, poly2 *c2Polytope) {
	normal1 := poly1.norms[edge1]

	// Find the incident edge on poly2.
	index := 0
	minDot := C2_maxFloat
	for i := 0; i < poly2.count; i++ {
		dot := C2Vec2Dot(normal1, poly2.norms[i])
		if dot < minDot {
			minDot = dot
			index = i
		}
	}

	// Build the clip vertices for the incident edge.
	i2 := 0
	if index+1 < poly2.count {
		i2 = index + 1
	}

	c[0] = poly2.verts[index]
	c[1] = poly2.verts[i2]
}

/// Sutherland-Hodgman clipping. Keeps the part of segment vIn behind the plane
/// dot(normal, x) = offset and returns the number of points written to vOut.
func C2ClipSegmentToLine(vOut *[2]C2Vec2, vIn [2]C2Vec2, normal C2Vec2, offset float64) int {
	// Start with no output points
	numOut := 0

	// Calculate the distance of end points to the line
	distance0 := C2Vec2Dot(normal, vIn[0]) - offset
	distance1 := C2Vec2Dot(normal, vIn[1]) - offset

	// If the points are behind the plane
	if distance0 <= 0.0 {
		vOut[numOut] = vIn[0]
		numOut++
	}

	if distance1 <= 0.0 {
		vOut[numOut] = vIn[1]
		numOut++
	}

	// If the points are on different sides of the plane
	if distance0*distance1 < 0.0 {
		// Find intersection point of edge and plane
		vOut[numOut] = C2IntersectHalfspace(vIn[0], vIn[1], distance0, distance1)
		numOut++
	}

	return numOut
}

// Find edge normal of max separation on A - return if separating axis is found
// Find edge normal of max separation on B - return if separation axis is found
// Choose reference edge as min(minA, minB)
// Find incident edge
// Clip

// The normal points from A to B
func c2CollidePolytopes(polyA *c2Polytope, polyB *c2Polytope) C2Manifold {
	var manifold C2Manifold
	if polyA.count < 2 || polyB.count < 2 {
		return manifold
	}

	totalRadius := polyA.radius + polyB.radius
	limit := totalRadius + C2_touchTolerance

	edgeA, separationA := c2FindMaxSeparation(polyA, polyB)
	if separationA > limit {
		return manifold
	}

	edgeB, separationB := c2FindMaxSeparation(polyB, polyA)
	if separationB > limit {
		return manifold
	}

	poly1 := polyA // reference polygon
	poly2 := polyB // incident polygon
	edge1 := edgeA // reference edge
	flip := false

	if separationB > separationA+C2_satTieTolerance {
		poly1 = polyB
		poly2 = polyA
		edge1 = edgeB
		flip = true
	}

	var incidentEdge [2]C2Vec2
	c2FindIncidentEdge(&incidentEdge, poly1, edge1, poly2)

	iv2 := 0
	if edge1+1 < poly1.count {
		iv2 = edge1 + 1
	}

	v11 := poly1.verts[edge1]
	v12 := poly1.verts[iv2]

	tangent := C2Vec2SafeNorm(C2Vec2Sub(v12, v11))
	normal := poly1.norms[edge1]

	// Face offset.
	frontOffset := C2Vec2Dot(normal, v11)

	// Side offsets, extended by polytope skin thickness.
	sideOffset1 := -C2Vec2Dot(tangent, v11) + totalRadius
	sideOffset2 := C2Vec2Dot(tangent, v12) + totalRadius

	// Clip incident edge against extruded edge1 side edges.
	var clipPoints1, clipPoints2 [2]C2Vec2

	// Clip to box side 1
	if C2ClipSegmentToLine(&clipPoints1, incidentEdge, tangent.OperatorNegate(), sideOffset1) < 2 {
		return manifold
	}

	// Clip to negative box side 1
	if C2ClipSegmentToLine(&clipPoints2, clipPoints1, tangent, sideOffset2) < 2 {
		return manifold
	}

	// Now clipPoints2 contains the clipped points. Report each one halfway
	// between the two surfaces.
	pointCount := 0
	for i := 0; i < C2_maxManifoldPoints; i++ {
		clipPoint := clipPoints2[i]
		separation := C2Vec2Dot(normal, clipPoint) - frontOffset

		if separation <= limit {
			cRef := C2Vec2Add(clipPoint, C2Vec2MulScalar(poly1.radius-separation, normal))
			cInc := C2Vec2Sub(clipPoint, C2Vec2MulScalar(poly2.radius, normal))
			manifold.ContactPoints[pointCount] = C2Vec2MulScalar(0.5, C2Vec2Add(cRef, cInc))
			manifold.Depths[pointCount] = math.Max(0.0, totalRadius-separation)
			pointCount++
		}
	}

	manifold.Count = pointCount
	if pointCount == 0 {
		return manifold
	}

	// Ensure normal points from A to B.
	if flip {
		normal = normal.OperatorNegate()
	}
	manifold.N = normal

	return manifold
}

// One contact point.
func makeC2Manifold1(n C2Vec2, p C2Vec2, depth float64) C2Manifold {
	var m C2Manifold
	m.Count = 1
	m.N = n
	m.ContactPoints[0] = p
	m.Depths[0] = math.Max(0.0, depth)
	return m
}
