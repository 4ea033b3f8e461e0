package c2_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/ByteArena/c2"
)

// Rounded to the printed precision so that -0.000 never shows up.
func clean(x float64) float64 {
	r := math.Round(x*1000) / 1000
	if r == 0 {
		return 0
	}
	return r
}

func traceManifold(i int, name string, m c2.C2Manifold) string {
	msg := fmt.Sprintf("%v(%s): %d %4.3f %4.3f", i, name, m.Count, clean(m.N.X), clean(m.N.Y))
	for k := 0; k < m.Count; k++ {
		p := m.ContactPoints[k]
		msg += fmt.Sprintf(" [%4.3f %4.3f %4.3f]", clean(m.Depths[k]), clean(p.X), clean(p.Y))
	}
	return msg + "\n"
}

func traceRaycast(i int, name string, out c2.C2Raycast, ok bool) string {
	return fmt.Sprintf("%v(%s): %v %4.3f %4.3f %4.3f\n", i, name, ok, clean(out.T), clean(out.N.X), clean(out.N.Y))
}

func traceVerts(i int, name string, verts []c2.C2Vec2) string {
	msg := fmt.Sprintf("%v(%s): %d", i, name, len(verts))
	for _, v := range verts {
		msg += fmt.Sprintf(" %4.3f %4.3f", clean(v.X), clean(v.Y))
	}
	return msg + "\n"
}

func TestReferenceTrace(t *testing.T) {
	square := box(0, 0, 1, 1)
	unitBox := c2.MakeC2Aabb(vec(0, 0), vec(1, 1))
	quarterTurn := c2.MakeC2TransformFromAngle(vec(5, 0), 0.5*math.Pi)

	output := ""

	output += traceManifold(0, "circle/circle", c2.C2Collide(
		c2.MakeC2Circle(vec(0, 0), 1), nil,
		c2.MakeC2Circle(vec(1.5, 0), 1), nil,
	))
	output += traceManifold(1, "circle/aabb", c2.C2Collide(
		c2.MakeC2Circle(vec(1.4, 0.5), 0.5), nil,
		unitBox, nil,
	))
	output += traceManifold(2, "aabb/aabb", c2.C2Collide(
		unitBox, nil,
		c2.MakeC2Aabb(vec(0.7, 0), vec(1.7, 1)), nil,
	))
	output += traceManifold(3, "aabb/poly", c2.C2Collide(
		unitBox, nil,
		box(0.7, 0, 1.7, 1), nil,
	))
	output += traceManifold(4, "poly/poly", c2.C2Collide(
		square, nil,
		box(0.7, 0, 1.7, 1), nil,
	))
	output += traceManifold(5, "capsule/poly", c2.C2Collide(
		c2.MakeC2Capsule(vec(0, 1.3), vec(1, 1.3), 0.5), nil,
		square, nil,
	))
	output += traceManifold(6, "circle/poly", c2.C2Collide(
		c2.MakeC2Circle(vec(1.3, 1.3), 0.5), nil,
		square, nil,
	))
	output += traceManifold(7, "poly/circle", c2.C2Collide(
		square, nil,
		c2.MakeC2Circle(vec(1.3, 1.3), 0.5), nil,
	))

	out, ok := c2.C2CastRay(c2.MakeC2Ray(vec(5, 0), vec(-1, 0), 10), c2.MakeC2Circle(vec(0, 0), 1), nil)
	output += traceRaycast(8, "ray/circle", out, ok)
	out, ok = c2.C2CastRay(c2.MakeC2Ray(vec(-1, 0.5), vec(1, 0), 5), unitBox, nil)
	output += traceRaycast(9, "ray/aabb", out, ok)
	out, ok = c2.C2CastRay(c2.MakeC2Ray(vec(1, 3), vec(0, -1), 10), c2.MakeC2Capsule(vec(0, 0), vec(2, 0), 0.5), nil)
	output += traceRaycast(10, "ray/capsule", out, ok)
	out, ok = c2.C2CastRay(c2.MakeC2Ray(vec(0, 0.5), vec(1, 0), 10), square, &quarterTurn)
	output += traceRaycast(11, "ray/poly", out, ok)
	out, ok = c2.C2RayToHalfspace(c2.MakeC2Ray(vec(0, 0), vec(0, 1), 4), c2.MakeC2HalfspaceFromPoint(vec(0, 1), vec(0, 2)))
	output += traceRaycast(12, "ray/halfspace", out, ok)
	out, ok = c2.C2CastRay(c2.MakeC2Ray(vec(5, 2), vec(-1, 0), 10), c2.MakeC2Circle(vec(0, 0), 1), nil)
	output += traceRaycast(13, "ray/miss", out, ok)

	gjk := c2.C2Gjk(c2.MakeC2Circle(vec(0, 0), 1), nil, c2.MakeC2Circle(vec(5, 0), 1), nil, true, nil)
	output += fmt.Sprintf("%v(%s): %4.3f %4.3f %4.3f %4.3f %4.3f\n", 14, "gjk", clean(gjk.Distance),
		clean(gjk.PointA.X), clean(gjk.PointA.Y), clean(gjk.PointB.X), clean(gjk.PointB.Y))

	toi := c2.C2Toi(c2.MakeC2Circle(vec(0, 0), 1), nil, vec(10, 0), c2.MakeC2Aabb(vec(5, -1), vec(6, 1)), nil, vec(0, 0), true)
	output += fmt.Sprintf("%v(%s): %v %4.3f %4.3f %4.3f\n", 15, "toi", toi.Hit, clean(toi.Toi), clean(toi.N.X), clean(toi.N.Y))

	hullVerts, hullCount := c2.C2Hull([]c2.C2Vec2{vec(0, 0), vec(1, 1), vec(2, 0), vec(2, 2), vec(0, 2)})
	hull := hullVerts[:hullCount]
	output += traceVerts(16, "hull", hull)

	centroid := c2.C2Centroid(hull)
	output += traceVerts(17, "centroid", []c2.C2Vec2{centroid})

	inflated := c2.C2Inflate(unitBox, 0.25).(c2.C2Aabb)
	output += traceVerts(18, "inflate", []c2.C2Vec2{inflated.Min, inflated.Max})

	expected := `0(circle/circle): 1 1.000 0.000 [0.500 0.500 0.000]
1(circle/aabb): 1 -1.000 0.000 [0.100 1.000 0.500]
2(aabb/aabb): 1 1.000 0.000 [0.300 1.000 0.500]
3(aabb/poly): 2 1.000 0.000 [0.300 0.850 1.000] [0.300 0.850 0.000]
4(poly/poly): 2 1.000 0.000 [0.300 0.850 1.000] [0.300 0.850 0.000]
5(capsule/poly): 2 0.000 -1.000 [0.200 1.000 0.900] [0.200 0.000 0.900]
6(circle/poly): 1 -0.707 -0.707 [0.076 1.000 1.000]
7(poly/circle): 1 0.707 0.707 [0.076 1.000 1.000]
8(ray/circle): true 4.000 1.000 0.000
9(ray/aabb): true 1.000 -1.000 0.000
10(ray/capsule): true 2.500 0.000 1.000
11(ray/poly): true 4.000 -1.000 0.000
12(ray/halfspace): true 2.000 0.000 -1.000
13(ray/miss): false 0.000 0.000 0.000
14(gjk): 3.000 1.000 0.000 4.000 0.000
15(toi): true 0.400 1.000 0.000
16(hull): 4 2.000 0.000 2.000 2.000 0.000 2.000 0.000 0.000
17(centroid): 1 1.000 1.000
18(inflate): 2 -0.250 -0.250 1.250 1.250
`

	if output != expected {
		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(expected),
			B:        difflib.SplitLines(output),
			FromFile: "Expected",
			ToFile:   "Current",
			Context:  0,
		}
		text, _ := difflib.GetUnifiedDiffString(diff)
		t.Fatalf("Reference trace changed: \n%s", text)
	}
}
