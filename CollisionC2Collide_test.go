package c2_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByteArena/c2"
)

func TestCircleToCircleManifold(t *testing.T) {
	a := c2.MakeC2Circle(vec(0, 0), 1)

	m := c2.C2CircleToCircleManifold(a, c2.MakeC2Circle(vec(1.5, 0), 1))
	require.Equal(t, 1, m.Count)
	assertVec(t, vec(1, 0), m.N)
	assert.InDelta(t, 0.5, m.Depths[0], tolerance)
	assertVec(t, vec(0.5, 0), m.ContactPoints[0])

	m = c2.C2CircleToCircleManifold(a, a)
	require.Equal(t, 1, m.Count)
	assertVec(t, vec(0, 1), m.N)
	assert.InDelta(t, 2.0, m.Depths[0], tolerance)
	assertVec(t, vec(0, -1), m.ContactPoints[0])

	touching := c2.C2CircleToCircleManifold(a, c2.MakeC2Circle(vec(2, 0), 1))
	require.Equal(t, 1, touching.Count)
	assert.Equal(t, 0.0, touching.Depths[0])
	assert.True(t, c2.C2CircleToCircle(a, c2.MakeC2Circle(vec(2, 0), 1)))

	assert.Equal(t, 0, c2.C2CircleToCircleManifold(a, c2.MakeC2Circle(vec(3, 0), 1)).Count)
}

func TestCircleToAabbManifold(t *testing.T) {
	bb := c2.MakeC2Aabb(vec(0, 0), vec(1, 1))

	m := c2.C2CircleToAabbManifold(c2.MakeC2Circle(vec(1.4, 0.5), 0.5), bb)
	require.Equal(t, 1, m.Count)
	assertVec(t, vec(-1, 0), m.N)
	assert.InDelta(t, 0.1, m.Depths[0], tolerance)
	assertVec(t, vec(1, 0.5), m.ContactPoints[0])

	// Centre inside the box: leave through the nearest face.
	deep := c2.C2CircleToAabbManifold(c2.MakeC2Circle(vec(0.9, 0.5), 0.2), bb)
	require.Equal(t, 1, deep.Count)
	assertVec(t, vec(-1, 0), deep.N)
	assert.InDelta(t, 0.3, deep.Depths[0], tolerance)
	assertVec(t, vec(1, 0.5), deep.ContactPoints[0])

	assert.Equal(t, 0, c2.C2CircleToAabbManifold(c2.MakeC2Circle(vec(2, 0.5), 0.5), bb).Count)
}

func TestCircleToCapsuleManifold(t *testing.T) {
	capsule := c2.MakeC2Capsule(vec(-1, 0), vec(1, 0), 1)

	m := c2.C2CircleToCapsuleManifold(c2.MakeC2Circle(vec(0, 1.2), 0.5), capsule)
	require.Equal(t, 1, m.Count)
	assertVec(t, vec(0, -1), m.N)
	assert.InDelta(t, 0.3, m.Depths[0], tolerance)
	assertVec(t, vec(0, 1), m.ContactPoints[0])

	// Centre on the core segment.
	onCore := c2.C2CircleToCapsuleManifold(c2.MakeC2Circle(vec(0, 0), 0.5), capsule)
	require.Equal(t, 1, onCore.Count)
	assertVec(t, vec(0, 1), onCore.N)
	assert.InDelta(t, 1.5, onCore.Depths[0], tolerance)
	assertVec(t, vec(0, -1), onCore.ContactPoints[0])

	assert.Equal(t, 0, c2.C2CircleToCapsuleManifold(c2.MakeC2Circle(vec(0, 2), 0.5), capsule).Count)
}

func TestCircleToPolyManifold(t *testing.T) {
	square := box(0, 0, 1, 1)

	face := c2.C2CircleToPolyManifold(c2.MakeC2Circle(vec(1.4, 0.5), 0.5), square, nil)
	require.Equal(t, 1, face.Count)
	assertVec(t, vec(-1, 0), face.N)
	assert.InDelta(t, 0.1, face.Depths[0], tolerance)
	assertVec(t, vec(1, 0.5), face.ContactPoints[0])

	corner := c2.C2CircleToPolyManifold(c2.MakeC2Circle(vec(1.3, 1.3), 0.5), square, nil)
	require.Equal(t, 1, corner.Count)
	assertVec(t, vec(-math.Sqrt2/2, -math.Sqrt2/2), corner.N)
	assert.InDelta(t, 0.5-math.Sqrt(0.18), corner.Depths[0], tolerance)
	assertVec(t, vec(1, 1), corner.ContactPoints[0])

	// Same answer as the equivalent box.
	inside := c2.C2CircleToPolyManifold(c2.MakeC2Circle(vec(0.9, 0.5), 0.2), square, nil)
	require.Equal(t, 1, inside.Count)
	assertVec(t, vec(-1, 0), inside.N)
	assert.InDelta(t, 0.3, inside.Depths[0], tolerance)
	assertVec(t, vec(1, 0.5), inside.ContactPoints[0])

	xf := c2.MakeC2TransformFromAngle(vec(10, 0), 0)
	moved := c2.C2CircleToPolyManifold(c2.MakeC2Circle(vec(11.4, 0.5), 0.5), square, &xf)
	require.Equal(t, 1, moved.Count)
	assertVec(t, vec(-1, 0), moved.N)
	assertVec(t, vec(11, 0.5), moved.ContactPoints[0])

	assert.Equal(t, 0, c2.C2CircleToPolyManifold(c2.MakeC2Circle(vec(1.4, 0.5), 0.5), square, &xf).Count)
}

func TestAabbToAabbManifold(t *testing.T) {
	a := c2.MakeC2Aabb(vec(0, 0), vec(1, 1))

	m := c2.C2AabbToAabbManifold(a, c2.MakeC2Aabb(vec(0.7, 0), vec(1.7, 1)))
	require.Equal(t, 1, m.Count)
	assertVec(t, vec(1, 0), m.N)
	assert.InDelta(t, 0.3, m.Depths[0], tolerance)
	assertVec(t, vec(1, 0.5), m.ContactPoints[0])

	below := c2.C2AabbToAabbManifold(a, c2.MakeC2Aabb(vec(0, -0.9), vec(1, 0.2)))
	require.Equal(t, 1, below.Count)
	assertVec(t, vec(0, -1), below.N)
	assert.InDelta(t, 0.2, below.Depths[0], tolerance)

	touching := c2.MakeC2Aabb(vec(1, 0), vec(2, 1))
	assert.True(t, c2.C2AabbToAabb(a, touching))
	tm := c2.C2AabbToAabbManifold(a, touching)
	require.Equal(t, 1, tm.Count)
	assert.Equal(t, 0.0, tm.Depths[0])

	apart := c2.MakeC2Aabb(vec(1.1, 0), vec(2, 1))
	assert.False(t, c2.C2AabbToAabb(a, apart))
	assert.Equal(t, 0, c2.C2AabbToAabbManifold(a, apart).Count)
}

func TestAabbToCapsuleManifold(t *testing.T) {
	bb := c2.MakeC2Aabb(vec(0, 0), vec(1, 1))
	capsule := c2.MakeC2Capsule(vec(2, 0.5), vec(3, 0.5), 1.2)

	m := c2.C2AabbToCapsuleManifold(bb, capsule)
	require.Equal(t, 1, m.Count)
	assertVec(t, vec(1, 0), m.N)
	assert.InDelta(t, 0.2, m.Depths[0], tolerance)
	assertVec(t, vec(0.9, 0.5), m.ContactPoints[0])
}

func TestCapsuleToCapsuleManifold(t *testing.T) {
	a := c2.MakeC2Capsule(vec(0, 0), vec(2, 0), 0.5)

	m := c2.C2CapsuleToCapsuleManifold(a, c2.MakeC2Capsule(vec(1, 0.8), vec(3, 0.8), 0.5))
	require.Equal(t, 1, m.Count)
	assertVec(t, vec(0, 1), m.N)
	assert.InDelta(t, 0.2, m.Depths[0], tolerance)
	assert.InDelta(t, 0.3, m.ContactPoints[0].Y, tolerance)

	// Crossing cores.
	cross := c2.C2CapsuleToCapsuleManifold(
		c2.MakeC2Capsule(vec(-1, 0), vec(1, 0), 0.1),
		c2.MakeC2Capsule(vec(0, -1), vec(0, 1), 0.1),
	)
	require.Greater(t, cross.Count, 0)
	assert.InDelta(t, 1.0, cross.N.Length(), tolerance)
	assert.Greater(t, cross.MaxDepth(), 0.0)

	assert.Equal(t, 0, c2.C2CapsuleToCapsuleManifold(a, c2.MakeC2Capsule(vec(0, 1.1), vec(2, 1.1), 0.5)).Count)
}

func TestCapsuleToPolyManifold(t *testing.T) {
	square := box(0, 0, 1, 1)

	// Lying along the top face: two contact points.
	flat := c2.C2CapsuleToPolyManifold(c2.MakeC2Capsule(vec(0, 1.3), vec(1, 1.3), 0.5), square, nil)
	require.Equal(t, 2, flat.Count)
	assertVec(t, vec(0, -1), flat.N)
	for i := 0; i < flat.Count; i++ {
		assert.InDelta(t, 0.2, flat.Depths[i], tolerance)
		assert.InDelta(t, 0.9, flat.ContactPoints[i].Y, tolerance)
	}

	// Hitting the corner: one point on the polygon.
	corner := c2.C2CapsuleToPolyManifold(c2.MakeC2Capsule(vec(1.3, 1.3), vec(2, 2), 0.5), square, nil)
	require.Equal(t, 1, corner.Count)
	assertVec(t, vec(-math.Sqrt2/2, -math.Sqrt2/2), corner.N)
	assert.InDelta(t, 0.5-math.Sqrt(0.18), corner.Depths[0], tolerance)
	assertVec(t, vec(1, 1), corner.ContactPoints[0])

	// A capsule with a point core behaves as a circle.
	dot := c2.C2CapsuleToPolyManifold(c2.MakeC2Capsule(vec(1.4, 0.5), vec(1.4, 0.5), 0.5), square, nil)
	ref := c2.C2CircleToPolyManifold(c2.MakeC2Circle(vec(1.4, 0.5), 0.5), square, nil)
	assert.Equal(t, ref, dot)

	assert.Equal(t, 0, c2.C2CapsuleToPolyManifold(c2.MakeC2Capsule(vec(0, 2), vec(1, 2), 0.5), square, nil).Count)
}

func TestPolyManifoldsClipToTwoPoints(t *testing.T) {
	a := c2.MakeC2Aabb(vec(0, 0), vec(1, 1))
	b := box(0.7, 0, 1.7, 1)

	check := func(m c2.C2Manifold) {
		t.Helper()
		require.Equal(t, 2, m.Count)
		assertVec(t, vec(1, 0), m.N)
		for i := 0; i < m.Count; i++ {
			assert.InDelta(t, 0.3, m.Depths[i], tolerance)
			assert.InDelta(t, 0.85, m.ContactPoints[i].X, tolerance)
		}
		assert.InDelta(t, 1.0, math.Abs(m.ContactPoints[0].Y-m.ContactPoints[1].Y), tolerance)
	}

	check(c2.C2AabbToPolyManifold(a, b, nil))
	check(c2.C2PolyToPolyManifold(box(0, 0, 1, 1), nil, b, nil))

	// Moving B with a transform gives the same result.
	xf := c2.MakeC2TransformFromAngle(vec(0.7, 0), 0)
	check(c2.C2PolyToPolyManifold(box(0, 0, 1, 1), nil, box(0, 0, 1, 1), &xf))
}

func TestPolyToPolyRotated(t *testing.T) {
	// A diamond resting its lower corner inside the top face of a square.
	xf := c2.MakeC2TransformFromAngle(vec(0.5, 1.6), 0.25*math.Pi)
	m := c2.C2PolyToPolyManifold(box(0, 0, 1, 1), nil, box(-0.5, -0.5, 0.5, 0.5), &xf)
	require.Equal(t, 1, m.Count)
	assertVec(t, vec(0, 1), m.N)
	assert.InDelta(t, math.Sqrt2/2-0.6, m.Depths[0], tolerance)
}

func TestDegeneratePolyNeverCollides(t *testing.T) {
	line := &c2.C2Poly{Count: 2}
	line.Verts[0] = vec(-5, 0)
	line.Verts[1] = vec(5, 0)

	others := []c2.C2Shape{
		c2.MakeC2Circle(vec(0, 0), 1),
		c2.MakeC2Aabb(vec(-1, -1), vec(1, 1)),
		c2.MakeC2Capsule(vec(-1, 0), vec(1, 0), 0.5),
		box(-1, -1, 1, 1),
	}
	for _, other := range others {
		assert.False(t, c2.C2Collided(line, nil, other, nil), other.Type().String())
		assert.Equal(t, 0, c2.C2Collide(line, nil, other, nil).Count, other.Type().String())
		assert.Equal(t, 0, c2.C2Collide(other, nil, line, nil).Count, other.Type().String())
	}
}

func TestNegativeRadiusNeverCollides(t *testing.T) {
	hollow := []c2.C2Shape{
		c2.MakeC2Circle(vec(0, 0), -1),
		c2.MakeC2Capsule(vec(-1, 0), vec(1, 0), -2),
	}
	others := []c2.C2Shape{
		c2.MakeC2Circle(vec(1.5, 0), -1),
		c2.MakeC2Circle(vec(1.5, 0), 1),
		c2.MakeC2Aabb(vec(-1, -1), vec(1, 1)),
		c2.MakeC2Capsule(vec(0, 3), vec(2, 3), -2),
		c2.MakeC2Capsule(vec(-1, 0.5), vec(1, 0.5), 0.5),
		box(-1, -1, 1, 1),
	}
	for _, shape := range hollow {
		for _, other := range others {
			name := shape.Type().String() + "/" + other.Type().String()
			assert.False(t, c2.C2Collided(shape, nil, other, nil), name)
			assert.False(t, c2.C2Collided(other, nil, shape, nil), name)
			assert.Equal(t, 0, c2.C2Collide(shape, nil, other, nil).Count, name)
			assert.Equal(t, 0, c2.C2Collide(other, nil, shape, nil).Count, name)

			gjk := c2.C2Gjk(shape, nil, other, nil, true, nil)
			assert.Equal(t, c2.C2_maxFloat, gjk.Distance, name)

			toi := c2.C2Toi(shape, nil, vec(0, 0), other, nil, vec(0, 0), true)
			assert.False(t, toi.Hit, name)
		}

		ray := c2.MakeC2Ray(vec(5, 0), vec(-1, 0), 10)
		_, hit := c2.C2CastRay(ray, shape, nil)
		assert.False(t, hit, shape.Type().String())
	}
}

func collideFixtures(dx float64) (base, partners []c2.C2Shape) {
	base = []c2.C2Shape{
		c2.MakeC2Circle(vec(0, 0), 1),
		c2.MakeC2Aabb(vec(-1, -1), vec(1, 1)),
		c2.MakeC2Capsule(vec(-1, 0), vec(1, 0), 0.5),
		box(-1, -1, 1, 1),
	}
	partners = []c2.C2Shape{
		c2.MakeC2Circle(vec(1.5+dx, 0.2), 1),
		c2.MakeC2Aabb(vec(0.5+dx, -0.8), vec(2.5+dx, 1.2)),
		c2.MakeC2Capsule(vec(0.5+dx, 0.2), vec(2.5+dx, 0.2), 0.5),
		box(0.5+dx, -0.8, 2.5+dx, 1.2),
	}
	return base, partners
}

func TestCollideEveryPair(t *testing.T) {
	base, partners := collideFixtures(0)
	towardB := vec(1.5, 0.2)

	for _, a := range base {
		for _, b := range partners {
			name := fmt.Sprintf("%s/%s", a.Type(), b.Type())

			m := c2.C2Collide(a, nil, b, nil)
			require.Greater(t, m.Count, 0, name)
			assert.LessOrEqual(t, m.Count, c2.C2_maxManifoldPoints, name)
			assert.InDelta(t, 1.0, m.N.Length(), tolerance, name)
			assert.Greater(t, c2.C2Vec2Dot(m.N, towardB), 0.0, name)
			assert.Greater(t, m.MaxDepth(), 0.0, name)
			for i := 0; i < m.Count; i++ {
				assert.GreaterOrEqual(t, m.Depths[i], 0.0, name)
			}

			assert.True(t, c2.C2Collided(a, nil, b, nil), name)
			assert.True(t, c2.C2Collided(b, nil, a, nil), name)
			assert.Greater(t, c2.C2Collide(b, nil, a, nil).Count, 0, name)
		}
	}
}

func TestCollideSeparatedPairs(t *testing.T) {
	base, partners := collideFixtures(10)

	for _, a := range base {
		for _, b := range partners {
			name := fmt.Sprintf("%s/%s", a.Type(), b.Type())

			assert.False(t, c2.C2Collided(a, nil, b, nil), name)
			assert.False(t, c2.C2Collided(b, nil, a, nil), name)
			assert.Equal(t, c2.C2Manifold{}, c2.C2Collide(a, nil, b, nil), name)
			assert.Equal(t, c2.C2Manifold{}, c2.C2Collide(b, nil, a, nil), name)
		}
	}
}
