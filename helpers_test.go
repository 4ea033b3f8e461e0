package c2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ByteArena/c2"
)

const tolerance = 1e-6

func vec(x, y float64) c2.C2Vec2 {
	return c2.MakeC2Vec2(x, y)
}

func assertVec(t *testing.T, expected, actual c2.C2Vec2, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, tolerance, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, tolerance, msgAndArgs...)
}

func box(minX, minY, maxX, maxY float64) *c2.C2Poly {
	p := c2.C2MakePoly([]c2.C2Vec2{
		vec(minX, minY), vec(maxX, minY), vec(maxX, maxY), vec(minX, maxY),
	})
	return &p
}
