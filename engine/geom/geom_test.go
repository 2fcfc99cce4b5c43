package geom

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func assertVec(t *testing.T, want, got Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol)
	assert.InDelta(t, want.Y, got.Y, tol)
}

func TestMat3x2Order(t *testing.T) {
	p := V2(1, 0)

	assertVec(t, p, Identity.ApplyVec(p))
	assertVec(t, V2(3, 4), Translation(2, 4).ApplyVec(p))
	assertVec(t, V2(0, 1), Rotation(math32.Pi/2).ApplyVec(p))

	// scale first, then rotate, then translate
	m := Scale(2, 2).Mul(Rotation(math32.Pi / 2)).Mul(Translation(1, 1))
	assertVec(t, V2(1, 3), m.ApplyVec(p))
}

func TestMat3x2Invert(t *testing.T) {
	m := Transform(V2(10, 20), V2(4, 4), V2(2, 3), 0.7)
	p := V2(-3, 8)
	assertVec(t, p, m.Invert().ApplyVec(m.ApplyVec(p)))

	assert.Equal(t, Identity, Scale(0, 1).Invert())
}

func TestTransformOrigin(t *testing.T) {
	m := Transform(V2(100, 50), V2(8, 8), V2(1, 1), 0)
	assertVec(t, V2(100, 50), m.ApplyVec(V2(8, 8)))
	assertVec(t, V2(92, 42), m.ApplyVec(V2(0, 0)))
}

func TestOrthoPixelSpace(t *testing.T) {
	m := Ortho(0, 200, 100, 0, 0.01, 1000)

	x, y := m.Apply(0, 0)
	assert.InDelta(t, -1, x, tol)
	assert.InDelta(t, 1, y, tol)

	x, y = m.Apply(200, 100)
	assert.InDelta(t, 1, x, tol)
	assert.InDelta(t, -1, y, tol)
}

func TestMat4Mul(t *testing.T) {
	m := Translate4(5, 6, 0).Mul(RotateZ4(math32.Pi / 2))
	x, y := m.Apply(1, 0)
	assert.InDelta(t, 5, x, tol)
	assert.InDelta(t, 7, y, tol)

	assert.Equal(t, Translate4(1, 2, 3), Identity4().Mul(Translate4(1, 2, 3)))
}

func TestRectOverlap(t *testing.T) {
	a := R(0, 0, 10, 10)

	assert.Equal(t, R(5, 5, 5, 5), a.Overlap(R(5, 5, 20, 20)))
	assert.Equal(t, float32(0), a.Overlap(R(20, 20, 5, 5)).W)
	assert.True(t, a.Contains(V2(9, 9)))
	assert.False(t, a.Contains(V2(10, 0)))
	assert.False(t, NoRect.Valid())
}

func TestVecHelpers(t *testing.T) {
	assertVec(t, V2(0, 1), V2(0, 5).Normal())
	assertVec(t, Vec2{}, Vec2{}.Normal())
	assertVec(t, V2(0, 1), V2(1, 0).TurnRight())
	assertVec(t, V2(0, -1), V2(1, 0).TurnLeft())
	assertVec(t, V2(1, 1), BezierQuad(V2(0, 0), V2(1, 2), V2(2, 0), 0.5))
}
