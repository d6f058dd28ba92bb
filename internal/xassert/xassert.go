// Package xassert extends the testify assert package with helpers for float32 vector math.
package xassert

import (
	"testing"

	"github.com/ErikKalkoken/go-set"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// EqualVec3 asserts that every component of got is within delta of want.
// Unlike mgl32's ApproxEqualThreshold the delta is absolute, also when a component is zero.
func EqualVec3(t assert.TestingT, want, got mgl32.Vec3, delta float32) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	for i := range want {
		if d := got[i] - want[i]; d > delta || d < -delta {
			return assert.Failf(t, "vectors differ", "expected: %v\nactual  : %v (+/- %v)", want, got, delta)
		}
	}
	return true
}

// EqualSet asserts that two sets are equal.
func EqualSet[T comparable](t *testing.T, want, got set.Set[T]) bool {
	t.Helper()
	return assert.Truef(t, got.Equal(want), "Not equal:\nexpected: %s\nactual  : %s", want, got)
}
