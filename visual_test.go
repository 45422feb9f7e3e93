package gocube

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_sim/pkg/rubik"
)

var basis = [][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// nearVec compares vectors with an absolute tolerance.
func nearVec(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-9
}

func TestPermToQuatDeterministic(t *testing.T) {
	for _, p := range rubik.Permutations() {
		assert.Equal(t, PermToQuat(p), PermToQuat(p), "rotation %v", p)
	}
}

func TestPermToQuatUnitIsIdentity(t *testing.T) {
	assert.True(t, sameRotation(PermToQuat(rubik.Unit), mgl64.QuatIdent()))
}

func TestPermToQuatMatchesPermutation(t *testing.T) {
	for _, p := range rubik.Permutations() {
		q := PermToQuat(p)
		require.InDelta(t, 1.0, q.Len(), 1e-9, "rotation %v is not a unit quaternion", p)
		for _, e := range basis {
			got := q.Rotate(vec3(e))
			want := vec3(p.Apply(e))
			assert.True(t, nearVec(got, want),
				"%v rotates %v to %v, want %v", p, e, got, want)
		}
	}
}

func TestPermToQuatRespectsComposition(t *testing.T) {
	for _, a := range rubik.Permutations() {
		for _, b := range rubik.Permutations() {
			got := PermToQuat(a.Compose(b))
			want := PermToQuat(b).Mul(PermToQuat(a))
			assert.True(t, sameRotation(got, want), "%v then %v", a, b)
		}
	}
}

func TestPermToQuatDistinguishesRotations(t *testing.T) {
	perms := rubik.Permutations()
	for i, a := range perms {
		for _, b := range perms[i+1:] {
			assert.False(t, sameRotation(PermToQuat(a), PermToQuat(b)), "%v and %v render the same", a, b)
		}
	}
}

func TestSameRotationToleratesResidue(t *testing.T) {
	q := PermToQuat(rubik.X2)
	noisy := mgl64.Quat{W: q.W + 1e-16, V: mgl64.Vec3{q.V[0], q.V[1] - 3e-16, q.V[2] + 2e-16}}
	assert.True(t, sameRotation(q, noisy))
	assert.True(t, sameRotation(q, noisy.Scale(-1)))
	assert.False(t, sameRotation(q, mgl64.QuatRotate(1e-3, axisX).Mul(q)))
}

func TestVerifyAcceptsNearlyExactRotation(t *testing.T) {
	cube := NewCube()
	b := &cube.blocks[0]
	b.Rotation = mgl64.Quat{W: 1 - 1e-16, V: mgl64.Vec3{2e-16, 0, -1e-16}}
	assert.NoError(t, cube.Verify())
}
