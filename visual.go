package gocube

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/SeamusWaldron/gocube_sim/pkg/rubik"
)

var (
	axisX    = mgl64.Vec3{1, 0, 0}
	axisY    = mgl64.Vec3{0, 1, 0}
	axisZ    = mgl64.Vec3{0, 0, 1}
	diagonal = mgl64.Vec3{1, 1, 1}.Normalize()
)

// Visual rotations of the factors of a cube rotation, indexed by factor.
var (
	halfTurnQuats = [...]mgl64.Quat{
		rubik.HalfTurnNone: mgl64.QuatIdent(),
		rubik.HalfTurnX:    mgl64.QuatRotate(math.Pi, axisX),
		rubik.HalfTurnY:    mgl64.QuatRotate(math.Pi, axisY),
		rubik.HalfTurnZ:    mgl64.QuatRotate(math.Pi, axisZ),
	}
	diagonalQuats = [...]mgl64.Quat{
		rubik.DiagonalNone: mgl64.QuatIdent(),
		rubik.DiagonalC1:   mgl64.QuatRotate(2*math.Pi/3, diagonal),
		rubik.DiagonalC2:   mgl64.QuatRotate(-2*math.Pi/3, diagonal),
	}
	flipQuats = [...]mgl64.Quat{
		rubik.FlipNone: mgl64.QuatIdent(),
		rubik.FlipI:    mgl64.QuatRotate(math.Pi, axisY).Mul(mgl64.QuatRotate(-math.Pi/2, axisZ)),
	}
)

// PermToQuat converts a block orientation into the rotation that renders it.
// The result rotates vectors the same way p.Apply does.
func PermToQuat(p rubik.CubePermutation) mgl64.Quat {
	h, c, f := p.Factor3()
	return halfTurnQuats[h].Mul(diagonalQuats[c]).Mul(flipQuats[f])
}

// vec3 converts an integer grid vector.
func vec3(v [3]int) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}
