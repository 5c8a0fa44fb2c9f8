package pythia

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// g1Mul computes scalar * point in G1 and returns its canonical affine
// form. gnark-crypto's scalar multiplication operates on Jacobian
// coordinates, and every caller needs the unique affine representative
// before it can serialize a point, so the Jacobian-to-affine round trip
// happens once, here.
func g1Mul(point bls12381.G1Affine, scalar *big.Int) bls12381.G1Affine {
	var jac bls12381.G1Jac
	jac.FromAffine(&point)
	jac.ScalarMultiplication(&jac, scalar)

	var out bls12381.G1Affine
	out.FromJacobian(&jac)
	return out
}

// g1Add computes a + b in G1, normalized to affine.
func g1Add(a, b bls12381.G1Affine) bls12381.G1Affine {
	var aJac bls12381.G1Jac
	aJac.FromAffine(&a)

	var bJac bls12381.G1Jac
	bJac.FromAffine(&b)

	aJac.AddAssign(&bJac)

	var out bls12381.G1Affine
	out.FromJacobian(&aJac)
	return out
}

// gtExp computes base^exp in G_T, reducing exp modulo mod first, the way
// the reference's gt_pow helper routes every G_T exponentiation through
// a single reduction point.
func gtExp(base bls12381.GT, exp, mod *big.Int) bls12381.GT {
	reduced := new(big.Int).Mod(exp, mod)

	var out bls12381.GT
	out.Exp(base, reduced)
	return out
}
