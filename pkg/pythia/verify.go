package pythia

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Verify recomputes beta and the two proof commitments from (x, t, y,
// proof) and accepts iff the recomputed challenge matches proof.C
// byte-for-byte, after canonical scalar encoding.
//
// A returned (false, nil) is a normal cryptographic rejection, not a
// fault: only a genuine arithmetic failure in the underlying library
// surfaces as a non-nil error.
func Verify(x bls12381.G1Affine, t []byte, y bls12381.GT, proof Proof) (bool, error) {
	_, ordT, g1Gen, err := defaultParams.snapshot()
	if err != nil {
		return false, err
	}

	tTilde, err := H2(t)
	if err != nil {
		return false, err
	}

	beta, err := bls12381.Pair([]bls12381.G1Affine{x}, []bls12381.G2Affine{tTilde})
	if err != nil {
		return false, fmt.Errorf("%w: verify: %v", ErrArithmeticFailure, err)
	}

	qu := g1Mul(g1Gen, proof.U)
	pc := g1Mul(proof.P, proof.C)
	t1Prime := g1Add(qu, pc)

	yc := gtExp(y, proof.C, ordT)
	betaU := gtExp(beta, proof.U, ordT)

	var t2Prime bls12381.GT
	t2Prime.Mul(&betaU, &yc)

	cPrime := hashZ(g1Gen, proof.P, beta, y, t1Prime, t2Prime)

	return cPrime.Cmp(proof.C) == 0, nil
}
