package pythia

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Eval is the server-side evaluation step. It derives k_w from (w, msk,
// s), hashes the record tweak t into G2, raises the client's blinded
// point x to k_w, and pairs the result against H2(t). The caller is
// expected to hold onto the returned Kw and TTilde for the Prove call
// of the same session.
func Eval(w, t []byte, x bls12381.G1Affine, msk, s []byte) (EvalResult, error) {
	_, ordT, _, err := defaultParams.snapshot()
	if err != nil {
		return EvalResult{}, err
	}

	kw := genKw(w, msk, s, ordT)

	tTilde, err := H2(t)
	if err != nil {
		return EvalResult{}, err
	}

	xKw := g1Mul(x, kw)

	y, err := bls12381.Pair([]bls12381.G1Affine{xKw}, []bls12381.G2Affine{tTilde})
	if err != nil {
		return EvalResult{}, fmt.Errorf("%w: eval: %v", ErrArithmeticFailure, err)
	}

	return EvalResult{Y: y, Kw: kw, TTilde: tTilde}, nil
}
