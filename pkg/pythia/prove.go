package pythia

import (
	"fmt"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/virgilsecurity/pythia-go/pkg/utils"
)

// Prove produces a non-interactive Chaum-Pedersen proof, made
// non-interactive via Fiat-Shamir, that the discrete log of p = k_w*g_1
// w.r.t. g_1 equals the discrete log of y w.r.t. beta = e(x, tTilde).
// x, tTilde, k_w, and y must come from the same session (normally
// eval's own inputs and EvalResult).
func Prove(x bls12381.G1Affine, tTilde bls12381.G2Affine, kw *big.Int, y bls12381.GT) (Proof, error) {
	return ProveWithRand(x, tTilde, kw, y, nil)
}

// ProveWithRand is Prove with an explicit randomness source for the
// nonce v. A nil reader uses crypto/rand.Reader.
func ProveWithRand(x bls12381.G1Affine, tTilde bls12381.G2Affine, kw *big.Int, y bls12381.GT, reader io.Reader) (Proof, error) {
	ord1, ordT, g1Gen, err := defaultParams.snapshot()
	if err != nil {
		return Proof{}, err
	}

	beta, err := bls12381.Pair([]bls12381.G1Affine{x}, []bls12381.G2Affine{tTilde})
	if err != nil {
		return Proof{}, fmt.Errorf("%w: prove: %v", ErrArithmeticFailure, err)
	}

	p := g1Mul(g1Gen, new(big.Int).Mod(kw, ord1))

	v, err := utils.RandomScalarMod(reader, ordT)
	if err != nil {
		return Proof{}, fmt.Errorf("%w: prove: %v", ErrRngFailure, err)
	}

	t1 := g1Mul(g1Gen, v)
	t2 := gtExp(beta, v, ordT)

	c := hashZ(g1Gen, p, beta, y, t1, t2)

	// u = (v - c*k_w) mod ord_T. math/big.Int.Mod always normalizes into
	// [0, ord_T) even when the mathematical value of v - c*k_w is
	// negative, so no separate sign-correction step is needed here.
	cKw := new(big.Int).Mul(c, kw)
	u := new(big.Int).Sub(v, cKw)
	u.Mod(u, ordT)

	return Proof{P: p, C: c, U: u}, nil
}
