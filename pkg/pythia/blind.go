package pythia

import (
	"fmt"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/virgilsecurity/pythia-go/pkg/utils"
)

// Blind samples an invertible blinding scalar r, masks H1(m) with it, and
// returns the masked point x together with r's modular inverse. The
// blinding scalar r itself is never returned; only x and rInv cross the
// operation boundary, since a caller never needs r again once x has been
// computed.
func Blind(m []byte) (x bls12381.G1Affine, rInv *big.Int, err error) {
	return BlindWithRand(m, nil)
}

// BlindWithRand is Blind with an explicit randomness source. A nil reader
// uses crypto/rand.Reader. Exposing the reader lets tests mock the RNG to
// return a non-coprime value first and confirm the rejection loop
// resamples instead of proceeding.
func BlindWithRand(m []byte, reader io.Reader) (x bls12381.G1Affine, rInv *big.Int, err error) {
	ord1, _, _, err := defaultParams.snapshot()
	if err != nil {
		return bls12381.G1Affine{}, nil, err
	}

	r, rInv, err := utils.InvertibleScalar(reader, ord1)
	if err != nil {
		return bls12381.G1Affine{}, nil, fmt.Errorf("%w: blind: %v", ErrRngFailure, err)
	}

	h1, err := H1(m)
	if err != nil {
		return bls12381.G1Affine{}, nil, err
	}

	x = g1Mul(h1, r)

	// r has no further references after this point.
	return x, rInv, nil
}
