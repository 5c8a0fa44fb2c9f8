package pythia

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Deblind computes a = y^(rInv mod ordT). Bilinearity of the pairing
// gives y = e(H1(m), tTilde)^(r*k_w), so raising to rInv cancels the
// client's blinding and leaves e(H1(m), tTilde)^k_w.
func Deblind(y bls12381.GT, rInv *big.Int) (bls12381.GT, error) {
	_, ordT, _, err := defaultParams.snapshot()
	if err != nil {
		return bls12381.GT{}, err
	}

	return gtExp(y, rInv, ordT), nil
}
