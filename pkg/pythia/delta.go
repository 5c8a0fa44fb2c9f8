package pythia

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/virgilsecurity/pythia-go/pkg/utils"
)

// GetDelta derives the two per-tweak keys k_w0 and k_w1, computes the
// rotation scalar delta = k_w1 * k_w0^-1 mod ord_T, and the new public
// commitment p' = k_w1 * g_1. A subsequent Prove using k_w1 will verify
// against p'.
func GetDelta(w0, msk0, z0, w1, msk1, z1 []byte) (DeltaResult, error) {
	ord1, ordT, g1Gen, err := defaultParams.snapshot()
	if err != nil {
		return DeltaResult{}, err
	}

	k0 := genKw(w0, msk0, z0, ordT)
	k1 := genKw(w1, msk1, z1, ordT)

	k0Inv, err := utils.ModInverse(k0, ordT)
	if err != nil {
		return DeltaResult{}, fmt.Errorf("%w: getDelta: %v", ErrArithmeticFailure, err)
	}

	delta := new(big.Int).Mul(k1, k0Inv)
	delta.Mod(delta, ordT)

	pPrime := g1Mul(g1Gen, new(big.Int).Mod(k1, ord1))

	return DeltaResult{Delta: delta, PPrime: pPrime}, nil
}

// Update computes r = z^delta in G_T. If z was a deblinded PRF output
// produced under k_w0, r equals the deblinded output the client would
// have received under k_w1 for the same message and tweak. This lets
// previously stored outputs be re-keyed without the user
// re-authenticating.
func Update(z bls12381.GT, delta *big.Int) (bls12381.GT, error) {
	_, ordT, _, err := defaultParams.snapshot()
	if err != nil {
		return bls12381.GT{}, err
	}
	return gtExp(z, delta, ordT), nil
}
