package pythia

import (
	"crypto/sha512"
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/virgilsecurity/pythia-go/internal/common"
)

// H1 deterministically hashes an arbitrary-length byte string into G1:
// h = SHA-384(m), then map h to a point in G1. gnark-crypto's HashToG1
// performs RFC 9380 hash-to-curve over the provided bytes and DST; we
// feed it the 48-byte SHA-384 digest rather than the raw message so the
// expensive domain-separated expansion operates on a fixed, short input
// regardless of how long m is.
func H1(m []byte) (bls12381.G1Affine, error) {
	digest := sha384Sum(m)

	point, err := bls12381.HashToG1(digest, []byte(common.DSTG1))
	if err != nil {
		return bls12381.G1Affine{}, fmt.Errorf("%w: H1: %v", ErrArithmeticFailure, err)
	}
	return point, nil
}

// H2 deterministically hashes an arbitrary-length byte string into G2, the
// G2-valued counterpart of H1 used by Eval and Verify.
func H2(m []byte) (bls12381.G2Affine, error) {
	digest := sha384Sum(m)

	point, err := bls12381.HashToG2(digest, []byte(common.DSTG2))
	if err != nil {
		return bls12381.G2Affine{}, fmt.Errorf("%w: H2: %v", ErrArithmeticFailure, err)
	}
	return point, nil
}

func sha384Sum(m []byte) []byte {
	h := sha512.Sum384(m)
	return h[:]
}
