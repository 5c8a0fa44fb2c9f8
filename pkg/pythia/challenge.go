package pythia

import (
	"crypto/hmac"
	"crypto/sha512"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/virgilsecurity/pythia-go/internal/common"
)

// hashZ computes the Fiat-Shamir challenge: concatenate the canonical
// byte encodings of g_1, p, beta, y, t1, t2, in that order, with no
// length prefixes and no separators (order alone disambiguates, because
// each group's encoding has fixed length), then
//
//	mac = HMAC-SHA384(key = HashZTag, message = concat)
//
// and interpret the digest big-endian as a nonnegative integer. The result
// is not reduced modulo any group order here; downstream modular
// arithmetic (prove's u = v - c*k_w mod ord_T, verify's comparison) does
// that implicitly. Prover and verifier must agree on both the ordering
// and the fixed tag.
func hashZ(g1, p bls12381.G1Affine, beta, y bls12381.GT, t1 bls12381.G1Affine, t2 bls12381.GT) *big.Int {
	mac := hmac.New(sha512.New384, []byte(common.HashZTag))

	g1Bytes := g1.Marshal()
	pBytes := p.Marshal()
	betaBytes := beta.Marshal()
	yBytes := y.Marshal()
	t1Bytes := t1.Marshal()
	t2Bytes := t2.Marshal()

	mac.Write(g1Bytes)
	mac.Write(pBytes)
	mac.Write(betaBytes)
	mac.Write(yBytes)
	mac.Write(t1Bytes)
	mac.Write(t2Bytes)

	digest := mac.Sum(nil)
	return new(big.Int).SetBytes(digest)
}
