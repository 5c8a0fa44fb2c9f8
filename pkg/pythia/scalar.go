package pythia

import (
	"crypto/hmac"
	"crypto/sha512"
	"math/big"
)

// genKw deterministically derives the per-tweak secret scalar k_w from
// (tweak w, master secret msk, pepper z):
//
//	mac = HMAC-SHA384(key = msk, message = z || w)
//	k_w = (mac interpreted big-endian) mod ordT
//
// z is concatenated before w with no length prefix or separator: callers
// must ensure (w, z) pairs are unambiguous for their use case. Carried
// over bit-exact from the reference for interop.
func genKw(w, msk, z []byte, ordT *big.Int) *big.Int {
	mac := hmac.New(sha512.New384, msk)
	mac.Write(z)
	mac.Write(w)
	digest := mac.Sum(nil)

	b := defaultScratch.getInt()
	defer defaultScratch.putInt(b)
	b.SetBytes(digest)

	return new(big.Int).Mod(b, ordT)
}

// GenKw is the exported form of genKw, for callers (such as tests) that
// need the scalar without running a full Eval.
func GenKw(w, msk, z []byte) (*big.Int, error) {
	_, ordT, _, err := defaultParams.snapshot()
	if err != nil {
		return nil, err
	}
	return genKw(w, msk, z, ordT), nil
}
