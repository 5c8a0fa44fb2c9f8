package pythia

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// EvalResult is the output of Eval: the pairing value Y handed back to
// the client, plus the two values the server needs to keep around for
// the Prove call of the same session. None of these values are
// persisted by this package past the call that produced them; the
// caller owns their lifetime.
type EvalResult struct {
	// Y is e(k_w * x, H2(t)), the value the client will deblind.
	Y bls12381.GT

	// Kw is the per-tweak scalar genKw derived for this session. Needed
	// by Prove to bind the proof to the same key that produced Y.
	Kw *big.Int

	// TTilde is H2(t), cached so Prove does not need to re-hash t.
	TTilde bls12381.G2Affine
}

// Proof is the non-interactive zero-knowledge proof produced by Prove
// and checked by Verify.
type Proof struct {
	// P is the public commitment k_w * g_1.
	P bls12381.G1Affine

	// C is the Fiat-Shamir challenge.
	C *big.Int

	// U is the prover's response.
	U *big.Int
}

// DeltaResult is the output of GetDelta: the rotation scalar and the
// new public commitment under the destination key.
type DeltaResult struct {
	// Delta is k_w1 * k_w0^-1 mod ord_T.
	Delta *big.Int

	// PPrime is k_w1 * g_1, the new public commitment.
	PPrime bls12381.G1Affine
}
