// Package utils provides the randomness and modular-arithmetic helpers
// shared by pkg/pythia. It has no cryptographic-group knowledge of its
// own: callers pass in the modulus they care about, so it stays usable
// from both the G1 (order ord_1) and G_T (order ord_T) contexts.
package utils

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// rawRandomBits384 samples a uniformly random nonnegative integer in
// [0, 2^384) by reading 48 raw bytes from reader and interpreting them
// big-endian. This mirrors the reference's bn_rand(r, BN_POS, 384) used
// by the blinding scalar's rejection-sampling loop.
func rawRandomBits384(reader io.Reader) (*big.Int, error) {
	if reader == nil {
		reader = rand.Reader
	}

	buf := make([]byte, 48)
	if _, err := io.ReadFull(reader, buf); err != nil {
		return nil, fmt.Errorf("utils: failed to read 384 random bits: %w", err)
	}

	return new(big.Int).SetBytes(buf), nil
}

// InvertibleScalar samples r uniformly in [0, 2^384), via reader, and
// rejects until gcd(r, mod) == 1, returning r together with its modular
// inverse mod mod. It is independent of which group's order is passed
// in, so the same routine backs any place the core needs an invertible
// scalar mod a prime order, including the client's blinding scalar.
//
// The loop terminates on gcd == 1, matching bn_cmp(gcd, bn_one) == 0 in
// the reference's comparator convention. Do not invert this condition.
func InvertibleScalar(reader io.Reader, mod *big.Int) (r, rInv *big.Int, err error) {
	if mod == nil || mod.Sign() <= 0 {
		return nil, nil, fmt.Errorf("utils: modulus must be positive")
	}

	gcd, x := new(big.Int), new(big.Int)
	one := big.NewInt(1)

	for {
		r, err = rawRandomBits384(reader)
		if err != nil {
			return nil, nil, err
		}

		gcd.GCD(x, nil, r, mod)
		if gcd.Cmp(one) == 0 {
			break
		}
	}

	rInv = x.Mod(x, mod)
	return r, rInv, nil
}

// RandomScalarMod samples a scalar uniformly in [0, mod) using reader
// (crypto/rand.Reader when nil). Used for the prover's nonce v.
func RandomScalarMod(reader io.Reader, mod *big.Int) (*big.Int, error) {
	if reader == nil {
		reader = rand.Reader
	}
	if mod == nil || mod.Sign() <= 0 {
		return nil, fmt.Errorf("utils: modulus must be positive")
	}

	n, err := rand.Int(reader, mod)
	if err != nil {
		return nil, fmt.Errorf("utils: failed to generate random scalar: %w", err)
	}
	return n, nil
}

// ModInverse returns a^-1 mod n via the extended Euclidean algorithm,
// reduced into [0, n). It returns an error if a and n are not coprime,
// which is how a degenerate per-tweak key or a non-prime-order
// deployment would be caught by GetDelta.
func ModInverse(a, n *big.Int) (*big.Int, error) {
	gcd, x := new(big.Int), new(big.Int)
	gcd.GCD(x, nil, a, n)
	if gcd.Cmp(big.NewInt(1)) != 0 {
		return nil, fmt.Errorf("utils: %v has no inverse mod %v (gcd = %v)", a, n, gcd)
	}
	return x.Mod(x, n), nil
}
