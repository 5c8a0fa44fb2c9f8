package pythia

import (
	"math/big"
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/virgilsecurity/pythia-go/internal/common"
)

// VerifyTuple bundles the inputs of one Verify call, for BatchVerify.
type VerifyTuple struct {
	X     bls12381.G1Affine
	T     []byte
	Y     bls12381.GT
	Proof Proof
}

// BatchVerify runs Verify concurrently across many independent proof
// tuples, which a storage layer rotating or auditing many records at
// once will routinely need. Each tuple is verified with its own scratch
// space; the tuples share nothing but the read-only Params cache.
//
// The returned slice has one entry per input tuple, in order. A non-nil
// error means at least one tuple hit a system fault (ErrArithmeticFailure,
// ErrNotInitialized); the corresponding bool results for faulted tuples
// are false and must not be treated as a cryptographic rejection.
func BatchVerify(tuples []VerifyTuple) ([]bool, error) {
	results := make([]bool, len(tuples))
	errs := make([]error, len(tuples))

	var wg sync.WaitGroup
	wg.Add(len(tuples))
	for i, tup := range tuples {
		go func(i int, tup VerifyTuple) {
			defer wg.Done()
			ok, err := Verify(tup.X, tup.T, tup.Y, tup.Proof)
			results[i] = ok
			errs[i] = err
		}(i, tup)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// UpdateTuple bundles the inputs of one Update call, for BatchUpdate.
type UpdateTuple struct {
	Z     bls12381.GT
	Delta *big.Int
}

// BatchUpdate runs Update concurrently across many records being
// re-keyed at once, applying the update a single record at a time would
// need across a whole table instead. All tuples usually share the
// destination epoch's delta, but the signature accepts a delta per
// tuple so callers migrating several source keys into one destination
// key in a single pass do not need to call BatchUpdate once per source
// key.
func BatchUpdate(tuples []UpdateTuple) ([]bls12381.GT, error) {
	if len(tuples) == 0 {
		return nil, common.ErrInvalidParameter
	}

	results := make([]bls12381.GT, len(tuples))
	errs := make([]error, len(tuples))

	var wg sync.WaitGroup
	wg.Add(len(tuples))
	for i, tup := range tuples {
		go func(i int, tup UpdateTuple) {
			defer wg.Done()
			r, err := Update(tup.Z, tup.Delta)
			results[i] = r
			errs[i] = err
		}(i, tup)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
