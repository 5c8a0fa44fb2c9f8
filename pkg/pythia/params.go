package pythia

import (
	"math/big"
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Params is the process-wide, read-mostly parameter cache: the order of
// G1 (ord_1), the order of G_T (ord_T), and the fixed generator g_1 of
// G1. It is guarded by a RWMutex rather than a sync.Once because Deinit
// must be able to invalidate it and a later Init must be able to
// repopulate it.
type Params struct {
	mu    sync.RWMutex
	ready bool
	ord1  *big.Int
	ordT  *big.Int
	g1Gen bls12381.G1Affine
}

var defaultParams = &Params{}

// Init brings the pairing environment into a usable state and populates
// the parameter cache. It is idempotent: calling it again after a
// successful first call is a no-op. It returns ErrArithmeticFailure if the
// group order cannot be read, leaving no partial state.
func Init() error {
	return defaultParams.init()
}

// Deinit releases the parameter cache. After Deinit, no other operation in
// this package is defined until Init succeeds again.
func Deinit() error {
	return defaultParams.deinit()
}

func (p *Params) init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}

	ord := fr.Modulus()
	if ord == nil || ord.Sign() <= 0 {
		return ErrArithmeticFailure
	}

	_, _, g1Gen, _ := bls12381.Generators()

	// ord_1 and ord_T happen to coincide for BLS12-381 (a type-3 pairing
	// with G1, G2, G_T all of prime order r = fr.Modulus()), but they are
	// independent quantities in general, so we keep two distinct
	// *big.Int values rather than aliasing one.
	p.ord1 = new(big.Int).Set(ord)
	p.ordT = new(big.Int).Set(ord)
	p.g1Gen = g1Gen
	p.ready = true

	return nil
}

func (p *Params) deinit() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.ready = false
	p.ord1 = nil
	p.ordT = nil
	p.g1Gen = bls12381.G1Affine{}

	return nil
}

// snapshot returns the cached parameters, or ErrNotInitialized if Init has
// not (yet, or still) succeeded. Every public function that needs the
// cached parameters calls it first; H1, H2 and DeriveEpochPepper do not
// use them and do not call it.
func (p *Params) snapshot() (ord1, ordT *big.Int, g1Gen bls12381.G1Affine, err error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.ready {
		return nil, nil, bls12381.G1Affine{}, ErrNotInitialized
	}
	return p.ord1, p.ordT, p.g1Gen, nil
}

// OrderG1 returns the cached order of G1 (ord_1).
func OrderG1() (*big.Int, error) {
	ord1, _, _, err := defaultParams.snapshot()
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(ord1), nil
}

// OrderGT returns the cached order of G_T (ord_T).
func OrderGT() (*big.Int, error) {
	_, ordT, _, err := defaultParams.snapshot()
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(ordT), nil
}

// Generator returns the cached fixed generator g_1 of G1.
func Generator() (bls12381.G1Affine, error) {
	_, _, g1Gen, err := defaultParams.snapshot()
	if err != nil {
		return bls12381.G1Affine{}, err
	}
	return g1Gen, nil
}
