package pythia

import (
	"math/big"
	"sync"
)

// scratchPool provides a pool of scratch big.Int values. Its one user is
// genKw's digest reduction, which acquires a value via getInt() and
// releases it with a deferred putInt(); the other operations allocate
// their big.Int values directly.
type scratchPool struct {
	bigInts sync.Pool
}

var defaultScratch = newScratchPool()

func newScratchPool() *scratchPool {
	return &scratchPool{
		bigInts: sync.Pool{
			New: func() interface{} { return new(big.Int) },
		},
	}
}

func (s *scratchPool) getInt() *big.Int {
	v := s.bigInts.Get().(*big.Int)
	v.SetInt64(0)
	return v
}

func (s *scratchPool) putInt(v *big.Int) {
	if v == nil {
		return
	}
	s.bigInts.Put(v)
}
