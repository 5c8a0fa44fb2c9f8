package pythia

import (
	"crypto/sha512"
	"fmt"
	"io"

	"github.com/virgilsecurity/pythia-go/internal/common"
	"golang.org/x/crypto/hkdf"
)

// DeriveEpochPepper derives a fresh pepper for a key-rotation epoch from
// a long-lived rotation secret and an epoch label, using HKDF-SHA384.
// This is a convenience for the common GetDelta rotation workflow:
// instead of an operator having to generate and durably store a
// brand-new random pepper z1 for every rotation, they can derive it
// deterministically from a secret they already manage plus a label such
// as "2024-Q3" or a monotonic epoch counter. The derivation touches no
// group element; it only produces the byte string a caller would
// otherwise have had to source some other way before calling GetDelta
// or Eval.
func DeriveEpochPepper(rotationSecret []byte, epoch string, size int) ([]byte, error) {
	if len(rotationSecret) == 0 {
		return nil, common.ErrInvalidParameter
	}
	if size <= 0 {
		size = 48 // matches the HMAC-SHA384 digest length genKw consumes
	}

	kdf := hkdf.New(sha512.New384, rotationSecret, nil, []byte(epoch))

	out := make([]byte, size)
	if _, err := io.ReadFull(kdf, out); err != nil {
		return nil, fmt.Errorf("pythia: derive epoch pepper: %w", err)
	}
	return out, nil
}
