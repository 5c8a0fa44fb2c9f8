package pythia

import "errors"

// Sentinel errors returned by this package. A proof that simply does
// not match is not one of these: Verify reports cryptographic rejection
// as a plain bool, never as an error, so that it is never confused with
// a system fault.
var (
	// ErrNotInitialized is returned by any operation invoked before Init
	// has completed successfully, or after Deinit has invalidated the
	// parameter cache.
	ErrNotInitialized = errors.New("pythia: not initialized")

	// ErrRngFailure is returned when the configured randomness source
	// failed to produce the bytes an operation needed.
	ErrRngFailure = errors.New("pythia: randomness source failure")

	// ErrArithmeticFailure is returned when the underlying pairing
	// library signals an internal fault: a failed pairing, a failed
	// hash-to-curve, a key scalar with no inverse, or similar.
	ErrArithmeticFailure = errors.New("pythia: pairing arithmetic failure")

	// ErrInvalidEncoding is returned when a caller-provided serialized
	// group element fails to deserialize into a well-formed point. Used
	// at the boundary of wrappers that deserialize before calling the
	// core, such as cmd/pythiactl's flag decoding.
	ErrInvalidEncoding = errors.New("pythia: invalid group element encoding")
)
