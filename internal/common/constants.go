package common

// Domain separation tags for the two hash-to-curve invocations the core
// relies on (H1 into G1, H2 into G2) and for the Fiat-Shamir challenge.
//
// These are specific to this implementation: the original pythia.c feeds a
// raw SHA-384 digest straight into RELIC's g1_map/g2_map, which carries no
// separate domain-separation string. gnark-crypto's HashToG1/HashToG2 take
// a DST as part of RFC 9380 hash-to-curve, so one is required here; it only
// has to be fixed and identical between client and server, which these
// constants guarantee.
const (
	// DSTG1 separates the H1 hash-to-curve invocation (client blinding).
	DSTG1 = "PYTHIA_BLS12381G1_XMD:SHA-384_SSWU_RO_"

	// DSTG2 separates the H2 hash-to-curve invocation (server evaluation).
	DSTG2 = "PYTHIA_BLS12381G2_XMD:SHA-384_SSWU_RO_"
)

// HashZTag is the fixed HMAC key used by the Fiat-Shamir challenge hash
// hashZ. Prover and verifier must agree on byte-identical tag bytes.
// Carried over verbatim from the reference implementation
// (TAG_RELIC_HASH_ZMESSAGE_HASH_Z, stored there in a 31-byte buffer but
// only the first 30 bytes, up to the NUL terminator, are the tag).
const HashZTag = "TAG_RELIC_HASH_ZMESSAGE_HASH_Z"
