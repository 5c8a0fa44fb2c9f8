/*
Package pythia implements the core arithmetic of the Pythia
partially-oblivious pseudo-random function: a protocol that lets a client
obtain a deterministic, high-entropy value derived from a low-entropy
secret (such as a password) and a server-held master key, without the
server learning the client's secret and without the client learning the
server's key.

The package is pairing-based, built on BLS12-381 via gnark-crypto, and
implements seven operations plus a process-wide init/deinit pair:

  - Blind / Deblind: client-side masking and unmasking of the message
  - Eval: server-side evaluation under its master key
  - Prove / Verify: a non-interactive zero-knowledge proof that the
    server evaluated with the key it publicly committed to
  - GetDelta / Update: key-rotation support that lets previously stored
    outputs be re-keyed without involving the user

pythia is a library surface: it has no CLI, no files, no network, and no
persisted state beyond the read-only parameter cache populated by Init.
Transport, master-key storage, rate limiting, and password-to-message
encoding above the byte level are the caller's responsibility.

Usage:

	if err := pythia.Init(); err != nil {
		log.Fatal(err)
	}
	defer pythia.Deinit()

	x, rInv, err := pythia.Blind([]byte("correct horse battery staple"))
	// ... send (x, t) to the server ...

	res, err := pythia.Eval(w, t, x, msk, pepper)
	proof, err := pythia.Prove(x, res.TTilde, res.Kw, res.Y)
	// ... server returns (res.Y, proof.P, proof.C, proof.U) ...

	ok, err := pythia.Verify(x, t, res.Y, proof)
	a, err := pythia.Deblind(res.Y, rInv)
*/
package pythia
