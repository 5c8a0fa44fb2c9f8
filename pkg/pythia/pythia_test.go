package pythia

import (
	"bytes"
	"math/big"
	"os"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

func TestMain(m *testing.M) {
	if err := Init(); err != nil {
		panic(err)
	}
	code := m.Run()
	_ = Deinit()
	os.Exit(code)
}

// directEval computes e(H1(m), H2(t))^kw without going through Blind,
// Eval, or Deblind at all, as an independent check on the whole
// blind/eval/deblind chain.
func directEval(t *testing.T, m, tweak []byte, kw *big.Int) bls12381.GT {
	t.Helper()

	h1, err := H1(m)
	if err != nil {
		t.Fatalf("H1: %v", err)
	}
	h2, err := H2(tweak)
	if err != nil {
		t.Fatalf("H2: %v", err)
	}

	base, err := bls12381.Pair([]bls12381.G1Affine{h1}, []bls12381.G2Affine{h2})
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}

	ordT, err := OrderGT()
	if err != nil {
		t.Fatalf("OrderGT: %v", err)
	}

	return gtExp(base, kw, ordT)
}

func TestEndToEndRoundTrip(t *testing.T) {
	msk := []byte("master-secret-key")
	s := []byte("salt")
	w := []byte("user-42")
	tweak := []byte("login-2024-01")
	message := []byte("correct horse battery staple")

	x, rInv, err := Blind(message)
	if err != nil {
		t.Fatalf("Blind: %v", err)
	}

	evalRes, err := Eval(w, tweak, x, msk, s)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}

	a, err := Deblind(evalRes.Y, rInv)
	if err != nil {
		t.Fatalf("Deblind: %v", err)
	}

	want := directEval(t, message, tweak, evalRes.Kw)
	if !a.Equal(&want) {
		t.Fatalf("deblinded output does not match e(H1(m), H2(t))^kw")
	}
}

func TestEvalDeterministic(t *testing.T) {
	msk := []byte("msk")
	s := []byte("salt")
	w := []byte("user-42")
	tweak := []byte("tweak")
	message := []byte("same message")

	x1, rInv1, err := Blind(message)
	if err != nil {
		t.Fatalf("Blind: %v", err)
	}
	x2, rInv2, err := Blind(message)
	if err != nil {
		t.Fatalf("Blind: %v", err)
	}

	r1, err := Eval(w, tweak, x1, msk, s)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	r2, err := Eval(w, tweak, x2, msk, s)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}

	a1, err := Deblind(r1.Y, rInv1)
	if err != nil {
		t.Fatalf("Deblind: %v", err)
	}
	a2, err := Deblind(r2.Y, rInv2)
	if err != nil {
		t.Fatalf("Deblind: %v", err)
	}

	if !a1.Equal(&a2) {
		t.Fatalf("two independent blind/eval/deblind runs for the same message disagree")
	}
}

func TestEvalDifferentMessageDifferentOutput(t *testing.T) {
	msk := []byte("msk")
	s := []byte("salt")
	w := []byte("user-42")
	tweak := []byte("tweak")

	x1, rInv1, err := Blind([]byte("message one"))
	if err != nil {
		t.Fatalf("Blind: %v", err)
	}
	x2, rInv2, err := Blind([]byte("message two"))
	if err != nil {
		t.Fatalf("Blind: %v", err)
	}

	r1, err := Eval(w, tweak, x1, msk, s)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	r2, err := Eval(w, tweak, x2, msk, s)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}

	a1, err := Deblind(r1.Y, rInv1)
	if err != nil {
		t.Fatalf("Deblind: %v", err)
	}
	a2, err := Deblind(r2.Y, rInv2)
	if err != nil {
		t.Fatalf("Deblind: %v", err)
	}

	if a1.Equal(&a2) {
		t.Fatalf("distinct messages produced the same PRF output")
	}
}

func TestProveVerifyAccepts(t *testing.T) {
	msk := []byte("msk")
	s := []byte("salt")
	w := []byte("user-42")
	tweak := []byte("tweak")
	message := []byte("correct horse battery staple")

	x, _, err := Blind(message)
	if err != nil {
		t.Fatalf("Blind: %v", err)
	}

	evalRes, err := Eval(w, tweak, x, msk, s)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}

	proof, err := Prove(x, evalRes.TTilde, evalRes.Kw, evalRes.Y)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	ok, err := Verify(x, tweak, evalRes.Y, proof)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatalf("Verify rejected a proof produced by Prove over matching inputs")
	}
}

func TestVerifyRejectsTamperedProof(t *testing.T) {
	msk := []byte("msk")
	s := []byte("salt")
	w := []byte("user-42")
	tweak := []byte("tweak")
	message := []byte("correct horse battery staple")

	x, _, err := Blind(message)
	if err != nil {
		t.Fatalf("Blind: %v", err)
	}

	evalRes, err := Eval(w, tweak, x, msk, s)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}

	proof, err := Prove(x, evalRes.TTilde, evalRes.Kw, evalRes.Y)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	cases := []struct {
		name    string
		tamper  func(p Proof) Proof
	}{
		{"flip C", func(p Proof) Proof {
			p.C = new(big.Int).SetBit(p.C, 0, p.C.Bit(0)^1)
			return p
		}},
		{"flip U", func(p Proof) Proof {
			p.U = new(big.Int).SetBit(p.U, 0, p.U.Bit(0)^1)
			return p
		}},
		{"corrupt P", func(p Proof) Proof {
			p.P = g1Add(p.P, p.P)
			return p
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tampered := tc.tamper(proof)
			ok, err := Verify(x, tweak, evalRes.Y, tampered)
			if err != nil {
				t.Fatalf("Verify: %v", err)
			}
			if ok {
				t.Fatalf("Verify accepted a proof with a %s", tc.name)
			}
		})
	}
}

func TestVerifyRejectsWrongTweak(t *testing.T) {
	msk := []byte("msk")
	s := []byte("salt")
	w := []byte("user-42")
	message := []byte("correct horse battery staple")

	x, _, err := Blind(message)
	if err != nil {
		t.Fatalf("Blind: %v", err)
	}

	evalRes, err := Eval(w, []byte("tweak-a"), x, msk, s)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}

	proof, err := Prove(x, evalRes.TTilde, evalRes.Kw, evalRes.Y)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	ok, err := Verify(x, []byte("tweak-b"), evalRes.Y, proof)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatalf("Verify accepted a proof checked against a different tweak")
	}
}

func TestGenKwDeterministicAndSensitive(t *testing.T) {
	w := []byte("user-42")
	msk := []byte("msk")
	z := []byte("salt")

	k1, err := GenKw(w, msk, z)
	if err != nil {
		t.Fatalf("GenKw: %v", err)
	}
	k2, err := GenKw(w, msk, z)
	if err != nil {
		t.Fatalf("GenKw: %v", err)
	}
	if k1.Cmp(k2) != 0 {
		t.Fatalf("GenKw is not deterministic for identical inputs")
	}

	k3, err := GenKw([]byte("user-43"), msk, z)
	if err != nil {
		t.Fatalf("GenKw: %v", err)
	}
	if k1.Cmp(k3) == 0 {
		t.Fatalf("GenKw produced the same scalar for two different tweaks")
	}
}

func TestGetDeltaUpdateRekeysOutput(t *testing.T) {
	w0, msk0, z0 := []byte("user-42"), []byte("msk-v1"), []byte("pepper-v1")
	w1, msk1, z1 := []byte("user-42"), []byte("msk-v2"), []byte("pepper-v2")
	tweak := []byte("login-2024-01")
	message := []byte("correct horse battery staple")

	x, rInv, err := Blind(message)
	if err != nil {
		t.Fatalf("Blind: %v", err)
	}

	evalRes0, err := Eval(w0, tweak, x, msk0, z0)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	a0, err := Deblind(evalRes0.Y, rInv)
	if err != nil {
		t.Fatalf("Deblind: %v", err)
	}

	delta, err := GetDelta(w0, msk0, z0, w1, msk1, z1)
	if err != nil {
		t.Fatalf("GetDelta: %v", err)
	}

	updated, err := Update(a0, delta.Delta)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	x2, rInv2, err := Blind(message)
	if err != nil {
		t.Fatalf("Blind: %v", err)
	}
	evalRes1, err := Eval(w1, tweak, x2, msk1, z1)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	want, err := Deblind(evalRes1.Y, rInv2)
	if err != nil {
		t.Fatalf("Deblind: %v", err)
	}

	if !updated.Equal(&want) {
		t.Fatalf("Update(a0, delta) does not match the output produced directly under the new key")
	}

	gen, err := Generator()
	if err != nil {
		t.Fatalf("Generator: %v", err)
	}
	expectedPPrime := g1Mul(gen, evalRes1.Kw)
	if !delta.PPrime.Equal(&expectedPPrime) {
		t.Fatalf("GetDelta's PPrime does not equal k_w1 * g_1")
	}
}

func TestBatchVerify(t *testing.T) {
	msk := []byte("msk")
	s := []byte("salt")

	var tuples []VerifyTuple
	for i := 0; i < 5; i++ {
		w := []byte("user")
		tweak := []byte("tweak")
		message := bytes.Repeat([]byte{byte(i)}, 8)

		x, _, err := Blind(message)
		if err != nil {
			t.Fatalf("Blind: %v", err)
		}
		evalRes, err := Eval(w, tweak, x, msk, s)
		if err != nil {
			t.Fatalf("Eval: %v", err)
		}
		proof, err := Prove(x, evalRes.TTilde, evalRes.Kw, evalRes.Y)
		if err != nil {
			t.Fatalf("Prove: %v", err)
		}
		tuples = append(tuples, VerifyTuple{X: x, T: tweak, Y: evalRes.Y, Proof: proof})
	}

	// Corrupt one tuple's proof to confirm BatchVerify reports per-tuple
	// results rather than collapsing to a single pass/fail.
	tuples[2].Proof.U = new(big.Int).Add(tuples[2].Proof.U, big.NewInt(1))

	results, err := BatchVerify(tuples)
	if err != nil {
		t.Fatalf("BatchVerify: %v", err)
	}
	if len(results) != len(tuples) {
		t.Fatalf("got %d results, want %d", len(results), len(tuples))
	}
	for i, ok := range results {
		want := i != 2
		if ok != want {
			t.Fatalf("tuple %d: got %v, want %v", i, ok, want)
		}
	}
}

func TestBatchUpdate(t *testing.T) {
	ordT, err := OrderGT()
	if err != nil {
		t.Fatalf("OrderGT: %v", err)
	}

	msk := []byte("msk")
	s := []byte("salt")

	var tuples []UpdateTuple
	var wantFlat []bls12381.GT
	for i := 0; i < 4; i++ {
		message := bytes.Repeat([]byte{byte(i)}, 8)
		x, rInv, err := Blind(message)
		if err != nil {
			t.Fatalf("Blind: %v", err)
		}
		evalRes, err := Eval([]byte("user"), []byte("tweak"), x, msk, s)
		if err != nil {
			t.Fatalf("Eval: %v", err)
		}
		a, err := Deblind(evalRes.Y, rInv)
		if err != nil {
			t.Fatalf("Deblind: %v", err)
		}

		delta := big.NewInt(int64(7 + i))
		tuples = append(tuples, UpdateTuple{Z: a, Delta: delta})
		wantFlat = append(wantFlat, gtExp(a, delta, ordT))
	}

	results, err := BatchUpdate(tuples)
	if err != nil {
		t.Fatalf("BatchUpdate: %v", err)
	}
	if len(results) != len(tuples) {
		t.Fatalf("got %d results, want %d", len(results), len(tuples))
	}
	for i, r := range results {
		if !r.Equal(&wantFlat[i]) {
			t.Fatalf("result %d does not match direct gtExp", i)
		}
	}
}

func TestOperationsFailBeforeInit(t *testing.T) {
	if err := Deinit(); err != nil {
		t.Fatalf("Deinit: %v", err)
	}
	defer func() {
		if err := Init(); err != nil {
			t.Fatalf("re-Init: %v", err)
		}
	}()

	if _, _, err := Blind([]byte("m")); err != ErrNotInitialized {
		t.Fatalf("Blind before Init: got %v, want ErrNotInitialized", err)
	}
	if _, err := GenKw([]byte("w"), []byte("msk"), []byte("z")); err != ErrNotInitialized {
		t.Fatalf("GenKw before Init: got %v, want ErrNotInitialized", err)
	}
}
