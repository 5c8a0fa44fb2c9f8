// Command pythiactl is a utility for exercising the Pythia PRF core from
// the command line: blinding a message, evaluating it under a server key,
// proving and verifying, deblinding, and computing a key-rotation delta.
package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/virgilsecurity/pythia-go/pkg/pythia"
)

// Command represents a subcommand.
type Command struct {
	Name        string
	Description string
	Execute     func(args []string) error
}

func main() {
	commands := []Command{
		{Name: "blind", Description: "Blind a message", Execute: cmdBlind},
		{Name: "eval", Description: "Evaluate a blinded point under a server key", Execute: cmdEval},
		{Name: "prove", Description: "Produce a proof for an eval result", Execute: cmdProve},
		{Name: "verify", Description: "Verify a proof", Execute: cmdVerify},
		{Name: "deblind", Description: "Deblind an eval output", Execute: cmdDeblind},
		{Name: "rotate", Description: "Compute a GetDelta rotation scalar", Execute: cmdRotate},
	}

	if len(os.Args) < 2 {
		showHelp(commands)
		os.Exit(1)
	}

	if err := pythia.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize pythia core: %v\n", err)
		os.Exit(1)
	}
	defer pythia.Deinit()

	cmdName := os.Args[1]
	for _, cmd := range commands {
		if cmd.Name == cmdName {
			if err := cmd.Execute(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			os.Exit(0)
		}
	}

	fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmdName)
	showHelp(commands)
	os.Exit(1)
}

func showHelp(commands []Command) {
	fmt.Println("pythiactl - command-line driver for the Pythia PRF core")
	fmt.Println("\nUsage:")
	fmt.Println("  pythiactl <command> [options]")

	fmt.Println("\nAvailable Commands:")
	for _, cmd := range commands {
		fmt.Printf("  %-10s %s\n", cmd.Name, cmd.Description)
	}

	fmt.Println("\nRun 'pythiactl <command> -h' for more information about a command")
}

// blindOutput is the JSON envelope printed by "blind": x travels to the
// server alongside the tweak, rInv stays with the client.
type blindOutput struct {
	X    string `json:"x"`
	RInv string `json:"rInv"`
}

func cmdBlind(args []string) error {
	fs := flag.NewFlagSet("blind", flag.ExitOnError)
	message := fs.String("message", "", "Message to blind (required)")
	fs.Parse(args)

	if *message == "" {
		return fmt.Errorf("-message is required")
	}

	x, rInv, err := pythia.Blind([]byte(*message))
	if err != nil {
		return fmt.Errorf("blind: %w", err)
	}

	return printJSON(blindOutput{
		X:    base64.StdEncoding.EncodeToString(x.Marshal()),
		RInv: rInv.Text(16),
	})
}

// evalOutput is the JSON envelope printed by "eval": y goes back to the
// client, kw/tTilde are handed to a subsequent "prove" call in the same
// session.
type evalOutput struct {
	Y      string `json:"y"`
	Kw     string `json:"kw"`
	TTilde string `json:"tTilde"`
}

func cmdEval(args []string) error {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	w := fs.String("w", "", "Tweak w identifying the key (required)")
	tweak := fs.String("t", "", "Record tweak t (required)")
	x := fs.String("x", "", "Base64-encoded blinded point x from blind (required)")
	msk := fs.String("msk", "", "Master secret key (required)")
	s := fs.String("s", "", "Per-tweak pepper (required)")
	fs.Parse(args)

	if *w == "" || *tweak == "" || *x == "" || *msk == "" || *s == "" {
		return fmt.Errorf("-w, -t, -x, -msk, and -s are all required")
	}

	point, err := decodeG1(*x)
	if err != nil {
		return fmt.Errorf("decode -x: %w", err)
	}

	res, err := pythia.Eval([]byte(*w), []byte(*tweak), point, []byte(*msk), []byte(*s))
	if err != nil {
		return fmt.Errorf("eval: %w", err)
	}

	return printJSON(evalOutput{
		Y:      base64.StdEncoding.EncodeToString(res.Y.Marshal()),
		Kw:     res.Kw.Text(16),
		TTilde: base64.StdEncoding.EncodeToString(res.TTilde.Marshal()),
	})
}

// proveOutput mirrors pythia.Proof for wire transport.
type proveOutput struct {
	P string `json:"p"`
	C string `json:"c"`
	U string `json:"u"`
}

func cmdProve(args []string) error {
	fs := flag.NewFlagSet("prove", flag.ExitOnError)
	x := fs.String("x", "", "Base64-encoded blinded point x (required)")
	tTilde := fs.String("ttilde", "", "Base64-encoded H2(t) from eval (required)")
	kw := fs.String("kw", "", "Hex-encoded k_w from eval (required)")
	y := fs.String("y", "", "Base64-encoded eval output y (required)")
	fs.Parse(args)

	if *x == "" || *tTilde == "" || *kw == "" || *y == "" {
		return fmt.Errorf("-x, -ttilde, -kw, and -y are all required")
	}

	xPoint, err := decodeG1(*x)
	if err != nil {
		return fmt.Errorf("decode -x: %w", err)
	}
	tTildePoint, err := decodeG2(*tTilde)
	if err != nil {
		return fmt.Errorf("decode -ttilde: %w", err)
	}
	kwScalar, ok := new(big.Int).SetString(*kw, 16)
	if !ok {
		return fmt.Errorf("decode -kw: not a valid hex integer")
	}
	yPoint, err := decodeGT(*y)
	if err != nil {
		return fmt.Errorf("decode -y: %w", err)
	}

	proof, err := pythia.Prove(xPoint, tTildePoint, kwScalar, yPoint)
	if err != nil {
		return fmt.Errorf("prove: %w", err)
	}

	return printJSON(proveOutput{
		P: base64.StdEncoding.EncodeToString(proof.P.Marshal()),
		C: proof.C.Text(16),
		U: proof.U.Text(16),
	})
}

func cmdVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	x := fs.String("x", "", "Base64-encoded blinded point x (required)")
	tweak := fs.String("t", "", "Record tweak t (required)")
	y := fs.String("y", "", "Base64-encoded eval output y (required)")
	p := fs.String("p", "", "Base64-encoded proof commitment P (required)")
	c := fs.String("c", "", "Hex-encoded proof challenge C (required)")
	u := fs.String("u", "", "Hex-encoded proof response U (required)")
	fs.Parse(args)

	if *x == "" || *tweak == "" || *y == "" || *p == "" || *c == "" || *u == "" {
		return fmt.Errorf("-x, -t, -y, -p, -c, and -u are all required")
	}

	xPoint, err := decodeG1(*x)
	if err != nil {
		return fmt.Errorf("decode -x: %w", err)
	}
	yPoint, err := decodeGT(*y)
	if err != nil {
		return fmt.Errorf("decode -y: %w", err)
	}
	pPoint, err := decodeG1(*p)
	if err != nil {
		return fmt.Errorf("decode -p: %w", err)
	}
	cScalar, ok := new(big.Int).SetString(*c, 16)
	if !ok {
		return fmt.Errorf("decode -c: not a valid hex integer")
	}
	uScalar, ok := new(big.Int).SetString(*u, 16)
	if !ok {
		return fmt.Errorf("decode -u: not a valid hex integer")
	}

	ok2, err := pythia.Verify(xPoint, []byte(*tweak), yPoint, pythia.Proof{P: pPoint, C: cScalar, U: uScalar})
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	fmt.Println(ok2)
	return nil
}

func cmdDeblind(args []string) error {
	fs := flag.NewFlagSet("deblind", flag.ExitOnError)
	y := fs.String("y", "", "Base64-encoded eval output y (required)")
	rInv := fs.String("rinv", "", "Hex-encoded rInv from blind (required)")
	fs.Parse(args)

	if *y == "" || *rInv == "" {
		return fmt.Errorf("-y and -rinv are required")
	}

	yPoint, err := decodeGT(*y)
	if err != nil {
		return fmt.Errorf("decode -y: %w", err)
	}
	rInvScalar, ok := new(big.Int).SetString(*rInv, 16)
	if !ok {
		return fmt.Errorf("decode -rinv: not a valid hex integer")
	}

	a, err := pythia.Deblind(yPoint, rInvScalar)
	if err != nil {
		return fmt.Errorf("deblind: %w", err)
	}

	fmt.Println(base64.StdEncoding.EncodeToString(a.Marshal()))
	return nil
}

type rotateOutput struct {
	Delta  string `json:"delta"`
	PPrime string `json:"pPrime"`
}

func cmdRotate(args []string) error {
	fs := flag.NewFlagSet("rotate", flag.ExitOnError)
	w0 := fs.String("w0", "", "Source tweak w (required)")
	msk0 := fs.String("msk0", "", "Source master key (required)")
	z0 := fs.String("z0", "", "Source pepper (required)")
	w1 := fs.String("w1", "", "Destination tweak w (required)")
	msk1 := fs.String("msk1", "", "Destination master key (required)")
	z1 := fs.String("z1", "", "Destination pepper (required)")
	fs.Parse(args)

	if *w0 == "" || *msk0 == "" || *z0 == "" || *w1 == "" || *msk1 == "" || *z1 == "" {
		return fmt.Errorf("-w0, -msk0, -z0, -w1, -msk1, and -z1 are all required")
	}

	delta, err := pythia.GetDelta([]byte(*w0), []byte(*msk0), []byte(*z0), []byte(*w1), []byte(*msk1), []byte(*z1))
	if err != nil {
		return fmt.Errorf("rotate: %w", err)
	}

	return printJSON(rotateOutput{
		Delta:  delta.Delta.Text(16),
		PPrime: base64.StdEncoding.EncodeToString(delta.PPrime.Marshal()),
	})
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func decodeG1(s string) (bls12381.G1Affine, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return bls12381.G1Affine{}, fmt.Errorf("%w: %v", pythia.ErrInvalidEncoding, err)
	}
	var p bls12381.G1Affine
	if err := p.Unmarshal(raw); err != nil {
		return bls12381.G1Affine{}, fmt.Errorf("%w: %v", pythia.ErrInvalidEncoding, err)
	}
	return p, nil
}

func decodeG2(s string) (bls12381.G2Affine, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return bls12381.G2Affine{}, fmt.Errorf("%w: %v", pythia.ErrInvalidEncoding, err)
	}
	var p bls12381.G2Affine
	if err := p.Unmarshal(raw); err != nil {
		return bls12381.G2Affine{}, fmt.Errorf("%w: %v", pythia.ErrInvalidEncoding, err)
	}
	return p, nil
}

func decodeGT(s string) (bls12381.GT, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return bls12381.GT{}, fmt.Errorf("%w: %v", pythia.ErrInvalidEncoding, err)
	}
	var g bls12381.GT
	if err := g.Unmarshal(raw); err != nil {
		return bls12381.GT{}, fmt.Errorf("%w: %v", pythia.ErrInvalidEncoding, err)
	}
	return g, nil
}
