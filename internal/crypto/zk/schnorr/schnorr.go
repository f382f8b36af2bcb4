package schnorr

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"io"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"

	"github.com/smallyu/go-schnorr25519/pkg/ristretto"
	"github.com/smallyu/go-schnorr25519/pkg/scalar"
	sigerr "github.com/smallyu/go-schnorr25519/pkg/schnorr"
)

// ProofSize is the length of an encoded proof, R || s.
const ProofSize = ristretto.PointSize + scalar.Size

// challengeDomain is the cSHAKE256 customization string of the challenge.
var challengeDomain = []byte("schnorr25519-pok")

// Proof represents a Schnorr proof of knowledge of a discrete logarithm.
// Proves knowledge of x such that X = x * G.
type Proof struct {
	R *ristretto.Point     // Commitment R = k * G
	S *edwards25519.Scalar // Response s = k + e * x
}

// Prove generates a Schnorr proof for the secret x, public key X = x*G.
// The nonce is read from rand; crypto/rand is used if rand is nil.
func Prove(rand io.Reader, x *edwards25519.Scalar, X *ristretto.Point) (*Proof, error) {
	if x == nil || X == nil {
		return nil, errors.New("schnorr: inputs cannot be nil")
	}
	if rand == nil {
		rand = crand.Reader
	}

	// 1. Generate random nonce k
	var wide [scalar.WideSize]byte
	if _, err := io.ReadFull(rand, wide[:]); err != nil {
		return nil, fmt.Errorf("schnorr: failed to read nonce: %w", err)
	}
	k, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		return nil, fmt.Errorf("schnorr: failed to reduce nonce: %w", err)
	}

	// 2. Compute R = k * G
	R := new(ristretto.Point).ScalarBaseMult(k)

	// 3. Compute challenge e = H(X, R)
	e := challenge(X, R)

	// 4. Compute s = k + e * x mod l
	s := edwards25519.NewScalar().MultiplyAdd(e, x, k)

	return &Proof{
		R: R,
		S: s,
	}, nil
}

// Verify checks the validity of the Schnorr proof for public key X.
func (p *Proof) Verify(X *ristretto.Point) bool {
	if p == nil || p.R == nil || p.S == nil || X == nil {
		return false
	}

	e := challenge(X, p.R)

	// s*G - e*X must equal R
	negE := edwards25519.NewScalar().Negate(e)
	R := new(ristretto.Point).VarTimeDoubleScalarBaseMult(negE, X, p.S)

	return R.Equal(p.R) == 1
}

// VerifyEdwards checks the proof against a public key given as an
// edwards25519 point. Keys with a small-order component are rejected with
// an error matching ErrPointDecompression; a proof that does not verify
// yields ErrEquation.
func (p *Proof) VerifyEdwards(X *edwards25519.Point) error {
	if X == nil {
		return errors.New("schnorr: public key cannot be nil")
	}
	pub, err := ristretto.FromEdwards(X)
	if err != nil {
		return err
	}
	if !p.Verify(pub) {
		return sigerr.NewError("schnorr.VerifyEdwards", sigerr.ErrEquation)
	}
	return nil
}

// Bytes returns the ProofSize-byte encoding R || s.
func (p *Proof) Bytes() []byte {
	out := make([]byte, 0, ProofSize)
	out = append(out, p.R.Bytes()...)
	return append(out, p.S.Bytes()...)
}

// ParseProof decodes a proof produced by Bytes.
func ParseProof(b []byte) (*Proof, error) {
	const op = "schnorr.ParseProof"
	if len(b) != ProofSize {
		return nil, sigerr.BytesLengthError(op, "proof", ProofSize, len(b))
	}

	R, err := new(ristretto.Point).SetCanonicalBytes(b[:ristretto.PointSize])
	if err != nil {
		return nil, sigerr.NewError(op, err)
	}
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b[ristretto.PointSize:])
	if err != nil {
		return nil, sigerr.NewError(op, sigerr.ErrScalarFormat)
	}

	return &Proof{R: R, S: s}, nil
}

// challenge computes e = cSHAKE256(X || R) reduced mod l.
func challenge(X, R *ristretto.Point) *edwards25519.Scalar {
	h := sha3.NewCShake256(nil, challengeDomain)
	h.Write(X.Bytes())
	h.Write(R.Bytes())
	return scalar.FromXOF(h)
}
