package scalar

import (
	"bytes"
	"crypto/rand"
	"io"
	"math/big"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// groupOrder is l = 2^252 + 27742317777372353535851937790883648493.
var groupOrder = func() *big.Int {
	c, _ := new(big.Int).SetString("27742317777372353535851937790883648493", 10)
	l := new(big.Int).Lsh(big.NewInt(1), 252)
	return l.Add(l, c)
}()

func shake(data string) sha3.ShakeHash {
	h := sha3.NewShake256()
	h.Write([]byte(data))
	return h
}

func scalarFromUint64(t testing.TB, v uint64) *edwards25519.Scalar {
	var b [Size]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b[:])
	require.NoError(t, err)
	return s
}

func randomScalar(t testing.TB) *edwards25519.Scalar {
	var wide [WideSize]byte
	_, err := rand.Read(wide[:])
	require.NoError(t, err)
	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	require.NoError(t, err)
	return s
}

func TestFromXOFDeterministic(t *testing.T) {
	a := FromXOF(shake("domain|input"))
	b := FromXOF(shake("domain|input"))
	c := FromXOF(shake("domain|other"))

	assert.Equal(t, 1, a.Equal(b))
	assert.Equal(t, 0, a.Equal(c))
}

func TestFromXOFIsWideReduction(t *testing.T) {
	xof := shake("wide reduction")
	stream := xof.Clone()

	var wide [2 * WideSize]byte
	_, err := io.ReadFull(stream, wide[:])
	require.NoError(t, err)

	first := FromXOF(xof)
	want := new(big.Int).Mod(leToBig(wide[:WideSize]), groupOrder)
	assert.Equal(t, 0, want.Cmp(leToBig(first.Bytes())))

	// The stream advanced: the next scalar comes from the next 64 bytes.
	second := FromXOF(xof)
	want = new(big.Int).Mod(leToBig(wide[WideSize:]), groupOrder)
	assert.Equal(t, 0, want.Cmp(leToBig(second.Bytes())))
	assert.Equal(t, 0, first.Equal(second))
}

func TestFromXOFCanonical(t *testing.T) {
	for i := 0; i < 128; i++ {
		xof := sha3.NewCShake256(nil, []byte("canonical"))
		xof.Write([]byte{byte(i)})

		s := FromXOF(xof)
		assert.Equal(t, -1, leToBig(s.Bytes()).Cmp(groupOrder))
	}
}

func TestFromXOFBlake2b(t *testing.T) {
	newXOF := func() blake2b.XOF {
		x, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
		require.NoError(t, err)
		x.Write([]byte("blake2x input"))
		return x
	}

	a := FromXOF(newXOF())
	b := FromXOF(newXOF())
	assert.Equal(t, 1, a.Equal(b))
	assert.Equal(t, -1, leToBig(a.Bytes()).Cmp(groupOrder))
}

func TestFromXOFShortReadPanics(t *testing.T) {
	assert.Panics(t, func() {
		FromXOF(bytes.NewReader(make([]byte, WideSize-1)))
	})
}

func TestMultiplyByCofactor(t *testing.T) {
	eight := scalarFromUint64(t, Cofactor)

	for i := 0; i < 64; i++ {
		s := randomScalar(t)
		want := edwards25519.NewScalar().Multiply(s, eight)
		assert.Equal(t, 1, MultiplyByCofactor(s).Equal(want))
	}

	assert.Equal(t, 1, MultiplyByCofactor(scalarFromUint64(t, 5)).Equal(scalarFromUint64(t, 40)))
}

func TestDivideByCofactor(t *testing.T) {
	assert.Equal(t, 1, DivideByCofactor(scalarFromUint64(t, 43)).Equal(scalarFromUint64(t, 5)))

	for i := 0; i < 64; i++ {
		s := randomScalar(t)
		want := new(big.Int).Rsh(leToBig(s.Bytes()), 3)
		assert.Equal(t, 0, want.Cmp(leToBig(DivideByCofactor(s).Bytes())))
	}
}

func TestCofactorScalarRoundTrip(t *testing.T) {
	for i := 0; i < 64; i++ {
		s := randomScalar(t)

		// Clear the low bits so the division is exact.
		b := s.Bytes()
		b[0] &= 0b11111000
		s, err := edwards25519.NewScalar().SetCanonicalBytes(b)
		require.NoError(t, err)

		assert.Equal(t, 1, MultiplyByCofactor(DivideByCofactor(s)).Equal(s))
	}
}
