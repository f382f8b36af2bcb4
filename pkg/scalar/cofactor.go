package scalar

// MultiplyBytesByCofactor shifts the 256-bit little-endian integer in b left
// by three bits, in place. The top three bits of b[31] are dropped.
func MultiplyBytesByCofactor(b *[Size]byte) {
	var high byte
	for i := range b {
		carry := b[i] & 0b11100000
		b[i] = b[i]<<3 | high
		high = carry >> 5
	}
}

// DivideBytesByCofactor shifts the 256-bit little-endian integer in b right
// by three bits, in place. The low three bits of b[0] are dropped.
func DivideBytesByCofactor(b *[Size]byte) {
	var low byte
	for i := Size - 1; i >= 0; i-- {
		rem := b[i] & 0b00000111
		b[i] = b[i]>>3 | low
		low = rem << 5
	}
}
