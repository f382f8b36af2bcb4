// Package schnorr holds the error values shared by the scalar and
// ristretto packages and by protocols built on top of them.
//
// Every error produced by this module is either one of the sentinel
// values below or a *SignatureError wrapping one, so callers can test
// for a failure class with errors.Is:
//
//	p, err := ristretto.FromEdwards(e)
//	if errors.Is(err, schnorr.ErrPointDecompression) {
//		// e has a small-order component
//	}
package schnorr
