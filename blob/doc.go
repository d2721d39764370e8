// Package blob provides a self-describing binary container for a
// variable-length-coded integer sequence.
//
// A blob is produced in one shot from a complete []uint64 slice: the
// values are bit-packed back-to-back with one of the codec package's five
// schemes, the packed payload is optionally compressed, and a fixed
// header records everything needed to read it back (scheme, compression,
// byte order, value count, payload bit length, and an xxHash64 checksum).
//
// Typical producers are index and overlap stores that persist sorted
// offset or gap sequences; the container is deliberately not a stream:
// the whole sequence is encoded and decoded as a unit.
//
//	encoder, _ := blob.NewEncoder(
//	    blob.WithScheme(format.SchemeFibonacci),
//	    blob.WithCompression(format.CompressionS2),
//	)
//	b, _ := encoder.Encode(gaps)
//
//	decoder, _ := blob.NewDecoder(b.Bytes())
//	values, _ := decoder.Decode()
package blob
