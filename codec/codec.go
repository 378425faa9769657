// Package codec provides pluggable serialization for values crossing a
// byte-store boundary, such as cached compile outputs.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
