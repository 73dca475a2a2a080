// Package codec exposes fluentjson chains as reusable, stateless codecs for
// code that wants a fixed Encode/Decode pair instead of a builder per call.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
