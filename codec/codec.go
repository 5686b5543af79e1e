// Package codec defines the value codecs used by typed cache views.
//
// Caches store opaque text; a Codec is the bridge between a Go value and
// that stored form. Encode runs when a computed or inserted value enters
// the cache, Decode runs when stored text is handed back to the caller.
// Decode must accept anything Encode produced for the same codec; stored
// text that fails to decode is treated as corruption by the typed layer.
package codec

// Codec encodes values of type V to bytes for storage and back.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
