package codec

import "encoding/json"

// JSON serializes values with encoding/json. It is the default codec for
// the convenience getters and the zero value is ready to use.
//
// JSON survives a decode into a narrower shape (unknown fields are
// dropped), so prefer it when the cached type may evolve between runs of
// the program sharing a registry.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }

func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
