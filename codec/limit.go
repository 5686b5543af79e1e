package codec

import "fmt"

// Limit wraps another codec and enforces a maximum payload size in both
// directions. Encode fails when the encoded form exceeds Max, keeping
// oversized values out of cache storage; Decode fails before invoking
// Inner when the stored payload exceeds Max. If Max <= 0 the limit is
// disabled and Limit is a pass-through.
type Limit[V any] struct {
	// Inner is the codec being wrapped. It must be set.
	Inner Codec[V]
	// Max is the permitted payload length in bytes.
	Max int
}

func (c Limit[V]) Encode(v V) ([]byte, error) {
	b, err := c.Inner.Encode(v)
	if err != nil {
		return nil, err
	}
	if c.Max > 0 && len(b) > c.Max {
		return nil, fmt.Errorf("encoded payload too large: %d > %d", len(b), c.Max)
	}
	return b, nil
}

func (c Limit[V]) Decode(b []byte) (V, error) {
	if c.Max > 0 && len(b) > c.Max {
		var zero V
		return zero, fmt.Errorf("stored payload too large: %d > %d", len(b), c.Max)
	}
	return c.Inner.Decode(b)
}
