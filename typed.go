package fondue

import (
	"github.com/ParkBlake/fondue/codec"
)

// Typed is a typed view over a string cache: values of type V pass
// through a codec on their way in and out while the cache itself stays
// stringly keyed and valued, shareable through a Registry.
//
// The engine knows nothing of codecs. A Typed view is an optional
// adapter; several views with different codecs can sit over one cache,
// though mixing codecs or types under the same keys will end in a
// DecodeError panic. Decode failures are fatal on purpose: the stored
// text was produced by an earlier Encode, so a failure means the
// program is miswired, not that data is merely missing.
type Typed[V any] struct {
	cache *Cache[string, string]
	codec codec.Codec[V]
}

// NewTyped wraps cache with a codec. Panics if cd is nil; there is no
// default codec at this layer.
func NewTyped[V any](cache *Cache[string, string], cd codec.Codec[V]) *Typed[V] {
	if cd == nil {
		panic("fondue: NewTyped requires a codec")
	}
	return &Typed[V]{cache: cache, codec: cd}
}

// Cache returns the underlying string cache.
func (t *Typed[V]) Cache() *Cache[string, string] { return t.cache }

// Get returns the cached value for key, computing, encoding and storing
// it on a miss. Errors from compute propagate unmodified and cache
// nothing; an encoding failure is returned as an *EncodeError and
// likewise caches nothing.
func (t *Typed[V]) Get(key string, compute func() (V, error)) (V, error) {
	text, err := t.cache.GetOrCompute(key, func() (string, error) {
		v, err := compute()
		if err != nil {
			return "", err
		}
		b, err := t.codec.Encode(v)
		if err != nil {
			return "", &EncodeError{Cache: t.cache.Name(), Key: key, Err: err}
		}
		return string(b), nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return t.decode(key, text), nil
}

// TryGet returns the decoded value for key if present and fresh. It
// never computes and never counts a miss.
func (t *Typed[V]) TryGet(key string) (V, bool) {
	text, ok := t.cache.TryGet(key)
	if !ok {
		var zero V
		return zero, false
	}
	return t.decode(key, text), true
}

// Insert encodes value and stores it under key unconditionally.
func (t *Typed[V]) Insert(key string, value V) error {
	b, err := t.codec.Encode(value)
	if err != nil {
		return &EncodeError{Cache: t.cache.Name(), Key: key, Err: err}
	}
	t.cache.Insert(key, string(b))
	return nil
}

// Invalidate removes key from the underlying cache.
func (t *Typed[V]) Invalidate(key string) bool {
	return t.cache.Invalidate(key)
}

func (t *Typed[V]) decode(key, text string) V {
	v, err := t.codec.Decode([]byte(text))
	if err != nil {
		panic(&DecodeError{Cache: t.cache.Name(), Key: key, Err: err})
	}
	return v
}
