package fondue

import (
	"fmt"
)

// DecodeError reports stored cache text that failed to decode through a
// typed view's codec. The typed layer raises it as a panic rather than
// returning it: text the cache itself stored can only fail to decode
// when the program is miswired (two views of one namespace disagreeing
// on codec or type), and substituting a zero value would silently
// corrupt callers.
type DecodeError struct {
	Cache string
	Key   string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("fondue: decode cached value %q in cache %q: %v", e.Key, e.Cache, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a value that could not be serialized on its way
// into a typed view. Unlike decode failures it is returned, not
// panicked: the cache state is untouched and the caller can handle or
// drop the value.
type EncodeError struct {
	Cache string
	Key   string
	Err   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("fondue: encode value %q for cache %q: %v", e.Key, e.Cache, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
