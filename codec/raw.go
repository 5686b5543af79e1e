package codec

// Bytes is an identity codec for []byte values. Encode and Decode return
// the input unchanged; the cache ends up holding the bytes verbatim.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }

// String converts between string values and their raw bytes. Since cache
// storage is already text, a typed view over String is a transparent
// window onto the stored value. No validation is performed.
type String struct{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }
