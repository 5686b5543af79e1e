package codec

import "google.golang.org/protobuf/proto"

// Protobuf serializes generated protobuf messages. Because a decoded
// message must be allocated as its concrete type, the codec needs a
// constructor; build it with NewProtobuf.
type Protobuf[T proto.Message] struct {
	new func() T
}

// NewProtobuf returns a codec for the message type produced by ctor,
// e.g. NewProtobuf(func() *userpb.User { return &userpb.User{} }).
func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.Marshal(v)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}
