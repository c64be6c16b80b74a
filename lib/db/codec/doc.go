// Package codec encodes and decodes a whole book collection for persistence.
// It defines a common interface and two implementations with different
// trade-offs.
//
// Key Components:
//
//   - ICodec: Core interface that all codec implementations must satisfy.
//
//   - jsonCodecImpl: Indented JSON (one array of objects) via json-iterator.
//     This is the default format: human-readable and editable by hand.
//
//   - gobCodecImpl: Go's gob encoding. Smaller and faster to decode, but opaque
//     to anything that is not a Go program.
//
// Thread Safety:
//
//	All codec implementations are stateless and safe for concurrent use.
//
// Usage:
//
//	c, err := codec.ByName("json")
//	data, err := c.Encode(books)
//	books, err = c.Decode(data)
package codec
