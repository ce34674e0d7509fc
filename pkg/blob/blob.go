// Package blob provides a container for structured values backed by
// growable memory buffers. The container reserves separate metadata and
// data regions; serialization to and from concrete formats (JSON, CSV,
// ...) is left to future encoders and is not part of this package.
package blob

import (
	"github.com/pbyhre/pb-cpp-data/pkg/memory"
)

// ElementType identifies the type of a value stored in a Blob.
type ElementType int

const (
	Null ElementType = iota
	Object
	Array
	Boolean
	String
	UnsignedInteger
	Integer
	Float
	Date
	Binary
)

var elementTypeNames = map[ElementType]string{
	Null:            "null",
	Object:          "object",
	Array:           "array",
	Boolean:         "boolean",
	String:          "string",
	UnsignedInteger: "unsigned_integer",
	Integer:         "integer",
	Float:           "float",
	Date:            "date",
	Binary:          "binary",
}

// String returns the lowercase name of the element type.
func (t ElementType) String() string {
	if name, ok := elementTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

const (
	// DefaultMetadataSize is the initial size of the metadata region.
	DefaultMetadataSize = 1 << 10

	// DefaultDataSize is the initial size of the data region.
	DefaultDataSize = 1 << 12
)

// Blob holds a metadata region and a data region, each backed by its own
// growable memory buffer sharing the same growth policy. Encoders write
// element descriptors into the metadata region and raw values into the
// data region.
type Blob struct {
	meta *memory.Memory
	data *memory.Memory
}

// New creates a Blob whose regions grow through the given policy. The
// options are applied to both regions.
func New(policy memory.GrowthPolicy, opts ...memory.Option) *Blob {
	return &Blob{
		meta: memory.New(policy, DefaultMetadataSize, opts...),
		data: memory.New(policy, DefaultDataSize, opts...),
	}
}

// Metadata returns the buffer holding element descriptors.
func (b *Blob) Metadata() *memory.Memory { return b.meta }

// Data returns the buffer holding raw element values.
func (b *Blob) Data() *memory.Memory { return b.data }
