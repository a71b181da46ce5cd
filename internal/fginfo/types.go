package fginfo

import "slices"

// ResourceID identifies a resource within one snapshot. Ids are assigned by the
// scheduler when the resource is created and are never reused in a snapshot.
type ResourceID uint32

// Property is a single named attribute of a resource, such as its format or
// sample count. Names are not required to be unique within a resource.
type Property struct {
	Name  string
	Value string
}

// Equal reports whether both fields match.
func (p Property) Equal(other Property) bool {
	return p.Name == other.Name && p.Value == other.Value
}

// Resource describes one frame graph resource (texture, buffer). It is never
// modified after construction; a changed resource is replaced as a whole.
type Resource struct {
	id         ResourceID
	name       string
	properties []Property
}

// NewResource creates a Resource. The properties slice is copied.
func NewResource(id ResourceID, name string, properties []Property) Resource {
	return Resource{
		id:         id,
		name:       name,
		properties: slices.Clone(properties),
	}
}

// ID returns the resource identifier.
func (r Resource) ID() ResourceID { return r.id }

// Name returns the display name.
func (r Resource) Name() string { return r.name }

// Properties returns the properties in the order they were given. The slice is
// shared with the resource and must not be modified.
func (r Resource) Properties() []Property { return r.properties }

// Equal compares id, name and properties. Property order is significant.
func (r Resource) Equal(other Resource) bool {
	return r.id == other.id &&
		r.name == other.name &&
		slices.Equal(r.properties, other.properties)
}

// Pass describes one executed pass and the resources it touches. Reads are
// consumed resources, writes are produced or mutated ones. An id may appear in
// both lists (read-modify-write) and in several passes.
type Pass struct {
	name   string
	reads  []ResourceID
	writes []ResourceID
}

// NewPass creates a Pass. The reads and writes slices are copied and their
// order is preserved.
func NewPass(name string, reads, writes []ResourceID) Pass {
	return Pass{
		name:   name,
		reads:  slices.Clone(reads),
		writes: slices.Clone(writes),
	}
}

// Name returns the display name.
func (p Pass) Name() string { return p.name }

// Reads returns the ids read by the pass. Must not be modified.
func (p Pass) Reads() []ResourceID { return p.reads }

// Writes returns the ids written by the pass. Must not be modified.
func (p Pass) Writes() []ResourceID { return p.writes }

// Equal compares name, reads and writes. Order within reads and writes is
// significant.
func (p Pass) Equal(other Pass) bool {
	return p.name == other.name &&
		slices.Equal(p.reads, other.reads) &&
		slices.Equal(p.writes, other.writes)
}
