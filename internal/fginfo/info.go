package fginfo

import (
	"maps"
	"slices"
)

// noCopy may be embedded into structs which must not be copied after first use.
// go vet's copylocks check reports value copies of such structs.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// FrameGraphInfo is the snapshot of one frame graph compilation for one view.
//
// The graphviz data is auxiliary: it is never consulted by Equal, so two
// snapshots with the same topology compare equal whether or not, and however,
// their diagram text was generated.
//
// A FrameGraphInfo is used through a pointer and is transferred with Take. There
// is no way to duplicate one.
type FrameGraphInfo struct {
	_ noCopy

	viewName     string
	passes       []Pass
	resources    map[ResourceID]Resource
	graphvizData string
}

// New creates an empty snapshot for the named view.
func New(viewName string) *FrameGraphInfo {
	return &FrameGraphInfo{
		viewName:  viewName,
		passes:    []Pass{},
		resources: map[ResourceID]Resource{},
	}
}

// SetResources replaces the entire resource mapping. Every key is expected to
// equal the ID of its Resource; this is not checked. The snapshot keeps its own
// copy of the mapping.
func (f *FrameGraphInfo) SetResources(resources map[ResourceID]Resource) {
	if resources == nil {
		f.resources = map[ResourceID]Resource{}
		return
	}
	f.resources = maps.Clone(resources)
}

// SetPasses replaces the entire pass list. The passes must already be in
// execution order; they are neither sorted nor validated.
func (f *FrameGraphInfo) SetPasses(passes []Pass) {
	if passes == nil {
		f.passes = []Pass{}
		return
	}
	f.passes = slices.Clone(passes)
}

// SetGraphvizData replaces the cached graph export text.
func (f *FrameGraphInfo) SetGraphvizData(data string) {
	f.graphvizData = data
}

// ViewName returns the view name, or "" for a nil snapshot.
func (f *FrameGraphInfo) ViewName() string {
	if f == nil {
		return ""
	}
	return f.viewName
}

// Passes returns the passes in execution order. The slice is borrowed and must
// not be modified.
func (f *FrameGraphInfo) Passes() []Pass {
	if f == nil {
		return nil
	}
	return f.passes
}

// Resources returns the resource mapping. The map is borrowed and must not be
// modified.
func (f *FrameGraphInfo) Resources() map[ResourceID]Resource {
	if f == nil {
		return nil
	}
	return f.resources
}

// GraphvizData returns the cached graph export text, or "" if none was set.
func (f *FrameGraphInfo) GraphvizData() string {
	if f == nil {
		return ""
	}
	return f.graphvizData
}

// HasGraphvizData reports whether non-empty export text is cached.
func (f *FrameGraphInfo) HasGraphvizData() bool {
	return f.GraphvizData() != ""
}

// Equal reports whether both snapshots describe the same frame graph: same view
// name, same passes in the same order and the same resource mapping. Graphviz
// data is ignored. Two nil snapshots are equal.
func (f *FrameGraphInfo) Equal(other *FrameGraphInfo) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.viewName == other.viewName &&
		slices.EqualFunc(f.passes, other.passes, Pass.Equal) &&
		maps.EqualFunc(f.resources, other.resources, Resource.Equal)
}

// Take moves the contents of f into a new snapshot and returns it. f is left
// empty, with no view name, and remains usable.
func (f *FrameGraphInfo) Take() *FrameGraphInfo {
	if f == nil {
		return nil
	}
	moved := &FrameGraphInfo{
		viewName:     f.viewName,
		passes:       f.passes,
		resources:    f.resources,
		graphvizData: f.graphvizData,
	}
	f.viewName = ""
	f.passes = []Pass{}
	f.resources = map[ResourceID]Resource{}
	f.graphvizData = ""
	return moved
}
