// Package wire converts frame graph snapshots to and from the documents sent to
// remote viewers. A document carries exactly the snapshot's fields; the
// graphviz text is optional and omitted when empty.
package wire

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/fgviewer/internal/fginfo"
)

// Version is the document schema version written by this package.
const Version = 1

// ErrUnsupportedVersion is returned when decoding a document whose version
// this package does not understand.
var ErrUnsupportedVersion = errors.New("unsupported frame graph document version")

// Document is the serialized form of a fginfo.FrameGraphInfo.
type Document struct {
	Version   int        `json:"version" yaml:"version"`
	ViewName  string     `json:"viewName" yaml:"viewName"`
	Passes    []Pass     `json:"passes" yaml:"passes"`
	Resources []Resource `json:"resources" yaml:"resources"`
	Graphviz  string     `json:"graphviz,omitempty" yaml:"graphviz,omitempty"`
}

// Pass is the serialized form of a fginfo.Pass.
type Pass struct {
	Name   string              `json:"name" yaml:"name"`
	Reads  []fginfo.ResourceID `json:"reads" yaml:"reads"`
	Writes []fginfo.ResourceID `json:"writes" yaml:"writes"`
}

// Resource is the serialized form of a fginfo.Resource.
type Resource struct {
	ID         fginfo.ResourceID `json:"id" yaml:"id"`
	Name       string            `json:"name" yaml:"name"`
	Properties []Property        `json:"properties" yaml:"properties"`
}

// Property is the serialized form of a fginfo.Property.
type Property struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// FromInfo builds the document for info. Resources are written with their own
// ID, so a mapping key that disagrees with it is not preserved. Resources are
// listed in ascending id order and every list is non-nil so that encoders emit
// [] rather than null.
func FromInfo(info *fginfo.FrameGraphInfo) *Document {
	doc := &Document{
		Version:   Version,
		ViewName:  info.ViewName(),
		Passes:    make([]Pass, 0, len(info.Passes())),
		Resources: make([]Resource, 0, len(info.Resources())),
		Graphviz:  info.GraphvizData(),
	}

	for _, p := range info.Passes() {
		doc.Passes = append(doc.Passes, Pass{
			Name:   p.Name(),
			Reads:  nonNil(p.Reads()),
			Writes: nonNil(p.Writes()),
		})
	}

	for _, r := range info.Resources() {
		props := make([]Property, len(r.Properties()))
		for i, p := range r.Properties() {
			props[i] = Property{Name: p.Name, Value: p.Value}
		}
		doc.Resources = append(doc.Resources, Resource{ID: r.ID(), Name: r.Name(), Properties: props})
	}
	slices.SortStableFunc(doc.Resources, func(a, b Resource) int { return cmp.Compare(a.ID, b.ID) })

	return doc
}

// ToInfo rebuilds the snapshot described by doc. When several resources share
// an id, the last one wins.
func (doc *Document) ToInfo() (*fginfo.FrameGraphInfo, error) {
	if doc.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}

	resources := make(map[fginfo.ResourceID]fginfo.Resource, len(doc.Resources))
	for _, r := range doc.Resources {
		props := make([]fginfo.Property, len(r.Properties))
		for i, p := range r.Properties {
			props[i] = fginfo.Property{Name: p.Name, Value: p.Value}
		}
		resources[r.ID] = fginfo.NewResource(r.ID, r.Name, props)
	}

	passes := make([]fginfo.Pass, len(doc.Passes))
	for i, p := range doc.Passes {
		passes[i] = fginfo.NewPass(p.Name, p.Reads, p.Writes)
	}

	info := fginfo.New(doc.ViewName)
	info.SetResources(resources)
	info.SetPasses(passes)
	info.SetGraphvizData(doc.Graphviz)
	return info, nil
}

func nonNil(ids []fginfo.ResourceID) []fginfo.ResourceID {
	if ids == nil {
		return []fginfo.ResourceID{}
	}
	return ids
}
