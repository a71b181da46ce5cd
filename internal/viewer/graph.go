package viewer

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/specialistvlad/fgviewer/internal/fginfo"
)

// NodeKind distinguishes display graph nodes.
type NodeKind string

const (
	NodePass     NodeKind = "pass"
	NodeResource NodeKind = "resource"
	// NodeUnknown stands for an id referenced by a pass but absent from the
	// snapshot's resources.
	NodeUnknown NodeKind = "unknown"
)

// EdgeKind is the direction label of an edge.
type EdgeKind string

const (
	EdgeRead  EdgeKind = "read"
	EdgeWrite EdgeKind = "write"
)

// Node is one vertex of a display graph.
type Node struct {
	ID         string             `json:"id"`
	Kind       NodeKind           `json:"kind"`
	Label      string             `json:"label"`
	Resource   *fginfo.ResourceID `json:"resource,omitempty"`
	Properties []Property         `json:"properties,omitempty"`
}

// Property is a resource property as shown by a viewer.
type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Edge connects a resource and a pass. Read edges go from the resource to the
// pass, write edges from the pass to the resource.
type Edge struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Kind EdgeKind `json:"kind"`
}

// Graph is the displayable form of a snapshot.
type Graph struct {
	View  string `json:"view"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// BuildGraph reconstructs the display graph of info. Resource nodes come first
// in ascending id order, then pass nodes in execution order, then one unknown
// node per dangling id in order of first reference. Edges follow pass order,
// reads before writes, each in declaration order.
func BuildGraph(info *fginfo.FrameGraphInfo) Graph {
	g := Graph{
		View:  info.ViewName(),
		Nodes: []Node{},
		Edges: []Edge{},
	}

	resources := info.Resources()
	ids := make([]fginfo.ResourceID, 0, len(resources))
	for id := range resources {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, cmp.Compare[fginfo.ResourceID])

	for _, id := range ids {
		r := resources[id]
		props := make([]Property, len(r.Properties()))
		for i, p := range r.Properties() {
			props[i] = Property{Name: p.Name, Value: p.Value}
		}
		g.Nodes = append(g.Nodes, Node{
			ID:         resourceNodeID(id),
			Kind:       NodeResource,
			Label:      r.Name(),
			Resource:   &id,
			Properties: props,
		})
	}

	var unknown []Node
	seenUnknown := make(map[fginfo.ResourceID]bool)
	resourceRef := func(id fginfo.ResourceID) string {
		nodeID := resourceNodeID(id)
		if _, ok := resources[id]; ok || seenUnknown[id] {
			return nodeID
		}
		seenUnknown[id] = true
		unknown = append(unknown, Node{
			ID:       nodeID,
			Kind:     NodeUnknown,
			Label:    fmt.Sprintf("unknown resource %d", id),
			Resource: &id,
		})
		return nodeID
	}

	for i, pass := range info.Passes() {
		passID := fmt.Sprintf("pass_%d", i)
		g.Nodes = append(g.Nodes, Node{ID: passID, Kind: NodePass, Label: pass.Name()})
		for _, id := range pass.Reads() {
			g.Edges = append(g.Edges, Edge{From: resourceRef(id), To: passID, Kind: EdgeRead})
		}
		for _, id := range pass.Writes() {
			g.Edges = append(g.Edges, Edge{From: passID, To: resourceRef(id), Kind: EdgeWrite})
		}
	}

	g.Nodes = append(g.Nodes, unknown...)
	return g
}

func resourceNodeID(id fginfo.ResourceID) string {
	return fmt.Sprintf("resource_%d", id)
}
