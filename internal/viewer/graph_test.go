package viewer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/fgviewer/internal/fginfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idPtr(id fginfo.ResourceID) *fginfo.ResourceID { return &id }

func findNode(g Graph, id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

func TestBuildGraph_MainView(t *testing.T) {
	expected := Graph{
		View: "MainView",
		Nodes: []Node{
			{ID: "resource_1", Kind: NodeResource, Label: "Depth", Resource: idPtr(1), Properties: []Property{}},
			{ID: "resource_2", Kind: NodeResource, Label: "Color", Resource: idPtr(2), Properties: []Property{{Name: "format", Value: "RGBA8"}}},
			{ID: "pass_0", Kind: NodePass, Label: "Opaque"},
			{ID: "pass_1", Kind: NodePass, Label: "Post"},
		},
		Edges: []Edge{
			{From: "pass_0", To: "resource_1", Kind: EdgeWrite},
			{From: "pass_0", To: "resource_2", Kind: EdgeWrite},
			{From: "resource_1", To: "pass_1", Kind: EdgeRead},
			{From: "resource_2", To: "pass_1", Kind: EdgeRead},
			{From: "pass_1", To: "resource_2", Kind: EdgeWrite},
		},
	}

	if diff := cmp.Diff(expected, BuildGraph(mainView())); diff != "" {
		t.Errorf("graph mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildGraph_UnknownResources(t *testing.T) {
	info := fginfo.New("MainView")
	info.SetResources(map[fginfo.ResourceID]fginfo.Resource{
		1: fginfo.NewResource(1, "Depth", nil),
	})
	info.SetPasses([]fginfo.Pass{
		fginfo.NewPass("Import", []fginfo.ResourceID{5}, []fginfo.ResourceID{1}),
		fginfo.NewPass("Export", []fginfo.ResourceID{1, 5}, []fginfo.ResourceID{6}),
	})

	g := BuildGraph(info)

	var unknown []Node
	for _, n := range g.Nodes {
		if n.Kind == NodeUnknown {
			unknown = append(unknown, n)
		}
	}
	require.Len(t, unknown, 2)
	assert.Equal(t, "resource_5", unknown[0].ID)
	assert.Equal(t, "unknown resource 5", unknown[0].Label)
	assert.Equal(t, "resource_6", unknown[1].ID)

	n, ok := findNode(g, "resource_5")
	require.True(t, ok)
	assert.Equal(t, fginfo.ResourceID(5), *n.Resource)
	assert.Len(t, g.Edges, 5)
}

func TestBuildGraph_Empty(t *testing.T) {
	g := BuildGraph(fginfo.New(""))
	assert.NotNil(t, g.Nodes)
	assert.NotNil(t, g.Edges)
	assert.Empty(t, g.Nodes)

	_, ok := findNode(g, "pass_0")
	assert.False(t, ok)
}
