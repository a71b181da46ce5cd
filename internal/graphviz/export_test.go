package graphviz

import (
	"strings"
	"testing"

	"github.com/specialistvlad/fgviewer/internal/fginfo"
	"github.com/stretchr/testify/assert"
)

func mainView() *fginfo.FrameGraphInfo {
	info := fginfo.New("MainView")
	info.SetResources(map[fginfo.ResourceID]fginfo.Resource{
		1: fginfo.NewResource(1, "Depth", nil),
		2: fginfo.NewResource(2, "Color", []fginfo.Property{{Name: "format", Value: "RGBA8"}}),
	})
	info.SetPasses([]fginfo.Pass{
		fginfo.NewPass("Opaque", nil, []fginfo.ResourceID{1, 2}),
		fginfo.NewPass("Post", []fginfo.ResourceID{1, 2}, []fginfo.ResourceID{2}),
	})
	return info
}

func TestExport_ContainsNodes(t *testing.T) {
	out := Export(mainView())

	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "digraph"))
	assert.Contains(t, out, "Opaque")
	assert.Contains(t, out, "Post")
	assert.Contains(t, out, "Depth")
	assert.Contains(t, out, "Color (format=RGBA8)")
	assert.Contains(t, out, readColor)
	assert.Contains(t, out, writeColor)
	assert.NotContains(t, out, "unknown resource")
}

func TestExport_Deterministic(t *testing.T) {
	assert.Equal(t, Export(mainView()), Export(mainView()))
}

func TestExport_DanglingReference(t *testing.T) {
	info := fginfo.New("MainView")
	info.SetPasses([]fginfo.Pass{
		fginfo.NewPass("Composite", []fginfo.ResourceID{7}, []fginfo.ResourceID{7}),
	})

	out := Export(info)
	assert.Contains(t, out, "unknown resource 7")
	assert.Equal(t, 1, strings.Count(out, "unknown resource 7"))
}

func TestResourceLabel(t *testing.T) {
	r := fginfo.NewResource(3, "Color", []fginfo.Property{
		{Name: "format", Value: "RGBA8"},
		{Name: "samples", Value: "4"},
	})
	assert.Equal(t, "Color (format=RGBA8, samples=4)", ResourceLabel(r))
	assert.Equal(t, "Depth", ResourceLabel(fginfo.NewResource(1, "Depth", nil)))
}

func TestExport_QuotesViewName(t *testing.T) {
	testCases := []struct {
		view string
		want string
	}{
		{view: "MainView", want: `digraph "MainView" {`},
		{view: `Main View "x"`, want: `digraph "Main View \"x\"" {`},
		{view: "node", want: `digraph "node" {`},
		{view: `trailing\`, want: `digraph "trailing\\" {`},
		{view: "", want: `digraph "" {`},
	}

	for _, tc := range testCases {
		t.Run(tc.view, func(t *testing.T) {
			out := Export(fginfo.New(tc.view))
			assert.True(t, strings.HasPrefix(strings.TrimSpace(out), tc.want), "header of %q", out)
		})
	}
}
