package viewer

import (
	"github.com/specialistvlad/fgviewer/internal/fginfo"
)

// mainView builds the depth/color snapshot used across the viewer tests.
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

func namedView(name string) *fginfo.FrameGraphInfo {
	info := fginfo.New(name)
	info.SetPasses([]fginfo.Pass{fginfo.NewPass(name+"Pass", nil, nil)})
	return info
}
