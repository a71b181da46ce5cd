// Package graphviz renders a frame graph snapshot as Graphviz DOT text. The
// output is what a scheduler stores with FrameGraphInfo.SetGraphvizData and
// what a viewer falls back to when no cached text was captured.
package graphviz

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/emicklei/dot"
	"github.com/specialistvlad/fgviewer/internal/fginfo"
)

// Edge colors follow the usual frame graph convention: reads flow into a pass,
// writes flow out of it.
const (
	readColor  = "darkolivegreen4"
	writeColor = "red3"
)

// Export returns the DOT description of info. Passes are boxes in execution
// order, resources are ellipses in ascending id order, read edges point from a
// resource to the pass and write edges from the pass to the resource. Ids that
// are not in the resource mapping become dashed "unknown" nodes.
//
// The output is deterministic for equal snapshots.
func Export(info *fginfo.FrameGraphInfo) string {
	g := dot.NewGraph(dot.Directed)
	g.ID(quoteID(info.ViewName()))
	g.Attr("rankdir", "LR")
	g.Attr("bgcolor", "white")

	resources := info.Resources()
	ids := make([]fginfo.ResourceID, 0, len(resources))
	for id := range resources {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, cmp.Compare[fginfo.ResourceID])

	nodes := make(map[fginfo.ResourceID]dot.Node, len(ids))
	for _, id := range ids {
		r := resources[id]
		nodes[id] = g.Node(resourceNodeID(id)).
			Label(ResourceLabel(r)).
			Attr("shape", "ellipse").
			Attr("style", "filled").
			Attr("fillcolor", "lightskyblue1")
	}

	resourceNode := func(id fginfo.ResourceID) dot.Node {
		if n, ok := nodes[id]; ok {
			return n
		}
		n := g.Node(resourceNodeID(id)).
			Label(fmt.Sprintf("unknown resource %d", id)).
			Attr("shape", "ellipse").
			Attr("style", "dashed")
		nodes[id] = n
		return n
	}

	for i, pass := range info.Passes() {
		p := g.Node(fmt.Sprintf("pass_%d", i)).
			Label(pass.Name()).
			Attr("shape", "box").
			Attr("style", "filled").
			Attr("fillcolor", "darkorange")
		for _, id := range pass.Reads() {
			g.Edge(resourceNode(id), p).Attr("color", readColor)
		}
		for _, id := range pass.Writes() {
			g.Edge(p, resourceNode(id)).Attr("color", writeColor)
		}
	}

	return g.String()
}

// ResourceLabel formats a resource as its name followed by its properties,
// e.g. "Color (format=RGBA8, samples=4)".
func ResourceLabel(r fginfo.Resource) string {
	props := r.Properties()
	if len(props) == 0 {
		return r.Name()
	}
	parts := make([]string, len(props))
	for i, p := range props {
		parts[i] = p.Name + "=" + p.Value
	}
	return fmt.Sprintf("%s (%s)", r.Name(), strings.Join(parts, ", "))
}

// idEscaper escapes a string for use inside a double-quoted DOT ID.
var idEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", "")

// quoteID returns name as a quoted DOT ID, so any view name (including
// keywords such as node) yields a parseable graph header.
func quoteID(name string) string {
	return `"` + idEscaper.Replace(name) + `"`
}

func resourceNodeID(id fginfo.ResourceID) string {
	return fmt.Sprintf("resource_%d", id)
}
