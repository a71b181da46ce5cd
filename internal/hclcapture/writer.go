package hclcapture

import (
	"cmp"
	"slices"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/fgviewer/internal/fginfo"
	"github.com/zclconf/go-cty/cty"
)

// Write renders the snapshots as one capture file with a framegraph block per
// snapshot. Resources are written in ascending key order with the mapping key
// as their id, so the output always parses. Parsing it yields equal snapshots
// when every key equals its Resource's ID.
func Write(infos ...*fginfo.FrameGraphInfo) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()
	for i, info := range infos {
		if i > 0 {
			root.AppendNewline()
		}
		writeFrameGraph(root, info)
	}
	return f.Bytes()
}

func writeFrameGraph(root *hclwrite.Body, info *fginfo.FrameGraphInfo) {
	body := root.AppendNewBlock("framegraph", []string{info.ViewName()}).Body()
	if info.HasGraphvizData() {
		body.SetAttributeValue("graphviz", cty.StringVal(info.GraphvizData()))
	}

	resources := info.Resources()
	ids := make([]fginfo.ResourceID, 0, len(resources))
	for id := range resources {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, cmp.Compare[fginfo.ResourceID])

	for _, id := range ids {
		r := resources[id]
		body.AppendNewline()
		rb := body.AppendNewBlock("resource", []string{r.Name()}).Body()
		rb.SetAttributeValue("id", cty.NumberUIntVal(uint64(id)))
		if props := r.Properties(); len(props) > 0 {
			rb.SetAttributeValue("properties", propertiesValue(props))
		}
	}

	for _, pass := range info.Passes() {
		body.AppendNewline()
		pb := body.AppendNewBlock("pass", []string{pass.Name()}).Body()
		pb.SetAttributeValue("reads", idsValue(pass.Reads()))
		pb.SetAttributeValue("writes", idsValue(pass.Writes()))
	}
}

func propertiesValue(props []fginfo.Property) cty.Value {
	vals := make([]cty.Value, len(props))
	for i, p := range props {
		vals[i] = cty.ObjectVal(map[string]cty.Value{
			"name":  cty.StringVal(p.Name),
			"value": cty.StringVal(p.Value),
		})
	}
	return cty.ListVal(vals)
}

func idsValue(ids []fginfo.ResourceID) cty.Value {
	if len(ids) == 0 {
		return cty.ListValEmpty(cty.Number)
	}
	vals := make([]cty.Value, len(ids))
	for i, id := range ids {
		vals[i] = cty.NumberUIntVal(uint64(id))
	}
	return cty.ListVal(vals)
}
