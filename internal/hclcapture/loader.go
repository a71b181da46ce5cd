package hclcapture

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/fgviewer/internal/ctxlog"
	"github.com/specialistvlad/fgviewer/internal/fginfo"
	"github.com/specialistvlad/fgviewer/internal/fsutil"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Extension is the file extension of capture files.
const Extension = ".hcl"

// Loader reads capture files from disk.
type Loader struct{}

// NewLoader creates a new capture loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every capture file found in paths. A path is either a file or a
// directory searched recursively for .hcl files; missing paths are skipped.
// Snapshots are returned in discovery order: files in order, blocks in file
// order.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*fginfo.FrameGraphInfo, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Capture loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(Extension, paths...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered capture files.", "count", len(files))

	parser := hclparse.NewParser()
	var infos []*fginfo.FrameGraphInfo
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse capture file %s: %w", file, diags)
		}
		decoded, err := decodeFile(ctx, file, hclFile)
		if err != nil {
			return nil, err
		}
		infos = append(infos, decoded...)
	}

	logger.Debug("Capture loading complete.", "files", len(files), "framegraphs", len(infos))
	return infos, nil
}

// Parse decodes a capture held in memory. filename is only used in
// diagnostics.
func Parse(ctx context.Context, filename string, src []byte) ([]*fginfo.FrameGraphInfo, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse capture file %s: %w", filename, diags)
	}
	return decodeFile(ctx, filename, hclFile)
}

func decodeFile(ctx context.Context, filename string, file *hcl.File) ([]*fginfo.FrameGraphInfo, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode capture file %s: %w", filename, diags)
	}

	infos := make([]*fginfo.FrameGraphInfo, 0, len(root.FrameGraphs))
	for _, block := range root.FrameGraphs {
		info, diags := translateFrameGraph(block)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode capture file %s: %w", filename, diags)
		}
		ctxlog.FromContext(ctx).Debug("Frame graph decoded.", "file", filename, "view", info.ViewName(), "passes", len(info.Passes()), "resources", len(info.Resources()))
		infos = append(infos, info)
	}
	return infos, nil
}

// translateFrameGraph converts a decoded block into a snapshot. Resource ids
// must be unique within the block; pass references are not checked.
func translateFrameGraph(block *frameGraphBlock) (*fginfo.FrameGraphInfo, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	resources := make(map[fginfo.ResourceID]fginfo.Resource, len(block.Resources))
	for _, rb := range block.Resources {
		id := fginfo.ResourceID(rb.ID)
		if prev, exists := resources[id]; exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate resource id",
				Detail:   fmt.Sprintf("Resource %q reuses id %d already assigned to %q in view %q.", rb.Name, id, prev.Name(), block.ViewName),
				Subject:  rb.DefRange.Ptr(),
			})
			continue
		}
		props, propDiags := decodeProperties(rb.Properties)
		diags = append(diags, propDiags...)
		resources[id] = fginfo.NewResource(id, rb.Name, props)
	}

	passes := make([]fginfo.Pass, len(block.Passes))
	for i, pb := range block.Passes {
		passes[i] = fginfo.NewPass(pb.Name, toResourceIDs(pb.Reads), toResourceIDs(pb.Writes))
	}

	info := fginfo.New(block.ViewName)
	info.SetResources(resources)
	info.SetPasses(passes)
	info.SetGraphvizData(block.Graphviz)
	return info, diags
}

// decodeProperties evaluates a properties attribute into an ordered property
// list. An absent attribute yields no properties.
func decodeProperties(expr hcl.Expression) ([]fginfo.Property, hcl.Diagnostics) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}

	converted, err := convert.Convert(val, propertyListType)
	if err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid properties",
			Detail:   fmt.Sprintf("Properties must be a list of objects with name and value: %s.", err),
			Subject:  expr.Range().Ptr(),
		}}
	}

	var specs []propertySpec
	if err := gocty.FromCtyValue(converted, &specs); err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid properties",
			Detail:   err.Error(),
			Subject:  expr.Range().Ptr(),
		}}
	}

	props := make([]fginfo.Property, len(specs))
	for i, s := range specs {
		props[i] = fginfo.Property{Name: s.Name, Value: s.Value}
	}
	return props, nil
}

func toResourceIDs(ids []uint32) []fginfo.ResourceID {
	if ids == nil {
		return nil
	}
	out := make([]fginfo.ResourceID, len(ids))
	for i, id := range ids {
		out[i] = fginfo.ResourceID(id)
	}
	return out
}
