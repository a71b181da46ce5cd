package hclcapture

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// fileRoot is the top-level structure of a capture file.
type fileRoot struct {
	FrameGraphs []*frameGraphBlock `hcl:"framegraph,block"`
}

// frameGraphBlock is one captured view.
type frameGraphBlock struct {
	ViewName  string           `hcl:"view_name,label"`
	Graphviz  string           `hcl:"graphviz,optional"`
	Resources []*resourceBlock `hcl:"resource,block"`
	Passes    []*passBlock     `hcl:"pass,block"`
	DefRange  hcl.Range        `hcl:",def_range"`
}

// resourceBlock is one resource of a view. Properties are decoded by hand so
// that conversion problems point at the attribute.
type resourceBlock struct {
	Name       string         `hcl:"name,label"`
	ID         uint32         `hcl:"id"`
	Properties hcl.Expression `hcl:"properties,optional"`
	DefRange   hcl.Range      `hcl:",def_range"`
}

// passBlock is one pass of a view.
type passBlock struct {
	Name   string   `hcl:"name,label"`
	Reads  []uint32 `hcl:"reads,optional"`
	Writes []uint32 `hcl:"writes,optional"`
}

// propertySpec is the Go form of one element of a properties list.
type propertySpec struct {
	Name  string `cty:"name"`
	Value string `cty:"value"`
}

// propertyObjectType is the cty type of one properties list element.
var propertyObjectType = cty.Object(map[string]cty.Type{
	"name":  cty.String,
	"value": cty.String,
})

// propertyListType is the cty type a properties attribute must convert to.
var propertyListType = cty.List(propertyObjectType)
