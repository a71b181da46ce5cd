// Package hclcapture reads and writes frame graph snapshots stored as HCL
// capture files. Captures let a snapshot be saved from a running engine,
// attached to a bug report, diffed in review and loaded back into a viewer.
//
// A capture file holds one or more framegraph blocks:
//
//	framegraph "MainView" {
//	  graphviz = "digraph{}"   # optional
//
//	  resource "Color" {
//	    id         = 2
//	    properties = [{ name = "format", value = "RGBA8" }]
//	  }
//
//	  pass "Opaque" {
//	    reads  = []
//	    writes = [1, 2]
//	  }
//	}
//
// Pass blocks are kept in file order, which is the execution order. Property
// values may be written as numbers or booleans; they are converted to strings.
package hclcapture
