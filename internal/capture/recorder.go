// Package capture is the producer side of a frame graph snapshot. A scheduler
// drives a Recorder while it compiles a frame: it declares resources as they
// are created and passes in the order they will execute, then finalizes the
// recording into a fginfo.FrameGraphInfo ready to be handed to a viewer.
package capture

import (
	"context"

	"github.com/specialistvlad/fgviewer/internal/ctxlog"
	"github.com/specialistvlad/fgviewer/internal/fginfo"
	"github.com/specialistvlad/fgviewer/internal/graphviz"
)

// Recorder accumulates the topology of one frame graph compilation. It is not
// safe for concurrent use; one scheduler goroutine owns it.
type Recorder struct {
	ctx       context.Context
	viewName  string
	nextID    fginfo.ResourceID
	resources map[fginfo.ResourceID]fginfo.Resource
	passes    []fginfo.Pass
}

// NewRecorder starts a recording for the named view.
func NewRecorder(viewName string) *Recorder {
	return &Recorder{
		ctx:       context.Background(),
		viewName:  viewName,
		resources: make(map[fginfo.ResourceID]fginfo.Resource),
	}
}

// WithContext attaches ctx to the recorder. Discoveries are logged at debug
// level through the context logger.
func (r *Recorder) WithContext(ctx context.Context) *Recorder {
	r.ctx = ctx
	return r
}

// AddResource declares a resource and returns its id. Ids start at 0 and are
// never reused within one recording.
func (r *Recorder) AddResource(name string, props ...fginfo.Property) fginfo.ResourceID {
	id := r.nextID
	r.nextID++
	r.resources[id] = fginfo.NewResource(id, name, props)
	ctxlog.FromContext(r.ctx).Debug("Frame graph resource declared.", "view", r.viewName, "id", id, "name", name, "properties", len(props))
	return id
}

// AddPass appends a pass. Passes must be added in execution order. The ids are
// recorded as given, including ids that were never declared.
func (r *Recorder) AddPass(name string, reads, writes []fginfo.ResourceID) {
	r.passes = append(r.passes, fginfo.NewPass(name, reads, writes))
	ctxlog.FromContext(r.ctx).Debug("Frame graph pass declared.", "view", r.viewName, "index", len(r.passes)-1, "name", name, "reads", len(reads), "writes", len(writes))
}

// Len returns the number of declared passes and resources.
func (r *Recorder) Len() (passes, resources int) {
	return len(r.passes), len(r.resources)
}

// Option adjusts how Finish builds the snapshot.
type Option func(*finishOptions)

type finishOptions struct {
	graphviz bool
}

// WithGraphviz makes Finish store the DOT export of the snapshot as its
// graphviz data.
func WithGraphviz() Option {
	return func(o *finishOptions) { o.graphviz = true }
}

// Finish builds the snapshot with one SetResources and one SetPasses call and
// resets the recorder so the next frame can be recorded for the same view.
func (r *Recorder) Finish(opts ...Option) *fginfo.FrameGraphInfo {
	var o finishOptions
	for _, opt := range opts {
		opt(&o)
	}

	info := fginfo.New(r.viewName)
	info.SetResources(r.resources)
	info.SetPasses(r.passes)
	if o.graphviz {
		info.SetGraphvizData(graphviz.Export(info))
	}

	ctxlog.FromContext(r.ctx).Debug("Frame graph recording finished.", "view", r.viewName, "passes", len(r.passes), "resources", len(r.resources), "graphviz", o.graphviz)

	r.nextID = 0
	r.resources = make(map[fginfo.ResourceID]fginfo.Resource)
	r.passes = nil
	return info
}
