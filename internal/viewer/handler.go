package viewer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/specialistvlad/fgviewer/internal/ctxlog"
	"github.com/specialistvlad/fgviewer/internal/graphviz"
	"github.com/specialistvlad/fgviewer/internal/wire"
)

// ViewSummary is one element of the view listing.
type ViewSummary struct {
	View      string    `json:"view"`
	Revision  string    `json:"revision"`
	UpdatedAt time.Time `json:"updatedAt"`
	Passes    int       `json:"passes"`
	Resources int       `json:"resources"`
	Graphviz  bool      `json:"graphviz"`
}

// Handler serves the viewer HTTP API:
//
//	GET /health                        liveness
//	GET /metrics                       prometheus metrics, when a gatherer is set
//	GET /api/framegraphs               view listing
//	GET /api/framegraph?view=NAME      snapshot document, ETag is the revision
//	GET /api/framegraph/graph?view=    display graph
//	GET /api/framegraph/dot?view=      graphviz text, cached or generated
type Handler struct {
	ctx   context.Context
	store *Store
	mux   *http.ServeMux
}

// NewHandler creates the API handler for store. ctx supplies the logger.
// gatherer may be nil to disable /metrics.
func NewHandler(ctx context.Context, store *Store, gatherer prometheus.Gatherer) *Handler {
	h := &Handler{ctx: ctx, store: store, mux: http.NewServeMux()}
	h.mux.HandleFunc("GET /health", h.health)
	h.mux.HandleFunc("GET /api/framegraphs", h.listViews)
	h.mux.HandleFunc("GET /api/framegraph", h.snapshot)
	h.mux.HandleFunc("GET /api/framegraph/graph", h.graph)
	h.mux.HandleFunc("GET /api/framegraph/dot", h.dot)
	if gatherer != nil {
		h.mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctxlog.FromContext(h.ctx).Debug("Viewer API request.", "method", r.Method, "path", r.URL.Path, "remote_addr", r.RemoteAddr)
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (h *Handler) listViews(w http.ResponseWriter, r *http.Request) {
	entries := h.store.Views()
	summaries := make([]ViewSummary, len(entries))
	for i, e := range entries {
		summaries[i] = ViewSummary{
			View:      e.View,
			Revision:  e.Revision.String(),
			UpdatedAt: e.UpdatedAt,
			Passes:    len(e.Info.Passes()),
			Resources: len(e.Info.Resources()),
			Graphviz:  e.Info.HasGraphvizData(),
		}
	}
	h.writeJSON(w, summaries)
}

func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.lookup(w, r)
	if !ok {
		return
	}

	etag := `"` + entry.Revision.String() + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	h.writeJSON(w, wire.FromInfo(entry.Info))
}

func (h *Handler) graph(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, BuildGraph(entry.Info))
}

func (h *Handler) dot(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.lookup(w, r)
	if !ok {
		return
	}
	data := entry.Info.GraphvizData()
	if !entry.Info.HasGraphvizData() {
		data = graphviz.Export(entry.Info)
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	fmt.Fprint(w, data)
}

// lookup resolves the view query parameter and writes an error response when
// it cannot.
func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (Entry, bool) {
	if !r.URL.Query().Has("view") {
		http.Error(w, "missing view parameter", http.StatusBadRequest)
		return Entry{}, false
	}
	view := r.URL.Query().Get("view")
	entry, err := h.store.Get(view)
	if err != nil {
		if errors.Is(err, ErrViewNotFound) {
			http.Error(w, fmt.Sprintf("view %q not found", view), http.StatusNotFound)
			return Entry{}, false
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return Entry{}, false
	}
	return entry, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.FromContext(h.ctx).Error("Failed to write viewer API response.", "error", err)
	}
}
