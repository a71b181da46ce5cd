package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/fgviewer/internal/ctxlog"
	"github.com/specialistvlad/fgviewer/internal/fginfo"
	"github.com/specialistvlad/fgviewer/internal/graphviz"
	"github.com/specialistvlad/fgviewer/internal/viewer"
)

// loadCaptures reads every configured capture path.
func (a *App) loadCaptures(ctx context.Context) ([]*fginfo.FrameGraphInfo, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading captures...", "paths", a.config.CapturePaths)

	infos, err := a.loader.Load(ctx, a.config.CapturePaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load captures: %w", err)
	}

	logger.Info("Captures loaded successfully.", "snapshots_found", len(infos))
	return infos, nil
}

// ingest hands each snapshot to the store and returns the resulting entries in
// load order. Consistency findings are logged, never rejected.
func (a *App) ingest(ctx context.Context, infos []*fginfo.FrameGraphInfo) (entries []viewer.Entry, changed []viewer.Entry) {
	logger := ctxlog.FromContext(ctx)

	for _, info := range infos {
		if a.config.RegenerateGraphviz || !info.HasGraphvizData() {
			info.SetGraphvizData(graphviz.Export(info))
		}

		for _, issue := range fginfo.Inspect(info) {
			logger.Warn("Snapshot consistency issue.", "view", info.ViewName(), "issue", issue.String())
		}

		entry, isNew := a.store.Update(ctx, info.Take())
		entries = append(entries, entry)
		if isNew {
			changed = append(changed, entry)
		}
	}
	return entries, changed
}
