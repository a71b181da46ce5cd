package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/specialistvlad/fgviewer/internal/ctxlog"
	"github.com/specialistvlad/fgviewer/internal/viewer"
)

// Run executes the main application logic based on the provided configuration.
// When a serve port is configured it blocks until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	infos, err := a.loadCaptures(ctx)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		a.logger.Warn("No frame graphs found in captures, nothing to show.")
	}

	entries, changed := a.ingest(ctx, infos)
	a.logger.Debug("Snapshots stored.", "views", len(entries), "changed", len(changed))

	if err := a.writeOutput(entries); err != nil {
		return err
	}

	if a.config.PublishURL != "" {
		if err := a.publish(ctx, changed); err != nil {
			return err
		}
	}

	if a.config.ServePort > 0 {
		if err := a.serve(ctx); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) writeOutput(entries []viewer.Entry) (err error) {
	out := a.outW
	if a.config.OutPath != "" {
		var f *os.File
		f, err = os.Create(a.config.OutPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		out = f
	}
	if err := render(out, a.config.Format, entries); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (a *App) publish(ctx context.Context, entries []viewer.Entry) (err error) {
	emitter, err := a.dial(ctx, a.config.PublishURL, a.config.PublishNamespace, a.config.PublishTimeout)
	if err != nil {
		return fmt.Errorf("failed to connect to viewer: %w", err)
	}
	pub := viewer.NewPublisher(emitter)
	defer func() {
		err = errors.Join(err, pub.Close())
	}()

	for _, entry := range entries {
		if err := pub.Publish(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) serve(ctx context.Context) error {
	handler := viewer.NewHandler(ctx, a.store, a.registry)
	srv := viewer.NewServer(fmt.Sprintf(":%d", a.config.ServePort), handler)
	if err := srv.Listen(); err != nil {
		return err
	}
	return srv.Serve(ctx)
}
