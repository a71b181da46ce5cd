package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/specialistvlad/fgviewer/internal/hclcapture"
	"github.com/specialistvlad/fgviewer/internal/viewer"
	"github.com/specialistvlad/fgviewer/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mainViewCapture = `
framegraph "MainView" {
  resource "Depth" {
    id = 1
  }

  resource "Color" {
    id = 2
    properties = [
      { name = "format", value = "RGBA8" },
    ]
  }

  pass "Opaque" {
    writes = [1, 2]
  }

  pass "Post" {
    reads  = [1, 2, 9]
    writes = [2]
  }
}
`

const shadowViewCapture = `
framegraph "ShadowView" {
  resource "ShadowMap" {
    id = 0
  }

  pass "Shadow" {
    writes = [0]
  }
}
`

func writeCapture(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))
	return path
}

func newTestConfig(t *testing.T, format string, paths ...string) *Config {
	t.Helper()
	cfg, err := NewConfig(Config{CapturePaths: paths, Format: format, LogFormat: "text"})
	require.NoError(t, err)
	return cfg
}

func TestRun_JSONOutput(t *testing.T) {
	path := writeCapture(t, t.TempDir(), "main.hcl", mainViewCapture)
	a, out, logs := SetupAppTest(t, newTestConfig(t, FormatJSON, path))

	require.NoError(t, a.Run(context.Background()))

	info, err := wire.UnmarshalJSON([]byte(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "MainView", info.ViewName())
	assert.Len(t, info.Passes(), 2)
	assert.Len(t, info.Resources(), 2)
	assert.True(t, info.HasGraphvizData(), "export text is generated when the capture has none")

	assert.Contains(t, logs.String(), "Snapshot consistency issue.")
	assert.Contains(t, logs.String(), "pass 1 reads unknown resource 9")

	entry, err := a.Store().Get("MainView")
	require.NoError(t, err)
	assert.True(t, entry.Info.Equal(info))
}

func TestRun_TextOutput(t *testing.T) {
	dir := t.TempDir()
	writeCapture(t, dir, "main.hcl", mainViewCapture)
	writeCapture(t, dir, "shadow.hcl", shadowViewCapture)
	a, out, _ := SetupAppTest(t, newTestConfig(t, FormatText, dir))

	require.NoError(t, a.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "View MainView")
	assert.Contains(t, text, "View ShadowView")
	assert.Contains(t, text, "format=RGBA8")
	assert.Contains(t, text, "Opaque")
	assert.Contains(t, text, "1, 2, 9")
	assert.Contains(t, text, "pass 1 reads unknown resource 9")
	assert.Len(t, a.Store().Views(), 2)
}

func TestRun_DOTOutput(t *testing.T) {
	path := writeCapture(t, t.TempDir(), "main.hcl", mainViewCapture)
	a, out, _ := SetupAppTest(t, newTestConfig(t, FormatDOT, path))

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "digraph")
	assert.Contains(t, out.String(), "Opaque")
}

func TestRun_HCLOutputRoundTrips(t *testing.T) {
	path := writeCapture(t, t.TempDir(), "main.hcl", mainViewCapture)
	a, out, _ := SetupAppTest(t, newTestConfig(t, FormatHCL, path))

	require.NoError(t, a.Run(context.Background()))

	infos, err := hclcapture.Parse(context.Background(), "out.hcl", []byte(out.String()))
	require.NoError(t, err)
	require.Len(t, infos, 1)

	entry, err := a.Store().Get("MainView")
	require.NoError(t, err)
	assert.True(t, entry.Info.Equal(infos[0]))
}

func TestRun_YAMLOutputSeparatesDocuments(t *testing.T) {
	dir := t.TempDir()
	writeCapture(t, dir, "a.hcl", mainViewCapture)
	writeCapture(t, dir, "b.hcl", shadowViewCapture)
	a, out, _ := SetupAppTest(t, newTestConfig(t, FormatYAML, dir))

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, 1, strings.Count(out.String(), "---\n"))
}

func TestRun_OutFile(t *testing.T) {
	dir := t.TempDir()
	path := writeCapture(t, dir, "main.hcl", mainViewCapture)
	cfg := newTestConfig(t, FormatJSON, path)
	cfg.OutPath = filepath.Join(dir, "snapshot.json")
	a, out, _ := SetupAppTest(t, cfg)

	require.NoError(t, a.Run(context.Background()))
	assert.Empty(t, out.String())

	data, err := os.ReadFile(cfg.OutPath)
	require.NoError(t, err)
	info, err := wire.UnmarshalJSON(data)
	require.NoError(t, err)
	assert.Equal(t, "MainView", info.ViewName())
}

func TestRun_LoadError(t *testing.T) {
	path := writeCapture(t, t.TempDir(), "broken.hcl", `framegraph "X" {`)
	a, _, _ := SetupAppTest(t, newTestConfig(t, FormatNone, path))

	err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load captures")
}

func TestRun_NoCapturesFound(t *testing.T) {
	a, out, logs := SetupAppTest(t, newTestConfig(t, FormatJSON, t.TempDir()))

	require.NoError(t, a.Run(context.Background()))
	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), "No frame graphs found")
}

type fakeEmitter struct {
	events []any
	closed bool
	err    error
}

func (f *fakeEmitter) Emit(_ string, payload any) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, payload)
	return nil
}

func (f *fakeEmitter) Close() error {
	f.closed = true
	return nil
}

func TestRun_Publish(t *testing.T) {
	dir := t.TempDir()
	writeCapture(t, dir, "main.hcl", mainViewCapture)
	writeCapture(t, dir, "shadow.hcl", shadowViewCapture)
	cfg := newTestConfig(t, FormatNone, dir)
	cfg.PublishURL = "http://viewer.test:3000"

	emitter := &fakeEmitter{}
	var gotURL, gotNamespace string
	dial := func(_ context.Context, url, namespace string, timeout time.Duration) (viewer.Emitter, error) {
		gotURL, gotNamespace = url, namespace
		assert.Equal(t, DefaultPublishTimeout, timeout)
		return emitter, nil
	}
	a, _, _ := SetupAppTest(t, cfg, WithDialer(dial))

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "http://viewer.test:3000", gotURL)
	assert.Equal(t, "/", gotNamespace)
	assert.Len(t, emitter.events, 2)
	assert.True(t, emitter.closed)
}

func TestRun_PublishDialError(t *testing.T) {
	path := writeCapture(t, t.TempDir(), "main.hcl", mainViewCapture)
	cfg := newTestConfig(t, FormatNone, path)
	cfg.PublishURL = "http://viewer.test:3000"

	dial := func(context.Context, string, string, time.Duration) (viewer.Emitter, error) {
		return nil, errors.New("connection refused")
	}
	a, _, _ := SetupAppTest(t, cfg, WithDialer(dial))

	err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRun_PublishEmitErrorClosesEmitter(t *testing.T) {
	path := writeCapture(t, t.TempDir(), "main.hcl", mainViewCapture)
	cfg := newTestConfig(t, FormatNone, path)
	cfg.PublishURL = "http://viewer.test:3000"

	emitter := &fakeEmitter{err: errors.New("emit failed")}
	dial := func(context.Context, string, string, time.Duration) (viewer.Emitter, error) {
		return emitter, nil
	}
	a, _, _ := SetupAppTest(t, cfg, WithDialer(dial))

	err := a.Run(context.Background())
	require.ErrorContains(t, err, "emit failed")
	assert.True(t, emitter.closed)
}
