// Package viewer is the consumer side of frame graph snapshots. It keeps the
// latest snapshot of every view, reconstructs a displayable graph from it and
// exposes both to remote viewers.
//
// # Components
//
//   - **Store**: latest snapshot per view. A snapshot equal to the one already
//     held (graphviz text aside) keeps the current revision, so viewers do not
//     redraw for cache-only changes.
//   - **BuildGraph**: nodes and directional read/write edges for one snapshot.
//     Ids missing from the resource mapping become "unknown" nodes.
//   - **Handler** and **Server**: the HTTP API.
//   - **Publisher**: pushes changed snapshots over socket.io.
//   - **Metrics**: Prometheus counters for store activity.
//
// # Thread-Safety
//
// Store is safe for concurrent use. Snapshots held by the store are never
// modified; readers may share them freely.
package viewer
