// Package fginfo defines the frame graph snapshot: an immutable description of
// one frame graph compilation for a single view, captured so that an external
// viewer can display or compare it.
//
// # Model
//
// A FrameGraphInfo aggregates:
//   - **View name**: the view the frame graph was compiled for.
//   - **Passes**: the executed passes, in the execution order chosen by the
//     scheduler. Each Pass lists the ids of the resources it reads and writes.
//   - **Resources**: a mapping from ResourceID to Resource. Each Resource
//     carries its own id, a display name and an ordered list of Property values.
//   - **Graphviz data**: optional DOT text describing the same topology.
//
// # Lifecycle
//
//  1. **Creation:** the scheduler calls New with the view name.
//  2. **Population:** SetResources and SetPasses replace the whole collection
//     they own; SetGraphvizData may follow. Only the last call of each setter
//     is observable.
//  3. **Handoff:** Take moves the contents into a new snapshot owned by the
//     consumer and leaves the source empty.
//  4. **Inspection:** the consumer only reads.
//
// The package never sorts, validates or cross-checks what the producer hands it.
// A pass may name a resource id that is absent from the mapping, and a mapping
// key may disagree with the id stored in its Resource. Inspect reports both
// conditions for debugging without changing the contract.
//
// # Equality
//
// Equal compares the view name, the passes in order and the resources as a
// mapping. The graphviz data is a derived artifact and takes no part in any
// comparison.
//
// # Thread-Safety
//
// None of the types are synchronized. One goroutine populates a snapshot and
// hands it off; after that it is only read.
package fginfo
