// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the lifecycle of a viewer run: loading capture
// files, handing the snapshots to the store, rendering them, publishing them
// and serving them, decoupled from any specific entrypoint like a CLI.
package app
