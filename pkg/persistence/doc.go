// Package persistence stores terminal attribute snapshots on disk.
//
// This package handles the JSON serialization of stty snapshots (the raw
// attribute and window-size blocks plus every symbolic value) so a terminal
// configuration can be captured and reinstated across processes.
package persistence
