// Package collection manages the per-directory sidecar file and the set of
// tracked notebook projects it describes. The sidecar is the sole persisted
// state for a collection; every mutation that should survive the process must
// explicitly call Save.
package collection
