// Package grid models the time-frequency resource grid of a single NR downlink slot.
//
// # Reading Guide
//
//   - signal_id.go: SignalID catalog and the bitmask predicates that classify it
//   - fragment.go: Fragment, the atomic occupation claim a signal produces, and the Signal interface
//   - slot_grid.go: SlotGrid, the port × subcarrier × symbol occupancy table
//   - frame.go: frame-structure constants and Numerology
//
// Signals live in sub-packages (grid/csirs) and only depend on this package through
// Fragment and Signal. The grid never inspects a signal beyond asking for its fragments:
// every cell simply holds the SignalID of the last fragment written to it.
//
// A SlotGrid is not safe for concurrent Fill calls; callers own their grid.
package grid
