// Package csirs maps Channel State Information Reference Signals onto a slot grid.
//
// A CSI-RS resource is described by a row of TS 38.211 Table 7.4.1.5.3-1 (see Lookup)
// plus per-instance placement: frequency-domain bitmap, first PRB, PRB count, density,
// and one or two starting OFDM symbols. Signal.Fragments expands that description into
// grid.Fragment values, one per port and symbol, pairing ports two at a time.
package csirs
