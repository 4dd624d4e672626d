// Package render lays out the slot grids of consecutive slots and draws one antenna
// port of them, either as a PNG (gonum/plot) or as an interactive HTML chart (go-echarts).
package render
