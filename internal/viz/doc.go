// Package viz renders trajectory figures.
//
// A [Figure] is a pair of equal-length series plus labels. Renderers present
// it one at a time:
//
//   - [Viewer]: full-screen terminal view that blocks until dismissed
//   - [Printer]: writes the terminal plot to a stream and returns
//   - [Exporter]: saves the figure as an image through gonum/plot
//   - [Chain]: runs several renderers in order
//
// Time series (non-decreasing X) are drawn with asciigraph after resampling
// onto a uniform X grid. Anything else, such as a phase portrait, is traced
// on a Braille [Canvas].
//
// # Key Bindings
//
//	q, Esc, Enter, Space - dismiss the figure
//	T                    - cycle color themes
//	Ctrl+C               - abort the remaining figures
package viz
