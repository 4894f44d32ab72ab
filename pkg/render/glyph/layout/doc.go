// Package layout positions Mayan numeral glyphs on a canvas.
//
// # Overview
//
// A digit in [0, 19] is drawn as bars worth five and dots worth one, with a
// shell glyph standing in for zero:
//
//	7  -> one bar, two dots
//	15 -> three bars
//	0  -> one shell
//
// [ClusterOf] performs that mapping; [Build] and [BuildGroups] place the
// clusters of whole digit sequences.
//
// # Canvas
//
// Every digit gets a cell of CellHeight units. The most significant digit
// sits in the top cell and the units digit at the bottom. Inside a cell the
// glyph cluster is bottom aligned: bars stack upward from the cell floor and
// the dot row rests on the top bar. A shell is anchored to the cell floor by
// its own intrinsic height.
//
// Several groups (for example Day, Month and Year) share one canvas as
// bands of GroupWidth separated by Spacing. The canvas is as tall as the
// longest group; shorter groups leave blank space below them.
//
//	l := layout.BuildGroups([]layout.Group{
//	    {Label: "Day", Digits: vigesimal.ToDigits(5)},
//	    {Label: "Month", Digits: vigesimal.ToDigits(1)},
//	    {Label: "Year", Digits: vigesimal.ToDigits(2025)},
//	}, layout.WithScale(1.5))
//
// # Scale
//
// [WithScale] multiplies glyph dimensions and intra-cell offsets. Cell
// height, band width and band spacing are canvas units and do not scale,
// so the canvas size depends only on digit counts and those three options.
//
// # Metadata
//
// Each [Primitive] and [Cell] carries its [Digit]: group, index, value,
// exponent, multiplier and base-10 contribution. Sinks use this for
// data attributes and JSON export without recomputing place values.
//
// A [Layout] is a fresh value per call; nothing is cached between calls.
package layout
