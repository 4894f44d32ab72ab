// Package export resolves the pixel size of an exported diagram.
//
// A diagram has a natural size in canvas units ([Dimensions]). Export
// targets a concrete [Size] chosen by [Preset]:
//
//   - Original: the natural size, rounded to whole pixels
//   - Small, Medium, Large: 600, 1200 and 2400 pixels wide, height from the
//     natural aspect ratio
//   - Custom: user width and height, each clamped to [100, 5000]
//
// A degenerate natural size (zero or non-finite side) uses aspect ratio 1.
//
// With a locked custom size the anchor axis is kept and the other axis is
// derived from the aspect ratio, then clamped as well:
//
//	size := export.Resolve(export.Custom,
//	    export.Dimensions{Width: 400, Height: 200},
//	    export.CustomSize{Width: 1000, Lock: export.LockWidth})
//	// size == export.Size{Width: 1000, Height: 500}
package export
