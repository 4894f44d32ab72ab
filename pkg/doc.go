// Package pkg holds the libraries behind mayanum, a converter from numbers
// and dates to Mayan numerals.
//
// # Overview
//
// A numeral is a stack of base-20 digits read from the top (highest place
// value) down. Each digit is drawn with dots worth one, bars worth five and
// a shell for zero. The packages are organised as follows:
//
//  1. [vigesimal] - base-20 digits, notation and expanded forms
//  2. [input] - number and date parsing into digit groups
//  3. [render] - glyph layout and the SVG, PNG, PDF, JSON and text sinks
//  4. [export] - formats, file names and size presets
//  5. [pipeline] - orchestration (parse → layout → size → render)
//  6. [cache], [observability], [errors], [color] - supporting layers
//  7. [api] - the HTTP API
//
// # Architecture
//
//	"123" or "05-01-2025"
//	         ↓
//	    [input] package (validate, split into groups)
//	         ↓
//	    [vigesimal] package (digits per group)
//	         ↓
//	    [render] glyph/layout (cells, bands, primitives)
//	         ↓
//	    [export] size resolution
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Number:  "2025",
//	    Formats: []string{"svg"},
//	    Size:    "medium",
//	})
//	os.WriteFile(result.FileBase+".svg", result.Artifacts["svg"], 0o644)
//
// [vigesimal]: github.com/matzehuels/mayanum/pkg/vigesimal
// [input]: github.com/matzehuels/mayanum/pkg/input
// [render]: github.com/matzehuels/mayanum/pkg/render
// [export]: github.com/matzehuels/mayanum/pkg/export
// [pipeline]: github.com/matzehuels/mayanum/pkg/pipeline
// [cache]: github.com/matzehuels/mayanum/pkg/cache
// [observability]: github.com/matzehuels/mayanum/pkg/observability
// [errors]: github.com/matzehuels/mayanum/pkg/errors
// [color]: github.com/matzehuels/mayanum/pkg/color
// [api]: github.com/matzehuels/mayanum/pkg/api
package pkg
