// Package layout provides page segmentation for recognized words using the
// recursive X-Y cut algorithm.
//
// The segmenter decomposes a page into text blocks - contiguous regions
// whose words naturally belong together (paragraphs, columns, captions) -
// by alternating vertical and horizontal cuts along low-density valleys in
// the projection profiles of the word bounding boxes. The gap thresholds
// that decide whether two neighbors belong together are derived from the
// dominant glyph dimensions of the page, so the segmentation adapts to the
// page's font sizes.
//
// # Usage
//
//	cut := layout.NewXYCut()
//	blocks := cut.GetBlocks(words)
//
// With custom thresholds:
//
//	cfg := layout.DefaultXYCutConfig()
//	cfg.MinimumWidth = decimal.NewFromInt(20)
//	cfg.DominantFontWidthFunc = layout.Constant(decimal.NewFromInt(2))
//	cut, err := layout.NewXYCutWithConfig(cfg)
//
// # Configuration
//
//   - MinimumWidth suppresses vertical cuts that would leave a band narrower
//     than the given width
//   - DominantFontWidthFunc maps the sample of glyph widths to the
//     horizontal gap threshold (default: statistical mode)
//   - DominantFontHeightFunc maps the sample of glyph heights to the
//     vertical gap threshold (default: 1.5 x mode)
//
// # Concurrency
//
// A single GetBlocks call is purely functional and allocates nothing shared;
// pages may be segmented concurrently. [PageProcessor] wraps a segmenter
// with a bounded worker pool for multi-page documents.
package layout
