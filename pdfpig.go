// Package pdfpig provides a fluent API for segmenting recognized page words
// into text blocks.
//
// Basic usage:
//
//	blocks, err := pdfpig.NewSegmenter().Blocks(words)
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	blocks, err := pdfpig.NewSegmenter().
//	    MinimumWidth(decimal.NewFromInt(20)).
//	    FixedThresholds(decimal.NewFromInt(2), decimal.NewFromInt(3)).
//	    Blocks(words)
//
// For advanced use cases, the lower-level layout package is also available.
package pdfpig

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/huzhiguan/PdfPig/layout"
	"github.com/huzhiguan/PdfPig/model"
)

// Segmenter configures page segmentation fluently. Construct with
// NewSegmenter, chain option calls, then call a terminal operation
// (Blocks or PageBlocks).
type Segmenter struct {
	config             layout.XYCutConfig
	maxConcurrentPages int
}

// NewSegmenter returns a Segmenter with the default configuration:
// no minimum width, dominant font metrics derived from the glyphs.
func NewSegmenter() *Segmenter {
	return &Segmenter{
		config:             layout.DefaultXYCutConfig(),
		maxConcurrentPages: layout.DefaultPageProcessorConfig().MaxConcurrentPages,
	}
}

// MinimumWidth suppresses vertical cuts that would leave a band narrower
// than w
func (s *Segmenter) MinimumWidth(w decimal.Decimal) *Segmenter {
	s.config.MinimumWidth = w
	return s
}

// FixedThresholds replaces the dominant font metrics with constant gap
// thresholds
func (s *Segmenter) FixedThresholds(fontWidth, fontHeight decimal.Decimal) *Segmenter {
	s.config.DominantFontWidthFunc = layout.Constant(fontWidth)
	s.config.DominantFontHeightFunc = layout.Constant(fontHeight)
	return s
}

// Thresholds replaces the dominant font metric functions
func (s *Segmenter) Thresholds(fontWidth, fontHeight layout.MetricFunc) *Segmenter {
	s.config.DominantFontWidthFunc = fontWidth
	s.config.DominantFontHeightFunc = fontHeight
	return s
}

// MaxConcurrentPages bounds the worker count used by PageBlocks
func (s *Segmenter) MaxConcurrentPages(n int) *Segmenter {
	s.maxConcurrentPages = n
	return s
}

// Blocks segments one page's words into text blocks
func (s *Segmenter) Blocks(words []model.Word) ([]model.TextBlock, error) {
	cut, err := layout.NewXYCutWithConfig(s.config)
	if err != nil {
		return nil, err
	}
	return cut.GetBlocks(words), nil
}

// PageBlocks segments every page's words concurrently, keeping page order
func (s *Segmenter) PageBlocks(ctx context.Context, pages [][]model.Word) ([][]model.TextBlock, error) {
	cut, err := layout.NewXYCutWithConfig(s.config)
	if err != nil {
		return nil, err
	}
	proc, err := layout.NewPageProcessor(cut, layout.PageProcessorConfig{
		MaxConcurrentPages: s.maxConcurrentPages,
	})
	if err != nil {
		return nil, err
	}
	return proc.SegmentPages(ctx, pages)
}
