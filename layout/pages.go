package layout

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/huzhiguan/PdfPig/logging"
	"github.com/huzhiguan/PdfPig/model"
)

// PageProcessorConfig holds page processor configuration
type PageProcessorConfig struct {
	// MaxConcurrentPages bounds the number of pages segmented at once
	MaxConcurrentPages int `validate:"min=1,max=64"`
}

// DefaultPageProcessorConfig returns the default configuration
func DefaultPageProcessorConfig() PageProcessorConfig {
	return PageProcessorConfig{MaxConcurrentPages: 4}
}

// PageProcessor segments the pages of a document concurrently with a
// bounded worker limit. Each page is an independent GetBlocks call; the
// segmenter holds no shared mutable state, so pages only need scheduling,
// not synchronization.
type PageProcessor struct {
	cut    *XYCut
	config PageProcessorConfig
}

// NewPageProcessor validates the config and creates a page processor
// around the given segmenter
func NewPageProcessor(cut *XYCut, config PageProcessorConfig) (*PageProcessor, error) {
	if cut == nil {
		return nil, errors.New("page processor: nil segmenter")
	}
	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("page processor config: %w", err)
	}
	return &PageProcessor{cut: cut, config: config}, nil
}

// SegmentPages segments every page's words into blocks. Results keep page
// order. The context cancels outstanding pages; on cancellation the partial
// results are discarded and the context error returned.
func (p *PageProcessor) SegmentPages(ctx context.Context, pages [][]model.Word) ([][]model.TextBlock, error) {
	results := make([][]model.TextBlock, len(pages))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.config.MaxConcurrentPages)

	for i, words := range pages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			logging.Logger().Debug("segmenting page", "page", i, "words", len(words))
			results[i] = p.cut.GetBlocks(words)
			logging.Logger().Debug("page segmented", "page", i, "blocks", len(results[i]))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
