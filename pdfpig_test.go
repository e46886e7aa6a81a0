package pdfpig

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/huzhiguan/PdfPig/model"
)

func makeWord(text string, left, bottom, right, top float64) model.Word {
	return model.Word{
		Text: text,
		BoundingBox: model.NewRectangle(
			model.NewPoint(decimal.NewFromFloat(left), decimal.NewFromFloat(bottom)),
			model.NewPoint(decimal.NewFromFloat(right), decimal.NewFromFloat(top))),
	}
}

func TestSegmenterBlocks(t *testing.T) {
	words := []model.Word{
		makeWord("upper", 0, 10, 5, 15),
		makeWord("lower", 0, 0, 5, 5),
	}

	blocks, err := NewSegmenter().
		FixedThresholds(decimal.NewFromInt(1), decimal.NewFromInt(1)).
		Blocks(words)
	if err != nil {
		t.Fatalf("Blocks: %v", err)
	}
	if len(blocks) != 2 {
		t.Errorf("expected 2 blocks, got %d", len(blocks))
	}
}

func TestSegmenterInvalidConfig(t *testing.T) {
	_, err := NewSegmenter().
		MinimumWidth(decimal.NewFromInt(-5)).
		Blocks([]model.Word{makeWord("w", 0, 0, 1, 1)})
	if err == nil {
		t.Error("expected error for negative minimum width")
	}
}

func TestSegmenterPageBlocks(t *testing.T) {
	pages := [][]model.Word{
		{makeWord("p0", 0, 0, 5, 5)},
		{makeWord("p1", 0, 0, 5, 5)},
	}

	results, err := NewSegmenter().
		MaxConcurrentPages(2).
		PageBlocks(context.Background(), pages)
	if err != nil {
		t.Fatalf("PageBlocks: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(results))
	}
	for i, blocks := range results {
		if len(blocks) != 1 {
			t.Errorf("page %d: expected 1 block, got %d", i, len(blocks))
		}
	}
}
