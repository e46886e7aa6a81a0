package layout

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/huzhiguan/PdfPig/model"
)

// groupIntoLines groups a leaf's words into text lines by vertical
// proximity: words whose bottoms sit within half their average height of
// each other share a line. Lines run top to bottom, words within a line
// left to right.
func groupIntoLines(words []model.Word) []model.TextLine {
	if len(words) == 0 {
		return nil
	}

	half := decimal.NewFromFloat(0.5)
	two := decimal.NewFromInt(2)

	sorted := make([]model.Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		bi := sorted[i].BoundingBox.Bottom()
		bj := sorted[j].BoundingBox.Bottom()
		if !bi.Equal(bj) {
			return bi.GreaterThan(bj) // top of page first
		}
		return sorted[i].BoundingBox.Left().LessThan(sorted[j].BoundingBox.Left())
	})

	var lines []model.TextLine
	current := []model.Word{sorted[0]}

	for _, w := range sorted[1:] {
		prev := current[len(current)-1]
		avgHeight := prev.BoundingBox.Height().Add(w.BoundingBox.Height()).Div(two)
		tolerance := avgHeight.Mul(half)
		gap := prev.BoundingBox.Bottom().Sub(w.BoundingBox.Bottom()).Abs()

		if gap.LessThanOrEqual(tolerance) {
			current = append(current, w)
		} else {
			lines = append(lines, newLine(current))
			current = []model.Word{w}
		}
	}
	lines = append(lines, newLine(current))

	return lines
}

// newLine orders the words left to right and builds the text line
func newLine(words []model.Word) model.TextLine {
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].BoundingBox.Left().LessThan(words[j].BoundingBox.Left())
	})
	return model.NewTextLine(words)
}
