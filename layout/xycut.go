package layout

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/huzhiguan/PdfPig/model"
)

// XYCutConfig holds segmenter configuration
type XYCutConfig struct {
	// MinimumWidth suppresses vertical cuts that would leave a band
	// narrower than this. It does not apply to the height axis.
	MinimumWidth decimal.Decimal

	// DominantFontWidthFunc maps the sample of glyph widths (absolute
	// values, every letter of every word) to the horizontal gap threshold:
	// two horizontally adjacent words separated by no more than the
	// threshold stay in the same band.
	DominantFontWidthFunc MetricFunc `validate:"required"`

	// DominantFontHeightFunc maps the sample of glyph heights to the
	// vertical gap threshold between adjacent rows.
	DominantFontHeightFunc MetricFunc `validate:"required"`
}

// DefaultXYCutConfig returns the default configuration: no minimum width,
// mode-based font width, 1.5 x mode font height.
func DefaultXYCutConfig() XYCutConfig {
	return XYCutConfig{
		MinimumWidth:           decimal.Zero,
		DominantFontWidthFunc:  defaultFontWidth,
		DominantFontHeightFunc: defaultFontHeight,
	}
}

// Validate checks the configuration
func (c XYCutConfig) Validate() error {
	if c.MinimumWidth.IsNegative() {
		return fmt.Errorf("xycut: minimum width must not be negative, got %s", c.MinimumWidth)
	}
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("xycut config: %w", err)
	}
	return nil
}

// XYCut segments a page of words into text blocks with the recursive X-Y
// cut algorithm. The zero value is not usable; construct with NewXYCut or
// NewXYCutWithConfig.
type XYCut struct {
	config XYCutConfig
}

// NewXYCut creates a segmenter with the default configuration
func NewXYCut() *XYCut {
	return &XYCut{config: DefaultXYCutConfig()}
}

// NewXYCutWithConfig creates a segmenter with a custom configuration
func NewXYCutWithConfig(config XYCutConfig) (*XYCut, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &XYCut{config: config}, nil
}

// GetBlocks builds the partition tree for the given words and returns its
// leaves as text blocks, in document order. Empty input yields no blocks;
// a page that never splits yields a single block holding all words.
func (x *XYCut) GetBlocks(words []model.Word) []model.TextBlock {
	if len(words) == 0 {
		return nil
	}

	tree := x.verticalCut(newLeaf(words), 0)

	var blocks []model.TextBlock
	for _, leaf := range tree.leaves() {
		blocks = append(blocks, model.NewTextBlock(groupIntoLines(leaf.words)))
	}
	return blocks
}

// interval is one [lo, hi] band of a projection profile
type interval struct {
	lo, hi decimal.Decimal
}

// verticalCut splits a leaf along vertical valleys of the horizontal
// projection profile and recurses into horizontal cuts.
func (x *XYCut) verticalCut(leaf *partitionNode, level int) *partitionNode {
	words := discardWhitespace(leaf.words)
	if len(words) == 0 {
		return &partitionNode{}
	}

	sort.SliceStable(words, func(i, j int) bool {
		return words[i].BoundingBox.Left().LessThan(words[j].BoundingBox.Left())
	})

	if len(words) == 1 || leaf.boundingBox().Width().LessThanOrEqual(x.config.MinimumWidth) {
		return leaf
	}

	dominantFontWidth := x.config.DominantFontWidthFunc(letterWidths(words))

	var profile []interval
	cur := interval{words[0].BoundingBox.Left(), words[0].BoundingBox.Right()}
	last := len(words) - 1
	for i := 1; i < len(words); i++ {
		left := words[i].BoundingBox.Left()
		right := words[i].BoundingBox.Right()

		leftInside := left.GreaterThanOrEqual(cur.lo) && left.LessThanOrEqual(cur.hi)
		rightInside := right.GreaterThanOrEqual(cur.lo) && right.LessThanOrEqual(cur.hi)

		if leftInside || rightInside {
			// Words are sorted by Left, so only the right edge can stick out.
			if leftInside && right.GreaterThan(cur.hi) {
				cur.hi = right
			}
		} else if left.Sub(cur.hi).LessThanOrEqual(dominantFontWidth) {
			// Gap no wider than a typical glyph: same band.
			cur.hi = right
		} else if cur.hi.Sub(cur.lo).LessThan(x.config.MinimumWidth) {
			// Band still too narrow to cut off.
			cur.hi = right
		} else {
			if i != last {
				profile = append(profile, cur)
			}
			cur = interval{left, right}
		}

		if i == last {
			profile = append(profile, cur)
		}
	}

	children, claimed := x.cutChildren(words, profile, verticalAxis, level)
	return salvageLost(children, words, claimed)
}

// horizontalCut mirrors verticalCut over the Bottom/Top axis. The minimum
// width does not apply here. When the profile never splits, the level
// counter stops the recursion: a group that survives one full
// vertical/horizontal round intact is emitted as a leaf.
func (x *XYCut) horizontalCut(leaf *partitionNode, level int) *partitionNode {
	words := discardWhitespace(leaf.words)
	if len(words) == 0 {
		return &partitionNode{}
	}

	sort.SliceStable(words, func(i, j int) bool {
		return words[i].BoundingBox.Bottom().LessThan(words[j].BoundingBox.Bottom())
	})

	if len(words) == 1 {
		return leaf
	}

	dominantFontHeight := x.config.DominantFontHeightFunc(letterHeights(words))

	var profile []interval
	cur := interval{words[0].BoundingBox.Bottom(), words[0].BoundingBox.Top()}
	last := len(words) - 1
	for i := 1; i < len(words); i++ {
		bottom := words[i].BoundingBox.Bottom()
		top := words[i].BoundingBox.Top()

		bottomInside := bottom.GreaterThanOrEqual(cur.lo) && bottom.LessThanOrEqual(cur.hi)
		topInside := top.GreaterThanOrEqual(cur.lo) && top.LessThanOrEqual(cur.hi)

		if bottomInside || topInside {
			if bottomInside && top.GreaterThan(cur.hi) {
				cur.hi = top
			}
		} else if bottom.Sub(cur.hi).LessThanOrEqual(dominantFontHeight) {
			cur.hi = top
		} else {
			if i != last {
				profile = append(profile, cur)
			}
			cur = interval{bottom, top}
		}

		if i == last {
			profile = append(profile, cur)
		}
	}

	if len(profile) == 1 {
		if level >= 1 {
			return leaf
		}
		level++
	}

	children, claimed := x.cutChildren(words, profile, horizontalAxis, level)
	return salvageLost(children, words, claimed)
}

type axis int

const (
	verticalAxis axis = iota
	horizontalAxis
)

// cutChildren forms one sub-leaf per profile interval from the words whose
// projection lies fully inside it, recursing each sub-leaf into the
// opposite cut. Empty sub-leaves are dropped. The returned claimed set
// marks the words some interval took.
func (x *XYCut) cutChildren(words []model.Word, profile []interval, a axis, level int) ([]*partitionNode, []bool) {
	claimed := make([]bool, len(words))
	var children []*partitionNode

	for _, p := range profile {
		var sub []model.Word
		for i, w := range words {
			if claimed[i] {
				continue
			}
			var lo, hi decimal.Decimal
			if a == verticalAxis {
				lo, hi = w.BoundingBox.Left(), w.BoundingBox.Right()
			} else {
				lo, hi = w.BoundingBox.Bottom(), w.BoundingBox.Top()
			}
			if lo.GreaterThanOrEqual(p.lo) && hi.LessThanOrEqual(p.hi) {
				claimed[i] = true
				sub = append(sub, w)
			}
		}
		if len(sub) == 0 {
			continue
		}
		if a == verticalAxis {
			children = append(children, x.horizontalCut(newLeaf(sub), level))
		} else {
			children = append(children, x.verticalCut(newLeaf(sub), level))
		}
	}

	return children, claimed
}

// salvageLost wraps every word no interval claimed as a singleton leaf so
// that the partition keeps covering the input. This happens when a cut at
// the very last word drops the preceding band from the profile.
func salvageLost(children []*partitionNode, words []model.Word, claimed []bool) *partitionNode {
	for i, w := range words {
		if !claimed[i] {
			children = append(children, newLeaf([]model.Word{w}))
		}
	}
	return newInternal(children)
}

// discardWhitespace returns the words whose text is not whitespace-only, in
// a fresh slice
func discardWhitespace(words []model.Word) []model.Word {
	out := make([]model.Word, 0, len(words))
	for _, w := range words {
		if !w.IsWhitespace() {
			out = append(out, w)
		}
	}
	return out
}

// letterWidths samples the absolute glyph widths of every letter
func letterWidths(words []model.Word) []decimal.Decimal {
	var sample []decimal.Decimal
	for _, w := range words {
		for _, l := range w.Letters {
			sample = append(sample, l.Width().Abs())
		}
	}
	return sample
}

// letterHeights samples the absolute glyph heights of every letter
func letterHeights(words []model.Word) []decimal.Decimal {
	var sample []decimal.Decimal
	for _, w := range words {
		for _, l := range w.Letters {
			sample = append(sample, l.Height().Abs())
		}
	}
	return sample
}
