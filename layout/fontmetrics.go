package layout

import (
	"github.com/shopspring/decimal"
)

// MetricFunc maps a sample of glyph dimensions to a single gap threshold
type MetricFunc func(sample []decimal.Decimal) decimal.Decimal

// Constant adapts a fixed threshold to a MetricFunc, ignoring the sample
func Constant(value decimal.Decimal) MetricFunc {
	return func([]decimal.Decimal) decimal.Decimal {
		return value
	}
}

// Mode returns the most frequent value of the sample. Ties break toward the
// value seen first; an empty sample yields zero.
func Mode(sample []decimal.Decimal) decimal.Decimal {
	if len(sample) == 0 {
		return decimal.Zero
	}

	counts := make(map[string]int, len(sample))
	for _, v := range sample {
		counts[v.String()]++
	}

	best := sample[0]
	bestCount := 0
	for _, v := range sample {
		if c := counts[v.String()]; c > bestCount {
			bestCount = c
			best = v
		}
	}
	return best
}

// defaultFontWidth is the default horizontal gap threshold: the mode of the
// glyph widths, rounded to three decimal places.
func defaultFontWidth(sample []decimal.Decimal) decimal.Decimal {
	return Mode(sample).Round(3)
}

// defaultFontHeight is the default vertical gap threshold: 1.5 times the
// mode of the glyph heights, rounded to three decimal places.
func defaultFontHeight(sample []decimal.Decimal) decimal.Decimal {
	return Mode(sample).Mul(decimal.NewFromFloat(1.5)).Round(3)
}
