package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Letter represents a single recognized glyph. GlyphRectangle width and
// height may be negative; the sign indicates glyph orientation and consumers
// take absolute values.
type Letter struct {
	Value          string
	GlyphRectangle Rectangle
}

// Width returns the signed glyph width, TopRight.X - BottomLeft.X
func (l Letter) Width() decimal.Decimal {
	return l.GlyphRectangle.TopRight.X.Sub(l.GlyphRectangle.BottomLeft.X)
}

// Height returns the signed glyph height, TopLeft.Y - BottomLeft.Y
func (l Letter) Height() decimal.Decimal {
	return l.GlyphRectangle.TopLeft.Y.Sub(l.GlyphRectangle.BottomLeft.Y)
}

// Word represents a recognized word with its bounding box. Text may be
// whitespace-only; the bounding box covers all letters.
type Word struct {
	Text        string
	BoundingBox Rectangle
	Letters     []Letter
}

// NewWord builds a word from its letters, concatenating their values and
// unioning their glyph rectangles.
func NewWord(letters []Letter) Word {
	var sb strings.Builder
	var box Rectangle
	for i, l := range letters {
		sb.WriteString(l.Value)
		if i == 0 {
			box = l.GlyphRectangle
		} else {
			box = box.Union(l.GlyphRectangle)
		}
	}
	return Word{Text: sb.String(), BoundingBox: box, Letters: letters}
}

// IsWhitespace reports whether the word's text is empty or whitespace-only
func (w Word) IsWhitespace() bool {
	return strings.TrimSpace(w.Text) == ""
}

// TextLine represents words on a common horizontal line, ordered left to
// right
type TextLine struct {
	Words       []Word
	Text        string
	BoundingBox Rectangle
}

// NewTextLine builds a line from words, joining their texts with a single
// space and unioning their bounding boxes. The words are taken in the order
// given.
func NewTextLine(words []Word) TextLine {
	texts := make([]string, 0, len(words))
	var box Rectangle
	for i, w := range words {
		texts = append(texts, w.Text)
		if i == 0 {
			box = w.BoundingBox
		} else {
			box = box.Union(w.BoundingBox)
		}
	}
	return TextLine{
		Words:       words,
		Text:        strings.Join(texts, " "),
		BoundingBox: box,
	}
}

// TextBlock represents a contiguous region of text on a page, as a sequence
// of lines in reading order
type TextBlock struct {
	TextLines   []TextLine
	Text        string
	BoundingBox Rectangle
}

// NewTextBlock builds a block from lines, joining their texts with newlines
// and unioning their bounding boxes
func NewTextBlock(lines []TextLine) TextBlock {
	texts := make([]string, 0, len(lines))
	var box Rectangle
	for i, l := range lines {
		texts = append(texts, l.Text)
		if i == 0 {
			box = l.BoundingBox
		} else {
			box = box.Union(l.BoundingBox)
		}
	}
	return TextBlock{
		TextLines:   lines,
		Text:        strings.Join(texts, "\n"),
		BoundingBox: box,
	}
}

// Words returns all words of the block in reading order
func (b TextBlock) Words() []Word {
	var words []Word
	for _, l := range b.TextLines {
		words = append(words, l.Words...)
	}
	return words
}
