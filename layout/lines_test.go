package layout

import (
	"testing"

	"github.com/huzhiguan/PdfPig/model"
)

func TestGroupIntoLinesSingleLine(t *testing.T) {
	// Out of order horizontally; same baseline.
	words := []model.Word{
		makeWord("world", 6, 0, 11, 5),
		makeWord("hello", 0, 0, 5, 5),
	}

	lines := groupIntoLines(words)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "hello world" {
		t.Errorf("Text = %q, want %q", lines[0].Text, "hello world")
	}
}

func TestGroupIntoLinesTopToBottom(t *testing.T) {
	words := []model.Word{
		makeWord("bottom", 0, 0, 5, 5),
		makeWord("top", 0, 20, 5, 25),
		makeWord("middle", 0, 10, 5, 15),
	}

	lines := groupIntoLines(words)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, want := range []string{"top", "middle", "bottom"} {
		if got := lines[i].Text; got != want {
			t.Errorf("line %d = %q, want %q", i, got, want)
		}
	}
}

func TestGroupIntoLinesBaselineJitter(t *testing.T) {
	// Bottoms differ by less than half the word height; still one line.
	words := []model.Word{
		makeWord("first", 0, 0, 5, 10),
		makeWord("second", 6, 2, 11, 12),
	}

	lines := groupIntoLines(words)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "first second" {
		t.Errorf("Text = %q", lines[0].Text)
	}
}

func TestGroupIntoLinesEmpty(t *testing.T) {
	if lines := groupIntoLines(nil); lines != nil {
		t.Errorf("expected nil, got %v", lines)
	}
}
