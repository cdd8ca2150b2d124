package chunk

import (
	"strings"
	"testing"

	"github.com/tilefield/wfcgen/internal/gridaddr"
)

// room10x10 draws a 10x10 room: a rectangular wall/corner border around a
// floor interior, using the §6 glyph set.
func room10x10() string {
	top := "┌" + strings.Repeat("─", 8) + "┐"
	mid := "│" + strings.Repeat(" ", 8) + "┆"
	bottom := "└" + strings.Repeat("┄", 8) + "┘"

	lines := make([]string, 0, 10)
	lines = append(lines, top)
	for i := 0; i < 8; i++ {
		lines = append(lines, mid)
	}
	lines = append(lines, bottom)
	return strings.Join(lines, "\r\n")
}

func TestExtractPatternsScenarioS4(t *testing.T) {
	m := ParseText(room10x10())
	if m.Width != 10 || m.Height != 10 {
		t.Fatalf("room10x10 parsed as %dx%d, want 10x10", m.Width, m.Height)
	}

	patterns := ExtractPatterns(m, 5, true, true)
	if len(patterns) < 4 {
		t.Fatalf("len(patterns) = %d, want >= 4 surviving corner variants", len(patterns))
	}

	chunks := PatternsToConstraints(patterns, 5)
	if len(chunks) != len(patterns) {
		t.Fatalf("len(chunks) = %d, want %d", len(chunks), len(patterns))
	}

	foundNonEmptyExit := false
	for _, c := range chunks {
		for _, dir := range gridaddr.All() {
			for _, ok := range c.Exits[dir] {
				if ok {
					foundNonEmptyExit = true
				}
			}
		}
	}
	if !foundNonEmptyExit {
		t.Error("expected at least one non-empty exit vector across all patterns/directions")
	}
}

func TestExtractPatternsNoFlippingNoDedupe(t *testing.T) {
	m := ParseText(room10x10())
	patterns := ExtractPatterns(m, 5, false, false)
	// 10x10 / 5x5 => 2x2 = 4 aligned chunks, no flips, no dedupe.
	if len(patterns) != 4 {
		t.Errorf("len(patterns) = %d, want 4", len(patterns))
	}
}

func TestExtractPatternsZeroK(t *testing.T) {
	m := ParseText(room10x10())
	if patterns := ExtractPatterns(m, 0, false, false); patterns != nil {
		t.Errorf("ExtractPatterns with k=0 = %v, want nil", patterns)
	}
}

func TestPatternFlipXYInvolution(t *testing.T) {
	m := ParseText(room10x10())
	patterns := ExtractPatterns(m, 5, false, false)
	p := patterns[0]

	flippedTwice := p.flipX().flipX()
	if flippedTwice.key() != p.key() {
		t.Error("flipX applied twice should be an involution")
	}

	flippedYTwice := p.flipY().flipY()
	if flippedYTwice.key() != p.key() {
		t.Error("flipY applied twice should be an involution")
	}
}

func TestStripsCompatibleWildcard(t *testing.T) {
	k := 3
	a := Pattern{K: k, Cells: []TileType{
		Constraint, Constraint, Constraint,
		Floor, Floor, Floor,
		Floor, Floor, Floor,
	}}
	b := Pattern{K: k, Cells: []TileType{
		Floor, Floor, Floor,
		Floor, Floor, Floor,
		WallT, WallT, WallT,
	}}

	if !stripsCompatible(a, b, gridaddr.North) {
		t.Error("a wildcard North strip should be compatible with any South strip")
	}
}

func TestDedupePatternsCollapsesEqualPatterns(t *testing.T) {
	p := Pattern{K: 2, Cells: []TileType{Floor, Floor, Floor, Floor}}
	got := dedupePatterns([]Pattern{p, p, p})
	if len(got) != 1 {
		t.Errorf("len(dedupePatterns) = %d, want 1", len(got))
	}
}
