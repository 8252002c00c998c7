package tui

import (
	"strings"
	"testing"

	"wishlist-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func withTrueColor(t *testing.T) {
	t.Helper()
	oldProfile := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(oldProfile)
	})
}

func TestCategoryChipUsesTableColor(t *testing.T) {
	withTrueColor(t)

	// Casa is #f87171 => rgb(248,113,113) as a background.
	out := renderCategoryChip("Casa")
	if !strings.Contains(out, "48;2;248;113;113") {
		t.Fatalf("Casa chip missing its accent background; got: %q", out)
	}
	if !strings.Contains(out, "Casa") {
		t.Fatalf("chip must carry the category name; got: %q", out)
	}
}

func TestUnknownCategoryChipFallsBackToNeutral(t *testing.T) {
	withTrueColor(t)

	// Neutral fallback #9ca3af => rgb(156,163,175).
	out := renderCategoryChip("Giardino")
	if !strings.Contains(out, "48;2;156;163;175") {
		t.Fatalf("unknown category should use the neutral accent; got: %q", out)
	}
}

func TestFixedWidthLine(t *testing.T) {
	t.Parallel()

	if got := fixedWidthLine("ab", 5); got != "ab   " {
		t.Fatalf("pad: %q", got)
	}
	if got := fixedWidthLine("abcdef", 4); !strings.HasPrefix(got, "abcd") {
		t.Fatalf("cut: %q", got)
	}
	if got := fixedWidthLine("x", 0); got != "" {
		t.Fatalf("zero width: %q", got)
	}
}

func TestRenderItemColumnsIncludesPriceAndChip(t *testing.T) {
	withTrueColor(t)

	it := model.Item{ID: 1, Name: "Libro", Price: 12.5, Category: "Libri", URL: "http://b"}
	out := renderItemColumns(it, 90)
	if !strings.Contains(out, "Libro") {
		t.Fatalf("missing name: %q", out)
	}
	if !strings.Contains(out, "€12.5") {
		t.Fatalf("price must render with the currency prefix: %q", out)
	}
	// Libri accent #fbbf24 => rgb(251,191,36).
	if !strings.Contains(out, "48;2;251;191;36") {
		t.Fatalf("missing category accent: %q", out)
	}
	if !strings.Contains(out, "http://b") {
		t.Fatalf("missing link column: %q", out)
	}
}

func TestCatIdxForUnknownPinsToDefault(t *testing.T) {
	t.Parallel()

	if idx := catIdxFor("Svago"); model.Categories[idx].Name != "Svago" {
		t.Fatalf("catIdxFor(Svago) = %d", idx)
	}
	if idx := catIdxFor("Giardino"); idx != 0 {
		t.Fatalf("unknown category should pin to the first entry, got %d", idx)
	}
}
