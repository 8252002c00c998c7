package model

import "testing"

func TestLookupCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        string
		wantColor string
	}{
		{name: "casa", in: "Casa", wantColor: "#f87171"},
		{name: "svago", in: "Svago", wantColor: "#60a5fa"},
		{name: "scrivania", in: "Scrivania", wantColor: "#34d399"},
		{name: "libri", in: "Libri", wantColor: "#fbbf24"},
		{name: "unknown falls back to neutral", in: "Giardino", wantColor: NeutralColor},
		{name: "empty falls back to neutral", in: "", wantColor: NeutralColor},
		{name: "match is exact, not case-insensitive", in: "casa", wantColor: NeutralColor},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := LookupCategory(tt.in)
			if got.Color != tt.wantColor {
				t.Fatalf("LookupCategory(%q).Color = %q, want %q", tt.in, got.Color, tt.wantColor)
			}
			if got.Name != tt.in {
				t.Fatalf("LookupCategory(%q).Name = %q, want the input name", tt.in, got.Name)
			}
		})
	}
}

func TestCategoryNamesOrder(t *testing.T) {
	t.Parallel()

	want := []string{"Casa", "Svago", "Scrivania", "Libri"}
	got := CategoryNames()
	if len(got) != len(want) {
		t.Fatalf("CategoryNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("CategoryNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestValidCategory(t *testing.T) {
	t.Parallel()

	if !ValidCategory(DefaultCategory) {
		t.Fatalf("default category %q must be in the fixed set", DefaultCategory)
	}
	if ValidCategory("Giardino") {
		t.Fatalf("unexpected category accepted")
	}
}
