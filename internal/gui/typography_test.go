package gui

import "testing"

func TestDashboardGlyphsCoverReadouts(t *testing.T) {
	glyphs := map[rune]bool{}
	for _, r := range dashboardGlyphs() {
		glyphs[r] = true
	}
	for _, text := range []string{"12°", "+3h", "Feels 9°  Humidity 85%  Wind 14 km/h", "7-day forecast"} {
		for _, r := range text {
			if !glyphs[r] {
				t.Fatalf("glyph %q of %q is not baked", r, text)
			}
		}
	}
}

func TestFaceForSize(t *testing.T) {
	cases := []struct {
		size int32
		want fontFace
	}{
		{typeScale.Small, faceBody},
		{typeScale.Body, faceBody},
		{typeScale.Title, faceBody},
		{typeScale.Title + 1, faceDisplay},
		{typeScale.Display, faceDisplay},
	}
	for _, tc := range cases {
		if got := faceFor(tc.size); got != tc.want {
			t.Fatalf("faceFor(%d) = %v, want %v", tc.size, got, tc.want)
		}
	}
	if bakeSize(faceDisplay) != typeScale.Display {
		t.Fatalf("display face baked at %d, want %d", bakeSize(faceDisplay), typeScale.Display)
	}
}
