package gui

import (
	"math"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type typographyScale struct {
	Display int32
	Title   int32
	Header  int32
	Body    int32
	Small   int32
}

// fontFace selects which baked atlas a size is drawn from. Large readouts
// get their own atlas so they are not upscaled from the body glyphs.
type fontFace int

const (
	faceBody fontFace = iota
	faceDisplay
	faceCount
)

type typographyState struct {
	faces      [faceCount]rl.Font
	owned      [faceCount]bool
	lineFactor float32
}

var (
	typeScale = typographyScale{
		Display: 64,
		Title:   30,
		Header:  21,
		Body:    19,
		Small:   14,
	}
	uiType = typographyState{lineFactor: 1.34}

	fontCandidates = []string{
		filepath.Join("assets", "fonts", "Inter-Regular.ttf"),
		filepath.Join("assets", "fonts", "NotoSans-Regular.ttf"),
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		`C:\Windows\Fonts\segoeui.ttf`,
	}
)

// dashboardGlyphs is printable ASCII plus the symbols the readouts use.
func dashboardGlyphs() []rune {
	out := make([]rune, 0, 98)
	for r := rune(32); r < 127; r++ {
		out = append(out, r)
	}
	return append(out, '°', '–', '·')
}

// bakeSize is the pixel size each face is rasterised at.
func bakeSize(f fontFace) int32 {
	if f == faceDisplay {
		return typeScale.Display
	}
	return typeScale.Title
}

func faceFor(size int32) fontFace {
	if size > typeScale.Title {
		return faceDisplay
	}
	return faceBody
}

func initTypography() {
	def := rl.GetFontDefault()
	glyphs := dashboardGlyphs()
	for f := fontFace(0); f < faceCount; f++ {
		uiType.faces[f] = def
		if font, ok := loadFontFromCandidates(fontCandidates, bakeSize(f), glyphs); ok {
			uiType.faces[f] = font
			uiType.owned[f] = true
		}
		rl.SetTextureFilter(uiType.faces[f].Texture, rl.FilterBilinear)
	}
}

func shutdownTypography() {
	for f := fontFace(0); f < faceCount; f++ {
		if uiType.owned[f] && uiType.faces[f].Texture.ID != 0 {
			rl.UnloadFont(uiType.faces[f])
		}
	}
	uiType = typographyState{lineFactor: 1.34}
}

func loadFontFromCandidates(candidates []string, fontSize int32, glyphs []rune) (rl.Font, bool) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		font := rl.LoadFontEx(path, fontSize, glyphs, int32(len(glyphs)))
		if font.Texture.ID == 0 {
			continue
		}
		return font, true
	}
	return rl.Font{}, false
}

func drawText(text string, x, y, fontSize int32, clr rl.Color) {
	font := uiType.faces[faceFor(fontSize)]
	if font.Texture.ID == 0 {
		rl.DrawText(text, x, y, fontSize, clr)
		return
	}
	rl.DrawTextEx(font, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(fontSize), 1, clr)
}

func measureText(text string, fontSize int32) int32 {
	font := uiType.faces[faceFor(fontSize)]
	if font.Texture.ID == 0 {
		return int32(rl.MeasureText(text, fontSize))
	}
	return int32(math.Round(float64(rl.MeasureTextEx(font, text, float32(fontSize), 1).X)))
}

func textLineHeight(size int32) int32 {
	if size < 1 {
		size = 1
	}
	return int32(math.Round(float64(size) * float64(uiType.lineFactor)))
}
