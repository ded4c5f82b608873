package theme

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// twoToneImage is a 40x40 image split between two saturated colors, far
// enough apart in Lab space that clustering cannot merge them.
func twoToneImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	left := color.RGBA{0xff, 0x00, 0x00, 0xff}
	right := color.RGBA{0x00, 0x00, 0xff, 0xff}
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if x < 20 {
				img.Set(x, y, left)
			} else {
				img.Set(x, y, right)
			}
		}
	}
	return img
}

func TestExtractPalette_TwoTone(t *testing.T) {
	palette, err := ExtractPalette(twoToneImage(), PaletteSize)
	if err != nil {
		t.Fatalf("ExtractPalette: %v", err)
	}
	if len(palette) < 2 {
		t.Fatalf("got %d colors, want at least 2: %v", len(palette), palette)
	}
	found := map[string]bool{}
	for _, hex := range palette {
		found[hex] = true
	}
	if !found["#ff0000"] || !found["#0000ff"] {
		t.Fatalf("palette missing the source colors: %v", palette)
	}
}

func TestExtractPalette_Deterministic(t *testing.T) {
	a, err := ExtractPalette(twoToneImage(), PaletteSize)
	if err != nil {
		t.Fatalf("ExtractPalette: %v", err)
	}
	b, err := ExtractPalette(twoToneImage(), PaletteSize)
	if err != nil {
		t.Fatalf("ExtractPalette: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("runs differ in size: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs differ: %v vs %v", a, b)
		}
	}
}

func TestExtractPalette_Errors(t *testing.T) {
	if _, err := ExtractPalette(twoToneImage(), 0); err == nil {
		t.Fatal("expected error for non-positive k")
	}
	tiny := image.NewRGBA(image.Rect(0, 0, 2, 1))
	if _, err := ExtractPalette(tiny, PaletteSize); err == nil {
		t.Fatal("expected error when the image has fewer pixels than k")
	}
}

func TestFromImage_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, twoToneImage()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	palette, err := FromImage(path)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if len(palette) < 2 {
		t.Fatalf("palette too small: %v", palette)
	}
}

func TestFromImage_MissingFile(t *testing.T) {
	if _, err := FromImage(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
