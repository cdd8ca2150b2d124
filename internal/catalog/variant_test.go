package catalog

import (
	"image"
	"image/color"
	"testing"
)

// uniformSample builds a tilesPerRow x tilesPerCol grid of tileSize tiles
// where every tile is pixel-identical (a uniform gray square), so that
// dedupe-by-rotation collapses all 4*N rotated copies down to 1.
func uniformSample(tilesPerRow, tilesPerCol, tileSize int, gray byte) *image.Gray {
	w := tilesPerRow * tileSize
	h := tilesPerCol * tileSize
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: gray})
		}
	}
	return img
}

// asymmetricSample builds a sample where each KxK tile cell has distinct,
// asymmetric pixel content so rotations are NOT byte-identical.
func asymmetricSample(tilesPerRow, tilesPerCol, tileSize int) *image.Gray {
	w := tilesPerRow * tileSize
	h := tilesPerCol * tileSize
	img := image.NewGray(image.Rect(0, 0, w, h))
	for ty := 0; ty < tilesPerCol; ty++ {
		for tx := 0; tx < tilesPerRow; tx++ {
			base := byte((ty*tilesPerRow + tx) * 10)
			for y := 0; y < tileSize; y++ {
				for x := 0; x < tileSize; x++ {
					// Asymmetric fill: top-left corner pixel is distinct so
					// that all 4 rotations differ in byte content.
					v := base
					if x == 0 && y == 0 {
						v = base + 1
					}
					img.SetGray(tx*tileSize+x, ty*tileSize+y, color.Gray{Y: v})
				}
			}
		}
	}
	return img
}

func TestBuildFromImageRejectsNonMultipleDimensions(t *testing.T) {
	img := uniformSample(2, 2, 4, 5)
	// 9 is not a multiple of 4.
	cropped := img.SubImage(image.Rect(0, 0, 9, 8)).(*image.Gray)

	if _, err := BuildFromImage(cropped, 4); err == nil {
		t.Fatal("expected error for non-multiple-of-tile-size dimensions")
	}
}

func TestBuildFromImageDedupesRotationInvariantTile(t *testing.T) {
	// A single uniform tile: all 4 rotations are pixelwise identical, so
	// after dedupe exactly 1 variant should survive (scenario S3).
	img := uniformSample(1, 1, 4, 7)

	cat, err := BuildFromImage(img, 4)
	if err != nil {
		t.Fatalf("BuildFromImage() error = %v", err)
	}
	if len(cat.Variants) != 1 {
		t.Errorf("len(Variants) = %d, want 1 after dedupe of a rotation-invariant tile", len(cat.Variants))
	}
}

func TestBuildFromImageKeepsDistinctRotations(t *testing.T) {
	img := asymmetricSample(1, 1, 4)

	cat, err := BuildFromImage(img, 4)
	if err != nil {
		t.Fatalf("BuildFromImage() error = %v", err)
	}
	if len(cat.Variants) != 4 {
		t.Errorf("len(Variants) = %d, want 4 distinct rotations", len(cat.Variants))
	}
}

func TestBuildFromImageEmptySample(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 0, 0))
	if _, err := BuildFromImage(img, 4); err == nil {
		t.Fatal("expected error building from an empty sample")
	}
}

func TestMergeExplicitAppendsAndOverrides(t *testing.T) {
	cat := &Catalog{Variants: []Variant{
		{AssetID: "a", Weight: 1},
	}}

	cat.MergeExplicit([]ExplicitVariant{
		{AssetID: "a", Weight: 3, Neighbors: []string{"b"}},
		{AssetID: "b", Weight: 2},
	})

	if len(cat.Variants) != 2 {
		t.Fatalf("len(Variants) = %d, want 2", len(cat.Variants))
	}
	if cat.Variants[0].Weight != 3 {
		t.Errorf("overridden weight = %v, want 3", cat.Variants[0].Weight)
	}
	if !cat.Variants[0].Neighbors["b"] {
		t.Error("overridden neighbors should contain \"b\"")
	}
	if cat.Variants[1].AssetID != "b" || cat.Variants[1].Weight != 2 {
		t.Errorf("appended variant = %+v, want AssetID=b Weight=2", cat.Variants[1])
	}
}

func TestMergeExplicitDefaultWeight(t *testing.T) {
	cat := &Catalog{}
	cat.MergeExplicit([]ExplicitVariant{{AssetID: "only"}})

	if cat.Variants[0].Weight != 1 {
		t.Errorf("default weight = %v, want 1", cat.Variants[0].Weight)
	}
}

func TestRotateVariantFourTimesIdentity(t *testing.T) {
	img := asymmetricSample(1, 1, 4)
	cat, err := BuildFromImage(img, 4)
	if err != nil {
		t.Fatalf("BuildFromImage() error = %v", err)
	}

	v := cat.Variants[0]
	got := v
	for i := 0; i < 4; i++ {
		got = RotateVariant(got)
	}
	if !got.Edges.North.Equal(v.Edges.North) {
		t.Errorf("rot^4 edges differ from original: got %v want %v", got.Edges.North, v.Edges.North)
	}
	if got.Rotation != v.Rotation {
		t.Errorf("rot^4 rotation = %d, want %d", got.Rotation, v.Rotation)
	}
}
