package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlipXInvolution(t *testing.T) {
	for _, tt := range []TileType{
		Empty, Floor, Constraint,
		CornerTL, CornerTR, CornerBR, CornerBL,
		WallL, WallT, WallR, WallB,
	} {
		assert.Equal(t, tt, FlipX(FlipX(tt)), "FlipX(FlipX(%v)) should be the identity", tt)
	}
}

func TestFlipYInvolution(t *testing.T) {
	for _, tt := range []TileType{
		Empty, Floor, Constraint,
		CornerTL, CornerTR, CornerBR, CornerBL,
		WallL, WallT, WallR, WallB,
	} {
		assert.Equal(t, tt, FlipY(FlipY(tt)), "FlipY(FlipY(%v)) should be the identity", tt)
	}
}

func TestFlipXYCommute(t *testing.T) {
	for _, tt := range []TileType{
		Empty, Floor, Constraint,
		CornerTL, CornerTR, CornerBR, CornerBL,
		WallL, WallT, WallR, WallB,
	} {
		assert.Equal(t, FlipX(FlipY(tt)), FlipY(FlipX(tt)), "FlipX and FlipY should commute for %v", tt)
	}
}

func TestFlipXCornerMapping(t *testing.T) {
	assert.Equal(t, CornerTR, FlipX(CornerTL))
	assert.Equal(t, CornerTL, FlipX(CornerTR))
	assert.Equal(t, CornerBL, FlipX(CornerBR))
	assert.Equal(t, CornerBR, FlipX(CornerBL))
	assert.Equal(t, WallR, FlipX(WallL))
	assert.Equal(t, Floor, FlipX(Floor), "Floor is invariant under FlipX")
}

func TestFlipYWallMapping(t *testing.T) {
	assert.Equal(t, WallB, FlipY(WallT))
	assert.Equal(t, WallT, FlipY(WallB))
	assert.Equal(t, WallL, FlipY(WallL), "left wall is invariant under FlipY")
}

func TestParseTextGlyphTable(t *testing.T) {
	m := ParseText("┌─┐\r\n│ ┆\r\n└┄┘")
	require.Equal(t, 3, m.Width)
	require.Equal(t, 3, m.Height)

	assert.Equal(t, CornerTL, m.At(0, 0))
	assert.Equal(t, WallT, m.At(1, 0))
	assert.Equal(t, CornerTR, m.At(2, 0))
	assert.Equal(t, WallL, m.At(0, 1))
	assert.Equal(t, Floor, m.At(1, 1))
	assert.Equal(t, WallR, m.At(2, 1))
	assert.Equal(t, CornerBL, m.At(0, 2))
	assert.Equal(t, WallB, m.At(1, 2))
	assert.Equal(t, CornerBR, m.At(2, 2))
}

func TestTileTypeString(t *testing.T) {
	assert.Equal(t, "floor", Floor.String())
	assert.Equal(t, "corner_tl", CornerTL.String())
	assert.Equal(t, "unknown", TileType(99).String())
}
