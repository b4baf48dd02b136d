package osmmap

import "testing"

func TestSlippyTile(t *testing.T) {
	tests := []struct {
		name       string
		lat, lon   float64
		zoom       int
		tileX      int
		tileY      int
		offX, offY int
	}{
		{"origin zoom 0", 0, 0, 0, 0, 0, 128, 128},
		{"origin zoom 1", 0, 0, 1, 1, 1, 0, 0},
		{"longitude wraps", 0, 190, 1, 0, 1, 14, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ox, oy := slippyTile(tt.lat, tt.lon, tt.zoom)
			if x != tt.tileX || y != tt.tileY {
				t.Errorf("tile: got (%d,%d), want (%d,%d)", x, y, tt.tileX, tt.tileY)
			}
			if ox != tt.offX || oy != tt.offY {
				t.Errorf("offset: got (%d,%d), want (%d,%d)", ox, oy, tt.offX, tt.offY)
			}
		})
	}
}

func TestSlippyTilePoleClamped(t *testing.T) {
	// latitudes beyond the Web Mercator limit pin to the edge tile row
	if _, y, _, _ := slippyTile(90, 0, 1); y != 0 {
		t.Errorf("tile y at the pole: got %d, want 0", y)
	}
	if _, y, _, _ := slippyTile(-90, 0, 1); y != 1 {
		t.Errorf("tile y at the south pole: got %d, want 1", y)
	}
}

func TestSlippyTileOffsetsInRange(t *testing.T) {
	for _, lon := range []float64{-179.9, -90, 0, 90, 179.9} {
		x, y, ox, oy := slippyTile(24.413274773214205, lon, 15)
		if x < 0 || x >= 1<<15 || y < 0 || y >= 1<<15 {
			t.Errorf("lon %v: tile (%d,%d) out of range", lon, x, y)
		}
		if ox < 0 || ox > 255 || oy < 0 || oy > 255 {
			t.Errorf("lon %v: offset (%d,%d) out of range", lon, ox, oy)
		}
	}
}

func TestCenterKeepsTileRelation(t *testing.T) {
	m := New()
	m.center(24.413274773214205, 88.96567734902074)

	tileX, tileY, offX, offY := slippyTile(24.413274773214205, 88.96567734902074, m.zoom)
	centerOffset := (1 << m.zoom / 2) - 1
	if m.x+centerOffset != tileX || m.y+centerOffset != tileY {
		t.Errorf("center tile: got (%d,%d)+%d, want (%d,%d)",
			m.x, m.y, centerOffset, tileX, tileY)
	}
	if m.offX != offX || m.offY != offY {
		t.Errorf("center offsets: got (%d,%d), want (%d,%d)", m.offX, m.offY, offX, offY)
	}
}

func TestZoomStepsScaleOffsets(t *testing.T) {
	m := New()
	m.zoom = 10
	m.x, m.y = 3, 2
	m.offX, m.offY = 100, 130

	m.zoomInStep()
	if m.zoom != 11 || m.x != 6 || m.y != 4 {
		t.Errorf("zoom in tiles: got z=%d (%d,%d)", m.zoom, m.x, m.y)
	}
	if m.offX != 200 || m.offY != 4 {
		t.Errorf("zoom in offsets: got (%d,%d), want (200,4)", m.offX, m.offY)
	}

	m.zoomOutStep()
	if m.zoom != 10 || m.x != 3 || m.y != 2 {
		t.Errorf("zoom out tiles: got z=%d (%d,%d)", m.zoom, m.x, m.y)
	}
	if m.offX != 100 || m.offY != 2 {
		t.Errorf("zoom out offsets: got (%d,%d), want (100,2)", m.offX, m.offY)
	}
}
