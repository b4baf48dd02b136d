package osmmap

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

const tileURL = "https://tile.openstreetmap.org/%d/%d/%d.png"

// tile returns the map tile at zoom/x/y, from the on-disk cache when
// possible.
func (m *Map) tile(zoom, x, y int) (image.Image, error) {
	name := filepath.Join(tileCacheDir(), fmt.Sprintf("%d-%d-%d.png", zoom, x, y))
	if b, err := os.ReadFile(name); err == nil {
		if img, _, err := image.Decode(bytes.NewReader(b)); err == nil {
			return img, nil
		}
	}

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf(tileURL, zoom, x, y), nil)
	if err != nil {
		return nil, err
	}
	// OSM tile usage policy requires an identifying user agent.
	req.Header.Set("User-Agent", "cardash/1.0")
	res, err := m.cl.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tile %d/%d/%d: %s", zoom, x, y, res.Status)
	}
	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("tile %d/%d/%d: %w", zoom, x, y, err)
	}
	// cache failures only cost a refetch
	_ = os.WriteFile(name, b, 0o644)
	return img, nil
}

func tileCacheDir() string {
	dir := filepath.Join(os.TempDir(), "cardash-tiles")
	_ = os.MkdirAll(dir, 0o755)
	return dir
}
