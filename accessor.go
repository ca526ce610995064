package tile

import "github.com/BeatGlow/tile/pixel"

// SetPixel converts one value per channel into the tile's pixel format and
// writes them to pixel i. len(components) must equal the channel count.
func SetPixel[T pixel.Component](t *Tile, i int, components []T) {
	if len(components) != t.channels {
		panic("tile: component count does not match channel count")
	}
	pixel.ConvertToFormat(components, 1, t.format, t.Pixel(i), 1)
}

// SetPixelAt is SetPixel addressed by pixel coordinates.
func SetPixelAt[T pixel.Component](t *Tile, x, y int, components []T) {
	SetPixel(t, t.index(x, y), components)
}

// GetPixel converts the stored channels of pixel i into type T and writes
// them to components. len(components) must equal the channel count.
func GetPixel[T pixel.Component](t *Tile, i int, components []T) {
	if len(components) != t.channels {
		panic("tile: component count does not match channel count")
	}
	pixel.ConvertFromFormat(t.format, t.Pixel(i), 1, components, 1)
}

// GetPixelAt is GetPixel addressed by pixel coordinates.
func GetPixelAt[T pixel.Component](t *Tile, x, y int, components []T) {
	GetPixel(t, t.index(x, y), components)
}

// SetComponent converts a single value into the tile's pixel format and
// writes it to channel c of pixel i.
func SetComponent[T pixel.Component](t *Tile, i, c int, value T) {
	src := [1]T{value}
	pixel.ConvertToFormat(src[:], 1, t.format, t.Component(i, c), 1)
}

// SetComponentAt is SetComponent addressed by pixel coordinates.
func SetComponentAt[T pixel.Component](t *Tile, x, y, c int, value T) {
	SetComponent(t, t.index(x, y), c, value)
}

// GetComponent converts channel c of pixel i into type T.
func GetComponent[T pixel.Component](t *Tile, i, c int) T {
	var dst [1]T
	pixel.ConvertFromFormat(t.format, t.Component(i, c), 1, dst[:], 1)
	return dst[0]
}

// GetComponentAt is GetComponent addressed by pixel coordinates.
func GetComponentAt[T pixel.Component](t *Tile, x, y, c int) T {
	return GetComponent[T](t, t.index(x, y), c)
}

// Fill sets every pixel of the tile to the given color, one value per
// channel. The color is converted once, into pixel 0; the rest of the tile
// is stamped from the converted bytes, so the conversion cost does not grow
// with tile size. Filling an empty tile is a no-op.
func Fill[T pixel.Component](t *Tile, components []T) {
	if len(components) != t.channels {
		panic("tile: component count does not match channel count")
	}
	if t.pixelCount == 0 {
		return
	}

	// Convert into the first pixel of the first row.
	base := t.pix[:t.pixelSize]
	pixel.ConvertToFormat(components, 1, t.format, base, 1)

	// Stamp the remaining pixels of the first row.
	rowSize := t.Stride()
	for off := t.pixelSize; off < rowSize; off += t.pixelSize {
		copy(t.pix[off:off+t.pixelSize], base)
	}

	// Stamp the remaining rows.
	row := t.pix[:rowSize]
	for off := rowSize; off < t.size; off += rowSize {
		copy(t.pix[off:off+rowSize], row)
	}
}
