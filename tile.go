package tile

import (
	"unsafe"

	"github.com/BeatGlow/tile/pixel"
)

// Tile is a 2D array of pixels. Width, height, channel count and pixel
// format are fixed for the tile's lifetime; only the pixel bytes mutate.
type Tile struct {
	width       int
	height      int
	channels    int
	format      pixel.Format
	pixelCount  int
	channelSize int
	pixelSize   int
	size        int
	pix         []byte
	owned       bool
}

// tileOverhead is the fixed per-tile footprint, excluding pixel storage.
var tileOverhead = int(unsafe.Sizeof(Tile{}))

// New returns a tile backed by freshly allocated storage that the tile owns.
// The pixel content is zeroed. Zero width or height is permitted and yields
// an empty buffer.
func New(width, height, channels int, format pixel.Format) *Tile {
	t := newTile(width, height, channels, format)
	t.pix = make([]byte, t.size)
	t.owned = true
	return t
}

// NewShared returns a tile aliasing the caller's storage. The tile never
// grows, reallocates or releases the buffer; the caller must keep it alive
// for the tile's entire lifetime. Mutations through the tile are visible in
// storage and vice versa.
func NewShared(width, height, channels int, format pixel.Format, storage []byte) *Tile {
	t := newTile(width, height, channels, format)
	if len(storage) < t.size {
		panic("tile: shared storage smaller than pixel array")
	}
	t.pix = storage[:t.size]
	return t
}

func newTile(width, height, channels int, format pixel.Format) *Tile {
	if width < 0 || height < 0 {
		panic("tile: negative dimension")
	}
	if channels < 1 {
		panic("tile: channel count must be positive")
	}
	if !format.Valid() {
		panic("tile: invalid pixel format")
	}
	t := &Tile{
		width:       width,
		height:      height,
		channels:    channels,
		format:      format,
		pixelCount:  width * height,
		channelSize: format.ChannelSize(),
	}
	t.pixelSize = t.channels * t.channelSize
	t.size = t.pixelCount * t.pixelSize
	return t
}

// Clone returns a deep copy of the tile. The copy always owns its storage,
// even when the source aliases a caller buffer.
func (t *Tile) Clone() *Tile {
	n := newTile(t.width, t.height, t.channels, t.format)
	n.pix = make([]byte, n.size)
	copy(n.pix, t.pix)
	n.owned = true
	return n
}

// Release drops the tile's reference to its storage ahead of garbage
// collection. Owned storage becomes collectable; borrowed storage is merely
// detached and stays with the caller. The tile must not be used afterwards.
func (t *Tile) Release() {
	t.pix = nil
	t.owned = false
}

// Format returns the pixel format of the tile storage.
func (t *Tile) Format() pixel.Format { return t.format }

// Width returns the tile width in pixels.
func (t *Tile) Width() int { return t.width }

// Height returns the tile height in pixels.
func (t *Tile) Height() int { return t.height }

// ChannelCount returns the number of channels in one pixel.
func (t *Tile) ChannelCount() int { return t.channels }

// PixelCount returns the number of pixels in the tile.
func (t *Tile) PixelCount() int { return t.pixelCount }

// Size returns the size in bytes of the pixel array.
func (t *Tile) Size() int { return t.size }

// Stride returns the size in bytes of one row of pixels.
func (t *Tile) Stride() int { return t.width * t.pixelSize }

// MemorySize returns the total in-memory footprint of the tile, pixel array
// plus fixed overhead, for caller-side memory accounting.
func (t *Tile) MemorySize() int { return tileOverhead + len(t.pix) }

// Storage returns the backing pixel array.
func (t *Tile) Storage() []byte { return t.pix }

// PixOffset returns the byte offset in Storage of the first channel of the
// pixel at (x, y).
func (t *Tile) PixOffset(x, y int) int {
	return (y*t.width + x) * t.pixelSize
}

// Pixel returns the storage bytes of pixel i.
func (t *Tile) Pixel(i int) []byte {
	if i < 0 || i >= t.pixelCount {
		panic("tile: pixel index out of range")
	}
	off := i * t.pixelSize
	return t.pix[off : off+t.pixelSize]
}

// PixelAt returns the storage bytes of the pixel at (x, y).
func (t *Tile) PixelAt(x, y int) []byte {
	return t.Pixel(t.index(x, y))
}

// Component returns the storage bytes of channel c of pixel i.
func (t *Tile) Component(i, c int) []byte {
	if i < 0 || i >= t.pixelCount {
		panic("tile: pixel index out of range")
	}
	if c < 0 || c >= t.channels {
		panic("tile: channel index out of range")
	}
	off := i*t.pixelSize + c*t.channelSize
	return t.pix[off : off+t.channelSize]
}

// ComponentAt returns the storage bytes of channel c of the pixel at (x, y).
func (t *Tile) ComponentAt(x, y, c int) []byte {
	return t.Component(t.index(x, y), c)
}

// Clear zeroes the pixel array.
func (t *Tile) Clear() {
	for i := range t.pix {
		t.pix[i] = 0x00
	}
}

// CopyFrom copies the pixel content of rhs, which must have the same width,
// height and channel count. Differing formats are converted channel by
// channel; identical formats reduce to a raw byte copy.
func (t *Tile) CopyFrom(rhs *Tile) {
	if t.width != rhs.width || t.height != rhs.height || t.channels != rhs.channels {
		panic("tile: copy between tiles of different geometry")
	}
	if t.format == rhs.format {
		copy(t.pix, rhs.pix)
		return
	}
	pixel.Convert(rhs.format, rhs.pix, 1, t.format, t.pix, 1)
}

func (t *Tile) index(x, y int) int {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		panic("tile: coordinates out of range")
	}
	return y*t.width + x
}
