package tile

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeatGlow/tile/pixel"
)

var testFormats = []pixel.Format{
	pixel.Uint8,
	pixel.Uint16,
	pixel.Uint32,
	pixel.Half,
	pixel.Float32,
	pixel.Float64,
}

func TestNew(t *testing.T) {
	sizes := []struct {
		w, h, channels int
	}{
		{0, 0, 1},
		{1, 1, 1},
		{1, 7, 3},
		{7, 1, 3},
		{2, 2, 3},
		{256, 32, 4},
	}
	for _, format := range testFormats {
		for _, size := range sizes {
			name := fmt.Sprintf("%s-%dx%dx%d", format, size.w, size.h, size.channels)
			t.Run(name, func(t *testing.T) {
				tl := New(size.w, size.h, size.channels, format)

				assert.Equal(t, size.w, tl.Width())
				assert.Equal(t, size.h, tl.Height())
				assert.Equal(t, size.channels, tl.ChannelCount())
				assert.Equal(t, format, tl.Format())
				assert.Equal(t, size.w*size.h, tl.PixelCount())
				assert.Equal(t, size.w*size.h*size.channels*format.ChannelSize(), tl.Size())
				assert.Equal(t, size.w*size.channels*format.ChannelSize(), tl.Stride())
				assert.Len(t, tl.Storage(), tl.Size())
				assert.Equal(t, tl.Size()+tileOverhead, tl.MemorySize())
			})
		}
	}
}

func TestNewInvalid(t *testing.T) {
	assert.Panics(t, func() { New(-1, 4, 3, pixel.Uint8) })
	assert.Panics(t, func() { New(4, -1, 3, pixel.Uint8) })
	assert.Panics(t, func() { New(4, 4, 0, pixel.Uint8) })
	assert.Panics(t, func() { New(4, 4, 3, pixel.Format(0xff)) })
}

func TestNewShared(t *testing.T) {
	storage := make([]byte, 4*4*3)
	tl := NewShared(4, 4, 3, pixel.Uint8, storage)

	// The tile aliases the caller's buffer: writes through the tile are
	// visible in storage, and direct writes to storage are visible through
	// the tile.
	SetPixelAt(tl, 0, 0, []uint8{1, 2, 3})
	assert.Equal(t, []byte{1, 2, 3}, storage[:3])

	storage[3] = 42
	assert.Equal(t, uint8(42), GetComponentAt[uint8](tl, 1, 0, 0))
}

func TestNewSharedTooSmall(t *testing.T) {
	assert.Panics(t, func() {
		NewShared(4, 4, 3, pixel.Uint8, make([]byte, 47))
	})
}

func TestClone(t *testing.T) {
	storage := make([]byte, 2*2*3)
	src := NewShared(2, 2, 3, pixel.Uint8, storage)
	Fill(src, []uint8{9, 8, 7})

	dup := src.Clone()
	require.Equal(t, src.Storage(), dup.Storage())

	// The clone owns independent storage, whatever the source's ownership.
	SetPixel(src, 0, []uint8{0, 0, 0})
	assert.Equal(t, []byte{9, 8, 7}, dup.Pixel(0))
}

func TestRelease(t *testing.T) {
	tl := New(2, 2, 3, pixel.Uint8)
	tl.Release()
	assert.Nil(t, tl.Storage())
	assert.Equal(t, tileOverhead, tl.MemorySize())
}

func TestPixOffset(t *testing.T) {
	tl := New(4, 2, 3, pixel.Uint16)
	assert.Equal(t, 0, tl.PixOffset(0, 0))
	assert.Equal(t, 3*2, tl.PixOffset(1, 0))
	assert.Equal(t, 4*3*2, tl.PixOffset(0, 1))
	assert.Equal(t, (4+1)*3*2, tl.PixOffset(1, 1))
}

func TestPixelBounds(t *testing.T) {
	tl := New(2, 2, 3, pixel.Uint8)

	assert.Len(t, tl.Pixel(0), 3)
	assert.Len(t, tl.PixelAt(1, 1), 3)
	assert.Len(t, tl.Component(3, 2), 1)
	assert.Len(t, tl.ComponentAt(1, 1, 0), 1)

	assert.Panics(t, func() { tl.Pixel(-1) })
	assert.Panics(t, func() { tl.Pixel(4) })
	assert.Panics(t, func() { tl.PixelAt(2, 0) })
	assert.Panics(t, func() { tl.PixelAt(0, 2) })
	assert.Panics(t, func() { tl.Component(0, 3) })
	assert.Panics(t, func() { tl.ComponentAt(0, 0, -1) })
}

func TestClear(t *testing.T) {
	tl := New(2, 2, 3, pixel.Uint8)
	Fill(tl, []uint8{1, 2, 3})
	tl.Clear()
	for _, b := range tl.Storage() {
		require.Equal(t, byte(0), b)
	}
}

func TestCopyFrom(t *testing.T) {
	t.Run("same-format", func(t *testing.T) {
		src := New(3, 2, 3, pixel.Uint8)
		Fill(src, []uint8{10, 20, 30})

		dst := New(3, 2, 3, pixel.Uint8)
		dst.CopyFrom(src)
		assert.Equal(t, src.Storage(), dst.Storage())
	})

	t.Run("converting", func(t *testing.T) {
		src := New(3, 2, 3, pixel.Uint8)
		Fill(src, []uint8{0, 128, 255})

		dst := New(3, 2, 3, pixel.Float32)
		dst.CopyFrom(src)

		for i := 0; i < dst.PixelCount(); i++ {
			assert.Equal(t, float32(0), GetComponent[float32](dst, i, 0))
			assert.InDelta(t, 128.0/255.0, GetComponent[float32](dst, i, 1), 1e-6)
			assert.Equal(t, float32(1), GetComponent[float32](dst, i, 2))
		}
	})

	t.Run("geometry-mismatch", func(t *testing.T) {
		dst := New(3, 2, 3, pixel.Uint8)
		assert.Panics(t, func() { dst.CopyFrom(New(2, 3, 3, pixel.Uint8)) })
		assert.Panics(t, func() { dst.CopyFrom(New(3, 2, 4, pixel.Uint8)) })
	})
}
