package tile

import "github.com/BeatGlow/tile/pixel"

// Convert returns a copy of src re-encoded into the given pixel format, with
// identical width, height and channel count. The copy owns its storage.
func Convert(src *Tile, format pixel.Format) *Tile {
	return convertTile(src, format, nil)
}

// ConvertShared is Convert with the copy aliasing the caller's storage, as
// in NewShared.
func ConvertShared(src *Tile, format pixel.Format, storage []byte) *Tile {
	return convertTile(src, format, storage)
}

func convertTile(src *Tile, format pixel.Format, storage []byte) *Tile {
	t := alloc(src.width, src.height, src.channels, format, storage)
	if t.format == src.format {
		copy(t.pix, src.pix)
		return t
	}
	pixel.Convert(src.format, src.pix, 1, t.format, t.pix, 1)
	return t
}

// Shuffle returns a copy of src re-encoded into the given pixel format with
// its channels rearranged: destination channel k reads source channel
// table[k]. The destination channel count is len(table); entries may repeat
// or omit source channels, so a shuffle can reorder, replicate or drop them.
// The copy owns its storage.
func Shuffle(src *Tile, format pixel.Format, table []int) *Tile {
	return shuffleTile(src, format, table, nil)
}

// ShuffleShared is Shuffle with the copy aliasing the caller's storage, as
// in NewShared.
func ShuffleShared(src *Tile, format pixel.Format, table []int, storage []byte) *Tile {
	return shuffleTile(src, format, table, storage)
}

func shuffleTile(src *Tile, format pixel.Format, table []int, storage []byte) *Tile {
	t := alloc(src.width, src.height, len(table), format, storage)
	for k, c := range table {
		if c < 0 || c >= src.channels {
			panic("tile: shuffle table entry out of range")
		}
		if src.pixelCount == 0 {
			continue
		}
		pixel.Convert(
			src.format, src.pix[c*src.channelSize:], src.channels,
			t.format, t.pix[k*t.channelSize:], t.channels)
	}
	return t
}

func alloc(width, height, channels int, format pixel.Format, storage []byte) *Tile {
	if storage == nil {
		return New(width, height, channels, format)
	}
	return NewShared(width, height, channels, format, storage)
}
