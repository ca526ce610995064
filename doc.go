// Package tile implements a fixed-size 2D pixel buffer with a uniform
// channel count and pixel format, suitable as the unit of storage for a
// larger image or frame buffer.
//
// A Tile stores its pixels row-major in a flat byte buffer, either allocated
// by the tile itself or borrowed from the caller for zero-copy views. Typed
// access converts between the storage format and any [pixel.Component] type
// on the fly, so the same tile can be written as float32 and read back as
// uint8.
//
// Tiles carry no internal synchronization. Concurrent reads of an immutable
// tile are safe; a higher-level frame buffer parallelizes by giving each
// goroutine its own tile, never by sharing one mutable tile.
package tile
