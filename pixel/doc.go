// Package pixel implements the pixel formats used by tile storage, and the
// conversion primitive that re-encodes channel values between a caller's
// numeric type and the format's byte encoding.
//
// Storage encoding is little-endian regardless of host byte order, so a
// buffer shared between a tile and its caller has one well-defined layout.
package pixel
