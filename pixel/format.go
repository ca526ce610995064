package pixel

// Format identifies the numeric type and byte width used to encode one
// channel in tile storage.
type Format uint8

// Supported pixel formats.
const (
	// Uint8 is an 8-bit unsigned integer channel.
	Uint8 Format = iota

	// Uint16 is a 16-bit unsigned integer channel.
	Uint16

	// Uint32 is a 32-bit unsigned integer channel.
	Uint32

	// Half is a 16-bit IEEE 754 half-precision float channel.
	Half

	// Float32 is a 32-bit IEEE 754 single-precision float channel.
	Float32

	// Float64 is a 64-bit IEEE 754 double-precision float channel.
	Float64

	formatCount
)

// ChannelSize returns the size in bytes of one channel value.
func (f Format) ChannelSize() int {
	switch f {
	case Uint8:
		return 1
	case Uint16, Half:
		return 2
	case Uint32, Float32:
		return 4
	case Float64:
		return 8
	default:
		return 0
	}
}

// Valid reports whether f is a supported pixel format.
func (f Format) Valid() bool {
	return f < formatCount
}

func (f Format) String() string {
	switch f {
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Half:
		return "half"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "invalid"
	}
}
