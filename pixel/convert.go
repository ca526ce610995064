package pixel

import (
	"encoding/binary"
	"math"

	"github.com/x448/float16"
)

// Component is the set of numeric types a caller may use to read or write
// channel values. Conversions between a Component type and a Format follow
// one rule: unsigned integers span [0, max] and floats span [0, 1], so
// uint8(255) and float32(1.0) denote the same channel value.
type Component interface {
	uint8 | uint16 | uint32 | float32 | float64
}

// ConvertToFormat encodes a strided sequence of channel values into dst
// format bytes. Source elements are visited at indexes 0, srcStride,
// 2*srcStride, ...; each converted value is written dstStride channel slots
// apart in dstBuf. The destination must hold every converted channel; a
// short buffer panics.
func ConvertToFormat[T Component](src []T, srcStride int, dst Format, dstBuf []byte, dstStride int) {
	size := dst.ChannelSize()
	step := dstStride * size
	for i, j := 0, 0; i < len(src); i, j = i+srcStride, j+step {
		encode(dst, dstBuf[j:j+size], toFloat64(src[i]))
	}
}

// ConvertFromFormat decodes a strided sequence of src format bytes into
// channel values of type T. The element count is taken from the source
// range: every channel reachable in srcBuf at the given stride is converted.
// The destination must hold every converted value; a short slice panics.
func ConvertFromFormat[T Component](src Format, srcBuf []byte, srcStride int, dst []T, dstStride int) {
	size := src.ChannelSize()
	n := rangeCount(len(srcBuf)/size, srcStride)
	step := srcStride * size
	for i, j := 0, 0; i < n; i, j = i+1, j+step {
		dst[i*dstStride] = fromFloat64[T](decode(src, srcBuf[j:j+size]))
	}
}

// Convert re-encodes a strided sequence of channels from one format into
// another. The element count is taken from the source range, like
// ConvertFromFormat. Identical formats reduce to a strided byte copy.
func Convert(src Format, srcBuf []byte, srcStride int, dst Format, dstBuf []byte, dstStride int) {
	var (
		srcSize = src.ChannelSize()
		dstSize = dst.ChannelSize()
		n       = rangeCount(len(srcBuf)/srcSize, srcStride)
		srcStep = srcStride * srcSize
		dstStep = dstStride * dstSize
	)
	if src == dst {
		for i, j := 0, 0; n > 0; i, j, n = i+srcStep, j+dstStep, n-1 {
			copy(dstBuf[j:j+dstSize], srcBuf[i:i+srcSize])
		}
		return
	}
	for i, j := 0, 0; n > 0; i, j, n = i+srcStep, j+dstStep, n-1 {
		encode(dst, dstBuf[j:j+dstSize], decode(src, srcBuf[i:i+srcSize]))
	}
}

// rangeCount is the number of elements visited when walking a range of n
// elements with the given stride.
func rangeCount(n, stride int) int {
	if n <= 0 {
		return 0
	}
	return (n + stride - 1) / stride
}

// toFloat64 maps a channel value onto the canonical [0,1] scale for
// unsigned types, and widens floats unchanged.
func toFloat64[T Component](v T) float64 {
	switch v := any(v).(type) {
	case uint8:
		return float64(v) / math.MaxUint8
	case uint16:
		return float64(v) / math.MaxUint16
	case uint32:
		return float64(v) / math.MaxUint32
	case float32:
		return float64(v)
	case float64:
		return v
	}
	return 0
}

// fromFloat64 is the inverse of toFloat64: floats narrow unchanged, unsigned
// types quantize from the [0,1] scale.
func fromFloat64[T Component](v float64) T {
	var out T
	switch p := any(&out).(type) {
	case *uint8:
		*p = uint8(quantize(v, math.MaxUint8))
	case *uint16:
		*p = uint16(quantize(v, math.MaxUint16))
	case *uint32:
		*p = uint32(quantize(v, math.MaxUint32))
	case *float32:
		*p = float32(v)
	case *float64:
		*p = v
	}
	return out
}

// quantize clamps v to [0,1] and rounds it onto an unsigned scale with the
// given maximum.
func quantize(v, max float64) uint64 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return uint64(max)
	}
	return uint64(math.Round(v * max))
}

func encode(f Format, buf []byte, v float64) {
	switch f {
	case Uint8:
		buf[0] = uint8(quantize(v, math.MaxUint8))
	case Uint16:
		binary.LittleEndian.PutUint16(buf, uint16(quantize(v, math.MaxUint16)))
	case Uint32:
		binary.LittleEndian.PutUint32(buf, uint32(quantize(v, math.MaxUint32)))
	case Half:
		binary.LittleEndian.PutUint16(buf, uint16(float16.Fromfloat32(float32(v))))
	case Float32:
		binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(v)))
	case Float64:
		binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
	default:
		panic("pixel: invalid destination format")
	}
}

func decode(f Format, buf []byte) float64 {
	switch f {
	case Uint8:
		return float64(buf[0]) / math.MaxUint8
	case Uint16:
		return float64(binary.LittleEndian.Uint16(buf)) / math.MaxUint16
	case Uint32:
		return float64(binary.LittleEndian.Uint32(buf)) / math.MaxUint32
	case Half:
		return float64(float16.Float16(binary.LittleEndian.Uint16(buf)).Float32())
	case Float32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(buf)))
	case Float64:
		return math.Float64frombits(binary.LittleEndian.Uint64(buf))
	default:
		panic("pixel: invalid source format")
	}
}
