package tile

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// ImageView adapts a tile to the [image.Image] and [image/draw.Image]
// interfaces. Supported channel counts are 1 (grayscale), 3 (opaque RGB) and
// 4 (RGBA); channel values convert through 16-bit color, whatever the tile's
// storage format.
type ImageView struct {
	t *Tile
}

// Image returns a draw.Image view over the tile. It panics for channel
// counts with no color interpretation.
func (t *Tile) Image() *ImageView {
	switch t.channels {
	case 1, 3, 4:
		return &ImageView{t: t}
	default:
		panic("tile: no image view for this channel count")
	}
}

func (v *ImageView) ColorModel() color.Model {
	if v.t.channels == 1 {
		return color.Gray16Model
	}
	return color.NRGBA64Model
}

func (v *ImageView) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.t.width, v.t.height)
}

func (v *ImageView) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(v.Bounds()) {
		return color.Transparent
	}

	switch v.t.channels {
	case 1:
		return color.Gray16{Y: GetComponentAt[uint16](v.t, x, y, 0)}
	case 3:
		var px [3]uint16
		GetPixelAt(v.t, x, y, px[:])
		return color.NRGBA64{R: px[0], G: px[1], B: px[2], A: 0xffff}
	default:
		var px [4]uint16
		GetPixelAt(v.t, x, y, px[:])
		return color.NRGBA64{R: px[0], G: px[1], B: px[2], A: px[3]}
	}
}

func (v *ImageView) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(v.Bounds()) {
		return
	}

	switch v.t.channels {
	case 1:
		gray := color.Gray16Model.Convert(c).(color.Gray16)
		SetComponentAt(v.t, x, y, 0, gray.Y)
	case 3:
		nrgba := color.NRGBA64Model.Convert(c).(color.NRGBA64)
		SetPixelAt(v.t, x, y, []uint16{nrgba.R, nrgba.G, nrgba.B})
	default:
		nrgba := color.NRGBA64Model.Convert(c).(color.NRGBA64)
		SetPixelAt(v.t, x, y, []uint16{nrgba.R, nrgba.G, nrgba.B, nrgba.A})
	}
}

// Draw copies the region of src anchored at sp into the rectangle r of dst,
// pixel for pixel. There is no scaling or filtering; source colors convert
// through the tile's image view.
func Draw(dst *Tile, r image.Rectangle, src image.Image, sp image.Point) {
	sr := image.Rectangle{Min: sp, Max: sp.Add(r.Size())}
	xdraw.Copy(dst.Image(), r.Min, src, sr, xdraw.Src, nil)
}

// Interface checks.
var (
	_ image.Image = (*ImageView)(nil)
	_ xdraw.Image = (*ImageView)(nil)
)
