package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/BeatGlow/tile"
	"github.com/BeatGlow/tile/pixel"
)

var formats = map[string]pixel.Format{
	"uint8":   pixel.Uint8,
	"uint16":  pixel.Uint16,
	"uint32":  pixel.Uint32,
	"half":    pixel.Half,
	"float32": pixel.Float32,
	"float64": pixel.Float64,
}

func main() {
	widthFlag := flag.Int("width", 64, "Tile width in pixels")
	heightFlag := flag.Int("height", 64, "Tile height in pixels")
	channelsFlag := flag.Int("channels", 3, "Channels per pixel")
	formatFlag := flag.String("format", "uint8", "Pixel format (uint8, uint16, uint32, half, float32, float64)")
	flag.Parse()

	format, ok := formats[strings.ToLower(*formatFlag)]
	if !ok {
		fatal(fmt.Errorf("unsupported pixel format %q", *formatFlag))
	}

	t := tile.New(*widthFlag, *heightFlag, *channelsFlag, format)
	fmt.Printf("tile: %dx%d, %d channels, format %s, %d bytes (%d in memory)\n",
		t.Width(), t.Height(), t.ChannelCount(), t.Format(), t.Size(), t.MemorySize())

	// Horizontal gradient on channel 0, vertical on the last channel.
	for y := 0; y < t.Height(); y++ {
		for x := 0; x < t.Width(); x++ {
			tile.SetComponentAt(t, x, y, 0, gradient(x, t.Width()))
			tile.SetComponentAt(t, x, y, t.ChannelCount()-1, gradient(y, t.Height()))
		}
	}
	fmt.Printf("gradient: %s\n", samples(t))

	for _, name := range []string{"uint8", "uint16", "uint32", "half", "float32", "float64"} {
		c := tile.Convert(t, formats[name])
		fmt.Printf("converted to %-8s %d bytes, %s\n", c.Format().String()+":", c.Size(), samples(c))
	}

	reversed := make([]int, t.ChannelCount())
	for i := range reversed {
		reversed[i] = t.ChannelCount() - 1 - i
	}
	s := tile.Shuffle(t, format, reversed)
	fmt.Printf("shuffled %v: %s\n", reversed, samples(s))

	fill := make([]float64, t.ChannelCount())
	for i := range fill {
		fill[i] = float64(i) / float64(t.ChannelCount())
	}
	tile.Fill(t, fill)
	fmt.Printf("filled %v: %s\n", fill, samples(t))
}

func gradient(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

func samples(t *tile.Tile) string {
	var (
		corners = [][2]int{{0, 0}, {t.Width() - 1, 0}, {0, t.Height() - 1}, {t.Width() - 1, t.Height() - 1}}
		px      = make([]float64, t.ChannelCount())
		parts   = make([]string, 0, len(corners))
	)
	for _, c := range corners {
		tile.GetPixelAt(t, c[0], c[1], px)
		parts = append(parts, fmt.Sprintf("(%d,%d)=%.3f", c[0], c[1], px))
	}
	return strings.Join(parts, " ")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
	os.Exit(1)
}
