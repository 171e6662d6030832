package llm

import (
	"bytes"
	"hash/fnv"
	"image/color"

	"github.com/fogleman/gg"
)

// placeholderSizes are the pixel sizes drawn per aspect ratio.
var placeholderSizes = map[string][2]int{
	"1:1":  {512, 512},
	"4:3":  {640, 480},
	"16:9": {768, 432},
}

// palette pairs are picked per prompt so each card in a batch differs.
var placeholderPalettes = [][2]color.RGBA{
	{{0x63, 0x66, 0xF1, 0xFF}, {0xA8, 0x55, 0xF7, 0xFF}},
	{{0x10, 0xB9, 0x81, 0xFF}, {0x0E, 0xA5, 0xE9, 0xFF}},
	{{0xF5, 0x9E, 0x0B, 0xFF}, {0xEF, 0x44, 0x44, 0xFF}},
	{{0x3B, 0x82, 0xF6, 0xFF}, {0x14, 0xB8, 0xA6, 0xFF}},
}

// placeholderPNG draws a gradient card with the proportions of ratio.
// Unknown ratios are drawn 4:3.
func placeholderPNG(ratio, prompt string) ([]byte, error) {
	size, ok := placeholderSizes[ratio]
	if !ok {
		size = placeholderSizes["4:3"]
	}
	w, h := float64(size[0]), float64(size[1])

	hash := fnv.New32a()
	hash.Write([]byte(prompt))
	sum := hash.Sum32()
	pal := placeholderPalettes[sum%uint32(len(placeholderPalettes))]

	dc := gg.NewContext(size[0], size[1])

	grad := gg.NewLinearGradient(0, 0, w, h)
	grad.AddColorStop(0, pal[0])
	grad.AddColorStop(1, pal[1])
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	// A few translucent discs, positioned from the prompt hash.
	dc.SetRGBA(1, 1, 1, 0.18)
	for i := range 3 {
		shift := uint(i * 8)
		x := float64((sum>>shift)&0xFF) / 255 * w
		y := float64((sum>>(shift+4))&0xFF) / 255 * h
		dc.DrawCircle(x, y, h/float64(4+i*2))
		dc.Fill()
	}

	dc.SetRGBA(1, 1, 1, 0.85)
	dc.SetLineWidth(6)
	dc.DrawRoundedRectangle(24, 24, w-48, h-48, 18)
	dc.Stroke()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
