package components

import (
	"image"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"golang.org/x/image/draw"
)

// Thumbnail renders img into at most cols x rows terminal cells using upper
// half blocks, two pixels per cell. The aspect ratio is preserved.
func Thumbnail(img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return ""
	}

	w, h := fit(b.Dx(), b.Dy(), cols, rows*2)
	h += h % 2
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	var out strings.Builder
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			out.WriteString(lipgloss.NewStyle().
				Foreground(opaque(dst.RGBAAt(x, y))).
				Background(opaque(dst.RGBAAt(x, y+1))).
				Render("▀"))
		}
		if y+2 < h {
			out.WriteString("\n")
		}
	}
	return out.String()
}

// fit scales w x h to the largest size inside maxW x maxH.
func fit(w, h, maxW, maxH int) (int, int) {
	if w*maxH > h*maxW {
		return maxW, max(1, h*maxW/w)
	}
	return max(1, w*maxH/h), maxH
}

func opaque(c color.RGBA) color.Color {
	c.A = 0xff
	return c
}
