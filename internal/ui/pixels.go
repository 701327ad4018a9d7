package ui

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// renderHalfBlocks rasterizes img into cols x rows terminal cells. The image is
// resampled to cols x rows*2 pixels and each cell shows two vertical pixels
// using the upper half block. Transparent pixels are blended onto bg.
func renderHalfBlocks(img image.Image, cols, rows int, bg string) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}
	if img.Bounds().Empty() {
		return ""
	}
	scaled := scaleImage(img, cols, rows*2)
	base := parseHex(bg)

	lines := make([]string, rows)
	for y := 0; y < rows; y++ {
		var line strings.Builder
		for x := 0; x < cols; x++ {
			top := blend(scaled.NRGBAAt(x, y*2), base).Hex()
			bottom := blend(scaled.NRGBAAt(x, y*2+1), base).Hex()
			line.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render("▀"))
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

// scaleImage resamples img to exactly w x h pixels
func scaleImage(img image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// blend composites c over an opaque background
func blend(c color.NRGBA, bg colorful.Color) colorful.Color {
	fg := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return bg.BlendRgb(fg, float64(c.A)/255).Clamped()
}

// parseHex reads "#RRGGBB" or "#RGB"; anything else is black
func parseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
