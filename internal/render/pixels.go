package render

import (
	"image"
	"image/color"
)

// fillImageRGBA copies img into buf as premultiplied RGBA bytes, the layout
// ebiten.Image.WritePixels expects. buf holds 4*w*h bytes for the image
// bounds; extra pixels on either side are ignored.
func fillImageRGBA(buf []byte, img image.Image) {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok {
		row := 4 * b.Dx()
		for y := 0; y < b.Dy(); y++ {
			dst := y * row
			if dst+row > len(buf) {
				return
			}
			src := y * rgba.Stride
			copy(buf[dst:dst+row], rgba.Pix[src:src+row])
		}
		return
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if i+3 >= len(buf) {
				return
			}
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			buf[i+0] = c.R
			buf[i+1] = c.G
			buf[i+2] = c.B
			buf[i+3] = c.A
			i += 4
		}
	}
}
