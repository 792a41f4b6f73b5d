package terrain

import (
	"image"
	"image/color"
)

// HeightImage renders total heights normalized to the map's own range
// as an 8-bit grayscale image. A flat map renders black.
func HeightImage(m *Map) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.width, m.height))

	lo := float32(0)
	hi := float32(0)
	first := true
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			h := m.TotalHeight(x, y)
			if first {
				lo, hi = h, h
				first = false
			} else {
				lo = min(lo, h)
				hi = max(hi, h)
			}
		}
	}

	scale := float32(0)
	if hi > lo {
		scale = 255 / (hi - lo)
	}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			v := (m.TotalHeight(x, y) - lo) * scale
			img.SetGray(x, y, color.Gray{Y: clampToByte(v)})
		}
	}
	return img
}

// MaterialImage renders the surface soil type index of every cell as a
// single-channel image.
func MaterialImage(m *Map) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.width, m.height))
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			img.SetGray(x, y, color.Gray{Y: byte(m.SurfaceType(x, y))})
		}
	}
	return img
}

func clampToByte(f float32) byte {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return byte(f)
}
