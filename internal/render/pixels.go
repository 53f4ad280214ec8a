// Package render converts simulation frames into RGBA pixels for the window
// and for image files.
package render

import "image/color"

// FillRGBA expands packed RGB triples into opaque RGBA pixels in buf. buf
// must hold 4 bytes for every 3 bytes of rgb.
func FillRGBA(buf, rgb []byte) {
	for i, j := 0, 0; j+2 < len(rgb); i, j = i+4, j+3 {
		buf[i+0] = rgb[j+0]
		buf[i+1] = rgb[j+1]
		buf[i+2] = rgb[j+2]
		buf[i+3] = 0xff
	}
}

// FillMaskRGBA converts byte intensities into translucent pixels of the given
// tint. Zero is fully transparent; 255 reaches maxAlpha.
func FillMaskRGBA(buf []byte, mask []uint8, tint color.RGBA, maxAlpha uint8) {
	for i, v := range mask {
		base := i * 4
		if v == 0 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		a := uint32(v) * uint32(maxAlpha) / 255
		// ebiten expects premultiplied alpha
		buf[base+0] = uint8(uint32(tint.R) * a / 255)
		buf[base+1] = uint8(uint32(tint.G) * a / 255)
		buf[base+2] = uint8(uint32(tint.B) * a / 255)
		buf[base+3] = uint8(a)
	}
}
