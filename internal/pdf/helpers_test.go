// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

// ── image fixtures ────────────────────────────────────────────────────────────

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func rgbaPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// left half fully transparent, right half opaque
			alpha := uint8(0xff)
			if x < w/2 {
				alpha = 0
			}
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 30, B: 30, A: alpha})
		}
	}
	return encodePNG(t, img)
}

func palettedPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	palette := color.Palette{
		color.NRGBA{A: 0},
		color.NRGBA{R: 0, G: 0, B: 255, A: 255},
	}
	img := image.NewPaletted(image.Rect(0, 0, w, h), palette)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetColorIndex(x, y, uint8((x+y)%2))
		}
	}
	return encodePNG(t, img)
}

func opaqueJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 10, G: 120, B: 240, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}
