// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/MKhiriev/go-doc-intake/internal/logger"
	"github.com/MKhiriev/go-doc-intake/models"
)

// DefaultDPI is the resolution hint used to size the PDF page from the
// image's pixel dimensions.
const DefaultDPI = 100

const pointsPerInch = 72

// ImageConverter renders a single raster image as a one-page PDF.
type ImageConverter struct {
	dpi int
}

// NewImageConverter returns a converter using the given resolution hint.
// A non-positive dpi falls back to [DefaultDPI].
func NewImageConverter(dpi int) *ImageConverter {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &ImageConverter{dpi: dpi}
}

// Convert decodes item.Content with the registered image decoders (PNG,
// JPEG, GIF, BMP, TIFF, WebP), flattens images that carry an alpha channel
// or a palette to opaque RGB, and encodes the result as a single-page PDF.
//
// Every failure is wrapped in [ErrConversion].
func (c *ImageConverter) Convert(ctx context.Context, item models.UploadItem) (models.PDFBlob, error) {
	log := logger.FromContext(ctx)

	if len(item.Content) == 0 {
		return models.PDFBlob{}, fmt.Errorf("%w: %s: empty file %q", ErrConversion, item.Field, item.FileName)
	}

	img, format, err := image.Decode(bytes.NewReader(item.Content))
	if err != nil {
		return models.PDFBlob{}, fmt.Errorf("%w: %s: decoding %q: %w", ErrConversion, item.Field, item.FileName, err)
	}

	page, err := pageImage(img, format, item.Content)
	if err != nil {
		return models.PDFBlob{}, fmt.Errorf("%w: %s: encoding page image: %w", ErrConversion, item.Field, err)
	}

	imp := c.importConfig(img.Bounds())

	var out bytes.Buffer
	if err = api.ImportImages(nil, &out, []io.Reader{page}, imp, newConfiguration()); err != nil {
		return models.PDFBlob{}, fmt.Errorf("%w: %s: writing pdf: %w", ErrConversion, item.Field, err)
	}

	log.Debug().
		Str("field", item.Field.String()).
		Str("file", item.FileName).
		Str("format", format).
		Int("pdf_size", out.Len()).
		Msg("image converted to pdf")

	return models.PDFBlob{Field: item.Field, Content: out.Bytes()}, nil
}

// importConfig places the image on a page of exactly its size at c.dpi:
// one pixel maps to 72/dpi points.
func (c *ImageConverter) importConfig(bounds image.Rectangle) *pdfcpu.Import {
	imp := pdfcpu.DefaultImportConfig()
	imp.PageDim = c.pageDim(bounds)
	imp.PageSize = ""
	imp.UserDim = true
	imp.DPI = c.dpi
	imp.Pos = types.Center
	imp.Scale = 1
	imp.ScaleAbs = true
	return imp
}

func (c *ImageConverter) pageDim(bounds image.Rectangle) *types.Dim {
	return &types.Dim{
		Width:  float64(bounds.Dx()) * pointsPerInch / float64(c.dpi),
		Height: float64(bounds.Dy()) * pointsPerInch / float64(c.dpi),
	}
}

// pageImage returns the encoded image that is embedded into the PDF page.
// Opaque JPEGs are embedded as uploaded; everything else is re-encoded as
// PNG, after flattening when the source has alpha or a palette.
func pageImage(img image.Image, format string, original []byte) (io.Reader, error) {
	if format == "jpeg" && !needsFlattening(img) {
		return bytes.NewReader(original), nil
	}

	if needsFlattening(img) {
		img = flatten(img)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return &buf, nil
}

func needsFlattening(img image.Image) bool {
	if _, ok := img.ColorModel().(color.Palette); ok {
		return true
	}

	switch img.ColorModel() {
	case color.RGBAModel, color.RGBA64Model,
		color.NRGBAModel, color.NRGBA64Model,
		color.AlphaModel, color.Alpha16Model:
		return true
	}

	return false
}

// flatten converts img to opaque RGB. Colour channels are kept as they are
// (un-premultiplied) and alpha is forced to fully opaque; transparent areas
// are not composited over a background.
func flatten(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	dst := image.NewRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			dst.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}

	return dst
}
