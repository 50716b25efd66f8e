package export

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/jung-kurt/gofpdf"

	"sigpad/pkg/graphics"
	"sigpad/pkg/raster"
	"sigpad/pkg/signature"
)

// Render rasterizes sig into a surface of the given size using the export
// options' scale and background.
func Render(sig *signature.Signature, size graphics.Size, opts Options) (*image.RGBA, error) {
	if size.IsDegenerate() {
		return nil, fmt.Errorf("%w: %vx%v", ErrEmptySurface, size.Width, size.Height)
	}
	r := raster.NewRenderer(raster.RenderOptions{
		Scale:       opts.Scale,
		Background:  opts.Background,
		Transparent: opts.Transparent && opts.Format == FormatPNG,
		Signature:   opts.Signature,
	})
	return r.RenderSignature(sig, size), nil
}

// Encode renders sig for a surface of the given size and writes it to w in
// the format selected by opts.
func Encode(w io.Writer, sig *signature.Signature, size graphics.Size, opts Options) error {
	format, err := ParseFormat(string(opts.Format))
	if err != nil {
		return err
	}
	opts.Format = format
	img, err := Render(sig, size, opts)
	if err != nil {
		return err
	}

	switch opts.Format {
	case FormatJPEG:
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: opts.Quality}); err != nil {
			return fmt.Errorf("failed to encode jpeg: %w", err)
		}
		return nil
	case FormatPDF:
		return encodePDF(w, img, size, opts)
	default:
		enc := png.Encoder{CompressionLevel: compressionLevel(opts.Compression)}
		if err := enc.Encode(w, img); err != nil {
			return fmt.Errorf("failed to encode png: %w", err)
		}
		return nil
	}
}

// WriteFile encodes sig into a new file, inferring the format from the
// file extension.
func WriteFile(path string, sig *signature.Signature, size graphics.Size, opts Options) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	opts.Format = format

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Encode(f, sig, size, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func compressionLevel(c int) png.CompressionLevel {
	switch {
	case c <= 0:
		return png.NoCompression
	case c <= 3:
		return png.BestSpeed
	case c <= 6:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}

// encodePDF embeds the raster image in a one-page PDF. The page is either
// the surface size in points or a named page with the image centered inside
// its margins.
func encodePDF(w io.Writer, img image.Image, size graphics.Size, opts Options) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode pdf image: %w", err)
	}

	page := PageSize{Width: size.Width, Height: size.Height}
	x, y, iw, ih := 0.0, 0.0, size.Width, size.Height
	if opts.Page != nil {
		page = *opts.Page
		fit := math.Min((page.Width-2*pageMargin)/size.Width, (page.Height-2*pageMargin)/size.Height)
		fit = math.Min(fit, 1)
		iw, ih = size.Width*fit, size.Height*fit
		x, y = (page.Width-iw)/2, (page.Height-ih)/2
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: page.Width, Ht: page.Height},
	})
	pdf.SetCreator("sigpad", true)
	pdf.AddPage()

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("signature", imgOpts, &buf)
	pdf.ImageOptions("signature", x, y, iw, ih, false, imgOpts, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}
