package images

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // Register GIF decoder
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder

	"droscher.com/MyWhiskies/configs"
)

var (
	ErrDecode = errors.New("could not decode image")
	ErrEncode = errors.New("could not encode image")
)

// Processor turns an uploaded picture into the stored rendition: scaled
// down to the configured width and re-encoded in the configured format.
type Processor struct {
	maxWidth int
	format   string
	quality  int
}

func NewProcessor(conf configs.Images) *Processor {
	return &Processor{maxWidth: conf.MaxWidth, format: conf.Format, quality: conf.Quality}
}

func (p *Processor) ContentType() string {
	if p.format == "png" {
		return "image/png"
	}

	return "image/jpeg"
}

func (p *Processor) Process(upload io.Reader) ([]byte, error) {
	img, _, err := image.Decode(upload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	img = p.resize(img)

	var buf bytes.Buffer

	if p.format == "png" {
		err = png.Encode(&buf, img)
	} else {
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality})
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	return buf.Bytes(), nil
}

// resize scales img down to maxWidth keeping its aspect ratio. Narrower
// images are left alone.
func (p *Processor) resize(img image.Image) image.Image {
	bounds := img.Bounds()
	if p.maxWidth <= 0 || bounds.Dx() <= p.maxWidth {
		return img
	}

	height := max(1, bounds.Dy()*p.maxWidth/bounds.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, p.maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}
