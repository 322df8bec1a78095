package imaging

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	MaxSide     = 512
	Quality     = 80
	ContentType = "image/webp"

	// MaxUploadBytes caps what is read from the request body.
	MaxUploadBytes = 8 << 20

	// MaxSourceSide caps the declared dimensions before decoding.
	MaxSourceSide = 8000
)

var (
	ErrUnsupported = errors.New("imaging: unsupported or corrupt image")
	ErrTooLarge    = errors.New("imaging: upload too large")
)

// ToWebP decodes a jpeg, png or webp image, shrinks it so its longest
// side is at most MaxSide, and re-encodes it as WebP.
func ToWebP(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if len(raw) > MaxUploadBytes {
		return nil, ErrTooLarge
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrUnsupported
	}
	if cfg.Width > MaxSourceSide || cfg.Height > MaxSourceSide {
		return nil, ErrUnsupported
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrUnsupported
	}

	dst := Fit(src, MaxSide)

	var out bytes.Buffer
	if err := webp.Encode(&out, dst, &webp.Options{Quality: Quality}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Fit scales img down, keeping its aspect ratio; smaller images are
// returned unchanged.
func Fit(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSide && h <= maxSide {
		return img
	}

	nw, nh := maxSide, maxSide
	if w >= h {
		nh = max(1, h*maxSide/w)
	} else {
		nw = max(1, w*maxSide/h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
