package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, h/2, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFit(t *testing.T) {
	wide := image.NewRGBA(image.Rect(0, 0, 1024, 256))
	assert.Equal(t, image.Rect(0, 0, 512, 128), Fit(wide, 512).Bounds())

	tall := image.NewRGBA(image.Rect(0, 0, 300, 900))
	assert.Equal(t, image.Rect(0, 0, 170, 512), Fit(tall, 512).Bounds())

	small := image.NewRGBA(image.Rect(0, 0, 100, 80))
	assert.Same(t, small, Fit(small, 512))
}

func TestToWebP(t *testing.T) {
	out, err := ToWebP(bytes.NewReader(pngOf(t, 1024, 768)))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.Width)
	assert.Equal(t, 384, cfg.Height)
}

func TestToWebP_RejectsGarbage(t *testing.T) {
	_, err := ToWebP(strings.NewReader("not an image"))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestToWebP_RejectsOversizedDimensions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, MaxSourceSide+1, 1))))
	require.Less(t, buf.Len(), MaxUploadBytes)

	_, err := ToWebP(bytes.NewReader(buf.Bytes()))
	assert.ErrorIs(t, err, ErrUnsupported)
}
