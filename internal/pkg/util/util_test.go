package util

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"strings"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestNormalizeImage_ConvertsToPNG(t *testing.T) {
	out, err := NormalizeImage(encodeJPEG(t, 40, 20))
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("\x89PNG")))

	img, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
}

func TestNormalizeImage_BoundsLongSide(t *testing.T) {
	out, err := NormalizeImage(encodeJPEG(t, MaxImageSide*2, 100))
	require.NoError(t, err)

	img, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, MaxImageSide, img.Bounds().Dx())
	assert.LessOrEqual(t, img.Bounds().Dy(), 100)
}

func TestNormalizeImage_RejectsGarbage(t *testing.T) {
	_, err := NormalizeImage([]byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrUndecodableImage)

	_, err = NormalizeImage(nil)
	assert.ErrorIs(t, err, ErrUndecodableImage)
}

func TestImageObjectName(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	a := ImageObjectName("Alice@Example.com", now)
	b := ImageObjectName("Alice@Example.com", now)

	assert.True(t, strings.HasPrefix(a, "alice_example.com-1700000000123-"))
	assert.True(t, strings.HasSuffix(a, ".png"))
	assert.NotEqual(t, a, b)
	assert.Equal(t, "anonymous", SanitizeHandle("@@@"))
}

func TestValidateDTO(t *testing.T) {
	type req struct {
		Name string `validate:"max=3"`
	}
	assert.NoError(t, ValidateDTO(&req{Name: "abc"}))
	err := ValidateDTO(&req{Name: "abcd"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name")
}
