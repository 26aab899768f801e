package util

import (
	"bytes"
	"errors"
	"image/png"

	"github.com/disintegration/imaging"
)

// MaxImageSide 归一化后图片长边上限
const MaxImageSide = 2048

const PNGContentType = "image/png"

var ErrUndecodableImage = errors.New("image cannot be decoded")

// NormalizeImage 解码任意支持的格式, 按 EXIF 方向纠正, 长边压到上限内, 统一编码为 PNG
func NormalizeImage(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrUndecodableImage
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Join(ErrUndecodableImage, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > MaxImageSide || bounds.Dy() > MaxImageSide {
		img = imaging.Fit(img, MaxImageSide, MaxImageSide, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.DefaultCompression)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
