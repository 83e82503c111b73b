package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
)

// Largura máxima servida no cardápio; acima disso a imagem é reduzida.
const maxImageWidth = 1280

const webpQuality = 80

// NormalizeImage decodifica o upload (jpeg/png/gif/webp), reduz se passar
// da largura máxima e reencoda como WebP, que é o único formato servido
// publicamente.
func NormalizeImage(data []byte) ([]byte, string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		// upload já em webp não passa pelo registry do pacote image
		img, err = webp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, "", fmt.Errorf("unsupported image format: %w", err)
		}
	}

	if w := img.Bounds().Dx(); w > maxImageWidth {
		img = downscale(img, maxImageWidth)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, "", fmt.Errorf("webp encode: %w", err)
	}

	return buf.Bytes(), "image/webp", nil
}

func downscale(img image.Image, width int) image.Image {
	b := img.Bounds()
	height := b.Dy() * width / b.Dx()

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
