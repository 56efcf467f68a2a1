// file: internals/helpers/oss/convert_image.go
// Converte imagens de capa para WebP antes do upload (economia de banda no app).
package oss

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"mime/multipart"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	coverMaxWidth  = 1024
	coverMaxHeight = 1536
	webpQuality    = 80
)

// ConvertToWebP: lê → decode → downscale (se necessário) → encode webp
func ConvertToWebP(file multipart.File) ([]byte, error) {
	all, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("arquivo de imagem vazio")
	}

	img, err := imaging.Decode(bytes.NewReader(all), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("imagem inválida: %w", err)
	}

	img = downscaleIfNeeded(img, coverMaxWidth, coverMaxHeight)

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("falha ao converter para webp: %w", err)
	}
	return out.Bytes(), nil
}

// UploadCoverWebP converte a capa e sobe já em webp, retornando a URL pública.
func UploadCoverWebP(bucket, folder string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("falha ao abrir imagem: %w", err)
	}
	defer src.Close()

	data, err := ConvertToWebP(src)
	if err != nil {
		return "", err
	}

	objectPath := GenerateUniqueFilename(folder, fh.Filename) + ".webp"
	if err := Upload(bucket, objectPath, "image/webp", bytes.NewReader(data)); err != nil {
		return "", err
	}
	return PublicURL(bucket, objectPath), nil
}

func downscaleIfNeeded(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return img
	}
	return imaging.Fit(img, maxW, maxH, imaging.Lanczos)
}
