package util

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
)

// ImageEncoderB64 encodes an image into the base64 format the server's
// image modules understand. The argument is a path to an image file.
func ImageEncoderB64(imagePath string) (string, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("no file found at location %s: %w", imagePath, err)
	}
	defer file.Close()

	return ImageEncoderB64FromReader(file)
}

// ImageEncoderB64FromReader encodes image bytes read from r.
func ImageEncoderB64FromReader(r io.Reader) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(content), nil
}

// ImageDecoderB64 decodes an image from the server's base64 format.
func ImageDecoderB64(encoded string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(encoded)
}
