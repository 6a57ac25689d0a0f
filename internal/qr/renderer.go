// Package qr renders QR code images for token scan URLs.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Renderer encodes a payload string as a QR code image.
type Renderer interface {
	// RenderPNG returns a size x size pixel PNG encoding of the payload.
	RenderPNG(payload string, size int) ([]byte, error)
}

// pngRenderer implements Renderer using medium error correction, which keeps
// codes scannable from printed wristbands and tickets.
type pngRenderer struct{}

func (pngRenderer) RenderPNG(payload string, size int) ([]byte, error) {
	if payload == "" {
		return nil, fmt.Errorf("qr payload must not be empty")
	}
	if size <= 0 {
		return nil, fmt.Errorf("qr size must be a positive number of pixels")
	}

	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}

	return png, nil
}

// NewPNGRenderer creates a new PNG QR code renderer.
func NewPNGRenderer() Renderer {
	return pngRenderer{}
}
