// Package qrcode encodes arbitrary text into a scannable PNG image,
// returned as a data URI suitable for direct embedding in a browser UI.
package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

// ErrEmptyInput is returned when there is nothing to encode.
var ErrEmptyInput = errors.New("qrcode: empty input")

const imageSize = 256 // pixels, square

// DataURI encodes text into a PNG QR code and returns it as a
// "data:image/png;base64,..." URI. Encoding is deterministic for a given
// input. Callers in the invoice flow treat a failure as degraded output,
// not a fatal error.
func DataURI(text string) (string, error) {
	if text == "" {
		return "", ErrEmptyInput
	}

	png, err := qr.Encode(text, qr.Medium, imageSize)
	if err != nil {
		return "", fmt.Errorf("qrcode: encode: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
