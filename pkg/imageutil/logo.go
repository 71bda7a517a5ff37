package imageutil

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

// MaxLogoBytes is the largest accepted logo payload (500KB)
const MaxLogoBytes = 500 * 1024

// maxLogoDimension caps either side of a stored logo. Receipts render
// logos at 50x35pt so anything larger just bloats the profile row.
const maxLogoDimension = 512

var (
	ErrNotDataURI  = errors.New("logo must be a base64 image data URI")
	ErrLogoTooBig  = fmt.Errorf("logo exceeds %d bytes", MaxLogoBytes)
	ErrBadImage    = errors.New("logo is not a decodable image")
	ErrBadMimeType = errors.New("logo must be a PNG or JPEG image")
)

// DecodeDataURI splits a "data:image/...;base64,..." string into its
// MIME type and raw bytes.
func DecodeDataURI(uri string) (mime string, data []byte, err error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, ErrNotDataURI
	}
	meta, payload, ok := strings.Cut(uri[len("data:"):], ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return "", nil, ErrNotDataURI
	}
	mime = strings.TrimSuffix(meta, ";base64")

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, ErrNotDataURI
	}
	return mime, data, nil
}

// EncodeDataURI renders raw image bytes back into a data URI
func EncodeDataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// NormalizeLogo validates a logo data URI and returns a normalized one.
// Oversized payloads are rejected, oversized images are scaled down and
// everything is re-encoded as PNG so the renderer only ever sees one format.
func NormalizeLogo(uri string) (string, error) {
	mime, data, err := DecodeDataURI(uri)
	if err != nil {
		return "", err
	}
	if len(data) > MaxLogoBytes {
		return "", ErrLogoTooBig
	}
	switch mime {
	case "image/png", "image/jpeg", "image/jpg":
	default:
		return "", ErrBadMimeType
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", ErrBadImage
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxLogoDimension || bounds.Dy() > maxLogoDimension {
		img = imaging.Fit(img, maxLogoDimension, maxLogoDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", err
	}
	return EncodeDataURI("image/png", buf.Bytes()), nil
}

// LogoBytes extracts the raw image bytes from a stored logo data URI.
// Returns nil when the URI is empty or malformed.
func LogoBytes(uri string) []byte {
	if uri == "" {
		return nil
	}
	_, data, err := DecodeDataURI(uri)
	if err != nil {
		return nil
	}
	return data
}
