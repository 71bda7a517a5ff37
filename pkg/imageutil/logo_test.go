package imageutil

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"strings"
	"testing"
)

func pngDataURI(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return EncodeDataURI("image/png", buf.Bytes())
}

func TestDecodeDataURI(t *testing.T) {
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("abc"))
	mime, data, err := DecodeDataURI(uri)
	if err != nil {
		t.Fatalf("DecodeDataURI: %v", err)
	}
	if mime != "image/png" {
		t.Errorf("mime = %q", mime)
	}
	if string(data) != "abc" {
		t.Errorf("data = %q", data)
	}
}

func TestDecodeDataURIRejectsGarbage(t *testing.T) {
	for _, uri := range []string{
		"",
		"image/png;base64,aGVsbG8=",
		"data:image/png,plain",
		"data:image/png;base64,!!notbase64!!",
	} {
		if _, _, err := DecodeDataURI(uri); err == nil {
			t.Errorf("DecodeDataURI(%q) succeeded", uri)
		}
	}
}

func TestNormalizeLogoRoundTrip(t *testing.T) {
	out, err := NormalizeLogo(pngDataURI(t, 10, 10))
	if err != nil {
		t.Fatalf("NormalizeLogo: %v", err)
	}
	if !strings.HasPrefix(out, "data:image/png;base64,") {
		t.Errorf("output not a png data uri")
	}
	if LogoBytes(out) == nil {
		t.Error("normalized logo not decodable")
	}
}

func TestNormalizeLogoScalesDownLargeImages(t *testing.T) {
	out, err := NormalizeLogo(pngDataURI(t, 1200, 600))
	if err != nil {
		t.Fatalf("NormalizeLogo: %v", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(LogoBytes(out)))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if cfg.Width > maxLogoDimension || cfg.Height > maxLogoDimension {
		t.Errorf("output %dx%d exceeds %d", cfg.Width, cfg.Height, maxLogoDimension)
	}
}

func TestNormalizeLogoRejectsWrongMime(t *testing.T) {
	uri := "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte("hello"))
	if _, err := NormalizeLogo(uri); err != ErrBadMimeType {
		t.Errorf("err = %v, want ErrBadMimeType", err)
	}
}

func TestNormalizeLogoRejectsOversizedPayload(t *testing.T) {
	big := make([]byte, MaxLogoBytes+1)
	uri := EncodeDataURI("image/png", big)
	if _, err := NormalizeLogo(uri); err != ErrLogoTooBig {
		t.Errorf("err = %v, want ErrLogoTooBig", err)
	}
}

func TestNormalizeLogoRejectsCorruptImage(t *testing.T) {
	uri := EncodeDataURI("image/png", []byte("not a real png"))
	if _, err := NormalizeLogo(uri); err != ErrBadImage {
		t.Errorf("err = %v, want ErrBadImage", err)
	}
}

func TestLogoBytesToleratesBadInput(t *testing.T) {
	if LogoBytes("") != nil {
		t.Error("empty uri should yield nil")
	}
	if LogoBytes("not-a-uri") != nil {
		t.Error("malformed uri should yield nil")
	}
}
