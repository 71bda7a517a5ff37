package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func testLogoDataURI(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestSaveProfileCreatesSingleton(t *testing.T) {
	repo := &fakeRestaurantRepo{}
	svc := NewRestaurantService(repo)

	first, err := svc.SaveProfile(context.Background(), &SaveProfileInput{Name: "Spice Garden"})
	if err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	if first.CGSTRate != 2.5 || first.SGSTRate != 2.5 {
		t.Errorf("default rates = %v/%v, want 2.5/2.5", first.CGSTRate, first.SGSTRate)
	}

	second, err := svc.SaveProfile(context.Background(), &SaveProfileInput{
		Name:     "Spice Garden Deluxe",
		CGSTRate: floatPtr(9),
		SGSTRate: floatPtr(9),
	})
	if err != nil {
		t.Fatalf("SaveProfile again: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("second save created a new row: %s != %s", second.ID, first.ID)
	}
	if second.Name != "Spice Garden Deluxe" || second.CGSTRate != 9 {
		t.Errorf("update not applied: %+v", second)
	}
}

func TestSaveProfileRequiresName(t *testing.T) {
	svc := NewRestaurantService(&fakeRestaurantRepo{})
	if _, err := svc.SaveProfile(context.Background(), &SaveProfileInput{}); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestSaveProfileNormalizesLogo(t *testing.T) {
	svc := NewRestaurantService(&fakeRestaurantRepo{})

	profile, err := svc.SaveProfile(context.Background(), &SaveProfileInput{
		Name: "Spice Garden",
		Logo: strPtr(testLogoDataURI(t)),
	})
	if err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	if profile.Logo == nil || !strings.HasPrefix(*profile.Logo, "data:image/png;base64,") {
		t.Errorf("logo not normalized to png data uri")
	}
}

func TestSaveProfileRejectsBadLogo(t *testing.T) {
	svc := NewRestaurantService(&fakeRestaurantRepo{})

	tests := []struct {
		name string
		logo string
	}{
		{"not a data uri", "https://example.com/logo.png"},
		{"not base64", "data:image/png;base64,????"},
		{"wrong mime", "data:text/plain;base64,aGVsbG8="},
		{"not an image", "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("junk"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SaveProfile(context.Background(), &SaveProfileInput{
				Name: "Spice Garden",
				Logo: &tt.logo,
			})
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestGetProfileNotFound(t *testing.T) {
	svc := NewRestaurantService(&fakeRestaurantRepo{})
	if _, err := svc.GetProfile(context.Background()); err == nil {
		t.Error("expected not found error")
	}
}
