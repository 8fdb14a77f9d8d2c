package helper

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 64, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeImage(t *testing.T) {
	t.Run("png by sniff", func(t *testing.T) {
		img, err := decodeImage(pngBytes(t, 8, 8), "anything.bin")
		if err != nil {
			t.Fatalf("decodeImage: %v", err)
		}
		if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
			t.Errorf("unexpected bounds: %v", img.Bounds())
		}
	})

	t.Run("garbage rejected", func(t *testing.T) {
		if _, err := decodeImage([]byte("not an image"), "file.txt"); err == nil {
			t.Error("expected error for non-image payload")
		}
	})

	t.Run("empty rejected", func(t *testing.T) {
		if _, err := decodeImage(nil, "x.png"); err == nil {
			t.Error("expected error for empty payload")
		}
	})
}

func TestDownscaleIfNeeded(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		maxW, maxH   int
		wantW, wantH int
	}{
		{"small image untouched", 100, 50, 1600, 1600, 100, 50},
		{"wide image scaled by width", 3200, 1600, 1600, 1600, 1600, 800},
		{"tall image scaled by height", 800, 3200, 1600, 1600, 400, 1600},
		{"no limits", 3200, 3200, 0, 0, 3200, 3200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
			out := downscaleIfNeeded(src, tt.maxW, tt.maxH)
			b := out.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("got %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestConvertToWebP(t *testing.T) {
	out, err := ConvertToWebP(pngBytes(t, 32, 16), "sample.png")
	if err != nil {
		t.Fatalf("ConvertToWebP: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty webp output")
	}
	// Container RIFF/WEBP
	if !bytes.HasPrefix(out, []byte("RIFF")) || !bytes.Contains(out[:16], []byte("WEBP")) {
		t.Errorf("output is not a WEBP container: % x", out[:16])
	}
}

func TestPublicURLAndKeyRoundTrip(t *testing.T) {
	s := &OSSService{
		Endpoint:   "https://oss-ap-southeast-5.aliyuncs.com",
		BucketName: "cyberku-assets",
		Prefix:     "uploads",
	}

	key := s.buildObjectKey("profile", ".webp")
	if !bytes.HasPrefix([]byte(key), []byte("uploads/profile/")) {
		t.Errorf("key should start with uploads/profile/, got %q", key)
	}

	url := s.PublicURL(key)
	want := "https://cyberku-assets.oss-ap-southeast-5.aliyuncs.com/" + key
	if url != want {
		t.Errorf("PublicURL = %q, want %q", url, want)
	}

	back, err := s.keyFromPublicURL(url)
	if err != nil {
		t.Fatalf("keyFromPublicURL: %v", err)
	}
	if back != key {
		t.Errorf("round trip key = %q, want %q", back, key)
	}
}
