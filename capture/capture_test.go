package capture

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/etnz/cardfolio"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 0xff, A: 0xff})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() failed: %v", err)
	}
	return buf.Bytes()
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charizard.png")
	b := pngBytes(t)
	if err := os.WriteFile(path, b, 0644); err != nil {
		t.Fatal(err)
	}

	c, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile() failed: %v", err)
	}
	want := cardfolio.Card{
		Name:      "charizard.png",
		Expansion: GalleryExpansion,
		Language:  "IT",
		Condition: "Near Mint",
		Image:     "data:image/png;base64," + base64.StdEncoding.EncodeToString(b),
	}
	if c != want {
		t.Errorf("FromFile() = %+v want %+v", c, want)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("FromFile() card is invalid: %v", err)
	}
}

func TestFromFileMissing(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Errorf("FromFile(missing) expected an error")
	}
}

func TestFromBytesWithoutName(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 5, 7, 0, time.UTC)
	c := FromBytes("", []byte("not an image"), now)
	if c.Name != "Image 09:05:07" {
		t.Errorf("Name = %q want %q", c.Name, "Image 09:05:07")
	}
	if !strings.HasPrefix(c.Image, "data:text/plain; charset=utf-8;base64,") {
		t.Errorf("Image = %q", c.Image)
	}
}

func TestFromFrame(t *testing.T) {
	now := time.Date(2025, 3, 1, 18, 30, 0, 0, time.UTC)
	frame := image.NewRGBA(image.Rect(0, 0, 64, 48))

	c, err := FromFrame(frame, now)
	if err != nil {
		t.Fatalf("FromFrame() failed: %v", err)
	}
	if c.Name != "Snapshot 18:30:00" || c.Expansion != SnapshotExpansion || c.Condition != "Mint" || c.Language != "IT" {
		t.Errorf("FromFrame() = %+v", c)
	}

	payload, ok := strings.CutPrefix(c.Image, "data:image/jpeg;base64,")
	if !ok {
		t.Fatalf("Image = %q is not a jpeg data url", c.Image)
	}
	b, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("invalid base64 payload: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("jpeg.Decode() failed: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Errorf("frame size = %v want 64x48", img.Bounds())
	}
}

func TestFromFrameBlank(t *testing.T) {
	c, err := FromFrame(nil, time.Now())
	if err != nil {
		t.Fatalf("FromFrame(nil) failed: %v", err)
	}
	if c.Image == "" {
		t.Errorf("FromFrame(nil) has no image")
	}
}

func TestDecodeFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := os.WriteFile(path, pngBytes(t), 0644); err != nil {
		t.Fatal(err)
	}
	img, err := DecodeFrame(path)
	if err != nil {
		t.Fatalf("DecodeFrame() failed: %v", err)
	}
	if img.Bounds().Dx() != 4 {
		t.Errorf("DecodeFrame() size = %v want 4x4", img.Bounds())
	}
}
