// Package capture turns images into card drafts.
//
// Images are never decoded by the collection: they are attached to the card
// as an opaque data URL.
package capture

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register png frames
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/cardfolio"
)

const (
	// GalleryExpansion is the expansion of cards created from image files.
	GalleryExpansion = "Gallery"
	// SnapshotExpansion is the expansion of cards created from camera frames.
	SnapshotExpansion = "Snapshots"
	// JPEGQuality is the quality of encoded frames.
	JPEGQuality = 80

	clock = "15:04:05"
)

// Size of the blank frame used when no frame is available.
const (
	blankWidth  = 320
	blankHeight = 240
)

// DataURL returns b as a base64 data URL. An empty mime type is sniffed from b.
func DataURL(mime string, b []byte) string {
	if mime == "" {
		mime = http.DetectContentType(b)
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(b))
}

// FromBytes returns the card for an image file named name.
// A file without a name is named after the time of the import.
func FromBytes(name string, b []byte, now time.Time) cardfolio.Card {
	if name == "" {
		name = "Image " + now.Format(clock)
	}
	return cardfolio.Card{
		Name:      name,
		Expansion: GalleryExpansion,
		Language:  cardfolio.DefaultLanguage,
		Condition: cardfolio.DefaultCondition,
		Image:     DataURL("", b),
	}
}

// FromFile reads an image file and returns its card.
func FromFile(path string) (cardfolio.Card, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return cardfolio.Card{}, fmt.Errorf("cannot read image: %w", err)
	}
	return FromBytes(filepath.Base(path), b, time.Now()), nil
}

// FromFrame encodes a still frame as JPEG and returns its card. A nil frame
// is replaced by a blank one.
func FromFrame(frame image.Image, now time.Time) (cardfolio.Card, error) {
	if frame == nil {
		frame = image.NewRGBA(image.Rect(0, 0, blankWidth, blankHeight))
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, frame, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return cardfolio.Card{}, fmt.Errorf("cannot encode frame: %w", err)
	}
	return cardfolio.Card{
		Name:      "Snapshot " + now.Format(clock),
		Expansion: SnapshotExpansion,
		Language:  cardfolio.DefaultLanguage,
		Condition: "Mint",
		Image:     DataURL("image/jpeg", buf.Bytes()),
	}, nil
}

// DecodeFrame reads an image file to be used as a still frame.
func DecodeFrame(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode frame %q: %w", path, err)
	}
	return img, nil
}
