package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed all:images
var imageFS embed.FS

// ErrNoMetadata is returned when an object's texture cannot be found or
// decoded, leaving the simulation without spawn geometry for it.
var ErrNoMetadata = errors.New("assets: object metadata unavailable")

var (
	objectImages = map[string]*ebiten.Image{}
	objectSizes  = map[string][2]float64{}
)

// Preload decodes every embedded object texture into GPU images so the
// first spawn doesn't stall a frame. Called once by the loading scene.
func Preload() error {
	entries, err := fs.ReadDir(imageFS, "images/objects")
	if err != nil {
		return fmt.Errorf("read object images: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".png" {
			continue
		}
		if _, err := loadObjectImage(entry.Name()); err != nil {
			return err
		}
	}
	return nil
}

// GetObjectImage returns a decoded object texture. Requesting a texture
// that is not embedded is a programming error.
func GetObjectImage(name string) *ebiten.Image {
	img, err := loadObjectImage(name)
	if err != nil {
		panic(fmt.Sprintf("assets: object image %s: %v", name, err))
	}
	return img
}

func loadObjectImage(name string) (*ebiten.Image, error) {
	if img, ok := objectImages[name]; ok {
		return img, nil
	}
	raw, err := imageFS.ReadFile("images/objects/" + name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	decoded, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	img := ebiten.NewImageFromImage(decoded)
	objectImages[name] = img
	return img, nil
}

// Metadata answers native texture size queries from the embedded images.
// It decodes only the image header, so it works without a graphics
// context and is safe for the simulation core to use directly.
type Metadata struct{}

// ObjectSize returns the native width and height of an object texture.
func (Metadata) ObjectSize(name string) (float64, float64, error) {
	if size, ok := objectSizes[name]; ok {
		return size[0], size[1], nil
	}
	raw, err := imageFS.ReadFile("images/objects/" + name)
	if err != nil {
		return 0, 0, ErrNoMetadata
	}
	config, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return 0, 0, ErrNoMetadata
	}
	size := [2]float64{float64(config.Width), float64(config.Height)}
	objectSizes[name] = size
	return size[0], size[1], nil
}
