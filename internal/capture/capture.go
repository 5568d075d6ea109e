package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/kbinani/screenshot"

	"github.com/mizutanik/kindle2md/internal/configs"
	kerrors "github.com/mizutanik/kindle2md/internal/errors"
)

// CaptureRegion grabs the pixels inside region from the current display
// arrangement. The region may span displays; kbinani/screenshot handles the
// stitching.
func CaptureRegion(region configs.Region) (*image.RGBA, error) {
	if region.Width <= 0 || region.Height <= 0 {
		return nil, kerrors.ErrInvalidRegion
	}
	if screenshot.NumActiveDisplays() == 0 {
		return nil, kerrors.ErrNoDisplays
	}

	bounds := image.Rect(region.X, region.Y, region.X+region.Width, region.Y+region.Height)
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, fmt.Errorf("failed to capture region %dx%d at (%d,%d): %w",
			region.Width, region.Height, region.X, region.Y, err)
	}
	return img, nil
}

// SaveImage writes img to path as PNG.
func SaveImage(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}
