// Package attachment handles receipt image plumbing for the front end:
// copying a selected image into the data directory and producing a small
// thumbnail. The stores themselves never touch image files; they only
// carry the path string this package returns.
package attachment

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const (
	// ImagesDirName is the subdirectory of the data directory that
	// receipt images are copied into.
	ImagesDirName = "images"
	// ThumbsDirName holds the generated thumbnails, inside ImagesDirName.
	ThumbsDirName = "thumbs"
	// ThumbnailWidth is the pixel width of generated thumbnails.
	ThumbnailWidth = 200
)

// ErrNotAnImage is returned when the source file cannot be decoded as an
// image.
var ErrNotAnImage = errors.New("file is not a readable image")

// Copy copies the image at src into <dataDir>/images, writes a thumbnail
// under <dataDir>/images/thumbs, and returns the path to store on the
// expense, relative to dataDir and slash-separated. A file with the same
// name is replaced.
func Copy(dataDir, src string) (string, error) {
	img, err := imaging.Open(src)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotAnImage, src)
	}

	name := filepath.Base(src)
	imagesDir := filepath.Join(dataDir, ImagesDirName)
	thumbsDir := filepath.Join(imagesDir, ThumbsDirName)
	if err := os.MkdirAll(thumbsDir, 0o755); err != nil {
		return "", fmt.Errorf("create images directory: %w", err)
	}

	if err := copyFile(src, filepath.Join(imagesDir, name)); err != nil {
		return "", fmt.Errorf("copy image: %w", err)
	}

	thumb := imaging.Resize(img, ThumbnailWidth, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(thumbsDir, name)); err != nil {
		return "", fmt.Errorf("write thumbnail: %w", err)
	}

	return ImagesDirName + "/" + name, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
