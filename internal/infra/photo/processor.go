// Package photo resizes uploaded photos and stores them under the public directory.
package photo

import (
	"image"
	"io"
	"os"
	"path/filepath"

	"natours/config"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/service"
	"natours/internal/errors"

	"github.com/disintegration/imaging"
)

const jpegQuality = 90

type processor struct {
	root   string // <publicDir>/img
	encode func(w io.Writer, img image.Image) error
}

// NewProcessor stores images beneath <storage.publicDir>/img/<kind>.
func NewProcessor(cfg *config.Config) service.ImageProcessor {
	return &processor{root: filepath.Join(cfg.Storage.PublicDir, "img"), encode: encodeJPEG}
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
}

func (p *processor) SaveResized(src io.Reader, kind service.ImageKind, filename string, width, height int) error {
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return domainerrors.ErrNotAnImage.WithDetails(err.Error())
	}

	dir := filepath.Join(p.root, string(kind))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}

	resized := imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)

	path := filepath.Join(dir, filepath.Base(filename))

	return p.writeAtomic(dir, path, resized)
}

// writeAtomic encodes into a temporary file next to path and renames it into
// place, so a failed upload never leaves a truncated image behind.
func (p *processor) writeAtomic(dir, path string, img image.Image) (err error) {
	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return errors.Wrapf(err, "create temp file in %s", dir)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := p.encode(tmp, img); err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "flush %s", path)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrapf(err, "chmod %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "move %s into place", path)
	}

	return nil
}
