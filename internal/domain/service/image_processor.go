package service

import "io"

// ImageKind selects the storage folder and target size of an upload.
type ImageKind string

const (
	ImageKindTour ImageKind = "tours"
	ImageKindUser ImageKind = "users"
)

// ImageProcessor resizes uploads to JPEG and stores them as public assets.
type ImageProcessor interface {
	// SaveResized crops src to width x height and writes it as filename.
	// Inputs that do not decode as images fail with ErrNotAnImage.
	SaveResized(src io.Reader, kind ImageKind, filename string, width, height int) error
}
