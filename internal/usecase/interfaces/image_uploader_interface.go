package interfaces

import (
	"context"
	"io"
)

// IImageUploader abstracts the external image host used by menu management
// (e.g. Cloudinary). Upload returns the public URL of the stored image.
type IImageUploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}
