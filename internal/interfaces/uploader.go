package interfaces

import "context"

// Uploader is the blob-storage seam: real traffic goes to Cloudinary,
// tests substitute an in-memory fake.
type Uploader interface {
	UploadBytes(ctx context.Context, folder string, filename string, b []byte) (string, error)
	DeleteByURL(ctx context.Context, imageURL string) error
}
