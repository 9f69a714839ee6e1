package cloudinary

import (
	"bytes"
	"context"
	"net/url"
	"path"
	"strings"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryUploader struct {
	cld *cld.Cloudinary
}

func NewCloudinaryUploader(cloud *cld.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cloud}
}

func (u *CloudinaryUploader) UploadBytes(
	ctx context.Context,
	folder string,
	filename string,
	b []byte,
) (string, error) {
	reader := bytes.NewReader(b)

	res, err := u.cld.Upload.Upload(
		ctx,
		reader,
		uploader.UploadParams{
			Folder:       folder,
			PublicID:     filename,
			ResourceType: "image",
		},
	)
	if err != nil {
		return "", err
	}

	return res.SecureURL, nil
}

// DeleteByURL destroys the asset a previous UploadBytes returned. URLs
// from other hosts (default images, externally hosted avatars) are left
// alone.
func (u *CloudinaryUploader) DeleteByURL(ctx context.Context, imageURL string) error {
	publicID, ok := publicIDFromURL(imageURL)
	if !ok {
		return nil
	}
	_, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	return err
}

// publicIDFromURL extracts "<folder>/<name>" from a Cloudinary delivery
// URL of the form .../image/upload/v123/<folder>/<name>.<ext>.
func publicIDFromURL(imageURL string) (string, bool) {
	parsed, err := url.Parse(imageURL)
	if err != nil || !strings.Contains(parsed.Host, "cloudinary.com") {
		return "", false
	}
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	for i, seg := range segments {
		if seg == "upload" && i+2 < len(segments) {
			rest := segments[i+1:]
			if strings.HasPrefix(rest[0], "v") {
				rest = rest[1:]
			}
			id := strings.Join(rest, "/")
			return strings.TrimSuffix(id, path.Ext(id)), true
		}
	}
	return "", false
}
