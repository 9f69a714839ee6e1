package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"github.com/findhomy/backend/internal/helper"
	"github.com/findhomy/backend/internal/interfaces"
	"github.com/findhomy/backend/pkg/imageutil"
	"github.com/findhomy/backend/pkg/utils"
	"github.com/google/uuid"
)

const (
	profileImageSizeLimit  = 200 * 1000      // 200 kB
	propertyImageSizeLimit = 2 * 1000 * 1000 // 2 MB

	imageMaxWidth = 1600
	imageQuality  = 85

	uploadTimeout = 20 * time.Second
)

// uploadImage runs the whole pipeline for one incoming file: size cap,
// format sniff, normalization, blob upload. Returns the public URL.
func uploadImage(
	up interfaces.Uploader,
	folder string,
	file *multipart.FileHeader,
	sizeLimit int64,
	tooLargeMsg string,
) (string, error) {
	if file.Size > sizeLimit {
		return "", helper.NewAPIError(400, tooLargeMsg)
	}

	f, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("cannot open uploaded file: %w", err)
	}
	defer f.Close()

	b, err := utils.ReadAllLimit(f, sizeLimit)
	if err != nil {
		return "", helper.NewAPIError(400, tooLargeMsg)
	}

	if _, err := imageutil.Sniff(b); err != nil {
		return "", helper.NewAPIError(400, "File type not supported")
	}

	jpg, err := imageutil.NormalizeToJPG(b, imageMaxWidth, imageQuality)
	if err != nil {
		return "", helper.NewAPIError(400, "File type not supported")
	}

	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()

	return up.UploadBytes(ctx, folder, uuid.NewString(), jpg)
}

// deleteImage is best effort: the new image is already uploaded, a leaked
// blob on a failed delete is acceptable.
func deleteImage(up interfaces.Uploader, imageURL string) {
	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()

	if err := up.DeleteByURL(ctx, imageURL); err != nil {
		log.Printf("delete image error: %v", err)
	}
}
