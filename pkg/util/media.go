package util

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go"
	"github.com/cloudinary/cloudinary-go/api/uploader"
	"github.com/google/uuid"

	"okaziyo-api-io/api/pkg/apperr"
)

const (
	MediaTimeout = 40 * time.Second
	// Upload cap matches the 1MB limit the platform has always
	// enforced on posting images.
	MaxImageSize = 1 << 20
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// MediaService wraps the cloudinary client. It is constructed once at
// startup and injected into the controllers that touch media, instead
// of each route module building its own client.
type MediaService struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewMediaService() (*MediaService, error) {
	cloudName := LoadEnvFor("CLOUDINARY_CLOUDNAME")
	apiKey := LoadEnvFor("CLOUDINARY_API_KEY")
	apiSecret := LoadEnvFor("CLOUDINARY_API_SECRET")

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, apperr.Storage(err, "cloudinary init")
	}

	return &MediaService{
		cld:    cld,
		folder: LoadEnvFor("CLOUDINARY_UPLOAD_FOLDER"),
	}, nil
}

// CheckImage validates size and content type before the bytes ever
// leave the process.
func CheckImage(header *multipart.FileHeader) error {
	if header.Size > MaxImageSize {
		return apperr.Validation("file size should not exceed 1MB")
	}
	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		return apperr.Validation("only jpeg, jpg and png images are accepted")
	}
	return nil
}

// Upload stores a single image and returns the upload result holding
// its public id and secure URL.
func (m *MediaService) Upload(ctx context.Context, file multipart.File, originalName string) (uploader.UploadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, MediaTimeout)
	defer cancel()

	res, err := m.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   m.folder,
		PublicID: MediaKey(originalName),
	})
	if err != nil {
		return uploader.UploadResult{}, apperr.Storage(err, "image upload")
	}

	return *res, nil
}

// Destroy removes a stored image by the trailing path segment of its
// location URL.
func (m *MediaService) Destroy(ctx context.Context, location string) error {
	ctx, cancel := context.WithTimeout(ctx, MediaTimeout)
	defer cancel()

	publicID := KeyFromLocation(location)
	if m.folder != "" {
		publicID = m.folder + "/" + publicID
	}

	_, err := m.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return apperr.Storage(err, "image deletion")
	}

	return nil
}

// MediaKey builds a storage key for an uploaded file: a random prefix
// plus the lowercased, hyphenated original name.
func MediaKey(originalName string) string {
	name := strings.Join(strings.Fields(strings.ToLower(originalName)), "-")
	name = strings.TrimSuffix(name, path.Ext(name))
	return fmt.Sprintf("%s-%s", uuid.New().String(), name)
}

// KeyFromLocation extracts the storage key from a stored location URL:
// the trailing path segment without its extension.
func KeyFromLocation(location string) string {
	segment := location
	if i := strings.LastIndex(segment, "/"); i >= 0 {
		segment = segment[i+1:]
	}
	return strings.TrimSuffix(segment, path.Ext(segment))
}
