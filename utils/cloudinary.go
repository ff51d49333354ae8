package utils

import (
	"context"
	"io"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/pkg/errors"
)

// CloudinaryStorage implements the blob-store capability on Cloudinary.
// Constructed once at startup and injected; handlers never touch the SDK.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStorage() (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "cloudinary config")
	}
	return &CloudinaryStorage{cld: cld}, nil
}

func (s *CloudinaryStorage) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		return "", errors.Wrap(err, "uploading to cloudinary")
	}
	return resp.SecureURL, nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, publicURL string) error {
	publicID, err := extractPublicID(publicURL)
	if err != nil {
		return errors.Wrap(err, "extracting public id")
	}

	_, err = s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return errors.Wrap(err, "deleting from cloudinary")
}

// extractPublicID recovers the Cloudinary public id (folder + filename
// without extension) from a delivery URL like
// https://res.cloudinary.com/demo/image/upload/v1234567890/documents/abc.pdf
func extractPublicID(publicURL string) (string, error) {
	parsed, err := url.Parse(publicURL)
	if err != nil {
		return "", err
	}

	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	// <cloud>/<asset>/upload/[v123...]/<folder...>/<file.ext>
	if len(parts) < 4 {
		return "", errors.Errorf("unexpected cloudinary URL path %q", parsed.Path)
	}
	rest := parts[3:]
	if len(rest) > 1 && strings.HasPrefix(rest[0], "v") && isDigits(rest[0][1:]) {
		rest = rest[1:]
	}

	joined := path.Join(rest...)
	return strings.TrimSuffix(joined, path.Ext(joined)), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
