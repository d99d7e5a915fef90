package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryService hosts uploaded contact avatars. It is optional: the
// server runs without it and the avatar endpoint reports itself
// unconfigured.
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinary(cloudinaryURL string) (*CloudinaryService, error) {
	if cloudinaryURL == "" {
		return nil, fmt.Errorf("cloudinary URL is required")
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryService{cld: cld}, nil
}

// UploadAvatar stores a contact photo and returns its HTTPS URL.
func (cs *CloudinaryService) UploadAvatar(ctx context.Context, file multipart.File, contactID int) (string, error) {
	truthy := true
	falsy := false

	result, err := cs.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       fmt.Sprintf("avatars/contact-%d-%s", contactID, uuid.New().String()),
		Folder:         "avatars",
		UniqueFilename: &truthy,
		Overwrite:      &falsy,
		ResourceType:   "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}
	if result.SecureURL != "" {
		return result.SecureURL, nil
	}
	return result.URL, nil
}
