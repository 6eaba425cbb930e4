package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/internal/domain/enum"
	"github.com/newgenpools/site-api/internal/domain/repository"
	"github.com/newgenpools/site-api/pkg/apperror"

	// Registers the webp decoder for image.Decode; webp derivatives are
	// re-encoded as JPEG since there is no encoder.
	_ "golang.org/x/image/webp"
)

// Variant dimensions: thumbnail is a center-cropped square, medium and
// large are width-bounded with the aspect ratio preserved and are never
// enlarged.
const (
	thumbnailSize = 150
	mediumWidth   = 800
	largeWidth    = 1600

	// serveTimeout bounds the blob read; the write paths are not timed.
	serveTimeout = 8 * time.Second
)

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// MediaService handles the upload/resize/serve pipeline and the media
// library metadata.
type MediaService struct {
	imageRepo repository.ImageRepository
	maxSize   int64
}

// NewMediaService creates a new media service
func NewMediaService(imageRepo repository.ImageRepository, maxSize int64) *MediaService {
	return &MediaService{imageRepo: imageRepo, maxSize: maxSize}
}

// UploadInput is one raw uploaded file plus its metadata.
type UploadInput struct {
	Filename string
	MimeType string
	Data     []byte
	AltText  string
	Title    string
	Category string
	Tags     []string
}

// Upload validates the raw file, derives the three resized variants and
// persists all four blobs plus metadata as a single record.
func (s *MediaService) Upload(ctx context.Context, input *UploadInput) (*entity.Image, error) {
	if int64(len(input.Data)) > s.maxSize {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Image exceeds the %d byte upload limit", s.maxSize))
	}
	if !allowedMimeTypes[strings.ToLower(input.MimeType)] {
		return nil, apperror.NewBadRequestError("Only jpeg, png, gif and webp images are allowed")
	}

	src, _, err := image.Decode(bytes.NewReader(input.Data))
	if err != nil {
		return nil, apperror.NewBadRequestError("Uploaded file is not a decodable image")
	}

	format, err := variantFormat(input.MimeType)
	if err != nil {
		return nil, err
	}

	thumbnail, err := encode(imaging.Fill(src, thumbnailSize, thumbnailSize, imaging.Center, imaging.Lanczos), format)
	if err != nil {
		return nil, err
	}
	medium, err := encode(resizeToWidth(src, mediumWidth), format)
	if err != nil {
		return nil, err
	}
	large, err := encode(resizeToWidth(src, largeWidth), format)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = input.Filename
	}

	img := &entity.Image{
		Filename:      input.Filename,
		MimeType:      strings.ToLower(input.MimeType),
		OriginalData:  input.Data,
		ThumbnailData: thumbnail,
		MediumData:    medium,
		LargeData:     large,
		AltText:       strings.TrimSpace(input.AltText),
		Title:         title,
		Category:      enum.ParseImageCategory(input.Category),
		Tags:          input.Tags,
	}

	if err := s.imageRepo.Create(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

// UploadMany processes up to 20 files, continuing past individual
// failures. It returns the stored images and the filenames it skipped.
func (s *MediaService) UploadMany(ctx context.Context, inputs []*UploadInput) ([]*entity.Image, []string) {
	skipped := make([]string, 0)
	if len(inputs) > 20 {
		for _, in := range inputs[20:] {
			skipped = append(skipped, in.Filename)
		}
		inputs = inputs[:20]
	}
	uploaded := make([]*entity.Image, 0, len(inputs))
	for _, in := range inputs {
		img, err := s.Upload(ctx, in)
		if err != nil {
			log.Printf("Warning: failed to process upload %q: %v", in.Filename, err)
			skipped = append(skipped, in.Filename)
			continue
		}
		uploaded = append(uploaded, img)
	}
	return uploaded, skipped
}

// ServedVariant is one variant ready to be written to the client.
type ServedVariant struct {
	MimeType string
	Data     []byte
	ETag     string
}

// VariantETag derives the entity tag for a (id, size) pair. It depends on
// nothing else, so conditional requests can be answered before any data
// fetch.
func VariantETag(id uuid.UUID, size enum.ImageSize) string {
	return fmt.Sprintf("%q", fmt.Sprintf("%s-%s", id, size))
}

// Serve fetches exactly one variant. An invalid size selector fails before
// any storage access; the blob read itself is bounded by an 8s timeout.
func (s *MediaService) Serve(ctx context.Context, id uuid.UUID, size enum.ImageSize) (*ServedVariant, error) {
	if !size.Valid() {
		return nil, apperror.NewNotFoundError("Image variant")
	}

	ctx, cancel := context.WithTimeout(ctx, serveTimeout)
	defer cancel()

	mimeType, data, err := s.imageRepo.GetVariant(ctx, id, size)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, apperror.NewNotFoundError("Image")
	}

	if size != enum.ImageSizeOriginal {
		mimeType = variantMimeType(mimeType)
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	return &ServedVariant{
		MimeType: mimeType,
		Data:     data,
		ETag:     VariantETag(id, size),
	}, nil
}

// List returns image metadata, newest first, without blob data. The
// optional query and limit back the admin media selector.
func (s *MediaService) List(ctx context.Context, query string, limit int) ([]entity.Image, error) {
	if limit < 0 {
		limit = 0
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	return s.imageRepo.ListMeta(ctx, strings.TrimSpace(query), limit)
}

// UpdateMetaInput updates an image's descriptive metadata.
type UpdateMetaInput struct {
	ID       uuid.UUID
	AltText  string
	Title    string
	Category string
}

// UpdateMeta updates alt text, title and category.
func (s *MediaService) UpdateMeta(ctx context.Context, input *UpdateMetaInput) (*entity.Image, error) {
	img, err := s.imageRepo.GetMeta(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, apperror.NewNotFoundError("Image")
	}

	img.AltText = strings.TrimSpace(input.AltText)
	img.Title = strings.TrimSpace(input.Title)
	img.Category = enum.ParseImageCategory(input.Category)

	if err := s.imageRepo.UpdateMeta(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

// Delete removes an image record.
func (s *MediaService) Delete(ctx context.Context, id uuid.UUID) error {
	img, err := s.imageRepo.GetMeta(ctx, id)
	if err != nil {
		return err
	}
	if img == nil {
		return apperror.NewNotFoundError("Image")
	}
	return s.imageRepo.Delete(ctx, id)
}

// resizeToWidth bounds the image to maxWidth, preserving aspect ratio and
// never enlarging.
func resizeToWidth(src image.Image, maxWidth int) image.Image {
	if src.Bounds().Dx() <= maxWidth {
		return src
	}
	return imaging.Resize(src, maxWidth, 0, imaging.Lanczos)
}

// variantFormat picks the encoding format for derived variants. Webp has
// no encoder, so its derivatives become JPEG.
func variantFormat(mimeType string) (imaging.Format, error) {
	switch strings.ToLower(mimeType) {
	case "image/jpeg", "image/jpg", "image/webp":
		return imaging.JPEG, nil
	case "image/png":
		return imaging.PNG, nil
	case "image/gif":
		return imaging.GIF, nil
	}
	return 0, apperror.NewBadRequestError("Unsupported image type")
}

// variantMimeType is the content type the derived variants were encoded
// with, given the original's mime type.
func variantMimeType(originalMime string) string {
	switch strings.ToLower(originalMime) {
	case "image/png":
		return "image/png"
	case "image/gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}

func encode(img image.Image, format imaging.Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("failed to encode image variant: %w", err)
	}
	return buf.Bytes(), nil
}
