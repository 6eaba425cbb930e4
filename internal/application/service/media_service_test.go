package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, 0, color.RGBA{R: uint8(x % 256), A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func decodeDims(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func newMediaFixture(maxSize int64) (*MediaService, *fakeImageRepo) {
	repo := newFakeImageRepo()
	return NewMediaService(repo, maxSize), repo
}

func TestUploadDerivesVariants(t *testing.T) {
	svc, _ := newMediaFixture(1 << 24)

	img, err := svc.Upload(context.Background(), &UploadInput{
		Filename: "pool.jpg",
		MimeType: "image/jpeg",
		Data:     testJPEG(t, 2000, 1000),
	})
	require.NoError(t, err)

	w, h := decodeDims(t, img.ThumbnailData)
	assert.Equal(t, 150, w)
	assert.Equal(t, 150, h)

	w, _ = decodeDims(t, img.MediumData)
	assert.Equal(t, 800, w)

	w, _ = decodeDims(t, img.LargeData)
	assert.Equal(t, 1600, w)
}

func TestUploadNeverEnlarges(t *testing.T) {
	svc, _ := newMediaFixture(1 << 24)

	img, err := svc.Upload(context.Background(), &UploadInput{
		Filename: "small.png",
		MimeType: "image/png",
		Data:     testPNG(t, 400, 300),
	})
	require.NoError(t, err)

	w, h := decodeDims(t, img.MediumData)
	assert.Equal(t, 400, w, "medium keeps original width when smaller than the bound")
	assert.Equal(t, 300, h)

	w, _ = decodeDims(t, img.LargeData)
	assert.Equal(t, 400, w)
}

func TestUploadRejectsOversized(t *testing.T) {
	svc, _ := newMediaFixture(10)

	_, err := svc.Upload(context.Background(), &UploadInput{
		Filename: "big.jpg",
		MimeType: "image/jpeg",
		Data:     testJPEG(t, 100, 100),
	})
	assert.Error(t, err)
}

func TestUploadRejectsBadMimeType(t *testing.T) {
	svc, _ := newMediaFixture(1 << 24)

	_, err := svc.Upload(context.Background(), &UploadInput{
		Filename: "doc.pdf",
		MimeType: "application/pdf",
		Data:     []byte("%PDF-1.4"),
	})
	assert.Error(t, err)
}

func TestUploadRejectsUndecodableData(t *testing.T) {
	svc, _ := newMediaFixture(1 << 24)

	_, err := svc.Upload(context.Background(), &UploadInput{
		Filename: "fake.jpg",
		MimeType: "image/jpeg",
		Data:     []byte("not an image"),
	})
	assert.Error(t, err)
}

func TestUploadDefaultsTitleToFilename(t *testing.T) {
	svc, _ := newMediaFixture(1 << 24)

	img, err := svc.Upload(context.Background(), &UploadInput{
		Filename: "backyard.jpg",
		MimeType: "image/jpeg",
		Data:     testJPEG(t, 100, 100),
	})
	require.NoError(t, err)
	assert.Equal(t, "backyard.jpg", img.Title)
}

func TestUploadManyContinuesPastFailures(t *testing.T) {
	svc, _ := newMediaFixture(1 << 24)

	uploaded, skipped := svc.UploadMany(context.Background(), []*UploadInput{
		{Filename: "ok.jpg", MimeType: "image/jpeg", Data: testJPEG(t, 50, 50)},
		{Filename: "broken.jpg", MimeType: "image/jpeg", Data: []byte("junk")},
		{Filename: "ok2.jpg", MimeType: "image/jpeg", Data: testJPEG(t, 60, 60)},
	})
	require.Len(t, uploaded, 2)
	assert.Equal(t, "ok.jpg", uploaded[0].Filename)
	assert.Equal(t, "ok2.jpg", uploaded[1].Filename)
	assert.Equal(t, []string{"broken.jpg"}, skipped)
}

func TestServeInvalidSizeFailsBeforeStorage(t *testing.T) {
	svc, repo := newMediaFixture(1 << 24)

	_, err := svc.Serve(context.Background(), uuid.New(), enum.ImageSize("huge"))
	assert.Error(t, err)
	assert.Equal(t, 0, repo.variantGets, "invalid size never reaches storage")
}

func TestServeUnknownImage(t *testing.T) {
	svc, repo := newMediaFixture(1 << 24)

	_, err := svc.Serve(context.Background(), uuid.New(), enum.ImageSizeThumbnail)
	assert.Error(t, err)
	assert.Equal(t, 1, repo.variantGets)
}

func TestServeReturnsVariantWithETag(t *testing.T) {
	svc, _ := newMediaFixture(1 << 24)

	img, err := svc.Upload(context.Background(), &UploadInput{
		Filename: "pool.jpg",
		MimeType: "image/jpeg",
		Data:     testJPEG(t, 500, 500),
	})
	require.NoError(t, err)

	variant, err := svc.Serve(context.Background(), img.ID, enum.ImageSizeThumbnail)
	require.NoError(t, err)

	assert.Equal(t, `"`+img.ID.String()+`-thumbnail"`, variant.ETag)
	assert.Equal(t, "image/jpeg", variant.MimeType)
	assert.Equal(t, img.ThumbnailData, variant.Data)
}

func TestServeOriginalKeepsStoredMimeType(t *testing.T) {
	svc, _ := newMediaFixture(1 << 24)

	img, err := svc.Upload(context.Background(), &UploadInput{
		Filename: "pool.png",
		MimeType: "image/png",
		Data:     testPNG(t, 200, 200),
	})
	require.NoError(t, err)

	variant, err := svc.Serve(context.Background(), img.ID, enum.ImageSizeOriginal)
	require.NoError(t, err)
	assert.Equal(t, "image/png", variant.MimeType)
	assert.Equal(t, img.OriginalData, variant.Data)
}

func TestVariantETagFormat(t *testing.T) {
	id := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	assert.Equal(t, `"11111111-2222-3333-4444-555555555555-medium"`, VariantETag(id, enum.ImageSizeMedium))
}
