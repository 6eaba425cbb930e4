package handler

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/application/service"
	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubImageRepo counts variant reads so the tests can prove conditional
// requests and invalid sizes never hit storage.
type stubImageRepo struct {
	images      map[uuid.UUID]*entity.Image
	variantGets int
}

func newStubImageRepo() *stubImageRepo {
	return &stubImageRepo{images: make(map[uuid.UUID]*entity.Image)}
}

func (s *stubImageRepo) Create(_ context.Context, img *entity.Image) error {
	if img.ID == uuid.Nil {
		img.ID = uuid.New()
	}
	s.images[img.ID] = img
	return nil
}

func (s *stubImageRepo) GetMeta(_ context.Context, id uuid.UUID) (*entity.Image, error) {
	return s.images[id], nil
}

func (s *stubImageRepo) GetVariant(_ context.Context, id uuid.UUID, size enum.ImageSize) (string, []byte, error) {
	s.variantGets++
	img, ok := s.images[id]
	if !ok {
		return "", nil, nil
	}
	return img.MimeType, img.VariantData(size), nil
}

func (s *stubImageRepo) UpdateMeta(_ context.Context, img *entity.Image) error {
	s.images[img.ID] = img
	return nil
}

func (s *stubImageRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.images, id)
	return nil
}

func (s *stubImageRepo) ListMeta(_ context.Context, _ string, _ int) ([]entity.Image, error) {
	out := make([]entity.Image, 0, len(s.images))
	for _, img := range s.images {
		out = append(out, *img)
	}
	return out, nil
}

func smallJPEG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 300, 300)), nil))
	return buf.Bytes()
}

func newMediaTestRouter(t *testing.T) (*gin.Engine, *stubImageRepo, *entity.Image) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newStubImageRepo()
	svc := service.NewMediaService(repo, 1<<24)
	img, err := svc.Upload(context.Background(), &service.UploadInput{
		Filename: "pool.jpg",
		MimeType: "image/jpeg",
		Data:     smallJPEG(t),
	})
	require.NoError(t, err)

	h := NewMediaHandler(svc)
	router := gin.New()
	router.GET("/api/images/:id/:size", h.Serve)
	return router, repo, img
}

func TestServeVariantSetsCachingHeaders(t *testing.T) {
	router, _, img := newMediaTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/images/"+img.ID.String()+"/thumbnail", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, `"`+img.ID.String()+`-thumbnail"`, w.Header().Get("ETag"))
	assert.Equal(t, "public, max-age=31536000, immutable", w.Header().Get("Cache-Control"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestServeAnswersConditionalRequestWithoutStorage(t *testing.T) {
	router, repo, img := newMediaTestRouter(t)
	repo.variantGets = 0

	req := httptest.NewRequest(http.MethodGet, "/api/images/"+img.ID.String()+"/medium", nil)
	req.Header.Set("If-None-Match", `"`+img.ID.String()+`-medium"`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotModified, w.Code)
	assert.Equal(t, 0, repo.variantGets, "304 is decided before any storage read")
	assert.Empty(t, w.Body.Bytes())
}

func TestServeConditionalRequestWithValidatorList(t *testing.T) {
	router, repo, img := newMediaTestRouter(t)
	repo.variantGets = 0

	req := httptest.NewRequest(http.MethodGet, "/api/images/"+img.ID.String()+"/medium", nil)
	req.Header.Set("If-None-Match", `"stale-etag", "`+img.ID.String()+`-medium"`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotModified, w.Code)
	assert.Equal(t, 0, repo.variantGets)
}

func TestServeConditionalRequestWithWildcard(t *testing.T) {
	router, repo, img := newMediaTestRouter(t)
	repo.variantGets = 0

	req := httptest.NewRequest(http.MethodGet, "/api/images/"+img.ID.String()+"/large", nil)
	req.Header.Set("If-None-Match", "*")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotModified, w.Code)
	assert.Equal(t, 0, repo.variantGets)
}

func TestServeConditionalRequestStaleETagIsFullResponse(t *testing.T) {
	router, _, img := newMediaTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/images/"+img.ID.String()+"/medium", nil)
	req.Header.Set("If-None-Match", `"some-other-image-medium"`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestServeInvalidSizeIs404(t *testing.T) {
	router, repo, img := newMediaTestRouter(t)
	repo.variantGets = 0

	req := httptest.NewRequest(http.MethodGet, "/api/images/"+img.ID.String()+"/huge", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, repo.variantGets)
}

func TestServeBadIDIs404(t *testing.T) {
	router, _, _ := newMediaTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/images/not-a-uuid/thumbnail", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServeUnknownImageIs404(t *testing.T) {
	router, _, _ := newMediaTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/images/"+uuid.NewString()+"/thumbnail", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
