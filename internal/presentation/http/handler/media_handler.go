package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/application/service"
	"github.com/newgenpools/site-api/internal/domain/enum"
	"github.com/newgenpools/site-api/internal/presentation/http/dto/request"
	"github.com/newgenpools/site-api/internal/presentation/http/dto/response"
	"github.com/newgenpools/site-api/pkg/apperror"
)

// MediaHandler handles uploads, the media library and variant serving
type MediaHandler struct {
	mediaService *service.MediaService
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(mediaService *service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func readUpload(fh *multipart.FileHeader) (*service.UploadInput, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, apperror.NewBadRequestError("Failed to read uploaded file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, apperror.NewBadRequestError("Failed to read uploaded file")
	}

	return &service.UploadInput{
		Filename: fh.Filename,
		MimeType: fh.Header.Get("Content-Type"),
		Data:     data,
	}, nil
}

// Upload handles POST with a single "image" file plus metadata fields
func (h *MediaHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("No image file provided"))
		return
	}

	input, err := readUpload(fh)
	if err != nil {
		response.Error(c, err)
		return
	}
	input.AltText = c.PostForm("alt_text")
	input.Title = c.PostForm("title")
	input.Category = c.PostForm("category")
	if tags := strings.TrimSpace(c.PostForm("tags")); tags != "" {
		input.Tags = strings.Split(tags, ",")
	}

	img, err := h.mediaService.Upload(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Image uploaded successfully", img)
}

// UploadMany handles POST with multiple "images" files. Files that fail to
// process are skipped; the response carries the ones that were stored.
func (h *MediaHandler) UploadMany(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid multipart form"))
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		response.Error(c, apperror.NewBadRequestError("No image files provided"))
		return
	}

	category := c.PostForm("category")
	skipped := make([]string, 0)
	inputs := make([]*service.UploadInput, 0, len(files))
	for _, fh := range files {
		input, err := readUpload(fh)
		if err != nil {
			skipped = append(skipped, fh.Filename)
			continue
		}
		input.Category = category
		inputs = append(inputs, input)
	}

	uploaded, rejected := h.mediaService.UploadMany(c.Request.Context(), inputs)
	skipped = append(skipped, rejected...)
	response.Created(c, "Images uploaded successfully", gin.H{
		"uploaded": uploaded,
		"count":    len(uploaded),
		"skipped":  skipped,
	})
}

// Serve handles GET /api/images/:id/:size. The ETag depends only on the
// URL, so If-None-Match is answered before touching the database.
// etagMatches checks an If-None-Match header against the variant's entity
// tag. The header may carry a comma-separated validator list or the
// wildcard form.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		candidate = strings.TrimPrefix(candidate, "W/")
		if candidate == etag || candidate == "*" {
			return true
		}
	}
	return false
}

func (h *MediaHandler) Serve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithCode(c, http.StatusNotFound, "Image not found")
		return
	}
	size := enum.ImageSize(c.Param("size"))

	etag := service.VariantETag(id, size)
	if size.Valid() && etagMatches(c.GetHeader("If-None-Match"), etag) {
		c.Header("ETag", etag)
		c.Header("Cache-Control", "public, max-age=31536000, immutable")
		c.Status(http.StatusNotModified)
		return
	}

	variant, err := h.mediaService.Serve(c.Request.Context(), id, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("ETag", variant.ETag)
	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Data(http.StatusOK, variant.MimeType, variant.Data)
}

// List handles the media library listing (metadata only)
func (h *MediaHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	images, err := h.mediaService.List(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Images retrieved successfully", images)
}

// UpdateMeta handles updating an image's descriptive metadata
func (h *MediaHandler) UpdateMeta(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.ImageMetaRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorWithCode(c, 422, err.Error())
		return
	}

	img, err := h.mediaService.UpdateMeta(c.Request.Context(), &service.UpdateMetaInput{
		ID:       id,
		AltText:  req.AltText,
		Title:    req.Title,
		Category: req.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Image updated successfully", img)
}

// Delete handles deleting an image
func (h *MediaHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.mediaService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Image deleted successfully", nil)
}
