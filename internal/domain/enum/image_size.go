package enum

// ImageSize selects one of the four stored variants of an uploaded image.
type ImageSize string

const (
	ImageSizeOriginal  ImageSize = "original"
	ImageSizeThumbnail ImageSize = "thumbnail"
	ImageSizeMedium    ImageSize = "medium"
	ImageSizeLarge     ImageSize = "large"
)

func (s ImageSize) Valid() bool {
	switch s {
	case ImageSizeOriginal, ImageSizeThumbnail, ImageSizeMedium, ImageSizeLarge:
		return true
	}
	return false
}

// ImageCategory groups media-library images for the admin UI.
type ImageCategory string

const (
	ImageCategoryProject   ImageCategory = "project"
	ImageCategoryService   ImageCategory = "service"
	ImageCategoryHero      ImageCategory = "hero"
	ImageCategoryPortfolio ImageCategory = "portfolio"
	ImageCategoryGeneral   ImageCategory = "general"
)

func (c ImageCategory) Valid() bool {
	switch c {
	case ImageCategoryProject, ImageCategoryService, ImageCategoryHero,
		ImageCategoryPortfolio, ImageCategoryGeneral:
		return true
	}
	return false
}

func ParseImageCategory(s string) ImageCategory {
	c := ImageCategory(s)
	if c.Valid() {
		return c
	}
	return ImageCategoryGeneral
}
