package request

import (
	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/application/service"
)

// ProductRequest carries the writable product fields for create and update
type ProductRequest struct {
	Name             string   `json:"name" form:"name" binding:"required,max=255"`
	ShortDescription string   `json:"short_description" form:"short_description"`
	Description      string   `json:"description" form:"description" binding:"required"`
	SKU              string   `json:"sku" form:"sku"`
	Price            string   `json:"price" form:"price"`
	CostPrice        string   `json:"cost_price" form:"cost_price"`
	Taxable          *bool    `json:"taxable" form:"taxable"`
	FeaturedImageID  string   `json:"featured_image_id" form:"featured_image_id"`
	ImageIDs         []string `json:"image_ids" form:"image_ids"`
	Category         string   `json:"category" form:"category"`
	Sizes            []string `json:"sizes" form:"sizes"`
	Status           string   `json:"status" form:"status"`
	DisplayOrder     int      `json:"display_order" form:"display_order"`
	IsActive         bool     `json:"is_active" form:"is_active"`
	SEORequest
}

// ServiceRequest carries the writable service fields for create and update
type ServiceRequest struct {
	Name             string `json:"name" form:"name" binding:"required,max=255"`
	ShortDescription string `json:"short_description" form:"short_description"`
	Description      string `json:"description" form:"description" binding:"required"`
	IconImageID      string `json:"icon_image_id" form:"icon_image_id"`
	HeroImageID      string `json:"hero_image_id" form:"hero_image_id"`
	DisplayOrder     int    `json:"display_order" form:"display_order"`
	IsActive         bool   `json:"is_active" form:"is_active"`
	SEORequest
}

// ProjectRequest carries the writable project fields for create and update
type ProjectRequest struct {
	Title            string   `json:"title" form:"title" binding:"required,max=255"`
	ShortDescription string   `json:"short_description" form:"short_description"`
	Description      string   `json:"description" form:"description"`
	FeaturedImageID  string   `json:"featured_image_id" form:"featured_image_id"`
	ImageIDs         []string `json:"image_ids" form:"image_ids"`
	Status           string   `json:"status" form:"status"`
	ShowInPortfolio  bool     `json:"show_in_portfolio" form:"show_in_portfolio"`
	SEORequest
}

// SEORequest is the embedded per-page SEO override block
type SEORequest struct {
	SEOTitle        string   `json:"seo_title" form:"seo_title"`
	SEODescription  string   `json:"seo_description" form:"seo_description"`
	SEOKeywords     []string `json:"seo_keywords" form:"seo_keywords"`
	SEOCanonicalURL string   `json:"seo_canonical_url" form:"seo_canonical_url"`
	SEOIndex        *bool    `json:"seo_index" form:"seo_index"`
}

func parseUUIDList(values []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		if id := parseUUID(v); id != nil {
			ids = append(ids, *id)
		}
	}
	return ids
}

// ToInput converts the request into a product service input
func (r *ProductRequest) ToInput() *service.ProductInput {
	return &service.ProductInput{
		Name:             r.Name,
		ShortDescription: r.ShortDescription,
		Description:      r.Description,
		SKU:              r.SKU,
		Price:            parseDecimal(r.Price),
		CostPrice:        parseDecimal(r.CostPrice),
		Taxable:          r.Taxable,
		FeaturedImageID:  parseUUID(r.FeaturedImageID),
		ImageIDs:         parseUUIDList(r.ImageIDs),
		Category:         r.Category,
		Sizes:            r.Sizes,
		Status:           r.Status,
		DisplayOrder:     r.DisplayOrder,
		IsActive:         r.IsActive,
		SEOTitle:         r.SEOTitle,
		SEODescription:   r.SEODescription,
		SEOKeywords:      r.SEOKeywords,
		SEOCanonicalURL:  r.SEOCanonicalURL,
		SEOIndex:         r.SEOIndex,
	}
}

// ToInput converts the request into a service catalog input
func (r *ServiceRequest) ToInput() *service.ServiceInput {
	return &service.ServiceInput{
		Name:             r.Name,
		ShortDescription: r.ShortDescription,
		Description:      r.Description,
		IconImageID:      parseUUID(r.IconImageID),
		HeroImageID:      parseUUID(r.HeroImageID),
		DisplayOrder:     r.DisplayOrder,
		IsActive:         r.IsActive,
		SEOTitle:         r.SEOTitle,
		SEODescription:   r.SEODescription,
		SEOKeywords:      r.SEOKeywords,
		SEOCanonicalURL:  r.SEOCanonicalURL,
		SEOIndex:         r.SEOIndex,
	}
}

// ToInput converts the request into a project service input
func (r *ProjectRequest) ToInput() *service.ProjectInput {
	return &service.ProjectInput{
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		Description:      r.Description,
		FeaturedImageID:  parseUUID(r.FeaturedImageID),
		ImageIDs:         parseUUIDList(r.ImageIDs),
		Status:           r.Status,
		ShowInPortfolio:  r.ShowInPortfolio,
		SEOTitle:         r.SEOTitle,
		SEODescription:   r.SEODescription,
		SEOKeywords:      r.SEOKeywords,
		SEOCanonicalURL:  r.SEOCanonicalURL,
		SEOIndex:         r.SEOIndex,
	}
}
