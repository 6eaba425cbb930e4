package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/newgenpools/site-api/internal/application/service"
	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/newgenpools/site-api/internal/presentation/http/dto/response"
	"github.com/newgenpools/site-api/internal/presentation/http/middleware"
)

// PublicHandler serves the public site endpoints: published catalog data
// plus the site-wide settings and resolved theme.
type PublicHandler struct {
	settingsService *service.SettingsService
	catalogService  *service.ServiceCatalogService
	projectService  *service.ProjectService
	productService  *service.ProductService
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(
	settingsService *service.SettingsService,
	catalogService *service.ServiceCatalogService,
	projectService *service.ProjectService,
	productService *service.ProductService,
) *PublicHandler {
	return &PublicHandler{
		settingsService: settingsService,
		catalogService:  catalogService,
		projectService:  projectService,
		productService:  productService,
	}
}

// siteMeta is the settings-derived block every public page response carries
func (h *PublicHandler) siteMeta(c *gin.Context) (*entity.Settings, gin.H, error) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		return nil, nil, err
	}
	return settings, gin.H{
		"site_name":        settings.SiteName,
		"meta_title":       settings.DefaultMetaTitle,
		"meta_description": settings.DefaultMetaDescription,
		"contact_email":    settings.ContactEmail,
		"contact_phone":    settings.ContactPhone,
		"theme":            service.ResolveTheme(settings),
	}, nil
}

// Home handles GET /api/v1/home
func (h *PublicHandler) Home(c *gin.Context) {
	_, meta, err := h.siteMeta(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	services, err := h.catalogService.ListActiveServices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	projects, err := h.projectService.ListPortfolio(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(projects) > 6 {
		projects = projects[:6]
	}

	response.OK(c, "Home retrieved successfully", gin.H{
		"site":     meta,
		"services": services,
		"projects": projects,
		"flashes":  middleware.Flashes(c),
	})
}

// Services handles GET /api/v1/services
func (h *PublicHandler) Services(c *gin.Context) {
	_, meta, err := h.siteMeta(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	services, err := h.catalogService.ListActiveServices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Services retrieved successfully", gin.H{
		"site":     meta,
		"services": services,
	})
}

// ServiceBySlug handles GET /api/v1/services/:slug
func (h *PublicHandler) ServiceBySlug(c *gin.Context) {
	svc, err := h.catalogService.GetServiceBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Service retrieved successfully", svc)
}

// Portfolio handles GET /api/v1/portfolio
func (h *PublicHandler) Portfolio(c *gin.Context) {
	_, meta, err := h.siteMeta(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	projects, err := h.projectService.ListPortfolio(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Portfolio retrieved successfully", gin.H{
		"site":     meta,
		"projects": projects,
	})
}

// ProjectBySlug handles GET /api/v1/portfolio/:slug
func (h *PublicHandler) ProjectBySlug(c *gin.Context) {
	project, err := h.projectService.GetProjectBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Project retrieved successfully", project)
}

// Products handles GET /api/v1/products
func (h *PublicHandler) Products(c *gin.Context) {
	_, meta, err := h.siteMeta(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	products, err := h.productService.ListPublishedProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products retrieved successfully", gin.H{
		"site":     meta,
		"products": products,
	})
}

// ProductBySlug handles GET /api/v1/products/:slug
func (h *PublicHandler) ProductBySlug(c *gin.Context) {
	product, err := h.productService.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved successfully", product)
}

// Settings handles GET /api/v1/settings, the public site-chrome payload
func (h *PublicHandler) Settings(c *gin.Context) {
	settings, meta, err := h.siteMeta(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings retrieved successfully", gin.H{
		"site": meta,
		"company": gin.H{
			"name":    settings.CompanyName,
			"street":  settings.CompanyStreet,
			"city":    settings.CompanyCity,
			"state":   settings.CompanyState,
			"zip":     settings.CompanyZip,
			"country": settings.CompanyCountry,
		},
		"social": gin.H{
			"facebook":  settings.Facebook,
			"instagram": settings.Instagram,
			"twitter":   settings.Twitter,
			"linkedin":  settings.LinkedIn,
		},
	})
}
