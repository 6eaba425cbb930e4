package request

import (
	"github.com/newgenpools/site-api/internal/application/service"
)

// SettingsRequest is a partial settings patch: empty fields keep the
// stored value.
type SettingsRequest struct {
	SiteName                string `json:"site_name" form:"site_name"`
	DefaultMetaTitle        string `json:"default_meta_title" form:"default_meta_title"`
	DefaultMetaDescription  string `json:"default_meta_description" form:"default_meta_description"`
	DefaultOpenGraphImageID string `json:"default_og_image_id" form:"default_og_image_id"`
	ContactEmail            string `json:"contact_email" form:"contact_email"`
	ContactPhone            string `json:"contact_phone" form:"contact_phone"`
	SalesTaxRate            string `json:"sales_tax_rate" form:"sales_tax_rate"`
	CompanyName             string `json:"company_name" form:"company_name"`
	CompanyStreet           string `json:"company_street" form:"company_street"`
	CompanyCity             string `json:"company_city" form:"company_city"`
	CompanyState            string `json:"company_state" form:"company_state"`
	CompanyZip              string `json:"company_zip" form:"company_zip"`
	CompanyCountry          string `json:"company_country" form:"company_country"`
	Facebook                string `json:"facebook" form:"facebook"`
	Instagram               string `json:"instagram" form:"instagram"`
	Twitter                 string `json:"twitter" form:"twitter"`
	LinkedIn                string `json:"linkedin" form:"linkedin"`
	ThemePreset             string `json:"theme_preset" form:"theme_preset"`
	PrimaryColor            string `json:"primary_color" form:"primary_color"`
	SecondaryColor          string `json:"secondary_color" form:"secondary_color"`
	NavbarColor             string `json:"navbar_color" form:"navbar_color"`
	FooterColor             string `json:"footer_color" form:"footer_color"`
	FontFamily              string `json:"font_family" form:"font_family"`
}

// ToInput converts the request into a settings service input
func (r *SettingsRequest) ToInput() *service.UpdateSettingsInput {
	return &service.UpdateSettingsInput{
		SiteName:                r.SiteName,
		DefaultMetaTitle:        r.DefaultMetaTitle,
		DefaultMetaDescription:  r.DefaultMetaDescription,
		DefaultOpenGraphImageID: parseUUID(r.DefaultOpenGraphImageID),
		ContactEmail:            r.ContactEmail,
		ContactPhone:            r.ContactPhone,
		SalesTaxRate:            parseDecimal(r.SalesTaxRate),
		CompanyName:             r.CompanyName,
		CompanyStreet:           r.CompanyStreet,
		CompanyCity:             r.CompanyCity,
		CompanyState:            r.CompanyState,
		CompanyZip:              r.CompanyZip,
		CompanyCountry:          r.CompanyCountry,
		Facebook:                r.Facebook,
		Instagram:               r.Instagram,
		Twitter:                 r.Twitter,
		LinkedIn:                r.LinkedIn,
		ThemePreset:             r.ThemePreset,
		PrimaryColor:            r.PrimaryColor,
		SecondaryColor:          r.SecondaryColor,
		NavbarColor:             r.NavbarColor,
		FooterColor:             r.FooterColor,
		FontFamily:              r.FontFamily,
	}
}

// ContactRequest is a public contact form submission
type ContactRequest struct {
	Name        string `json:"name" form:"name" binding:"required,max=255"`
	Email       string `json:"email" form:"email" binding:"required,email"`
	Phone       string `json:"phone" form:"phone"`
	Town        string `json:"town" form:"town"`
	ServiceType string `json:"service_type" form:"service_type"`
	Message     string `json:"message" form:"message" binding:"required"`
}

// InquiryRequest is a public order inquiry for a catalog product. The
// message is optional; the product reference carries the intent.
type InquiryRequest struct {
	Name    string `json:"name" form:"name" binding:"required,max=255"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Phone   string `json:"phone" form:"phone"`
	Town    string `json:"town" form:"town"`
	Message string `json:"message" form:"message"`
}

// ImageMetaRequest updates an image's descriptive metadata
type ImageMetaRequest struct {
	AltText  string `json:"alt_text" form:"alt_text"`
	Title    string `json:"title" form:"title"`
	Category string `json:"category" form:"category"`
}
