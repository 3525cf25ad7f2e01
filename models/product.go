package models

import "time"

// ═══════════════════════════════════════════════════════════
// Upstream Product Model
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Brand            string     `json:"brand"`
	Category         string     `json:"category"`
	SubCategory      string     `json:"subCategory,omitempty"`
	ThirdCategory    string     `json:"thirdCategory,omitempty"`
	Price            float64    `json:"price"`
	OldPrice         *float64   `json:"oldPrice,omitempty"`
	RetailPrice      *float64   `json:"retailPrice,omitempty"`
	WholesalePrice   *float64   `json:"wholesalePrice,omitempty"`
	MOQ              *int       `json:"moq,omitempty"`
	PricingTier      string     `json:"pricingTier,omitempty"`
	Discount         *float64   `json:"discount,omitempty"`
	Stock            int        `json:"stock"`
	Rating           *float64   `json:"rating,omitempty"`
	WholesaleEnabled bool       `json:"wholesaleEnabled"`
	Featured         bool       `json:"featured"`
	Status           string     `json:"status"`
	Images           []MediaRef `json:"images,omitempty"`
	Banners          []MediaRef `json:"banners,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

const (
	ProductStatusActive     = "Active"
	ProductStatusInactive   = "Inactive"
	ProductStatusDraft      = "Draft"
	ProductStatusOutOfStock = "Out of Stock"
)

var PricingTiers = []string{"Basic", "Standard", "Premium", "Enterprise"}

// ═══════════════════════════════════════════════════════════
// Wizard Form Model
// ═══════════════════════════════════════════════════════════

// ProductForm mirrors the wizard's form inputs. Numeric fields stay strings
// until submission, where they are parsed and typed into ProductData. Blank
// optional fields are omitted from the payload entirely.
type ProductForm struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	Brand            string `json:"brand"`
	Price            string `json:"price"`
	OldPrice         string `json:"old_price"`
	RetailPrice      string `json:"retail_price"`
	WholesalePrice   string `json:"wholesale_price"`
	MOQ              string `json:"moq"`
	Stock            string `json:"stock"`
	Discount         string `json:"discount"`
	Rating           string `json:"rating"`
	PricingTier      string `json:"pricing_tier"`
	Status           string `json:"status"`
	WholesaleEnabled bool   `json:"wholesale_enabled"`
	Featured         bool   `json:"featured"`
}

// UpdateProductFormRequest merges provided fields into a wizard draft.
type UpdateProductFormRequest struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	Brand            *string `json:"brand"`
	Price            *string `json:"price"`
	OldPrice         *string `json:"old_price"`
	RetailPrice      *string `json:"retail_price"`
	WholesalePrice   *string `json:"wholesale_price"`
	MOQ              *string `json:"moq"`
	Stock            *string `json:"stock"`
	Discount         *string `json:"discount"`
	Rating           *string `json:"rating"`
	PricingTier      *string `json:"pricing_tier" binding:"omitempty,oneof=Basic Standard Premium Enterprise"`
	Status           *string `json:"status" binding:"omitempty,oneof=Active Inactive Draft 'Out of Stock'"`
	WholesaleEnabled *bool   `json:"wholesale_enabled"`
	Featured         *bool   `json:"featured"`
}

// ProductData is the JSON blob carried in the "productData" multipart field
// of product create/update calls. Optional numerics are pointers so blank
// form values can be omitted rather than sent as null or zero.
type ProductData struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Brand            string   `json:"brand"`
	Category         string   `json:"category"`
	SubCategory      string   `json:"subCategory,omitempty"`
	ThirdCategory    string   `json:"thirdCategory,omitempty"`
	Price            float64  `json:"price"`
	OldPrice         *float64 `json:"oldPrice,omitempty"`
	RetailPrice      *float64 `json:"retailPrice,omitempty"`
	WholesalePrice   *float64 `json:"wholesalePrice,omitempty"`
	MOQ              *int     `json:"moq,omitempty"`
	Stock            int      `json:"stock"`
	Discount         *float64 `json:"discount,omitempty"`
	Rating           *float64 `json:"rating,omitempty"`
	PricingTier      string   `json:"pricingTier,omitempty"`
	WholesaleEnabled bool     `json:"wholesaleEnabled"`
	Featured         bool     `json:"featured"`
	Status           string   `json:"status,omitempty"`
}
