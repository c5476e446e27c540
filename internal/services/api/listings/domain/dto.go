// Package domain holds DTOs for listing http and service contracts
package domain

import (
	"titlesmith/internal/core/compose"
	"titlesmith/internal/core/extract"
)

// Source kinds
const (
	SourceTitle   = "title"
	SourceProduct = "product"
)

// TitleInput composes a listing title from text the caller already has
type TitleInput struct {
	Title   string   `json:"title" validate:"max=1000" example:"TK3180 - Women's Stainless Steel Ring with Clear Cubic Zirconia, IP Gold (Ion Plating), High Polished"`
	Tags    []string `json:"tags,omitempty" validate:"omitempty,max=200,dive,max=200" example:"women,ring,solitaire,round"`
	Profile string   `json:"profile,omitempty" validate:"omitempty,oneof=canonical legacy strict" example:"canonical"`
}

// ProductInput composes a listing title from a storefront product page
type ProductInput struct {
	Product      string `json:"product" validate:"required,max=500" example:"TK3180"`
	Profile      string `json:"profile,omitempty" validate:"omitempty,oneof=canonical legacy strict" example:"legacy"`
	AllowPartial bool   `json:"allow_partial,omitempty" example:"false"`
}

// Source describes where the raw text came from
type Source struct {
	Kind       string           `json:"kind" example:"product"`
	URL        string           `json:"url,omitempty" example:"https://alamodeonline.com/products/tk3180"`
	FetchError string           `json:"fetch_error,omitempty"`
	Raw        extract.RawInput `json:"raw"`
}

// Listing is one composed title with the attributes it was built from
type Listing struct {
	ID         string             `json:"id" example:"0198a3c2-6f1e-7c41-9b7a-1f0c2d3e4f50"`
	Title      string             `json:"title" example:"Women's Ring, Solitaire, Round Clear Cubic Zirconia, Stainless Steel Gold-Plated"`
	Length     int                `json:"length" example:"80"`
	Budget     int                `json:"budget" example:"80"`
	Profile    string             `json:"profile" example:"canonical"`
	Overflow   bool               `json:"overflow" example:"false"`
	Rescued    bool               `json:"rescued" example:"false"`
	Attributes extract.Attributes `json:"attributes"`
	Sections   compose.Sections   `json:"sections"`
	Source     Source             `json:"source"`
}

// ProfileInfo describes a selectable title profile
type ProfileInfo struct {
	Name              string `json:"name" example:"canonical"`
	Description       string `json:"description"`
	Budget            int    `json:"budget" example:"80"`
	Gift              bool   `json:"gift" example:"false"`
	StrictDescriptors bool   `json:"strict_descriptors" example:"false"`
	Rescue            string `json:"rescue" example:"abbreviate"`
	Default           bool   `json:"default" example:"true"`
}
