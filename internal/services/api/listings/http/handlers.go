// Package http provides http transport for listings
package http

import (
	stdhttp "net/http"

	"titlesmith/internal/modkit/httpkit"
	"titlesmith/internal/services/api/listings/domain"
	svc "titlesmith/internal/services/api/listings/service"
)

// Register mounts listing endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.TitleInput](r, "/title", h.title)
	httpkit.PostJSON[domain.ProductInput](r, "/product", h.product)
	httpkit.Get(r, "/profiles", h.profiles)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /listings/title Listings listingsTitle
// @Summary Compose a listing title from raw title text and tags
// @Tags Listings
// @Accept json
// @Produce json
// @Param payload body domain.TitleInput true "Raw product text"
// @Success 200 {object} domain.Listing "ok"
// @Router /listings/title [post]
func (h *handlers) title(r *stdhttp.Request, in domain.TitleInput) (any, error) {
	return h.svc.Compose(r.Context(), in)
}

// swagger:route POST /listings/product Listings listingsProduct
// @Summary Fetch a storefront product by URL or SKU and compose its listing title
// @Tags Listings
// @Accept json
// @Produce json
// @Param payload body domain.ProductInput true "Product reference"
// @Success 200 {object} domain.Listing "ok"
// @Failure 404 {object} httpkit.Envelope "product page not found"
// @Failure 503 {object} httpkit.Envelope "storefront unavailable"
// @Router /listings/product [post]
func (h *handlers) product(r *stdhttp.Request, in domain.ProductInput) (any, error) {
	return h.svc.FromProduct(r.Context(), in)
}

// swagger:route GET /listings/profiles Listings listingsProfiles
// @Summary Title profiles and their budgets
// @Tags Listings
// @Produce json
// @Success 200 {array} domain.ProfileInfo "ok"
// @Router /listings/profiles [get]
func (h *handlers) profiles(r *stdhttp.Request) (any, error) {
	return h.svc.Profiles(r.Context()), nil
}
