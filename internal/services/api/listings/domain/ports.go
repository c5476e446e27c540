package domain

import (
	"context"

	"titlesmith/internal/core/extract"
)

// ServicePort defines the service contract for listings
type ServicePort interface {
	Compose(ctx context.Context, in TitleInput) (Listing, error)
	FromProduct(ctx context.Context, in ProductInput) (Listing, error)
	Profiles(ctx context.Context) []ProfileInfo
}

// Fetcher resolves a product URL or SKU and scrapes its raw title and tags.
// It returns the URL it fetched
type Fetcher interface {
	FetchProduct(ctx context.Context, product string) (extract.RawInput, string, error)
}
