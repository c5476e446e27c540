package module

import (
	"context"

	listingsdom "titlesmith/internal/services/api/listings/domain"
	listingssvc "titlesmith/internal/services/api/listings/service"
)

// Ports is the listings port set other modules and the CLI can pull with module.PortsOf
type Ports struct {
	Listings listingsdom.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptListingsPort adapts the listings service to the domain port interface
type adaptListingsPort struct{ svc listingssvc.Service }

// Compose implements the domain ServicePort interface
func (a adaptListingsPort) Compose(ctx context.Context, in listingsdom.TitleInput) (listingsdom.Listing, error) {
	return a.svc.Compose(ctx, in)
}

// FromProduct implements the domain ServicePort interface
func (a adaptListingsPort) FromProduct(ctx context.Context, in listingsdom.ProductInput) (listingsdom.Listing, error) {
	return a.svc.FromProduct(ctx, in)
}

// Profiles implements the domain ServicePort interface
func (a adaptListingsPort) Profiles(ctx context.Context) []listingsdom.ProfileInfo {
	return a.svc.Profiles(ctx)
}
