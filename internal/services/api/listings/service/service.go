// Package service contains listing workflows
package service

import (
	"context"

	"github.com/google/uuid"

	"titlesmith/internal/core/compose"
	"titlesmith/internal/core/extract"
	"titlesmith/internal/core/lexicon"
	"titlesmith/internal/core/profile"
	perr "titlesmith/internal/platform/errors"
	"titlesmith/internal/platform/logger"
	pnet "titlesmith/internal/platform/net"
	"titlesmith/internal/services/api/listings/domain"
)

// Service defines the service contract for listings
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	profiles *profile.Catalog
	fetch    domain.Fetcher

	// one extractor per Gift setting, both share the lexicon
	plain *extract.Extractor
	gift  *extract.Extractor

	newID func() string
}

// New creates a new listing service. fetch may be nil, in which case
// product lookups fail as unavailable
func New(lex *lexicon.Lexicon, profiles *profile.Catalog, fetch domain.Fetcher) *Svc {
	if lex == nil {
		panic("listings.Service requires a non nil Lexicon")
	}
	if profiles == nil {
		panic("listings.Service requires a non nil profile Catalog")
	}
	return &Svc{
		profiles: profiles,
		fetch:    fetch,
		plain:    extract.New(lex, extract.Options{}),
		gift:     extract.New(lex, extract.Options{AppendGift: true}),
		newID:    newID,
	}
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Compose builds a listing from a title and tags supplied by the caller
func (s *Svc) Compose(ctx context.Context, in domain.TitleInput) (domain.Listing, error) {
	p, err := s.profiles.Resolve(in.Profile)
	if err != nil {
		return domain.Listing{}, perr.WithField(err, "profile")
	}
	raw := extract.RawInput{Title: in.Title, Tags: in.Tags}
	return s.run(ctx, p, domain.Source{Kind: domain.SourceTitle, Raw: raw}), nil
}

// FromProduct fetches a storefront product and builds its listing.
// With AllowPartial a failed fetch still yields a best-effort title from empty input;
// a malformed product reference is always an error
func (s *Svc) FromProduct(ctx context.Context, in domain.ProductInput) (domain.Listing, error) {
	p, err := s.profiles.Resolve(in.Profile)
	if err != nil {
		return domain.Listing{}, perr.WithField(err, "profile")
	}
	if s.fetch == nil {
		return domain.Listing{}, perr.Unavailablef("storefront is not configured")
	}

	raw, url, err := s.fetch.FetchProduct(ctx, in.Product)
	src := domain.Source{Kind: domain.SourceProduct, URL: url, Raw: raw}
	if err != nil {
		if !in.AllowPartial || perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
			return domain.Listing{}, err
		}
		logger.C(ctx).Warn().Err(err).Str("product", in.Product).Msg("product fetch failed; composing from empty input")
		src.FetchError = perr.WireFrom(err).Message
		src.Raw = extract.RawInput{}
	}
	return s.run(ctx, p, src), nil
}

// Profiles lists the selectable profiles, marking the deployment default
func (s *Svc) Profiles(_ context.Context) []domain.ProfileInfo {
	def := s.profiles.Default().Name
	all := s.profiles.All()
	out := make([]domain.ProfileInfo, 0, len(all))
	for _, p := range all {
		out = append(out, domain.ProfileInfo{
			Name:              string(p.Name),
			Description:       p.Description,
			Budget:            p.Policy.Budget,
			Gift:              p.Extract.AppendGift,
			StrictDescriptors: p.Policy.StrictDescriptors,
			Rescue:            string(p.Policy.Rescue),
			Default:           p.Name == def,
		})
	}
	return out
}

func (s *Svc) run(ctx context.Context, p profile.Profile, src domain.Source) domain.Listing {
	ex := s.plain
	if p.Extract.AppendGift {
		ex = s.gift
	}
	attrs := ex.Extract(src.Raw)
	res := compose.Compose(attrs, p.Policy)

	l := domain.Listing{
		ID:         s.newID(),
		Title:      res.Title,
		Length:     res.Length,
		Budget:     res.Budget,
		Profile:    string(p.Name),
		Overflow:   res.Overflow,
		Rescued:    res.Rescued,
		Attributes: attrs,
		Sections:   res.Sections,
		Source:     src,
	}

	ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), l.Profile)
	ev := logger.C(ctx).Debug()
	if l.Overflow {
		ev = logger.C(ctx).Warn()
	}
	ev.Str("source", src.Kind).
		Int("length", l.Length).
		Int("budget", l.Budget).
		Bool("rescued", l.Rescued).
		Bool("overflow", l.Overflow).
		Msg("listing composed")
	return l
}

// Fetcher re-exports the domain fetch port for wiring code
type Fetcher = domain.Fetcher
