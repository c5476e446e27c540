package modkit

import (
	"titlesmith/internal/adapters/storefront"
	"titlesmith/internal/core/lexicon"
	"titlesmith/internal/core/profile"
	"titlesmith/internal/platform/config"
	"titlesmith/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// read-only lookup tables shared by every extractor
	Lexicon *lexicon.Lexicon
	// deployment profile plus the built-ins
	Profiles *profile.Catalog
	// optional; product lookups report unavailable without it
	Storefront *storefront.Client
}

// Complete reports whether the deps the title engine needs are present
func (d Deps) Complete() bool { return d.Lexicon != nil && d.Profiles != nil }
