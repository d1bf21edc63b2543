package storage

import (
	"context"
	"fmt"
)

// GetRoutes fetches "routes" for locale. An empty locale keeps the current one.
func (s *Storage) GetRoutes(ctx context.Context, locale string, out any) error {
	return s.getLocalized(ctx, "routes", locale, out)
}

// GetMenus fetches "menus" for locale. An empty locale keeps the current one.
func (s *Storage) GetMenus(ctx context.Context, locale string, out any) error {
	return s.getLocalized(ctx, "menus", locale, out)
}

func (s *Storage) FindContent(ctx context.Context, contentID int64, out any) error {
	return s.SetEndpoint("contents").Find(ctx, contentID, out)
}

// FindListing requires a list id, see [Storage.SetList].
func (s *Storage) FindListing(ctx context.Context, listingID int64, out any) error {
	if err := s.loc.requireScopes(ScopeList); err != nil {
		return err
	}
	return s.SetEndpoint(fmt.Sprintf("lists/%d/listings", s.loc.ListID)).Find(ctx, listingID, out)
}

// GetLocation finds a location by its cloud geocode. Requires a list id.
func (s *Storage) GetLocation(ctx context.Context, geocode int64, out any) error {
	if err := s.loc.requireScopes(ScopeList); err != nil {
		return err
	}
	return s.SetEndpoint(fmt.Sprintf("lists/%d/locations", s.loc.ListID)).Find(ctx, geocode, out)
}

// FindProfile requires a marketplace id. Profiles live at the storage root,
// outside of any website.
func (s *Storage) FindProfile(ctx context.Context, profileID int64, out any) error {
	if err := s.loc.requireScopes(ScopeMarketplace); err != nil {
		return err
	}
	return s.SetEndpoint(fmt.Sprintf("/marketplaces/%d/profiles", s.loc.MarketplaceID)).Find(ctx, profileID, out)
}

func (s *Storage) getLocalized(ctx context.Context, endpoint, locale string, out any) error {
	s.SetEndpoint(endpoint)
	if !isEmpty(locale) {
		s.SetLocale(locale)
	}
	return s.Get(ctx, out)
}

// Require returns a [*ConfigError] for each of scopes whose id is unset.
func (s *Storage) Require(scopes ...Scope) error {
	return s.loc.requireScopes(scopes...)
}
