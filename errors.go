package storage

import (
	"errors"
	"fmt"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/apimachinery/pkg/util/sets"
)

var (
	// ErrMissingScope matches every [ConfigError] through errors.Is.
	ErrMissingScope = errors.New("missing scope id")
	// ErrResourceNotFound is returned by [Storage.ResourceNotFound].
	ErrResourceNotFound = errors.New("resource not found")
)

// Scope names an id a finder needs before it can build its url.
type Scope string

const (
	ScopeWebsite     Scope = "website"
	ScopeMarketplace Scope = "marketplace"
	ScopeList        Scope = "list"
)

// ConfigError is returned before any request is made when a required scope id is unset.
type ConfigError struct {
	Scope Scope
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing %s id: set it with Set%s", e.Scope, scopeSetter[e.Scope])
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingScope
}

var scopeSetter = map[Scope]string{
	ScopeWebsite:     "Website",
	ScopeMarketplace: "Marketplace",
	ScopeList:        "List",
}

// HTTPError is a non-2xx answer from the storage service.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	// Details from httpStatusMap, empty for unlisted codes.
	Details string
}

func (e *HTTPError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("%s %s: %d", e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %d — %s", e.Method, e.URL, e.StatusCode, e.Details)
}

// requireScopes returns a *ConfigError per unset scope, sorted by scope name.
// A single missing scope is returned as is, several as an aggregate.
func (l Locator) requireScopes(scopes ...Scope) error {
	missing := sets.New[Scope]()
	for _, scope := range scopes {
		if isEmpty(l.scopeID(scope)) {
			missing.Insert(scope)
		}
	}

	errs := make([]error, 0, missing.Len())
	for _, scope := range sets.List(missing) {
		errs = append(errs, &ConfigError{Scope: scope})
	}
	return utilerrors.Reduce(utilerrors.NewAggregate(errs))
}

func (l Locator) scopeID(scope Scope) int64 {
	switch scope {
	case ScopeWebsite:
		return l.WebsiteID
	case ScopeMarketplace:
		return l.MarketplaceID
	case ScopeList:
		return l.ListID
	}
	return 0
}
