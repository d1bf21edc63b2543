package storage

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Extension is appended to every resource url. It cannot be changed.
const Extension = "json"

// DefaultLocale is the terminal path segment used when no id is set.
const DefaultLocale = "en"

// Locator is the state a [Storage] builder derives urls from.
// Zero values mean "unset".
type Locator struct {
	// Path segment(s) of the resource collection, e.g. "contents" or "lists/2/listings".
	// A leading "/" marks a root path endpoint: no website prefix is inserted.
	Endpoint string
	// Numeric resource id. Wins over Locale as the last segment.
	ID            int64
	Locale        string
	WebsiteID     int64
	MarketplaceID int64
	ListID        int64
}

// IsRootPath reports whether the endpoint starts with "/".
func (l Locator) IsRootPath() bool {
	return strings.HasPrefix(l.Endpoint, "/")
}

// Path returns the resource path, without the storage url.
//
//	Locator{WebsiteID: 1, Endpoint: "contents", ID: 1}.Path() // "/websites/1/contents/1.json"
//	Locator{WebsiteID: 1, Endpoint: "/contents", ID: 1}.Path() // "/contents/1.json"
//	Locator{Endpoint: "routes", Locale: "en"}.Path() // "/routes/en.json"
func (l Locator) Path() string {
	var sb strings.Builder
	root := l.IsRootPath()

	if !root && !isEmpty(l.WebsiteID) {
		sb.WriteString("/websites/")
		sb.WriteString(formatID(l.WebsiteID))
	}

	if !isEmpty(l.Endpoint) {
		if !root {
			sb.WriteByte('/')
		}
		sb.WriteString(l.Endpoint)
	}

	sb.WriteByte('/')
	if !isEmpty(l.ID) {
		sb.WriteString(formatID(l.ID))
	} else {
		sb.WriteString(l.Locale)
	}

	sb.WriteByte('.')
	sb.WriteString(Extension)

	// Only the first "//" is collapsed. Existing consumers depend on the exact output.
	return strings.Replace(sb.String(), "//", "/", 1)
}

// URL prefixes [Locator.Path] with the storage url, trailing slashes removed.
func (l Locator) URL(storageURL string) string {
	return trimStorageURL(storageURL) + l.Path()
}

// ========================= AUXILIARY FUNC =========================

func trimStorageURL(storageURL string) string {
	if isEmpty(storageURL) {
		return ""
	}
	return strings.TrimRight(storageURL, "/")
}

// isEmpty reports whether v is the zero value of its type.
func isEmpty[T constraints.Ordered](v T) bool {
	var zero T
	return v == zero
}

func formatID[T constraints.Integer](id T) string {
	return strconv.FormatInt(int64(id), 10)
}
