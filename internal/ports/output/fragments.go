package output

import "ytreport/internal/domain/entities"

// FragmentSource enumerates translation fragments whose identifiers encode
// their locale, and loads their grouped dictionaries.
type FragmentSource interface {
	// Keys returns fragment identifiers in processing order.
	Keys() []string
	// Load returns the groups of the fragment identified by id.
	Load(id string) (map[string]entities.Dictionary, error)
}
