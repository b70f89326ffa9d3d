package entities

import "sort"

// Dictionary is a flat message key → translated string mapping.
type Dictionary map[string]string

// Bundles maps a locale code to its fully merged dictionary.
type Bundles map[string]Dictionary

// Fragment is one source unit of translations for a single locale.
// Groups are named sub-dictionaries; the group names are discarded on flatten.
type Fragment struct {
	ID     string
	Locale string
	Groups map[string]Dictionary
}

// Flatten merges every group into one dictionary. Groups are visited in
// sorted name order; a key present in several groups keeps the value of the
// last one.
func (f Fragment) Flatten() Dictionary {
	names := make([]string, 0, len(f.Groups))
	for name := range f.Groups {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(Dictionary)
	for _, name := range names {
		out.Merge(f.Groups[name])
	}
	return out
}

// Merge copies every entry of src into d, overwriting existing keys.
func (d Dictionary) Merge(src Dictionary) {
	for k, v := range src {
		d[k] = v
	}
}

// Locales returns the locale codes of b in sorted order.
func (b Bundles) Locales() []string {
	out := make([]string, 0, len(b))
	for code := range b {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
