package application

import (
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/language"

	"ytreport/internal/domain"
	"ytreport/internal/domain/entities"
	"ytreport/internal/ports/output"
)

// FragmentLocale derives the locale code encoded in a fragment identifier.
//
// The directory part is ignored and the base name is cut at its first ".".
// "app.po_fr" carries the locale after the extension marker, "messages_ru.po"
// carries it in the second "_" segment of the name.
func FragmentLocale(id string) (string, error) {
	name := path.Base(strings.ReplaceAll(id, `\`, "/"))
	head, tail, _ := strings.Cut(name, ".")

	var code string
	if parts := strings.Split(tail, "_"); len(parts) > 1 {
		code = parts[1]
	} else if parts := strings.Split(head, "_"); len(parts) > 1 {
		code = parts[1]
	}

	if code == "" {
		return "", fmt.Errorf("fragment %q: %w", id, domain.ErrInvalidFragmentID)
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("fragment %q: locale %q: %w", id, code, domain.ErrInvalidFragmentID)
	}
	return tag.String(), nil
}

// BuildBundles merges fragments into one flat dictionary per locale.
// Fragments are applied in slice order; for a key present in several
// fragments of the same locale the last one wins.
func BuildBundles(fragments []entities.Fragment) (entities.Bundles, error) {
	bundles := make(entities.Bundles)
	for _, f := range fragments {
		if strings.TrimSpace(f.Locale) == "" {
			return nil, fmt.Errorf("fragment %q: %w", f.ID, domain.ErrInvalidFragmentID)
		}
		acc, ok := bundles[f.Locale]
		if !ok {
			acc = make(entities.Dictionary)
			bundles[f.Locale] = acc
		}
		acc.Merge(f.Flatten())
	}
	return bundles, nil
}

// BuildBundlesFrom loads every fragment of src in enumeration order and
// merges them with BuildBundles. The first malformed identifier or load
// failure aborts the build.
func BuildBundlesFrom(src output.FragmentSource) (entities.Bundles, error) {
	ids := src.Keys()
	fragments := make([]entities.Fragment, 0, len(ids))
	for _, id := range ids {
		locale, err := FragmentLocale(id)
		if err != nil {
			return nil, err
		}
		groups, err := src.Load(id)
		if err != nil {
			return nil, fmt.Errorf("load fragment %q: %w", id, err)
		}
		fragments = append(fragments, entities.Fragment{ID: id, Locale: locale, Groups: groups})
	}
	return BuildBundles(fragments)
}
