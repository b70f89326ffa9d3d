package application

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/text/language"

	"ytreport/internal/ports/input"
	"ytreport/internal/ports/output"
)

var _ input.LocalizationUseCase = (*LocalizationService)(nil)

type LocalizationService struct {
	source   output.FragmentSource
	locales  output.LocaleService
	fallback string

	available []string
}

// NewLocalizationService wires a fragment source to the locale service.
// fallback may be empty, in which case a missing locale registers nothing.
func NewLocalizationService(
	source output.FragmentSource,
	locales output.LocaleService,
	fallback string,
) *LocalizationService {
	return &LocalizationService{
		source:   source,
		locales:  locales,
		fallback: fallback,
	}
}

// Init builds every bundle and registers the one for requested.
// It returns the locale actually registered, or "" when neither requested
// nor the fallback exists.
func (s *LocalizationService) Init(ctx context.Context, requested string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	bundles, err := BuildBundlesFrom(s.source)
	if err != nil {
		return "", fmt.Errorf("build bundles: %w", err)
	}
	s.available = bundles.Locales()

	locale := canonicalLocale(requested)
	fallback := canonicalLocale(s.fallback)
	dict, ok := bundles[locale]
	if !ok {
		log.Printf("⚠️ i18n: locale %q not found (available=%v)", requested, s.available)
		if fallback == "" || fallback == locale {
			return "", nil
		}
		locale = fallback
		if dict, ok = bundles[locale]; !ok {
			log.Printf("⚠️ i18n: fallback locale %q not found either, nothing registered", s.fallback)
			return "", nil
		}
		log.Printf("i18n: falling back to %q", locale)
	}

	if err := s.locales.SetLocale(locale, dict); err != nil {
		return "", fmt.Errorf("set locale %s: %w", locale, err)
	}
	log.Printf("✅ i18n: locale %s registered (%d messages)", locale, len(dict))
	return locale, nil
}

// Locales lists the locale codes found by the last Init.
func (s *LocalizationService) Locales() []string {
	return s.available
}

// canonicalLocale matches the codes produced by FragmentLocale; unparsable
// codes are kept as given and simply never match a bundle.
func canonicalLocale(code string) string {
	if tag, err := language.Parse(code); err == nil {
		return tag.String()
	}
	return code
}
