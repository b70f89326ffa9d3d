package i18n

import (
	"fmt"
	"log"
	"sort"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"ytreport/internal/domain"
	"ytreport/internal/domain/entities"
	"ytreport/internal/ports/output"
)

// Ensure Registry implements both i18n ports.
var (
	_ output.T             = (*Registry)(nil)
	_ output.LocaleService = (*Registry)(nil)
)

// Registry is the process-wide locale service: a thin wrapper around
// go-i18n's Bundle/Localizer that receives merged dictionaries.
type Registry struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

// NewRegistry builds an empty Registry using the given default locale
// (e.g. "en"). An unparsable locale falls back to English.
func NewRegistry(defaultLocale string) *Registry {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		log.Printf("i18n: invalid default locale %q, using %s: %v", defaultLocale, language.English, err)
		tag = language.English
	}
	return &Registry{
		bundle:          i18n.NewBundle(tag),
		defaultLanguage: tag,
	}
}

// SetLocale registers every entry of dict as a message of locale.
func (r *Registry) SetLocale(locale string, dict entities.Dictionary) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("i18n: locale %q: %w", locale, domain.ErrInvalidLocale)
	}

	keys := make([]string, 0, len(dict))
	for key := range dict {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	messages := make([]*i18n.Message, 0, len(keys))
	for _, key := range keys {
		messages = append(messages, &i18n.Message{ID: key, Other: dict[key]})
	}
	if err := r.bundle.AddMessages(tag, messages...); err != nil {
		return fmt.Errorf("i18n: add messages for %s: %w", tag, err)
	}
	return nil
}

// Locales returns the registered language tags.
func (r *Registry) Locales() []string {
	tags := r.bundle.LanguageTags()
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tag.String())
	}
	sort.Strings(out)
	return out
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (r *Registry) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, r.defaultLanguage.String())

	localizer := i18n.NewLocalizer(r.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("i18n: localize failed (key=%s, locales=%v): %v", key, languages, err)
		return key
	}
	return msg
}
