package i18n

import (
	"embed"
	"fmt"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"festx/internal/domain"
)

//go:embed active.*.toml
var localeFS embed.FS

var catalogFiles = []string{"active.en.toml", "active.fr.toml"}

var _ domain.Translator = (*Translator)(nil)

// Translator renders catalogued messages through go-i18n.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	logger          *slog.Logger
}

// NewTranslator loads the embedded catalogs. An unparsable defaultLocale falls back to English.
func NewTranslator(defaultLocale string, logger *slog.Logger) (*Translator, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range catalogFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}
	return &Translator{bundle: bundle, defaultLanguage: tag, logger: logger}, nil
}

// T renders key for locale, falling back to the default locale and then to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.logger.Warn("i18n: localize failed", "key", key, "locales", languages, "err", err)
		return key
	}
	return msg
}
